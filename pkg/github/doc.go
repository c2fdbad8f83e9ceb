// Package github fetches license texts from GitHub repository pages.
//
// # Overview
//
// The [Client] performs two kinds of requests, mirroring how a human would
// locate a license in a repository they can only browse:
//
//  1. Fetch the repository landing page and scan its HTML for a link whose
//     title attribute names a recognized license file.
//  2. Rewrite that link to its raw-content form and fetch the raw text.
//
// Both steps are cached on disk (see [httputil.Cache]) and retried on
// transient failures. A missing repository page surfaces as [ErrNotFound];
// a page without a usable license link surfaces as [ErrNoLicense]. Callers
// treat both as "no license here" rather than an abort condition.
//
// # Authentication
//
// Requests are unauthenticated by default. A token (e.g. from GITHUB_TOKEN)
// can be supplied to soften rate limiting on large dependency sets.
package github
