package github

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// ErrNoLicense is returned by [Client.FindLicense] when the repository page
// contains no link to a recognized license file, or when none of the linked
// files could be fetched.
var ErrNoLicense = errors.New("no license link found")

// FindLicense fetches the repository landing page and scans it for a
// hyperlink whose title attribute matches one of names, in order. The first
// matching link is rewritten to its raw-content URL and fetched; the first
// non-empty raw body wins. Failing candidates are skipped, so a stale link
// for one filename doesn't mask a working link for the next.
func (c *Client) FindLicense(ctx context.Context, repoURL string, names []string, refresh bool) (string, error) {
	url := NormalizeRepoURL(repoURL)

	page, err := c.cachedText(ctx, "page:"+url, url, refresh)
	if err != nil {
		return "", err
	}

	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return "", fmt.Errorf("parse repository page: %w", err)
	}

	for _, name := range names {
		href, ok := anchorByTitle(doc, name)
		if !ok {
			continue
		}
		raw := c.rawBase + strings.ReplaceAll(href, "blob/", "")
		text, err := c.cachedText(ctx, "raw:"+raw, raw, refresh)
		if err == nil && text != "" {
			return text, nil
		}
	}
	return "", ErrNoLicense
}

// anchorByTitle walks the document tree looking for the first <a> element
// whose title attribute equals title, returning its href.
func anchorByTitle(n *html.Node, title string) (href string, ok bool) {
	if n.Type == html.ElementNode && n.Data == "a" {
		var t, h string
		for _, attr := range n.Attr {
			switch attr.Key {
			case "title":
				t = attr.Val
			case "href":
				h = attr.Val
			}
		}
		if t == title && h != "" {
			return h, true
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if href, ok = anchorByTitle(child, title); ok {
			return href, true
		}
	}
	return "", false
}
