package notice

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/noticegen/pkg/cargo"
)

// Resolver turns one dependency record into a notice entry.
type Resolver struct {
	remote RemoteFinder // nil disables remote lookup
}

// Resolve produces the notice body for pkg; first non-empty result wins:
//
//  1. Local scan of the directory holding the package's manifest, probing
//     every name in [LicenseFiles] and concatenating the contents of all
//     files that exist. The scan does not stop at the first match — only a
//     non-empty combined result short-circuits the remote search. Packages
//     shipping both LICENSE-MIT and LICENSE-APACHE yield both texts.
//  2. Remote lookup through the repository URL, for URLs containing
//     "github" only.
//  3. Synthesized attribution from the declared authors and license.
//
// All failures along the way degrade to the next step; Resolve never errors.
func (r *Resolver) Resolve(ctx context.Context, pkg cargo.Package, opts Options) Entry {
	body := localLicense(pkg)
	if body == "" {
		body = r.remoteLicense(ctx, pkg, opts)
	}
	if body == "" {
		body = attribution(pkg)
	}
	return Entry{Package: pkg.Name, Body: body}
}

// localLicense concatenates every recognized license file present next to
// the package's manifest, in LicenseFiles order.
func localLicense(pkg cargo.Package) string {
	dir := filepath.Dir(pkg.ManifestPath)

	var b strings.Builder
	for _, name := range LicenseFiles {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		b.Write(data)
	}
	return b.String()
}

func (r *Resolver) remoteLicense(ctx context.Context, pkg cargo.Package, opts Options) string {
	if r.remote == nil || !strings.Contains(pkg.Repository, "github") {
		return ""
	}

	text, err := r.remote.FindLicense(ctx, pkg.Repository, LicenseFiles, opts.Refresh)
	if err != nil {
		opts.Logger("license lookup failed: %s: %v", pkg.Name, err)
		return ""
	}
	return text
}

func attribution(pkg cargo.Package) string {
	return fmt.Sprintf("Author(s): %s\nLicense(s): %s\n", strings.Join(pkg.Authors, ", "), pkg.License)
}
