// Package notice produces a third-party NOTICE document for a Cargo project.
//
// # Overview
//
// A [Generator] runs the whole pipeline: read the project manifest, ask
// `cargo metadata` for the resolved dependency graph, resolve one license
// body per dependency (local file scan, then remote lookup, then synthesized
// attribution), and assemble the bodies into a single banner-delimited
// document written to the output file.
//
// The root package never notices itself: the entry whose name matches the
// manifest's declared package name is excluded.
//
// # Failure policy
//
// Setup failures (unreadable manifest, failing metadata command) abort the
// run before any license work starts and leave the output file untouched.
// Per-package resolution failures are absorbed: the affected package gets
// fallback attribution text and the run still succeeds. Context cancellation
// is not absorbed; a cancelled run returns the context error without writing
// the output file.
package notice

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/matzehuels/noticegen/pkg/cargo"
	"github.com/matzehuels/noticegen/pkg/manifest"
)

const (
	// DefaultOutput is the notice file written into the project directory.
	DefaultOutput = "NOTICE"

	// DefaultWorkers bounds the number of concurrent license resolutions.
	DefaultWorkers = 8
)

// LicenseFiles is the fixed, ordered list of recognized license filenames.
// Local probing and remote link matching both iterate it in this order;
// the matching is case-sensitive.
var LicenseFiles = []string{
	"LICENSE",
	"LICENSE.txt",
	"LICENSE.md",
	"LICENSE-MIT",
	"LICENSE-MIT.md",
	"LICENCE-MIT",
	"LICENSE-APACHE",
	"UNLICENSE",
}

// Entry is one package's resolved notice body.
type Entry struct {
	Package string // Dependency name, as reported by cargo metadata
	Body    string // License text or fallback attribution
}

// RemoteFinder locates a license text through a source forge's web pages.
// Implementations are expected to be safe for concurrent use.
type RemoteFinder interface {
	FindLicense(ctx context.Context, repoURL string, names []string, refresh bool) (string, error)
}

// MetadataFunc enumerates the resolved dependency set of the project in dir.
type MetadataFunc func(ctx context.Context, dir string) ([]cargo.Package, error)

// Options configures a single generation run.
type Options struct {
	Dir     string               // Project directory (default ".")
	Output  string               // Output path, relative paths resolve against Dir (default "NOTICE")
	Refresh bool                 // Bypass the HTTP cache for remote lookups
	Workers int                  // Concurrent license resolutions (default 8)
	Logger  func(string, ...any) // Progress/error callback (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Output == "" {
		opts.Output = DefaultOutput
	}
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// Generator wires a metadata source and an optional remote license finder
// into the notice pipeline.
type Generator struct {
	meta     MetadataFunc
	resolver *Resolver
}

// NewGenerator creates a Generator. Pass nil for remote to disable remote
// license lookup entirely; affected packages fall back to attribution text.
func NewGenerator(meta MetadataFunc, remote RemoteFinder) *Generator {
	return &Generator{meta: meta, resolver: &Resolver{remote: remote}}
}

// Run executes one generation pass and returns the path of the written
// notice file. The manifest read and the metadata command are synchronous
// and complete before any concurrent license work begins. If ctx is
// cancelled the context error is returned and the output file is left
// untouched.
func (g *Generator) Run(ctx context.Context, opts Options) (string, error) {
	opts = opts.WithDefaults()

	m, err := manifest.Load(opts.Dir)
	if err != nil {
		return "", err
	}
	root := m.Package.Name
	opts.Logger("generating notices for %s %s", root, m.Package.Version)

	pkgs, err := g.meta(ctx, opts.Dir)
	if err != nil {
		return "", err
	}

	deps := make([]cargo.Package, 0, len(pkgs))
	for _, p := range pkgs {
		if p.Name != root {
			deps = append(deps, p)
		}
	}
	opts.Logger("resolving licenses for %d packages", len(deps))

	entries := g.resolveAll(ctx, deps, opts)

	// Cancellation makes every in-flight lookup degrade to fallback text;
	// abort instead of overwriting a previous document with that.
	if err := ctx.Err(); err != nil {
		return "", err
	}
	doc := Assemble(entries)

	out := opts.Output
	if !filepath.IsAbs(out) {
		out = filepath.Join(opts.Dir, out)
	}
	if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
		return "", err
	}
	return out, nil
}

// resolveAll resolves all packages concurrently under a bounded worker
// semaphore. Results slot into an index-ordered slice, so the join preserves
// input order and no state is shared across tasks. A failing resolution
// never cancels its siblings; failures are already absorbed into fallback
// text inside Resolve.
func (g *Generator) resolveAll(ctx context.Context, deps []cargo.Package, opts Options) []Entry {
	entries := make([]Entry, len(deps))
	sem := make(chan struct{}, opts.Workers)
	var wg sync.WaitGroup

	for i, p := range deps {
		wg.Add(1)
		go func(i int, p cargo.Package) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			entries[i] = g.resolver.Resolve(ctx, p, opts)
		}(i, p)
	}

	wg.Wait()
	return entries
}

// header precedes the per-package notices in the output document.
const header = "The source code of this package doesn't include any third party code,\n" +
	"but it depends on third party libraries which are statically linked into the resulting binary.\n\n"

// Assemble joins the entries into the final document: a fixed explanatory
// header, then each body wrapped in start/end banners, separated by blank
// lines, with leading and trailing whitespace trimmed.
func Assemble(entries []Entry) string {
	var b strings.Builder
	b.WriteString(header)
	for _, e := range entries {
		b.WriteString("========== PACKAGE " + e.Package + " START ==========\n\n")
		b.WriteString(e.Body)
		b.WriteString("\n=========== PACKAGE " + e.Package + " END ===========\n")
		b.WriteString("\n\n\n")
	}
	return strings.TrimSpace(b.String())
}
