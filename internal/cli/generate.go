package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/matzehuels/noticegen/pkg/cargo"
	"github.com/matzehuels/noticegen/pkg/github"
	"github.com/matzehuels/noticegen/pkg/notice"
)

// generateOpts holds the command-line flags for notice generation.
type generateOpts struct {
	dir      string        // Cargo project directory
	output   string        // output file path
	refresh  bool          // bypass HTTP cache
	cacheTTL time.Duration // HTTP cache duration
	workers  int           // concurrent license lookups
}

// runGenerate wires the cargo metadata source and the GitHub license finder
// into a generator and runs one pass.
func runGenerate(ctx context.Context, opts generateOpts) error {
	logger := loggerFromContext(ctx)

	gen := notice.NewGenerator(cargo.Metadata, remoteFinder(ctx, opts.cacheTTL))

	prog := newProgress(logger)
	out, err := gen.Run(ctx, notice.Options{
		Dir:     opts.dir,
		Output:  opts.output,
		Refresh: opts.refresh,
		Workers: opts.workers,
		Logger:  func(msg string, args ...any) { logger.Debugf(msg, args...) },
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %s", out))
	printFile(out)
	return nil
}

// remoteFinder builds the GitHub license finder. If the client cannot be
// created (e.g. unwritable cache directory), remote lookup is disabled with
// a warning rather than failing the run; affected packages fall back to
// attribution text.
func remoteFinder(ctx context.Context, ttl time.Duration) notice.RemoteFinder {
	client, err := github.NewClient(os.Getenv("GITHUB_TOKEN"), ttl)
	if err != nil {
		loggerFromContext(ctx).Warnf("Remote license lookup disabled: %v", err)
		return nil
	}
	return client
}
