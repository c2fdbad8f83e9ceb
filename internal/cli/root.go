package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/noticegen/pkg/buildinfo"
	"github.com/matzehuels/noticegen/pkg/notice"
)

// Execute runs the noticegen CLI and returns an error if the command fails.
//
// The root command performs notice generation directly; `cache` manages the
// HTTP response cache. Logging defaults to info level and switches to debug
// with --verbose (-v). The logger is attached to the context and accessible
// to all commands via loggerFromContext.
func Execute() error {
	var verbose bool
	opts := generateOpts{cacheTTL: 24 * time.Hour}

	root := &cobra.Command{
		Use:   "noticegen",
		Short: "noticegen collects third-party license notices for Cargo projects",
		Long: `noticegen generates a NOTICE file for a Cargo project by walking its
resolved dependency graph and collecting each dependency's license text:
from files next to the crate's manifest, from its GitHub repository page,
or as a synthesized attribution line when neither is available.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.Flags().StringVar(&opts.dir, "dir", ".", "Cargo project directory")
	root.Flags().StringVarP(&opts.output, "output", "o", notice.DefaultOutput, "output file path")
	root.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the HTTP cache")
	root.Flags().DurationVar(&opts.cacheTTL, "cache-ttl", opts.cacheTTL, "HTTP cache duration")
	root.Flags().IntVar(&opts.workers, "workers", notice.DefaultWorkers, "concurrent license lookups")

	root.AddCommand(newCacheCmd())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return root.ExecuteContext(ctx)
}
