// Command loadgen fires concurrent searches at a gigmatch server and fails
// when any response breaks score ordering or the requested threshold.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/gigmatch/internal/loadgen"
	"github.com/okian/gigmatch/pkg/logger"
)

// Default configuration constants.
const (
	defaultSearches   = 2000
	defaultWorkers    = 2 // multiplier for runtime.NumCPU()
	defaultTimeout    = 10 * time.Second
	defaultRunTimeout = 10 * time.Minute
)

func main() {
	cfg := &loadgen.Config{}
	var jsonLogs bool

	cmd := &cobra.Command{
		Use:           "loadgen",
		Short:         "Load-test and verify a gigmatch server",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := logger.FormatText
			if jsonLogs {
				format = logger.FormatJSON
			}
			if err := logger.Init(logger.WithFormat(format), logger.WithOutput(cmd.ErrOrStderr())); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), defaultRunTimeout)
			defer cancel()
			_, err := loadgen.Run(ctx, cfg)
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&cfg.BaseURL, "url", "http://localhost:9080", "Base URL of the service")
	f.IntVar(&cfg.Searches, "searches", defaultSearches, "Number of searches to submit")
	f.IntVar(&cfg.Workers, "workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
	f.DurationVar(&cfg.Timeout, "timeout", defaultTimeout, "HTTP request timeout")
	f.Float64Var(&cfg.Rate, "rate", 0, "Searches per second across all workers (0 = unlimited)")
	f.IntVar(&cfg.MinScore, "min-score", 0, "Threshold sent with every search")
	f.StringVar(&cfg.Text, "text", "", "Text filter sent with every search")
	f.StringVar(&cfg.OutputFile, "output", "", "Write generated profiles to this JSON file")
	f.BoolVar(&cfg.Verbose, "verbose", false, "Log failed searches")
	f.BoolVar(&jsonLogs, "json-logs", false, "Emit JSON logs")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
