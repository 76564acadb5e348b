package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okian/gigmatch/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "gigmatch",
		Short:         "Match freelancers to project listings",
		Long:          "gigmatch scores project listings against a freelancer profile, filters them by a minimum score and ranks them with a recommendation tier.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if configPath != "" {
				return os.Setenv(config.EnvConfigFile, configPath)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file (overrides "+config.EnvConfigFile+")")

	root.AddCommand(
		newServeCmd(),
		newSearchCmd(),
		newRecommendCmd(),
		newImportCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "gigmatch "+version)
			return err
		},
	}
}
