package cmd

import (
	"context"
	"fmt"
	"os"
	"toolkit/internal/build"
	"toolkit/internal/config"
	"toolkit/internal/log"

	"github.com/spf13/cobra"
)

// options carries flag values and the resolved configuration shared by
// every subcommand.
type options struct {
	configPath string
	debug      bool
	logLevel   string

	cfg *config.Config
}

// Execute runs the toolkit CLI and returns the process exit code.
func Execute(ctx context.Context) int {
	rootCmd := newRootCmd()
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetArgs(os.Args[1:])

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "toolkit: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	buildInfo := build.GetBuildFlags()
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           buildInfo.Name,
		Short:         "General purpose numeric, bit math and randomness toolkit",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", buildInfo.Version, buildInfo.Commit, buildInfo.Time),
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableDescriptions: true,
			DisableNoDescFlag:   true,
			HiddenDefaultCmd:    true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(opts.configPath)
			if err != nil {
				return err
			}

			// Flags win over file and environment values.
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = opts.logLevel
			}
			if opts.debug || cfg.Debug {
				cfg.LogLevel = "debug"
			}

			if ok := log.SetLevel(cfg.LogLevel); !ok {
				return fmt.Errorf("unknown log level %q", cfg.LogLevel)
			}
			log.Debugf("configuration loaded: %+v", cfg)

			opts.cfg = cfg
			return nil
		},
	}

	// Display help message
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Configuration sources
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"Path to a YAML config file. Defaults to toolkit.yaml when present.")
	rootCmd.PersistentFlags().StringVarP(&opts.logLevel, "log-level", "l", config.DefaultLogLevel,
		"Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false,
		"Shorthand for --log-level debug")

	rootCmd.AddCommand(newCalcCmd())
	rootCmd.AddCommand(newRandCmd(opts))
	rootCmd.AddCommand(newAccuracyCmd(opts))

	return rootCmd
}
