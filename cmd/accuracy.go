package cmd

import (
	"encoding/csv"
	"fmt"
	"toolkit/internal/accuracy"
	"toolkit/internal/config"
	"toolkit/internal/log"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newAccuracyCmd(opts *options) *cobra.Command {
	var (
		samplesFlag int
		seedFlag    uint64
		formatFlag  string
	)

	accuracyCmd := &cobra.Command{
		Use:   "accuracy",
		Short: "Sweep the fast approximations against their stdlib references",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			samples := opts.cfg.Accuracy.Samples
			if cmd.Flags().Changed("samples") {
				samples = samplesFlag
			}
			seed := opts.cfg.Accuracy.Seed
			if cmd.Flags().Changed("seed") {
				seed = seedFlag
			}
			format := opts.cfg.Output.Format
			if cmd.Flags().Changed("format") {
				format = formatFlag
			}

			if samples <= 0 || samples > config.MaxAccuracySamples {
				return fmt.Errorf("samples must be in 1..%d, got %d", config.MaxAccuracySamples, samples)
			}
			if format != "table" && format != "csv" {
				return fmt.Errorf("output format must be %q or %q, got %q", "table", "csv", format)
			}

			log.Infof("sweeping %d samples per function, seed %d", samples, seed)

			reports, err := accuracy.Suite(samples, seed)
			if err != nil {
				return err
			}

			if format == "csv" {
				return writeCSV(cmd, reports)
			}
			writeTable(cmd, reports)
			return nil
		},
	}

	accuracyCmd.Flags().IntVar(&samplesFlag, "samples", config.DefaultAccuracySamples,
		"Sample points per function")
	accuracyCmd.Flags().Uint64Var(&seedFlag, "seed", config.DefaultAccuracySeed,
		"Seed for the jittered sweep grid")
	accuracyCmd.Flags().StringVar(&formatFlag, "format", config.DefaultOutputFormat,
		"Output format, table or csv")

	return accuracyCmd
}

// writeTable renders reports as an aligned text table.
func writeTable(cmd *cobra.Command, reports []accuracy.Report) {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader(accuracy.Header())
	for _, r := range reports {
		table.Append(r.Row())
	}
	table.Render()
}

// writeCSV renders reports as CSV with a header row.
func writeCSV(cmd *cobra.Command, reports []accuracy.Report) error {
	w := csv.NewWriter(cmd.OutOrStdout())
	if err := w.Write(accuracy.Header()); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	for _, r := range reports {
		if err := w.Write(r.Row()); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
