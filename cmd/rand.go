package cmd

import (
	"strings"
	"toolkit/internal/config"
	"toolkit/pkg/random"

	"github.com/spf13/cobra"
)

func newRandCmd(opts *options) *cobra.Command {
	randCmd := &cobra.Command{
		Use:   "rand <subcommand>",
		Short: "Generate cryptographically secure random values",
	}

	count := randCmd.PersistentFlags().IntP("count", "n", config.DefaultRandomCount,
		"Number of values to generate")
	countFlag := randCmd.PersistentFlags().Lookup("count")

	// resolveCount prefers the flag when set, then the configured count.
	// The flag object is shared with the subcommand that parsed it.
	resolveCount := func() int {
		if countFlag.Changed {
			return *count
		}
		return opts.cfg.Random.Count
	}

	intCmd := &cobra.Command{
		Use:   "int <min> <max>",
		Short: "Random integers from the inclusive range [min, max]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			min, err := parseInt(args[0])
			if err != nil {
				return err
			}
			max, err := parseInt(args[1])
			if err != nil {
				return err
			}
			for n := resolveCount(); n > 0; n-- {
				cmd.Printf("%d\n", random.Int64Range(min, max))
			}
			return nil
		},
	}

	floatCmd := &cobra.Command{
		Use:   "float <min> <max>",
		Short: "Random floats from the half-open range [min, max)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			min, err := parseFloat(args[0])
			if err != nil {
				return err
			}
			max, err := parseFloat(args[1])
			if err != nil {
				return err
			}
			for n := resolveCount(); n > 0; n-- {
				cmd.Printf("%g\n", random.Float64Range(min, max))
			}
			return nil
		},
	}

	boolCmd := &cobra.Command{
		Use:   "bool",
		Short: "Random booleans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for n := resolveCount(); n > 0; n-- {
				cmd.Printf("%t\n", random.Bool())
			}
			return nil
		},
	}

	uuidCmd := &cobra.Command{
		Use:   "uuid",
		Short: "Random version 4 UUIDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for n := resolveCount(); n > 0; n-- {
				cmd.Println(random.NewUUID())
			}
			return nil
		},
	}

	shuffleCmd := &cobra.Command{
		Use:   "shuffle <item> [items...]",
		Short: "Print the items in random order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			random.Shuffle(args)
			cmd.Println(strings.Join(args, " "))
			return nil
		},
	}

	choiceCmd := &cobra.Command{
		Use:   "choice <item> [items...]",
		Short: "Pick one of the items uniformly at random",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for n := resolveCount(); n > 0; n-- {
				item, _ := random.Choice(args)
				cmd.Println(item)
			}
			return nil
		},
	}

	randCmd.AddCommand(intCmd, floatCmd, boolCmd, uuidCmd, shuffleCmd, choiceCmd)
	return randCmd
}
