package cmd

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"toolkit/pkg/bitint"
	"toolkit/pkg/console"
	"toolkit/pkg/fastmath"
	"toolkit/pkg/mathx"

	"github.com/spf13/cobra"
)

// calcOp describes a single calculator operation: its argument count,
// a usage hint for error messages and the function that runs it.
type calcOp struct {
	args  int
	usage string
	run   func(cmd *cobra.Command, args []string) error
}

// calcOps maps operation names to their implementations.
var calcOps = map[string]calcOp{
	"sqrt":      {1, "calc sqrt <x>", runCalcSqrt},
	"invsqrt":   {1, "calc invsqrt <x>", floatOp(fastmath.InvSqrt)},
	"sin":       {1, "calc sin <x>", floatOp(fastmath.Sin)},
	"cos":       {1, "calc cos <x>", floatOp(fastmath.Cos)},
	"tan":       {1, "calc tan <x>", floatOp(fastmath.Tan)},
	"prime":     {1, "calc prime <n>", runCalcPrime},
	"gcd":       {2, "calc gcd <a> <b>", runCalcGCD},
	"lcm":       {2, "calc lcm <a> <b>", runCalcLCM},
	"factorial": {1, "calc factorial <n>", runCalcFactorial},
	"nextpow2":  {1, "calc nextpow2 <n>", runCalcNextPow2},
	"popcount":  {1, "calc popcount <n>", runCalcPopCount},
	"clamp":     {3, "calc clamp <v> <lo> <hi>", runCalcClamp},
	"lerp":      {3, "calc lerp <a> <b> <t>", runCalcLerp},
}

func newCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc [operation] [args...]",
		Short: "Run a calculator operation, or an interactive shell",
		Long:  calcLong(),
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runCalcShell(cmd)
			}
			op, ok := calcOps[args[0]]
			if !ok {
				return fmt.Errorf("unknown operation %q", args[0])
			}
			if len(args)-1 != op.args {
				return fmt.Errorf("usage: %s", op.usage)
			}
			return op.run(cmd, args[1:])
		},
	}
}

// runCalcShell evaluates operations read line by line until EOF or
// quit. Bad input is reported and the shell keeps going.
func runCalcShell(cmd *cobra.Command) error {
	c := console.New(cmd.InOrStdin(), cmd.OutOrStdout())
	for {
		line, err := c.ReadLine("calc> ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}

		op, ok := calcOps[fields[0]]
		if !ok {
			cmd.Printf("unknown operation %q\n", fields[0])
			continue
		}
		if len(fields)-1 != op.args {
			cmd.Printf("usage: %s\n", op.usage)
			continue
		}
		if err := op.run(cmd, fields[1:]); err != nil {
			cmd.Printf("error: %v\n", err)
		}
	}
}

// calcLong lists every operation for the long help text.
func calcLong() string {
	names := make([]string, 0, len(calcOps))
	for name := range calcOps {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Run a single calculator operation and print the result.\n")
	b.WriteString("With no operation, an interactive shell reads operations from stdin.\n\nOperations:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %s\n", calcOps[name].usage)
	}
	return b.String()
}

// floatOp adapts a unary float function into a calc operation.
func floatOp(f func(float64) float64) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		x, err := parseFloat(args[0])
		if err != nil {
			return err
		}
		cmd.Printf("%g\n", f(x))
		return nil
	}
}

func runCalcSqrt(cmd *cobra.Command, args []string) error {
	x, err := parseFloat(args[0])
	if err != nil {
		return err
	}
	root, err := fastmath.CheckedSqrt(x)
	if err != nil {
		return err
	}
	cmd.Printf("%g\n", root)
	return nil
}

func runCalcPrime(cmd *cobra.Command, args []string) error {
	n, err := parseInt(args[0])
	if err != nil {
		return err
	}
	cmd.Printf("%t\n", mathx.IsPrime(n))
	return nil
}

func runCalcGCD(cmd *cobra.Command, args []string) error {
	a, err := parseInt(args[0])
	if err != nil {
		return err
	}
	b, err := parseInt(args[1])
	if err != nil {
		return err
	}
	cmd.Printf("%d\n", mathx.GCD(a, b))
	return nil
}

func runCalcLCM(cmd *cobra.Command, args []string) error {
	a, err := parseInt(args[0])
	if err != nil {
		return err
	}
	b, err := parseInt(args[1])
	if err != nil {
		return err
	}
	cmd.Printf("%d\n", mathx.LCM(a, b))
	return nil
}

func runCalcFactorial(cmd *cobra.Command, args []string) error {
	n, err := parseInt(args[0])
	if err != nil {
		return err
	}
	// 21! overflows uint64.
	if n > 20 {
		return fmt.Errorf("factorial overflows past 20, got %d", n)
	}
	cmd.Printf("%d\n", mathx.Factorial(int(n)))
	return nil
}

func runCalcNextPow2(cmd *cobra.Command, args []string) error {
	n, err := parseInt(args[0])
	if err != nil {
		return err
	}
	cmd.Printf("%d\n", bitint.NextPowerOfTwo64(n))
	return nil
}

func runCalcPopCount(cmd *cobra.Command, args []string) error {
	n, err := parseInt(args[0])
	if err != nil {
		return err
	}
	cmd.Printf("%d\n", bitint.PopCount64(n))
	return nil
}

func runCalcClamp(cmd *cobra.Command, args []string) error {
	v, err := parseFloat(args[0])
	if err != nil {
		return err
	}
	lo, err := parseFloat(args[1])
	if err != nil {
		return err
	}
	hi, err := parseFloat(args[2])
	if err != nil {
		return err
	}
	cmd.Printf("%g\n", mathx.Clamp(v, lo, hi))
	return nil
}

func runCalcLerp(cmd *cobra.Command, args []string) error {
	a, err := parseFloat(args[0])
	if err != nil {
		return err
	}
	b, err := parseFloat(args[1])
	if err != nil {
		return err
	}
	t, err := parseFloat(args[2])
	if err != nil {
		return err
	}
	cmd.Printf("%g\n", mathx.Lerp(a, b, t))
	return nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("expected a number, got %q", s)
	}
	return v, nil
}

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("expected an integer, got %q", s)
	}
	return v, nil
}
