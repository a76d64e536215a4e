package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fixdec/fixdec"
)

// binaryOp builds a command evaluating op on two decimal operands.
func binaryOp(use, short string, op func(a *fixdec.Arithmetic, x, y int64) (int64, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <x> <y>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := arith()
			if err != nil {
				return err
			}
			x, err := a.Parse(args[0])
			if err != nil {
				return err
			}
			y, err := a.Parse(args[1])
			if err != nil {
				return err
			}
			z, err := op(a, x, y)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.Format(z))
			return nil
		},
	}
}

var sqrtCmd = &cobra.Command{
	Use:   "sqrt <x>",
	Short: "Square root of a decimal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := arith()
		if err != nil {
			return err
		}
		x, err := a.Parse(args[0])
		if err != nil {
			return err
		}
		z, err := a.Sqrt(x)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.Format(z))
		return nil
	},
}

var powCmd = &cobra.Command{
	Use:   "pow <x> <n>",
	Short: "Integer power of a decimal",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := arith()
		if err != nil {
			return err
		}
		x, err := a.Parse(args[0])
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("exponent %q is not an integer", args[1])
		}
		z, err := a.Pow(x, n)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.Format(z))
		return nil
	},
}

var roundCmd = &cobra.Command{
	Use:   "round <x> <precision>",
	Short: "Round a decimal to the given number of fraction digits",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := arith()
		if err != nil {
			return err
		}
		x, err := a.Parse(args[0])
		if err != nil {
			return err
		}
		p, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("precision %q is not an integer", args[1])
		}
		z, err := a.Round(x, p)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.Format(z))
		return nil
	},
}

var cmpCmd = &cobra.Command{
	Use:   "cmp <x> <y>",
	Short: "Compare two decimals, printing -1, 0 or 1",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := arith()
		if err != nil {
			return err
		}
		x, err := a.Parse(args[0])
		if err != nil {
			return err
		}
		y, err := a.Parse(args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.Cmp(x, y))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(
		binaryOp("add", "Add two decimals", (*fixdec.Arithmetic).Add),
		binaryOp("sub", "Subtract two decimals", (*fixdec.Arithmetic).Sub),
		binaryOp("mul", "Multiply two decimals", (*fixdec.Arithmetic).Mul),
		binaryOp("div", "Divide two decimals", (*fixdec.Arithmetic).Div),
		binaryOp("avg", "Average of two decimals", (*fixdec.Arithmetic).Avg),
		sqrtCmd,
		powCmd,
		roundCmd,
		cmpCmd,
	)
}
