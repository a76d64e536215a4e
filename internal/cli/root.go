package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fixdec/fixdec"
)

var (
	// Global flags
	scale     int
	rounding  string
	unchecked bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fixdec",
	Short: "fixdec - fixed-point decimal calculator",
	Long: `fixdec evaluates fixed-point decimal arithmetic on the command line.
Operands are plain decimal literals; every result is computed on 64-bit
unscaled integers at the configured scale, with the configured rounding and
overflow behavior, exactly as the library would.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&scale, "scale", "s", 2, "number of fraction digits (0 to 18)")
	rootCmd.PersistentFlags().StringVarP(&rounding, "rounding", "r", "HALF_UP",
		"rounding mode: UP, DOWN, CEILING, FLOOR, HALF_UP, HALF_DOWN, HALF_EVEN or UNNECESSARY")
	rootCmd.PersistentFlags().BoolVar(&unchecked, "unchecked", false, "wrap on overflow instead of failing")
}

// arith builds the arithmetic configuration selected by the global flags.
func arith() (*fixdec.Arithmetic, error) {
	mode, ok := fixdec.ParseRoundingMode(rounding)
	if !ok {
		return nil, fmt.Errorf("unknown rounding mode %q", rounding)
	}
	overflow := fixdec.Checked
	if unchecked {
		overflow = fixdec.Unchecked
	}
	return fixdec.ArithmeticFor(scale, mode, overflow)
}
