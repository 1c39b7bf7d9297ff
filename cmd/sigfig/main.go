package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/avdva/sigfig"
)

var (
	stdout = colorable.NewColorableStdout()
	stderr = colorable.NewColorableStderr()
)

var (
	aPrecision int
	aIndex     bool
	aDecimal   bool
)

var cmd = cobra.Command{
	Use:   "sigfig [number...]",
	Short: "Prints numbers with a fixed count of significant digits",
	Long: `Sigfig prints numbers with a fixed count of significant digits.

Numbers with 0.1 <= |x| < 100 are printed as decimals, all others in scientific
notation with a superscript exponent, like 1.00⨯10². If no numbers are given,
they are read from the standard input, separated by whitespace.
`,
	Version: "0.1.0",
	RunE: func(cmd *cobra.Command, args []string) error {
		if aPrecision <= 0 {
			return fmt.Errorf("non-positive precision")
		}
		style := sigfig.StyleFromFlags(aIndex, aDecimal)
		if len(args) == 0 {
			return formatStream(cmd.OutOrStdout(), cmd.InOrStdin(), aPrecision, style)
		}
		return formatArgs(cmd.OutOrStdout(), args, aPrecision, style)
	},
	SilenceUsage: true,
}

func errPrefix() string {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return "\x1b[31;1merror:\x1b[0m"
	}
	return "error:"
}

func main() {
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetErrPrefix(errPrefix())
	cmd.Flags().IntVarP(
		&aPrecision, "precision", "p", sigfig.DefaultPrecision,
		"number of significant digits")
	cmd.Flags().BoolVarP(
		&aIndex, "index", "i", false,
		"always use scientific notation (wins over --decimal)")
	cmd.Flags().BoolVarP(
		&aDecimal, "decimal", "d", false,
		"never use scientific notation")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
