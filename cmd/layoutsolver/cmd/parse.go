package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/santileortiz/layoutsolver/internal/solver"
)

var parseCmd = &cobra.Command{
	Use:   "parse <expression>",
	Short: "Parse a single equation and print its signed symbol references",
	Long: `Parse one expression the way add-equation does, against a fresh, empty
system, and print the signed symbol references it produced.

Example:
  layoutsolver parse "r1.min.x + r1.size.x - r1.max.x"`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	sys := solver.New()

	if err := sys.AddEquation(args[0]); err != nil {
		if pe, ok := err.(*solver.ParseError); ok {
			fmt.Println(pe.Format(args[0]))
		}
		return err
	}

	expr := sys.Expressions[len(sys.Expressions)-1]
	for _, ref := range expr.Refs {
		sign := "+"
		if ref.Negative {
			sign = "-"
		}
		fmt.Printf("%s %s\n", sign, ref.Def.Name)
	}
	return nil
}
