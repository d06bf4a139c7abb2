package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/santileortiz/layoutsolver/internal/scanner"
	"github.com/santileortiz/layoutsolver/internal/token"
)

var scanCmd = &cobra.Command{
	Use:   "scan <expression>",
	Short: "Tokenize a single expression and print its tokens",
	Long: `Tokenize an expression the way add-equation does internally, and print
each token's kind, literal, and byte offset.

Useful for debugging the identifier-vs-sign ambiguity around '-', since an
expression like "x-1" and "x - 1" scan differently.

Example:
  layoutsolver scan "r1.min.x + r1.size.x - r1.max.x"`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, args []string) error {
	src := args[0]
	scn := scanner.New(src)

	for {
		scn.EOFIsError = false
		scn.SkipSpace()

		if scn.AtEOF() {
			fmt.Printf("[%-10s] @%d\n", token.EOF, scn.Pos().Offset)
			break
		}

		start := scn.Pos().Offset
		if b, ok := scn.AcceptAny("+-"); ok {
			fmt.Printf("[%-10s] %q @%d\n", token.Operator, string(b), start)
			continue
		}

		const identifierChars = "._-abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
		if scn.PeekAny(identifierChars) {
			for scn.PeekAny(identifierChars) {
				scn.Advance()
			}
			lit := src[start:scn.Pos().Offset]
			fmt.Printf("[%-10s] %q @%d\n", token.Identifier, lit, start)
			continue
		}

		fmt.Printf("[%-10s] %q @%d\n", token.Illegal, strings.TrimSpace(src[start:])[:1], start)
		break
	}

	return nil
}
