package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "layoutsolver",
	Short: "Constraint-based 2D layout engine",
	Long: `layoutsolver drives a symbolic linear-equation solver from a declarative
layout document: rectangles, anchor-to-anchor links with offsets, fixed
positions, and raw equations over named symbols.

It parses a layout document, compiles it into a system of linear equations,
solves what is solvable by Gaussian elimination with partial pivoting, and
reports which symbols are overconstrained, underconstrained, or unsolved.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose (debug-level) logging")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
