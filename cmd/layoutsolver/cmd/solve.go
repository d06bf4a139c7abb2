package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/santileortiz/layoutsolver/internal/format"
	"github.com/santileortiz/layoutsolver/internal/layout"
	"github.com/santileortiz/layoutsolver/internal/solver"
)

var (
	solveFile        string
	dumpMatrix       bool
	strictExitStatus bool
	outputFormat     string
)

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Solve a layout document",
	Long: `Read a layout document (YAML or JSON), compile it into a system of
linear equations, and solve it.

Examples:
  # Solve a file
  layoutsolver solve layout.yaml

  # Solve from stdin, dumping the augmented matrix
  cat layout.json | layoutsolver solve --dump-matrix

  # Fail the process (nonzero exit) on any overconstraint or unsolved symbol
  layoutsolver solve --strict layout.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "layout document path (overrides the positional argument)")
	solveCmd.Flags().BoolVar(&dumpMatrix, "dump-matrix", false, "print the augmented matrix from the most recent solve")
	solveCmd.Flags().BoolVar(&strictExitStatus, "strict", false, "exit with a nonzero status if solve does not fully succeed")
	solveCmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "solved-symbol output: text, yaml, or json")
}

func runSolve(_ *cobra.Command, args []string) error {
	path := solveFile
	if path == "" && len(args) == 1 {
		path = args[0]
	}

	data, err := readInput(path)
	if err != nil {
		return err
	}

	logger := newCLILogger()

	doc, err := decodeDocument(data, path)
	if err != nil {
		return fmt.Errorf("failed to parse layout document: %w", err)
	}

	sys := solver.New(solver.WithLogger(logger))
	comp := layout.NewCompiler(sys)

	if _, err := format.Apply(doc, comp); err != nil {
		return fmt.Errorf("failed to compile layout document: %w", err)
	}

	success, report := sys.Solve()

	if !report.Empty() {
		fmt.Fprintln(os.Stderr, report.String())
	}

	if dumpMatrix {
		if m := sys.Matrix(); m != nil {
			fmt.Fprintln(os.Stderr, m.Pretty())
		}
	}

	if err := printSolved(sys, outputFormat); err != nil {
		return err
	}

	level.Debug(logger).Log("msg", "solve finished", "success", success)

	if strictExitStatus && !success {
		return fmt.Errorf("solve did not fully succeed")
	}
	return nil
}

// readInput reads path, or stdin if path is empty.
func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// decodeDocument sniffs the document format from path's extension, falling
// back to content sniffing (a leading '{' means JSON, anything else YAML)
// when path is empty (stdin) or has no recognized extension.
func decodeDocument(data []byte, path string) (*format.Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return format.DecodeJSON(data)
	case ".yaml", ".yml":
		return format.DecodeYAML(data)
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		return format.DecodeJSON(data)
	}
	return format.DecodeYAML(data)
}

// newCLILogger builds a go-kit logfmt logger to stderr, filtered to debug
// level when --verbose is set and to info level otherwise.
func newCLILogger() log.Logger {
	logger := log.NewLogfmtLogger(os.Stderr)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	minLevel := level.AllowInfo()
	if verbose {
		minLevel = level.AllowDebug()
	}
	return level.NewFilter(logger, minLevel)
}

// printSolved renders the solved symbol table in the requested format.
func printSolved(sys *solver.System, outputFormat string) error {
	symbols := format.BuildSolved(sys.Table)

	switch outputFormat {
	case "json":
		out, err := format.EncodeSolvedJSON(symbols)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "yaml":
		out, err := format.EncodeSolvedYAML(symbols)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
	case "text":
		for _, s := range symbols {
			fmt.Printf("%-30s %-10s %g\n", s.Name, s.State, s.Value)
		}
	default:
		return fmt.Errorf("unknown output format %q (use text, yaml, or json)", outputFormat)
	}
	return nil
}
