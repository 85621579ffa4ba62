package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/idtlc/pkg/kernel"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
	maxDepth int
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Parse, check, and normalise one term",
	Long: `Read a single term from a file, an inline expression, or standard input,
and print its source-form pretty-print, its β-normal form, and its inferred
type.

Examples:
  # Run a term from a file
  idtlc run term.idt

  # Evaluate an inline expression
  idtlc run -e "[x : Type] x"

  # Read from standard input
  idtlc run

  # Dump the parsed term's internal shape alongside the usual output
  idtlc run --dump-ast -e "[x : Type] x"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTerm,

	// Inherited from rootCmd regardless, set explicitly since this is the
	// command whose errors (ParseError, TypeMismatch, DepthExceeded, ...)
	// the usage block would otherwise bury.
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from a file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed term's Go-syntax shape (for debugging)")
	runCmd.Flags().IntVar(&maxDepth, "max-depth", 0, "bound recursion depth across eval/check/derivation (0 = unlimited)")
}

func runTerm(_ *cobra.Command, args []string) error {
	src, err := readInput(args)
	if err != nil {
		return err
	}

	var opts []kernel.Option
	if maxDepth > 0 {
		opts = append(opts, kernel.WithMaxDepth(maxDepth))
	}

	if dumpAST {
		t, err := kernel.Parse(src)
		if err != nil {
			return err
		}
		fmt.Printf("AST: %#v\n\n", t)
	}

	result, err := kernel.Run(src, opts...)
	if err != nil {
		return err
	}

	fmt.Printf("Input term:\n%s\n\n", result.InputText)
	fmt.Printf("Normal form:\n%s\n\n", result.NormalText)
	fmt.Printf("Inferred type:\n%s\n\n", result.TypeText)
	return nil
}

func readInput(args []string) (string, error) {
	if evalExpr != "" {
		return evalExpr, nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), nil
	}
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read standard input: %w", err)
	}
	return string(content), nil
}
