package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "idtlc",
	Short: "Kernel for a dependently-typed lambda calculus with inductive datatypes",
	Long: `idtlc parses a single term of a Martin-Löf-style calculus, β-normalises it,
and infers its type via bidirectional checking.

Inductive datatypes are not a primitive rule baked into the parser: their
encoded type, constructors, and induction principle are derived mechanically
from one declaration (the ` + "`<name : signature | ctr : type ...>`" + ` form).`,
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

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// A failing run is reported as the single-line diagnostic RunE returns;
	// cobra's usage block on top of that would bury it.
	rootCmd.SilenceUsage = true
}
