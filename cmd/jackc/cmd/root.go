package cmd

import (
	"github.com/spf13/cobra"
)

var outPath string

var rootCmd = &cobra.Command{
	Use:   "jackc",
	Short: "jackc — Jack analyzer: token stream and parse tree inspector",
	Long: `jackc runs the front end of the Jack compiler toolchain over a single
.jack source file and writes the result in the toolchain's tagged-text
format for inspection and verification.

Commands:
  tokenize  Scan a source file and write its classified token stream
  analyze   Parse a source file and write its full syntax tree
`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outPath, "out", "o", "",
		"output file (defaults next to the input; use '-' for stdout)")

	rootCmd.AddCommand(tokenizeCmd, analyzeCmd, versionCmd)
}
