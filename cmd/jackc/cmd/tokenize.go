package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ltungv/jackc/internal/jack"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize FILE",
	Short: "Scan a .jack file and write its token stream as tagged text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readJackFile(args[0])
		if err != nil {
			return err
		}
		tokens, err := jack.Tokenize(source)
		if err != nil {
			return err
		}
		return writeResult(args[0], "T.xml", jack.RenderTokens(tokens))
	},
}
