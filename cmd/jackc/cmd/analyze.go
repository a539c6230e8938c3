package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ltungv/jackc/internal/jack"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE",
	Short: "Parse a .jack file and write its syntax tree as tagged text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readJackFile(args[0])
		if err != nil {
			return err
		}
		tree, err := jack.Parse(source)
		if err != nil {
			return err
		}
		return writeResult(args[0], ".xml", jack.Render(tree))
	},
}
