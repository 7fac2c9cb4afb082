package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/an-lee/enjoy-transcript/sentence"
)

var sentencesLanguage string

var sentencesCmd = &cobra.Command{
	Use:   "sentences <text-file>",
	Short: "Show detected sentence boundaries in a text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		text := string(data)

		oracle := sentence.NewOracle(nil)
		bounds := oracle.Boundaries(text, sentencesLanguage)
		fmt.Printf("%d sentences, boundaries at %v\n\n", len(bounds), bounds)
		for i, s := range oracle.Split(text, sentencesLanguage) {
			fmt.Printf("%3d: %s\n", i+1, s)
		}
		return nil
	},
}

func init() {
	sentencesCmd.Flags().StringVarP(&sentencesLanguage, "language", "l", "en", "Language code of the text")
}
