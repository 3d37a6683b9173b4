package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dsmirnov/wordrill/internal/vocab"
)

var importSheet string

var importCmd = &cobra.Command{
	Use:   "import <xlsx-file> <word-file>",
	Short: "Convert an Excel word list into a drillable word file",
	Long: "Reads word, transcription and translation columns from an Excel " +
		"sheet and writes them as a ;-separated word file with zeroed progress.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, result, err := vocab.ImportXLSX(args[0], importSheet)
		if err != nil {
			return err
		}
		if err := vocab.WriteFile(args[1], records); err != nil {
			return fmt.Errorf("write word file: %w", err)
		}
		logrus.WithFields(logrus.Fields{
			"processed": result.Processed,
			"imported":  result.Imported,
			"skipped":   result.Skipped,
			"file":      args[1],
		}).Info("import complete")
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importSheet, "sheet", "", "Sheet name to import (default: first sheet)")
}
