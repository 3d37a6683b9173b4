package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dsmirnov/wordrill/internal/vocab"
)

var resetCmd = &cobra.Command{
	Use:   "reset <file>",
	Short: "Zero all success counters and learning dates in a word file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]
		records, err := vocab.ReadFile(file)
		if err != nil {
			return fmt.Errorf("load word file: %w", err)
		}
		for i := range records {
			records[i].Successes = 0
			records[i].LearnedOn = ""
		}
		if err := vocab.WriteFile(file, records); err != nil {
			return fmt.Errorf("rewrite word file: %w", err)
		}
		logrus.WithFields(logrus.Fields{"file": file, "words": len(records)}).Info("progress reset")
		return nil
	},
}
