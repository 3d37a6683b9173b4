package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dsmirnov/wordrill/internal/history"
)

var rootCmd = &cobra.Command{
	Use:   "wordrill",
	Short: "Vocabulary drill in the terminal",
	Long:  "Wordrill quizzes you on a word file until every word is learned, with comebacks for words you have not seen in a while.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("history", "", "Path to session history database (overrides WORDRILL_HISTORY env var)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	cobra.OnInitialize(func() {
		if v, _ := rootCmd.PersistentFlags().GetBool("verbose"); v {
			logrus.SetLevel(logrus.DebugLevel)
		}
	})

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveHistoryPath returns the history database path using the
// --history flag (highest priority), then WORDRILL_HISTORY, then the
// default XDG path.
func resolveHistoryPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("history"); p != "" {
		return p, history.EnsureDir(p)
	}
	return history.DefaultPath()
}
