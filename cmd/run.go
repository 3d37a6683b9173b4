package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dsmirnov/wordrill/internal/app"
	"github.com/dsmirnov/wordrill/internal/drill"
	"github.com/dsmirnov/wordrill/internal/history"
	"github.com/dsmirnov/wordrill/internal/vocab"
)

var runCmd = &cobra.Command{
	Use:   "run <file> <max-successes>",
	Short: "Start a drill session over a word file",
	Long: "Loads the ;-separated word file and quizzes you on random words " +
		"until you enter -1 or everything is learned. A word graduates after " +
		"max-successes correct answers.",
	Args: validateRunArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd, args[0], args[1])
	},
}

func validateRunArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return errors.New("missing word file: usage: wordrill run <file> <max-successes>")
	}
	if len(args) < 2 {
		return errors.New("missing success threshold: usage: wordrill run <file> <max-successes>")
	}
	if len(args) > 2 {
		return fmt.Errorf("unexpected argument %q", args[2])
	}
	return nil
}

func runSession(cmd *cobra.Command, file, threshold string) error {
	if _, err := os.Stat(file); err != nil {
		return fmt.Errorf("word file %q: %w", file, err)
	}
	maxSuccesses, err := strconv.Atoi(threshold)
	if err != nil {
		return fmt.Errorf("success threshold %q is not a number", threshold)
	}
	if maxSuccesses <= 0 {
		return fmt.Errorf("success threshold must be positive, got %d", maxSuccesses)
	}

	store, err := vocab.Open(file, maxSuccesses)
	if err != nil {
		return fmt.Errorf("load word file: %w", err)
	}

	var recorder history.Recorder
	histPath, err := resolveHistoryPath(cmd)
	if err == nil {
		hist, err := history.Open(histPath)
		if err == nil {
			defer hist.Close()
			recorder = hist
		} else {
			logrus.WithError(err).Warn("session history unavailable")
		}
	} else {
		logrus.WithError(err).Warn("session history unavailable")
	}

	engine := drill.NewEngine(store, nil)
	return app.Run(store, engine, recorder)
}
