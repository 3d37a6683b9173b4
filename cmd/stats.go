package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dsmirnov/wordrill/internal/history"
	"github.com/dsmirnov/wordrill/internal/vocab"
)

var statsThreshold int

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Show word file progress and recent sessions",
	Long: "Counts a word as learned when its learning date is stamped. " +
		"Pass --threshold for files whose dates were never stamped; the " +
		"success counter decides instead.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			if err := printFileStats(args[0], statsThreshold); err != nil {
				return err
			}
		}
		return printRecentSessions(cmd)
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsThreshold, "threshold", 0,
		"Count words with at least this many successes as learned (0: count stamped learning dates)")
}

func printFileStats(file string, threshold int) error {
	records, err := vocab.ReadFile(file)
	if err != nil {
		return fmt.Errorf("load word file: %w", err)
	}
	fmt.Printf("%s: %d of %d words learned\n", file, learnedCount(records, threshold), len(records))
	return nil
}

// learnedCount counts learned words. A stamped learning date marks a
// word learned; a positive threshold counts by the success counter
// instead.
func learnedCount(records []vocab.Record, threshold int) int {
	n := 0
	for _, rec := range records {
		if rec.Blank() {
			continue
		}
		if threshold > 0 {
			if rec.Successes >= threshold {
				n++
			}
		} else if rec.LearnedOn != "" {
			n++
		}
	}
	return n
}

func printRecentSessions(cmd *cobra.Command) error {
	histPath, err := resolveHistoryPath(cmd)
	if err != nil {
		return err
	}
	hist, err := history.Open(histPath)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer hist.Close()

	sessions, err := hist.RecentSessions(cmd.Context(), 10)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions yet.")
		return nil
	}

	fmt.Println("Recent sessions:")
	for _, s := range sessions {
		duration := "-"
		if s.EndedAt.Valid {
			duration = s.EndedAt.Time.Sub(s.StartedAt).Round(time.Second).String()
		}
		fmt.Printf("  %s  %-30s  answered %3d  correct %3d  %s\n",
			s.StartedAt.Format("2006-01-02 15:04"), s.File, s.Answered, s.Correct, duration)
	}
	return nil
}
