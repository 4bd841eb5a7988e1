package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/tiny/internal/history"
)

var (
	historyLimit    int
	historyCommand  string
	historyRejected bool
	historyStats    bool
	historyPrune    time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded runs",
	Long: `Lists the runs recorded in the history database, newest first.
Recording is enabled with history.enabled in the configuration.

Examples:
  tiny history
  tiny history --limit 5 --command parse
  tiny history --rejected
  tiny history --stats
  tiny history --prune 720h`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of runs")
	historyCmd.Flags().StringVar(&historyCommand, "command", "", "Only runs of this command (scan, parse, compile)")
	historyCmd.Flags().BoolVar(&historyRejected, "rejected", false, "Only rejected runs")
	historyCmd.Flags().BoolVar(&historyStats, "stats", false, "Print totals instead of runs")
	historyCmd.Flags().DurationVar(&historyPrune, "prune", 0, "Delete runs older than this age")
}

func runHistory(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if s.history == nil {
		s.println(s.paint.muted("History is disabled. Set history.enabled = true in the configuration."))
		return nil
	}

	ctx := context.Background()

	if historyPrune > 0 {
		n, err := s.history.Prune(ctx, historyPrune)
		if err != nil {
			return err
		}
		s.printf("Pruned %d runs older than %s\n", n, historyPrune)
		return nil
	}

	if historyStats {
		stats, err := s.history.Stats(ctx)
		if err != nil {
			return err
		}
		s.printf("%-10s %d\n", "total", stats.Total)
		s.printf("%-10s %d\n", "accepted", stats.Accepted)
		s.printf("%-10s %d\n", "rejected", stats.Rejected)
		if !stats.Last.IsZero() {
			s.printf("%-10s %s\n", "last", stats.Last.Local().Format(time.DateTime))
		}
		return nil
	}

	filter := history.Filter{
		Command: historyCommand,
		Limit:   historyLimit,
	}
	if historyRejected {
		accepted := false
		filter.Accepted = &accepted
	}

	runs, err := s.history.List(ctx, filter)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		s.println(s.paint.muted("No runs recorded."))
		return nil
	}

	s.println(s.paint.title(fmt.Sprintf("%-8s  %-19s  %-7s  %-8s  %6s  %s", "ID", "TIME", "COMMAND", "STATUS", "TOKENS", "INPUT")))
	for _, run := range runs {
		status := s.paint.success(fmt.Sprintf("%-8s", "accepted"))
		if !run.Accepted {
			status = s.paint.failure(fmt.Sprintf("%-8s", "rejected"))
		}
		s.printf("%-8s  %-19s  %-7s  %s  %6d  %s\n",
			shortID(run.ID), run.CreatedAt.Local().Format(time.DateTime), run.Command, status, run.Tokens, run.Input)
		if run.Error != "" && verbose {
			s.println(s.paint.muted("          " + run.Error))
		}
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
