package main

import (
	"context"
	"fmt"
	"io"

	"github.com/automoto/flapbird/storage"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	flagScoresLimit int
	flagScoresTop   bool
	flagScoresClear bool
	flagScoresRun   string
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	rowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	bestStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display recent runs, or the best runs with --top.

Examples:
  flapbird scores
  flapbird scores --top --limit 5
  flapbird scores --run 6f1c2b0e-...`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTop, "top", false, "Sort by score instead of date")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the whole history")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show a single run by ID")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, mutedStyle.Render("History cleared."))
		return nil
	}

	if flagScoresRun != "" {
		return showRun(ctx, out, store, flagScoresRun)
	}

	var runs []storage.Run
	title := "Recent runs"
	if flagScoresTop {
		title = "Best runs"
		runs, err = store.Top(ctx, flagScoresLimit)
	} else {
		runs, err = store.Recent(ctx, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, titleStyle.Render(title))
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, mutedStyle.Render("No runs recorded yet. Play one!"))
		return nil
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, headerStyle.Render(formatRow("#", "Score", "Flaps", "Time", "Ended by", "Date")))
	for i, r := range runs {
		row := formatRow(
			fmt.Sprint(i+1),
			fmt.Sprint(r.Score),
			fmt.Sprint(r.Flaps),
			fmt.Sprintf("%.1fs", r.Duration.Seconds()),
			r.Reason,
			r.EndedAt.Format("2006-01-02 15:04"),
		)
		style := rowStyle
		if r.Score == stats.Best && r.Score > 0 {
			style = bestStyle
		}
		fmt.Fprintln(out, style.Render(row))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("%d runs, best %d, average %.1f", stats.Runs, stats.Best, stats.Average)))
	return nil
}

func formatRow(rank, score, flaps, dur, reason, date string) string {
	return fmt.Sprintf("%-4s %6s %6s %8s  %-10s %s", rank, score, flaps, dur, reason, date)
}

func showRun(ctx context.Context, out io.Writer, store *storage.Store, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("invalid run id %q: %w", rawID, err)
	}
	r, err := store.Get(ctx, id)
	if storage.IsNotFound(err) {
		fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("No run with id %s.", id)))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, titleStyle.Render("Run "+r.ID.String()))
	fmt.Fprintln(out)
	fmt.Fprintln(out, rowStyle.Render(fmt.Sprintf("Score     %d", r.Score)))
	fmt.Fprintln(out, rowStyle.Render(fmt.Sprintf("Flaps     %d", r.Flaps)))
	fmt.Fprintln(out, rowStyle.Render(fmt.Sprintf("Pipes     %d", r.Pipes)))
	fmt.Fprintln(out, rowStyle.Render(fmt.Sprintf("Time      %.1fs", r.Duration.Seconds())))
	fmt.Fprintln(out, rowStyle.Render(fmt.Sprintf("Ended by  %s", r.Reason)))
	fmt.Fprintln(out, rowStyle.Render(fmt.Sprintf("Seed      %d", r.Seed)))
	fmt.Fprintln(out, rowStyle.Render(fmt.Sprintf("Date      %s", r.EndedAt.Format("2006-01-02 15:04"))))
	return nil
}
