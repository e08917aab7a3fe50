package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"scriptforge/internal/store"
)

func newRunsCommand(cmdCtx *commandContext) *cobra.Command {
	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect recorded production runs",
	}
	runsCmd.AddCommand(newRunsListCommand(cmdCtx))
	runsCmd.AddCommand(newRunsShowCommand(cmdCtx))
	return runsCmd
}

func newRunsListCommand(cmdCtx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			db, err := store.Open(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			runs, err := db.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.ID,
					run.Title,
					run.Status,
					fmt.Sprintf("%d/%d", run.EpisodesDelivered, run.EpisodesPlanned),
					yesNo(run.RequiresHumanReview),
					formatTime(run.StartedAt),
				})
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"ID", "Title", "Status", "Delivered", "Needs Review", "Started"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft}))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum runs to list")
	return cmd
}

func newRunsShowCommand(cmdCtx *commandContext) *cobra.Command {
	var showScript bool

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one run and its delivered episodes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			db, err := store.Open(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			run, err := db.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			episodes, err := db.EpisodesForRun(cmd.Context(), run.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run:          %s\n", run.ID)
			fmt.Fprintf(out, "Title:        %s\n", run.Title)
			fmt.Fprintf(out, "Status:       %s\n", run.Status)
			fmt.Fprintf(out, "Delivered:    %d/%d\n", run.EpisodesDelivered, run.EpisodesPlanned)
			fmt.Fprintf(out, "Needs review: %s\n", yesNo(run.RequiresHumanReview))
			fmt.Fprintf(out, "Started:      %s\n", formatTime(run.StartedAt))
			if !run.FinishedAt.IsZero() {
				fmt.Fprintf(out, "Finished:     %s\n", formatTime(run.FinishedAt))
			}

			if showScript {
				for _, episode := range episodes {
					fmt.Fprintf(out, "\n===== 第%d集 %s =====\n%s\n", episode.EpisodeNumber, episode.Title, episode.Script)
				}
				return nil
			}
			if len(episodes) > 0 {
				rows := make([][]string, 0, len(episodes))
				for _, episode := range episodes {
					rows = append(rows, []string{
						fmt.Sprintf("%d", episode.EpisodeNumber),
						episode.Title,
						fmt.Sprintf("%d", len([]rune(episode.Script))),
						formatTime(episode.DeliveredAt),
					})
				}
				fmt.Fprintln(out, renderTable(out,
					[]string{"Episode", "Title", "Runes", "Delivered"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft}))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showScript, "script", false, "Print full episode scripts")
	return cmd
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Local().Format("2006-01-02 15:04:05")
}
