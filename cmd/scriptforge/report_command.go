package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scriptforge/internal/validate"
)

func newReportCommand(cmdCtx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <script>",
		Short: "Measure per-episode token counts for a delivered script bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}

			report := validate.BuildLengthReport(string(data), cfg.Report.MinTokens, cfg.Report.MaxTokens)
			out := cmd.OutOrStdout()
			if len(report.Episodes) == 0 {
				fmt.Fprintln(out, "No episode headers found")
				return nil
			}
			rows := make([][]string, 0, len(report.Episodes))
			outOfRange := 0
			for _, episode := range report.Episodes {
				status := "ok"
				if !episode.InRange {
					status = fmt.Sprintf("out of %d-%d", report.MinTokens, report.MaxTokens)
					outOfRange++
				}
				rows = append(rows, []string{
					fmt.Sprintf("%d", episode.Episode),
					fmt.Sprintf("%d", episode.Tokens),
					fmt.Sprintf("%d", episode.SceneCount),
					status,
				})
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"Episode", "Tokens", "Scenes", "Status"},
				rows,
				[]columnAlignment{alignRight, alignRight, alignRight, alignLeft}))
			if outOfRange > 0 {
				fmt.Fprintf(out, "%d episode(s) out of range\n", outOfRange)
			}
			return nil
		},
	}
	return cmd
}
