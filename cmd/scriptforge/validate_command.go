package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newValidateCommand(cmdCtx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <draft>",
		Short: "Run the validation pipeline over a draft file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read draft: %w", err)
			}

			pipeline := newPipeline(cfg)
			results := pipeline.Results(cmd.Context(), string(data))

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(results))
			failures := 0
			for _, result := range results {
				status := "pass"
				if !result.Passed {
					status = "FAIL"
					failures++
				}
				rows = append(rows, []string{result.Name, status})
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"Check", "Result"},
				rows,
				[]columnAlignment{alignLeft, alignLeft}))

			if failures == 0 {
				fmt.Fprintln(out, "Draft is compliant")
				return nil
			}
			for _, result := range results {
				if !result.Passed {
					fmt.Fprintln(out, result.Message)
				}
			}
			return fmt.Errorf("%d check(s) failed", failures)
		},
	}
	return cmd
}
