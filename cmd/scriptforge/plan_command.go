package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scriptforge/internal/llm"
	"scriptforge/internal/plan"
)

func newPlanCommand(cmdCtx *commandContext) *cobra.Command {
	var (
		blueprintPath string
		synopsisFlag  string
		episodesFlag  int
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Expand a blueprint into the episode task list",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				blueprint plan.Blueprint
				err       error
			)
			switch {
			case blueprintPath != "":
				blueprint, err = loadBlueprint(blueprintPath)
			case synopsisFlag != "":
				blueprint, err = blueprintFromSynopsis(cmd, cmdCtx, synopsisFlag, episodesFlag)
			default:
				return fmt.Errorf("either --blueprint or --synopsis is required")
			}
			if err != nil {
				return err
			}

			tasks := plan.Plan(blueprint)
			rows := make([][]string, 0, len(tasks))
			for _, task := range tasks {
				rows = append(rows, []string{
					fmt.Sprintf("%d", task.EpisodeNumber),
					task.Title,
					truncate(task.Synopsis, 40),
					truncate(task.ContentQuery, 24),
					truncate(task.StyleQuery, 24),
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out,
				[]string{"#", "Title", "Synopsis", "Content Query", "Style Query"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft}))
			return nil
		},
	}

	cmd.Flags().StringVarP(&blueprintPath, "blueprint", "b", "", "Blueprint JSON file")
	cmd.Flags().StringVar(&synopsisFlag, "synopsis", "", "Generate a blueprint from a synopsis via the configured model")
	cmd.Flags().IntVar(&episodesFlag, "episodes", 6, "Episode count when generating from a synopsis")
	return cmd
}

// blueprintFromSynopsis asks the configured model for a season blueprint.
func blueprintFromSynopsis(cmd *cobra.Command, cmdCtx *commandContext, synopsis string, episodes int) (plan.Blueprint, error) {
	cfg, err := cmdCtx.ensureConfig()
	if err != nil {
		return plan.Blueprint{}, err
	}
	client := newLLMClient(cfg)
	if client == nil {
		return plan.Blueprint{}, fmt.Errorf("--synopsis requires llm.api_key and llm.model to be configured")
	}
	prompt := fmt.Sprintf("共%d集。\n\n%s", episodes, synopsis)
	payload, err := client.CompleteJSON(cmd.Context(), llm.PlannerPrompt, prompt)
	if err != nil {
		return plan.Blueprint{}, fmt.Errorf("generate blueprint: %w", err)
	}
	var blueprint plan.Blueprint
	if err := llm.DecodeLLMJSON(payload, &blueprint); err != nil {
		return plan.Blueprint{}, fmt.Errorf("parse generated blueprint: %w", err)
	}
	return blueprint, nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
