package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"scriptforge/internal/config"
	"scriptforge/internal/draft"
	"scriptforge/internal/llm"
	"scriptforge/internal/logging"
	"scriptforge/internal/plan"
	"scriptforge/internal/retrieval"
	"scriptforge/internal/segment"
	"scriptforge/internal/services"
	"scriptforge/internal/store"
	"scriptforge/internal/validate"
	"scriptforge/internal/workflow"
)

type runSummary struct {
	RunID               string   `json:"run_id"`
	Title               string   `json:"title"`
	EpisodesPlanned     int      `json:"episodes_planned"`
	EpisodesDelivered   int      `json:"episodes_delivered"`
	RequiresHumanReview bool     `json:"requires_human_review"`
	OutputFiles         []string `json:"output_files"`
}

func newRunCommand(cmdCtx *commandContext) *cobra.Command {
	var (
		blueprintPath string
		novelPath     string
		stylePath     string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute a full production run: plan, retrieve, draft, validate, deliver",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			logger := cmdCtx.ensureLogger()

			blueprint, err := loadBlueprint(blueprintPath)
			if err != nil {
				return err
			}
			index, err := buildIndex(cfg, novelPath, stylePath)
			if err != nil {
				return err
			}

			// One run at a time per data directory.
			lock := flock.New(filepath.Join(cfg.Paths.DataDir, "scriptforge.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another run is already active for %s", cfg.Paths.DataDir)
			}
			defer func() { _ = lock.Unlock() }()

			db, err := store.Open(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			runID := uuid.New().String()
			tasks := plan.Plan(blueprint)
			if err := db.CreateRun(cmd.Context(), runID, blueprint.Title, len(tasks)); err != nil {
				return fmt.Errorf("record run: %w", err)
			}

			summary := runSummary{RunID: runID, Title: blueprint.Title, EpisodesPlanned: len(tasks)}
			hook := func(task plan.EpisodeTask, script string) {
				if err := db.SaveEpisode(cmd.Context(), runID, task.EpisodeNumber, task.Title, script); err != nil {
					logger.Error("persist episode", logging.Args(
						logging.Int(logging.FieldEpisode, task.EpisodeNumber),
						logging.Error(err))...)
				}
				path, err := writeEpisodeFile(cfg.Paths.OutputDir, task, script)
				if err != nil {
					logger.Error("write episode file", logging.Args(
						logging.Int(logging.FieldEpisode, task.EpisodeNumber),
						logging.Error(err))...)
					return
				}
				summary.OutputFiles = append(summary.OutputFiles, path)
			}

			orch := workflow.NewOrchestrator(
				index,
				newDrafter(cfg),
				newPipeline(cfg),
				workflow.WithMaxRetries(cfg.Workflow.MaxRetries),
				workflow.WithLogger(logger),
				workflow.WithDeliveryHook(hook),
			)

			state, runErr := orch.Run(services.WithRunID(cmd.Context(), runID), blueprint)
			summary.EpisodesDelivered = len(state.DeliveredScripts)
			summary.RequiresHumanReview = state.RequiresHumanReview

			status := store.StatusCompleted
			switch {
			case runErr != nil:
				status = store.StatusFailed
			case state.RequiresHumanReview:
				status = store.StatusEscalated
			}
			if err := db.FinishRun(context.Background(), runID, status, state.RequiresHumanReview); err != nil {
				logger.Error("finalize run", logging.Args(logging.Error(err))...)
			}
			if err := writeRunSummary(cfg.Paths.OutputDir, summary); err != nil {
				logger.Error("write run summary", logging.Args(logging.Error(err))...)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out,
				[]string{"Run", "Status", "Planned", "Delivered", "Needs Review"},
				[][]string{{
					runID,
					status,
					fmt.Sprintf("%d", summary.EpisodesPlanned),
					fmt.Sprintf("%d", summary.EpisodesDelivered),
					yesNo(state.RequiresHumanReview),
				}},
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft}))
			return runErr
		},
	}

	cmd.Flags().StringVarP(&blueprintPath, "blueprint", "b", "", "Blueprint JSON file (required)")
	cmd.Flags().StringVarP(&novelPath, "novel", "n", "", "Source manuscript text file (required)")
	cmd.Flags().StringVarP(&stylePath, "style", "s", "", "Stylistic reference text file")
	_ = cmd.MarkFlagRequired("blueprint")
	_ = cmd.MarkFlagRequired("novel")
	return cmd
}

func loadBlueprint(path string) (plan.Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return plan.Blueprint{}, fmt.Errorf("read blueprint: %w", err)
	}
	return plan.ParseBlueprint(data)
}

// buildIndex splits the manuscripts into scene documents and indexes them.
// A missing style corpus leaves the style side empty; retrieval then returns
// no style snippets, which drafting tolerates.
func buildIndex(cfg *config.Config, novelPath, stylePath string) (*retrieval.DualIndex, error) {
	splitter := segment.NewSplitter(cfg.Segmenter.MinSceneChars, cfg.Segmenter.MaxSceneChars)
	index := retrieval.NewDualIndex()

	novel, err := os.ReadFile(novelPath)
	if err != nil {
		return nil, fmt.Errorf("read novel: %w", err)
	}
	index.IndexContent(splitter.Split(string(novel), sourceLabel(novelPath)))

	if strings.TrimSpace(stylePath) != "" {
		style, err := os.ReadFile(stylePath)
		if err != nil {
			return nil, fmt.Errorf("read style corpus: %w", err)
		}
		index.IndexStyle(splitter.Split(string(style), sourceLabel(stylePath)))
	}
	return index, nil
}

func sourceLabel(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func newPipeline(cfg *config.Config) *validate.Pipeline {
	opts := validate.Options{
		MinChars: cfg.Validation.MinChars,
		MaxChars: cfg.Validation.MaxChars,
	}
	if client := newLLMClient(cfg); client != nil {
		opts.EmotionClassifier = client
	}
	return validate.NewPipeline(opts)
}

func newDrafter(cfg *config.Config) draft.Drafter {
	if client := newLLMClient(cfg); client != nil {
		return draft.NewModelDrafter(client)
	}
	return draft.TemplateDrafter{}
}

func newLLMClient(cfg *config.Config) *llm.Client {
	llmCfg := llm.Config{
		APIKey:         cfg.LLM.APIKey,
		BaseURL:        cfg.LLM.BaseURL,
		Model:          cfg.LLM.Model,
		Referer:        cfg.LLM.Referer,
		Title:          cfg.LLM.Title,
		TimeoutSeconds: cfg.LLM.TimeoutSeconds,
	}
	if !llmCfg.Configured() {
		return nil
	}
	return llm.NewClient(llmCfg)
}

func writeEpisodeFile(outputDir string, task plan.EpisodeTask, script string) (string, error) {
	name := fmt.Sprintf("episode_%03d.md", task.EpisodeNumber)
	path := filepath.Join(outputDir, name)
	content := fmt.Sprintf("# 第%d集 %s\n\n%s\n", task.EpisodeNumber, task.Title, script)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func writeRunSummary(outputDir string, summary runSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	path := filepath.Join(outputDir, "workflow_summary.json")
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
