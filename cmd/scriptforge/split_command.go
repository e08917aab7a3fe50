package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scriptforge/internal/segment"
	"scriptforge/internal/validate"
)

func newSplitCommand(cmdCtx *commandContext) *cobra.Command {
	var showText bool

	cmd := &cobra.Command{
		Use:   "split <manuscript>",
		Short: "Split a manuscript into scene documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read manuscript: %w", err)
			}
			splitter := segment.NewSplitter(cfg.Segmenter.MinSceneChars, cfg.Segmenter.MaxSceneChars)
			documents := splitter.Split(string(data), sourceLabel(args[0]))

			out := cmd.OutOrStdout()
			if showText {
				for _, doc := range documents {
					fmt.Fprintf(out, "--- %s ---\n%s\n\n", doc.Identifier, doc.Text)
				}
				return nil
			}
			rows := make([][]string, 0, len(documents))
			for _, doc := range documents {
				rows = append(rows, []string{
					doc.Identifier,
					fmt.Sprintf("%d", len([]rune(doc.Text))),
					fmt.Sprintf("%d", validate.TokenCount(doc.Text)),
					truncate(doc.Text, 32),
				})
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"Scene", "Runes", "Tokens", "Preview"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft}))
			fmt.Fprintf(out, "%d scenes\n", len(documents))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showText, "text", false, "Print full scene text instead of the summary table")
	return cmd
}
