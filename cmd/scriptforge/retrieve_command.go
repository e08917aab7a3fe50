package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scriptforge/internal/retrieval"
)

func newRetrieveCommand(cmdCtx *commandContext) *cobra.Command {
	var (
		novelPath string
		stylePath string
		side      string
		topK      int
	)

	cmd := &cobra.Command{
		Use:   "retrieve <query>",
		Short: "Query the retrieval index built from a manuscript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			if topK <= 0 {
				topK = cfg.Retrieval.TopK
			}
			index, err := buildIndex(cfg, novelPath, stylePath)
			if err != nil {
				return err
			}

			var results []retrieval.Result
			switch side {
			case "content":
				results = index.RetrieveContent(args[0], topK)
			case "style":
				results = index.RetrieveStyle(args[0], topK)
			default:
				return fmt.Errorf("invalid --side %q (want content or style)", side)
			}

			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "No matches")
				return nil
			}
			rows := make([][]string, 0, len(results))
			for _, result := range results {
				rows = append(rows, []string{
					fmt.Sprintf("%.4f", result.Score),
					result.Metadata["source"] + "#" + result.Metadata["order"],
					truncate(result.Text, 48),
				})
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"Score", "Scene", "Text"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft}))
			return nil
		},
	}

	cmd.Flags().StringVarP(&novelPath, "novel", "n", "", "Source manuscript text file (required)")
	cmd.Flags().StringVarP(&stylePath, "style", "s", "", "Stylistic reference text file")
	cmd.Flags().StringVar(&side, "side", "content", "Corpus side to query: content or style")
	cmd.Flags().IntVarP(&topK, "top", "k", 0, "Result count (defaults to retrieval.top_k)")
	_ = cmd.MarkFlagRequired("novel")
	return cmd
}
