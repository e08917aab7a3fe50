package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"scriptforge/internal/export"
)

func newExportCommand(cmdCtx *commandContext) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export [file...]",
		Short: "Render delivered episode markdown files to HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) > 0 {
				for _, path := range args {
					rendered, err := export.File(path)
					if err != nil {
						return err
					}
					fmt.Fprintln(out, rendered)
				}
				return nil
			}

			target := strings.TrimSpace(dir)
			if target == "" {
				cfg, err := cmdCtx.ensureConfig()
				if err != nil {
					return err
				}
				target = cfg.Paths.OutputDir
			}
			rendered, err := export.Directory(target)
			if err != nil {
				return err
			}
			if len(rendered) == 0 {
				fmt.Fprintf(out, "No markdown files in %s\n", target)
				return nil
			}
			for _, path := range rendered {
				fmt.Fprintln(out, path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory to export (defaults to paths.output_dir)")
	return cmd
}
