package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abdidvp/fixspot/internal/adapters/outbound/tui"
)

func newRankCmd() *cobra.Command {
	var (
		jsonOutput bool
		text       string
		limit      int
		path       string
	)

	cmd := &cobra.Command{
		Use:   "rank <original>",
		Short: "Rank project files by how likely they hold the original markup",
		Long:  "Score every candidate file of a project against the original markup. Inside a git work tree only tracked files are considered.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			original, err := readMarkup(cmd, args[0])
			if err != nil {
				return err
			}
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			ranked, err := newRankService(cmd).RankProject(cmd.Context(), absPath, original, text, limit)
			if err != nil {
				return fmt.Errorf("ranking failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, ranked)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRanking(ranked))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output ranking as JSON")
	cmd.Flags().StringVar(&text, "text", "", "Visible text to anchor on (defaults to the original's text content)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum files to list (defaults to max_candidates)")
	cmd.Flags().StringVar(&path, "path", ".", "Project root")

	return cmd
}
