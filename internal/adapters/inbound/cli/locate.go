package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/fixspot/internal/adapters/outbound/tui"
)

func newLocateCmd() *cobra.Command {
	var (
		jsonOutput bool
		text       string
		selector   string
	)

	cmd := &cobra.Command{
		Use:   "locate <file> <original>",
		Short: "Find the lines of a file that hold the original markup",
		Long: "Search a source file for the element behind a rendered HTML snippet. " +
			"The original markup may be given literally, as @path, or as @- for stdin.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			original, err := readMarkup(cmd, args[1])
			if err != nil {
				return err
			}
			svc, err := newFixService(cmd)
			if err != nil {
				return err
			}

			loc, err := svc.LocateFile(args[0], original, text, selector)
			if err != nil {
				return fmt.Errorf("locate failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, loc)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderLocation(args[0], loc))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output location as JSON")
	cmd.Flags().StringVar(&text, "text", "", "Visible text to anchor on (defaults to the original's text content)")
	cmd.Flags().StringVar(&selector, "selector", "", "CSS selector of the element; its class tokens join the original's classes")

	return cmd
}
