package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/fixspot/internal/adapters/outbound/patch"
	"github.com/abdidvp/fixspot/internal/adapters/outbound/tui"
	"github.com/abdidvp/fixspot/internal/application"
)

func newApplyCmd() *cobra.Command {
	var (
		jsonOutput bool
		write      bool
		original   string
		lines      string
	)

	cmd := &cobra.Command{
		Use:   "apply <file> <fixed>",
		Short: "Substitute fixed markup into a file",
		Long: "Replace the original markup in a file with the fixed markup, converted to JSX where the source needs it. " +
			"Without --lines the original is searched for and ambiguous matches are never replaced. " +
			"Shows a patch preview unless --write is given.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fixed, err := readMarkup(cmd, args[1])
			if err != nil {
				return err
			}
			req := application.ApplyRequest{Fixed: fixed}

			switch {
			case lines != "":
				if req.LineStart, req.LineEnd, err = parseLines(lines); err != nil {
					return err
				}
			case original != "":
				if req.Original, err = readMarkup(cmd, original); err != nil {
					return err
				}
			default:
				return fmt.Errorf("one of --original or --lines is required")
			}

			svc, err := newFixService(cmd)
			if err != nil {
				return err
			}
			out, err := svc.ApplyFile(args[0], req, write)
			if err != nil {
				return fmt.Errorf("apply failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, out)
			}
			w := cmd.OutOrStdout()
			if req.Original != "" && out.Result.Applied {
				fmt.Fprint(w, "\n"+tui.RenderSnippetDiff(patch.SnippetDiff(req.Original, req.Fixed)))
			}
			fmt.Fprint(w, tui.RenderApply(args[0], out.Result, out.Patch))
			if out.Commit != "" {
				fmt.Fprintf(w, "  base commit %s\n", out.Commit[:min(12, len(out.Commit))])
			}
			if out.Written {
				fmt.Fprintf(w, "  wrote %s\n", args[0])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")
	cmd.Flags().BoolVar(&write, "write", false, "Write the result back to the file")
	cmd.Flags().StringVar(&original, "original", "", "Original markup to replace (literal, @path or @-)")
	cmd.Flags().StringVar(&lines, "lines", "", "Replace this line range instead of searching (START or START-END)")

	return cmd
}
