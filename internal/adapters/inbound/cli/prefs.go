package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdidvp/fixspot/internal/adapters/outbound/tui"
	"github.com/abdidvp/fixspot/internal/application"
)

func newPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Manage remembered site → repository preferences",
	}
	cmd.AddCommand(newPrefsGetCmd())
	cmd.AddCommand(newPrefsSetCmd())
	cmd.AddCommand(newPrefsDetectCmd())
	cmd.AddCommand(newPrefsListCmd())
	return cmd
}

func newPrefsGetCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "get <url>",
		Short: "Show the repository remembered for a scanned site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newPreferenceService(cmd)
			if err != nil {
				return err
			}
			host, err := application.HostOf(args[0])
			if err != nil {
				return err
			}
			pref, found := svc.Lookup(args[0])

			if jsonOutput {
				return renderJSON(cmd, map[string]any{"host": host, "found": found, "preference": pref})
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderPreference(host, pref, found))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output preference as JSON")
	return cmd
}

func newPrefsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <url> <owner/repo>",
		Short: "Remember the repository for a scanned site",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, ok := strings.Cut(args[1], "/")
			if !ok {
				return fmt.Errorf("repository must be owner/repo, got %q", args[1])
			}
			svc, err := newPreferenceService(cmd)
			if err != nil {
				return err
			}
			host, err := svc.Save(args[0], owner, repo)
			if err != nil {
				return err
			}
			pref, _ := svc.Lookup(host)
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderPreference(host, pref, true))
			return nil
		},
	}
}

func newPrefsDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <url> [repo-path]",
		Short: "Remember the origin remote of a local repository for a scanned site",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repoPath := "."
			if len(args) > 1 {
				repoPath = args[1]
			}
			svc, err := newPreferenceService(cmd)
			if err != nil {
				return err
			}
			pref, err := svc.Detect(args[0], repoPath)
			if err != nil {
				return err
			}
			host, _ := application.HostOf(args[0])
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderPreference(host, pref, true))
			return nil
		},
	}
}

func newPrefsListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every remembered preference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newPreferenceService(cmd)
			if err != nil {
				return err
			}
			hosts, prefs, err := svc.All()
			if err != nil {
				return err
			}
			if jsonOutput {
				return renderJSON(cmd, prefs)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderPreferences(hosts, prefs))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output preferences as JSON")
	return cmd
}
