package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fixspot",
		Short:         "Find where a markup defect lives and apply the fix",
		Long:          "fixspot locates the source lines behind a rendered HTML snippet, ranks the files likely to hold it, and substitutes corrected markup in the file's own dialect.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().Bool("verbose", false, "Log debug details to stderr")
	cmd.PersistentFlags().String("prefs", "", "Preferences file (defaults to preferences_file in .fixspot.yaml, then ~/.fixspot/preferences.json)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newLocateCmd())
	cmd.AddCommand(newRankCmd())
	cmd.AddCommand(newApplyCmd())
	cmd.AddCommand(newTransformCmd())
	cmd.AddCommand(newPrefsCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
