package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/fixspot/internal/domain/dialect"
)

func newTransformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transform <markup>",
		Short: "Convert HTML markup to JSX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := readMarkup(cmd, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dialect.ToJSX(markup))
			return nil
		},
	}
}
