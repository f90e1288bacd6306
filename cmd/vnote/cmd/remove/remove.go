package remove

import (
	"fmt"

	"github.com/spf13/cobra"

	"voice-notes/cmd/vnote/cmd/cmdutil"
)

// Cmd represents the delete command
var Cmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete one translation",
	Long:    `Delete one translation. Deleting an id that does not exist succeeds.`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := cmdutil.ParseID(args[0])
		if err != nil {
			return err
		}

		a, cleanup, err := cmdutil.Bootstrap(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := a.Session.Delete(cmd.Context(), id); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), a.Session.State().Error)
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted translation #%d\n", id)
		return nil
	},
}
