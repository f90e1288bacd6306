package reprocess

import (
	"fmt"

	"github.com/spf13/cobra"

	"voice-notes/cmd/vnote/cmd/cmdutil"
)

// Cmd represents the reprocess command
var Cmd = &cobra.Command{
	Use:   "reprocess <id>",
	Short: "Run transcription again on a stored recording",
	Args:  cobra.ExactArgs(1),
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

		if err := a.Session.Load(cmd.Context()); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), a.Session.State().Error)
			return err
		}

		rec, err := a.Session.Reprocess(cmd.Context(), id)
		if err != nil {
			if msg := a.Session.State().Error; msg != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), msg)
			}
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Updated translation #%d\n%s\n", rec.ID, rec.Text)
		return nil
	},
}
