package clear

import (
	"fmt"

	"github.com/spf13/cobra"

	"voice-notes/cmd/vnote/cmd/cmdutil"
)

var yes bool

func init() {
	Cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm deleting every translation")
}

// Cmd represents the clear command
var Cmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every translation",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !yes {
			return fmt.Errorf("refusing to delete every translation without --yes")
		}

		a, cleanup, err := cmdutil.Bootstrap(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		n, err := a.Store.Count(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.Store.Clear(cmd.Context()); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d translation(s)\n", n)
		return nil
	},
}
