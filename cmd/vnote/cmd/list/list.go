package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"voice-notes/cmd/vnote/cmd/cmdutil"
	"voice-notes/internal/app/codec"
	"voice-notes/internal/app/util/display"
)

var full bool

func init() {
	Cmd.Flags().BoolVar(&full, "full", false, "print whole texts instead of previews")
}

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List stored translations, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := cmdutil.Bootstrap(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := a.Session.Load(cmd.Context()); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), a.Session.State().Error)
			return err
		}

		out := cmd.OutOrStdout()
		translations := a.Session.State().Translations
		if len(translations) == 0 {
			fmt.Fprintln(out, "No translations yet.")
			return nil
		}

		for _, rec := range translations {
			text := rec.Text
			if !full {
				text = display.Truncate(text, display.DefaultTruncateLength)
			}
			meta := rec.Timestamp
			if label := display.FormatDuration(rec.Duration); label != "" {
				meta += "  " + label
			}
			if rec.HasAudio() {
				meta += "  " + codec.SizeLabel(int64(len(rec.AudioData)))
			}
			fmt.Fprintf(out, "#%d  %s\n    %s\n", rec.ID, meta, text)
		}
		fmt.Fprintf(out, "%d translation(s)\n", len(translations))
		return nil
	},
}
