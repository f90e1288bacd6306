package show

import (
	"fmt"

	"github.com/spf13/cobra"

	"voice-notes/cmd/vnote/cmd/cmdutil"
	"voice-notes/internal/app/codec"
	"voice-notes/internal/app/util/display"
)

var base64Out bool

func init() {
	Cmd.Flags().BoolVar(&base64Out, "base64", false, "also print the audio as a base64 data URL")
}

// Cmd represents the show command
var Cmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one translation",
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

		rec, err := a.Store.GetByID(cmd.Context(), id)
		if err != nil {
			return err
		}
		if rec.AudioURL != "" {
			defer a.Store.Release(codec.Handle(rec.AudioURL))
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ID:        %d\n", rec.ID)
		fmt.Fprintf(out, "Timestamp: %s\n", rec.Timestamp)
		if label := display.FormatDuration(rec.Duration); label != "" {
			fmt.Fprintf(out, "Duration:  %s\n", label)
		}
		if rec.HasAudio() {
			fmt.Fprintf(out, "Audio:     %s, %s\n", rec.MimeType, codec.SizeLabel(int64(len(rec.AudioData))))
		}
		fmt.Fprintf(out, "\n%s\n", rec.Text)

		if base64Out && rec.HasAudio() {
			fmt.Fprintf(out, "\n%s\n", codec.ToBase64(rec.AudioData, rec.MimeType).DataURL)
		}
		return nil
	},
}
