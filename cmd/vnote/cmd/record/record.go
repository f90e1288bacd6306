package record

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"voice-notes/cmd/vnote/cmd/cmdutil"
	"voice-notes/internal/app/codec"
	"voice-notes/internal/app/util/display"
)

var (
	inputFile string
	mimeType  string
	duration  float64
)

func init() {
	Cmd.Flags().StringVarP(&inputFile, "file", "f", "", "audio file to transcribe")
	Cmd.Flags().StringVarP(&mimeType, "mime", "m", "", "MIME type of the audio (detected when empty)")
	Cmd.Flags().Float64VarP(&duration, "duration", "d", 0, "recording length in seconds (0 = unknown)")

	Cmd.MarkFlagRequired("file")
}

// Cmd represents the record command
var Cmd = &cobra.Command{
	Use:   "record",
	Short: "Transcribe an audio file and store the translation",
	Long: `Transcribe an audio file and store the translation

- The configured translator converts the audio to text
- The audio, text, duration and MIME type are stored together`,
	RunE: func(cmd *cobra.Command, args []string) error {
		audio, err := os.ReadFile(inputFile)
		if err != nil {
			return fmt.Errorf("read audio file: %w", err)
		}
		if duration < 0 {
			return fmt.Errorf("duration cannot be negative")
		}
		mime := mimeType
		if mime == "" {
			mime = codec.DetectMimeType(audio)
		}

		a, cleanup, err := cmdutil.Bootstrap(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		rec, err := a.Session.Capture(cmd.Context(), audio, mime, duration)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), a.Session.State().Error)
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Saved translation #%d (%s)\n", rec.ID, codec.SizeLabel(int64(len(rec.AudioData))))
		if label := display.FormatDuration(rec.Duration); label != "" {
			fmt.Fprintf(out, "Duration: %s\n", label)
		}
		fmt.Fprintln(out, rec.Text)
		return nil
	},
}
