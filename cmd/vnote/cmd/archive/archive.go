package archive

import (
	"fmt"

	"github.com/spf13/cobra"

	"voice-notes/cmd/vnote/cmd/cmdutil"
	"voice-notes/internal/app/common"
	"voice-notes/internal/app/storage/archive"
)

// Cmd represents the archive command
var Cmd = &cobra.Command{
	Use:   "archive",
	Short: "Upload every recording to the configured S3-compatible bucket",
	Long: `Upload every recording to the configured S3-compatible bucket

- Objects are named translations/<id><ext>
- Text-only translations are skipped
- Configure the endpoint with the archive section or MINIO_* variables`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := cmdutil.Bootstrap(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		if !a.Config.Archive.Enabled() {
			return fmt.Errorf("no archive endpoint configured (set archive.endpoint or MINIO_ENDPOINT)")
		}

		dst, err := archive.NewMinioArchive(cmd.Context(), a.Config.Archive)
		if err != nil {
			return err
		}

		res, err := archive.ArchiveAll(cmd.Context(), a.Store, dst, archive.Options{
			Progress: cmdutil.Progress(cmd),
			Logger:   common.Component(a.Logger, "archive"),
		})
		out := cmd.OutOrStdout()
		for _, u := range res.Uploaded {
			fmt.Fprintf(out, "#%d -> %s\n", u.ID, u.URL)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Archived %d recording(s), skipped %d text-only translation(s)\n", len(res.Uploaded), res.Skipped)
		return nil
	},
}
