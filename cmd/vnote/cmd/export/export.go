package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"voice-notes/cmd/vnote/cmd/cmdutil"
	apperrors "voice-notes/internal/app/errors"
	appexport "voice-notes/internal/app/export"
)

var (
	format     string
	outputPath string
	database   string
	collection string
)

func init() {
	Cmd.Flags().StringVarP(&format, "format", "F", string(appexport.FormatJSON), "json, sql, mongo-script, csv or xlsx")
	Cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file, - for stdout (default: generated name in the export directory)")
	Cmd.Flags().StringVar(&database, "database", "", "MongoDB database for mongo-script")
	Cmd.Flags().StringVar(&collection, "collection", "", "MongoDB collection for mongo-script")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export every translation to a file",
	Long: `Export every translation to a file

- json: pretty-printed array, audio as base64
- sql: SQLite-compatible INSERT script
- mongo-script: mongosh script using insertMany
- csv / xlsx: one row per translation, audio summarised by size`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := appexport.ParseFormat(format)
		if err != nil {
			return err
		}

		a, cleanup, err := cmdutil.Bootstrap(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		res, err := a.Exporter.Export(cmd.Context(), appexport.Request{
			Format: f,
			Mongo:  appexport.MongoTarget{Database: database, Collection: collection},
		})
		if err != nil {
			if apperrors.IsEmptyStore(err) {
				fmt.Fprintln(cmd.ErrOrStderr(), "No translations to export!")
			}
			return err
		}

		if outputPath == "-" {
			_, err := cmd.OutOrStdout().Write(res.Content)
			return err
		}

		path := outputPath
		if path == "" {
			path = filepath.Join(a.Config.Export.OutputDir, res.Filename)
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
		}
		if err := os.WriteFile(path, res.Content, 0644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "export finished, exported file path: %v\n", path)
		return nil
	},
}
