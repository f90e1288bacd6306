package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"voice-notes/cmd/vnote/cmd/archive"
	"voice-notes/cmd/vnote/cmd/clear"
	"voice-notes/cmd/vnote/cmd/cmdutil"
	"voice-notes/cmd/vnote/cmd/export"
	"voice-notes/cmd/vnote/cmd/list"
	"voice-notes/cmd/vnote/cmd/migrate"
	"voice-notes/cmd/vnote/cmd/record"
	"voice-notes/cmd/vnote/cmd/remove"
	"voice-notes/cmd/vnote/cmd/reprocess"
	"voice-notes/cmd/vnote/cmd/serve"
	"voice-notes/cmd/vnote/cmd/show"
	"voice-notes/cmd/vnote/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vnote",
	Short: "Record, transcribe and export voice notes",
	Long: `Record, transcribe and export voice notes.

- Capture an audio file and store its transcript with "record"
- Browse, reprocess and delete stored translations
- Export everything as JSON, SQL, a MongoDB script, CSV or Excel
- Serve the same store over HTTP with "serve"`,
	SilenceUsage:     true,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(record.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(show.Cmd)
	rootCmd.AddCommand(reprocess.Cmd)
	rootCmd.AddCommand(remove.Cmd)
	rootCmd.AddCommand(clear.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(migrate.Cmd)
	rootCmd.AddCommand(archive.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().StringVarP(&cmdutil.ConfigPath, "config", "c", "", "YAML config file (defaults apply when empty)")
	rootCmd.PersistentFlags().BoolVarP(&cmdutil.Verbose, "verbose", "V", false, "verbose output")
}
