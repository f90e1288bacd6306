// Package cmdutil holds what every vnote subcommand shares: the persistent
// flags and the application bootstrap.
package cmdutil

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"voice-notes/internal/app"
	"voice-notes/internal/app/progress"
	"voice-notes/internal/config"
)

// Persistent flags, bound by the root command.
var (
	ConfigPath string
	Verbose    bool
)

// LoadConfig reads .env, then the YAML file named by --config, then the environment.
func LoadConfig() (*config.AppConfig, error) {
	if _, err := config.LoadEnv(); err != nil {
		return nil, err
	}
	cfg, err := config.Load(ConfigPath)
	if err != nil {
		return nil, err
	}
	if Verbose {
		cfg.Log.Development = true
	}
	return cfg, nil
}

// Bootstrap builds the application for cmd. The returned cleanup must run
// before the command exits.
func Bootstrap(cmd *cobra.Command) (*app.App, func(), error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	return app.InitializeApp(cmd.Context(), cfg)
}

// Progress returns a progress manager writing to the command's stderr, or a
// disabled one when stderr is not a terminal.
func Progress(cmd *cobra.Command) *progress.Manager {
	return progress.NewManager(progress.Config{
		Enabled: progress.ShouldShowProgress(Verbose),
		Writer:  cmd.ErrOrStderr(),
		Unit:    "records",
	})
}

// ParseID parses a positive record id argument.
func ParseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid translation id %q", arg)
	}
	return id, nil
}
