package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"voice-notes/cmd/vnote/cmd/cmdutil"
	"voice-notes/internal/app"
	"voice-notes/internal/app/common"
	appmigrate "voice-notes/internal/app/repository/migrate"
	"voice-notes/internal/config"
)

var (
	toDriver      string
	toDSN         string
	toRedisPrefix string
)

func init() {
	Cmd.Flags().StringVar(&toDriver, "to-driver", "", "target backend: sqlite3, postgres or redis")
	Cmd.Flags().StringVar(&toDSN, "to-dsn", "", "target DSN (file path, postgres URL or redis URL)")
	Cmd.Flags().StringVar(&toRedisPrefix, "to-redis-prefix", config.DefaultRedisPrefix, "key prefix when the target is redis")

	Cmd.MarkFlagRequired("to-driver")
	Cmd.MarkFlagRequired("to-dsn")
}

// Cmd represents the migrate command
var Cmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy every translation into another backend",
	Long: `Copy every translation into another backend

- Records are copied oldest first, so the target keeps the same order
- The target assigns new ids
- Records with unparsable timestamps are skipped`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := cmdutil.Bootstrap(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		dst, err := app.OpenDAO(cmd.Context(), config.DatabaseConfig{
			Driver:      toDriver,
			DSN:         toDSN,
			RedisPrefix: toRedisPrefix,
		})
		if err != nil {
			return fmt.Errorf("open target: %w", err)
		}
		defer dst.Close()

		res, err := appmigrate.Copy(cmd.Context(), a.DAO, dst, appmigrate.Options{
			Progress: cmdutil.Progress(cmd),
			Logger:   common.Component(a.Logger, "migrate"),
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Copied %d translation(s), skipped %d\n", res.Copied, res.Skipped)
		return nil
	},
}
