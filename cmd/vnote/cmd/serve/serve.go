package serve

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"voice-notes/cmd/vnote/cmd/cmdutil"
	"voice-notes/internal/api/server"
	"voice-notes/internal/api/v1/routes"
	"voice-notes/internal/api/v1/services"
	"voice-notes/internal/app/common"
)

var (
	host string
	port string
)

func init() {
	Cmd.Flags().StringVar(&host, "host", "", "listen host (overrides config)")
	Cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides config)")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the translation store over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := cmdutil.Bootstrap(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		cfg := a.Config.Server
		if host != "" {
			cfg.Host = host
		}
		if port != "" {
			cfg.Port = port
		}

		container := &routes.ServiceContainer{
			TranslationService: services.NewTranslationService(a.Store, a.Translator),
			AudioService:       services.NewAudioService(a.Store),
			ExportService:      services.NewExportService(a.Exporter),
		}
		srv := server.NewServer(server.DefaultConfig(cfg), container, a.Registry, common.Component(a.Logger, "http"))

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
