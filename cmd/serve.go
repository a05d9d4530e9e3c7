package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/huangsam/rangemerge/internal/api"
	"github.com/huangsam/rangemerge/internal/logger"
	"github.com/spf13/cobra"
)

// serveCmd runs the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the merge pipeline over HTTP.",
	Long: `Start an HTTP server with two endpoints:

  POST /api/v1/merge   body {"ranges": [...], "threshold": 0}
  GET  /health

The server stops gracefully on SIGINT or SIGTERM.`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		return api.NewServer(cfg.Addr, logger.Named("api")).Start(ctx)
	},
}
