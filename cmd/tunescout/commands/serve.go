package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tunescout/internal/services"
	"tunescout/internal/web"
)

// NewServeCommand creates the local HTTP API command
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve search, session and playlists as a local JSON API.",
		Args:  cobra.NoArgs,
		RunE:  runServeCommand,
	}

	cmd.Flags().String("listen", "", "Listen address (defaults to the configured one)")
	cmd.Flags().Bool("log-json", false, "Write server logs as JSON")

	return cmd
}

func runServeCommand(cmd *cobra.Command, args []string) error {
	logJSON, _ := cmd.Flags().GetBool("log-json")
	logger := services.NewHclogLogger("tunescout", os.Stderr, logJSON)

	cfg, container, err := initConfigAndServices(cmd, services.Options{Logger: logger, DiscardWarnings: true})
	if err != nil {
		return err
	}
	defer container.Close()

	addr := cfg.ListenAddr
	if listen, _ := cmd.Flags().GetString("listen"); listen != "" {
		addr = listen
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Hclog().Info("starting server", "addr", addr, "provider", cfg.BaseURL, "database", cfg.DatabasePath)
	if err := web.NewServer(container).ListenAndServe(ctx, addr); err != nil {
		logger.Error("server stopped: %v", err)
		return err
	}
	logger.Info("server stopped")
	return nil
}
