package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jladdjr/typey-type/internal/adapters/web"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the lesson API over HTTP",
	Long: `Starts the HTTP API, loading dictionaries in the background. With watch
enabled, local dictionary files are reloaded when they change. Runs until
interrupted.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, 127.0.0.1:8484)")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Stop()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if err := a.Start(ctx); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	addr := a.Config.HTTP.Addr
	if serveAddr != "" {
		addr = serveAddr
	}
	srv := web.NewServer(a.Lessons, a.Dicts, a.Logger, a.Paths.PortFile)
	if err := srv.Start(addr); err != nil {
		return fmt.Errorf("http: %w", err)
	}
	defer srv.Stop()

	fmt.Fprintf(cmd.OutOrStdout(), "typey serving profile %s at %s\n", a.Lessons.Profile(), srv.URL())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	select {
	case <-sigCh:
	case <-ctx.Done():
	}

	fmt.Fprintln(cmd.OutOrStdout(), "shutting down")
	return nil
}
