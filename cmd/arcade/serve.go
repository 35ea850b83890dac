package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host the arcade over SSH",
	Long: `Serve the arcade menu to SSH clients. Each client gets its own session
with its own level choice and clock; every session records into the same
scores database, so they share one leaderboard.

Clients need a real terminal (ssh -t). The host key is generated at
~/.arcade/host_key on first start unless --host-key names one.
SIGINT or SIGTERM stops accepting clients and gives live sessions a few
seconds to finish.

Examples:
  arcade serve
  arcade serve --ssh :2222 --idle-timeout 10m
  arcade serve --host-key ./host_key --db ./shared.db --fps 30

Connect with:
  ssh -p 23234 localhost`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "Listen address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Host key file (generated when missing)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", defaults.IdleTimeout, "Disconnect clients idle this long")
}

func runServe(_ *cobra.Command, _ []string) {
	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: flagIdleTimeout,
		TickRate:    flagFPS,
		MaxSteps:    flagMaxSteps,
		Debug:       flagDebug,
		Logger:      logger,
	})
	exitOnErr("creating server", err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("press Ctrl+C to stop", "address", server.Addr())
	exitOnErr("serving", server.Serve(ctx))
	logger.Info("server stopped")
}
