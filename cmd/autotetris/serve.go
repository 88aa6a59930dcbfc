package main

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/autotetris/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the autotetris SSH spectator server",
	Long: `Start an SSH server where every connection watches its own game.

Sessions share nothing: each gets a fresh board and agent built from the
same config. Viewers can only quit.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.autotetris/host_key

Examples:
  autotetris serve                           # Listen on :23234 with auto-generated key
  autotetris serve --ssh :2222               # Listen on port 2222
  autotetris serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	// Fail on a bad config before accepting connections.
	if _, err := s.newGame(); err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TurnDelay:   s.cfg.Pacing.TurnDelay,
		Seed:        flagSeed,
	}

	factory := func() (tui.Simulation, error) {
		return s.newGame()
	}

	server, err := tui.NewSSHServer(cfg, factory, s.logger.WithPrefix("autotetris-ssh"))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting autotetris SSH server on %s\n", server.Addr())
	if _, port, splitErr := net.SplitHostPort(server.Addr()); splitErr == nil {
		fmt.Fprintf(out, "Connect with: ssh localhost -p %s\n", port)
	}
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	return server.ListenAndServe(cmd.Context())
}
