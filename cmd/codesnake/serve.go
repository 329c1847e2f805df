package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/codesnake/internal/config"
	"github.com/vovakirdan/codesnake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeFile   string
	flagServeDB     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run an SSH server so others can play over the network",
	Long: `Start an SSH server that serves the game over one shared document.

Anyone can connect with a plain SSH client and play; runs land in a
shared leaderboard:

  codesnake serve --file main.go --ssh :23234

Then from another machine:

  ssh -p 23234 localhost`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH listen address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "path to SSH host key (auto-generated if empty)")
	serveCmd.Flags().StringVar(&flagServeFile, "file", "", "document to serve (required)")
	serveCmd.Flags().StringVar(&flagServeDB, "db", "~/.codesnake/runs.db", "path to the shared runs database")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "idle connection timeout in minutes")
	serveCmd.MarkFlagRequired("file")
}

func runServe(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.FilePath = flagServeFile
	cfg.DBPath = flagServeDB
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Game = gameCfg

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating SSH server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Serving %s on %s\n", flagServeFile, cfg.Address)
	fmt.Println("Connect with: ssh -p <port> <host>")
	fmt.Println("Press Ctrl+C to stop.")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
