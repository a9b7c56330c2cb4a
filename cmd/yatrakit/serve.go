package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yatrakit/yatrakit/internal/config"
	"github.com/yatrakit/yatrakit/internal/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local planner API",
	Long: `Start the local HTTP API used by planner frontends.

Examples:
  yatrakit serve
  yatrakit serve --addr :9090`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	st, cleanup, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	ttl := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	server := web.NewServer(newGenerator(cfg), st, ttl)

	fmt.Printf("Serving planner API on %s (store: %s, generator: %s)\n", addr, cfg.Store.Backend, cfg.Generator.Mode)
	return server.Run(addr)
}
