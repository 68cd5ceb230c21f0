// Command intake-server starts the CNC intake HTTP API.
// Usage: go run ./cmd/intake-server [-addr :8080] [-config intake.yaml]
package main

import (
	"flag"
	"log"

	"github.com/opencnc/intake/internal/interfaces"
	"github.com/opencnc/intake/internal/logging"
	"github.com/opencnc/intake/internal/server"
)

func main() {
	var (
		addr       = flag.String("addr", "", "listen address (overrides config)")
		configPath = flag.String("config", "", "path to a YAML config file")
	)
	flag.Parse()

	cfg := server.DefaultConfig()
	if *configPath != "" {
		loaded, err := server.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	logger := logging.NewStdoutLogger("IntakeServer")

	srv, err := server.NewServer(cfg, logger)
	if err != nil {
		log.Fatalf("creating server: %v", err)
	}
	defer srv.Close()

	logger.Info("listening", interfaces.Field{Key: "addr", Value: cfg.Addr})

	if err := srv.HTTPServer().ListenAndServe(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
