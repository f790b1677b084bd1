package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"aztv-panel/internal/channels"
	"aztv-panel/internal/config"
	"aztv-panel/internal/relay"
)

func main() {
	// 1. Parse Flags
	// Flags override config.yaml / environment values
	port := flag.String("port", "", "Override listen address (e.g. :3000)")
	staticDir := flag.String("static", "", "Override static assets directory")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting AZTV Program Panel...")

	// 2. Load Config
	cfg := config.Load()
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *staticDir != "" {
		cfg.Server.StaticDir = *staticDir
	}

	// 3. Channel Directory
	dir, err := channels.Load(cfg.Channels.File)
	if err != nil {
		log.Fatalf("❌ Channel directory: %v", err)
	}
	log.Printf("📺 %d channels configured", len(dir))

	// 4. Setup Metrics
	relay.RegisterMetrics()
	go func() {
		http.Handle("/_metrics", promhttp.Handler())
		log.Printf("📊 Metrics exposed at http://localhost%s/_metrics", cfg.Server.MetricsPort)
		if err := http.ListenAndServe(cfg.Server.MetricsPort, nil); err != nil {
			log.Printf("⚠️ Metrics server error: %v", err)
		}
	}()

	// 5. Start Relay Server
	srv := relay.New(cfg)
	log.Printf("🚀 Panel serving on %s (static: %s)", cfg.Server.Port, cfg.Server.StaticDir)
	if err := srv.Start(cfg.Server.Port); err != nil {
		log.Fatalf("❌ Server failed to start: %v", err)
	}
}
