// cakecut-server — HTTP solve service
//
// Exposes the cut planner over HTTP: POST a problem to /solve, get the
// full plan back as JSON.
//
// Build:
//   go build -o cakecut-server ./cmd/cakecut-server

package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/sliceforge/cakecut/internal/config"
	"github.com/sliceforge/cakecut/internal/server"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	listen := flag.String("listen", "", "bind address (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *listen != "" {
		cfg.Listen = *listen
	}

	srv := server.New(cfg.Settings)
	log.Printf("cakecut-server listening on %s", cfg.Listen)
	if err := http.ListenAndServe(cfg.Listen, srv.Router()); err != nil {
		log.Fatal(err)
	}
}
