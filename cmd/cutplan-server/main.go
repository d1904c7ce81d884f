// cutplan-server — HTTP JSON API for the cutting-stock optimizer.
//
// Build:
//
//	go build -o cutplan-server ./cmd/cutplan-server
//
// Configuration comes from .cutplan.yaml (or --config); the PORT
// environment variable overrides the configured listen address.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/piwi3910/cutplan/internal/config"
	"github.com/piwi3910/cutplan/internal/server"
)

// Options defines the server flags.
type Options struct {
	Config string `long:"config" value-name:"FILE" description:"Path to YAML config file"`
	Listen string `long:"listen" value-name:"ADDR" description:"Listen address (overrides config)"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Name = "cutplan-server"

	if _, err := parser.Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if opts.Listen != "" {
		cfg.Listen = opts.Listen
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Listen = fmt.Sprintf(":%s", port)
	}

	r := server.Router(cfg)
	log.Printf("listening on %s", cfg.Listen)
	if err := r.Run(cfg.Listen); err != nil {
		log.Fatalf("server: %v", err)
	}
}
