// Package main - Entry point for the pricing API server
package main

import (
	"flag"
	"net/http"

	"go.uber.org/zap"

	"github.com/crazynala/axis-sub002/api"
	"github.com/crazynala/axis-sub002/internal/config"
	"github.com/crazynala/axis-sub002/internal/logging"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", "", "server address (overrides config)")
	cfgFile := flag.String("config", "", "config file path")
	flag.Parse()

	if *cfgFile != "" {
		cfg, err := config.Load(*cfgFile)
		if err != nil {
			logging.Error("failed to load config", zap.Error(err))
			return
		}
		config.Set(cfg)
	}
	cfg := config.Get()

	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Error("failed to initialize logging", zap.Error(err))
	}
	defer logging.Sync()

	listen := cfg.Server.Addr
	if *addr != "" {
		listen = *addr
	}

	server := api.NewServer(version)

	logging.Info("pricing API listening",
		zap.String("addr", listen),
		zap.String("version", version),
	)

	if err := http.ListenAndServe(listen, server); err != nil {
		logging.Error("server exited", zap.Error(err))
	}
}
