package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"tradegate/internal/api"
	"tradegate/internal/broker"
	"tradegate/internal/config"
	"tradegate/internal/gateway"
	"tradegate/internal/util"
)

func main() {
	cfgPath := flag.String("config", "", "path to YAML configuration file")
	flag.Parse()

	path := *cfgPath
	if path == "" {
		path = os.Getenv("TRADEGATE_CONFIG")
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := util.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	util.SetDefault(logger)

	if !cfg.Broker.Simulation {
		// The live brokerage SDK is not linked into this build.
		logger.Error("only simulation mode is supported; set broker.simulation: true")
		os.Exit(1)
	}
	session := broker.NewSimulator()

	svc := gateway.NewService(logger, session, gateway.CAConfig{
		Path:     cfg.Broker.CAPath,
		PersonID: cfg.Broker.PersonID,
		Password: cfg.Broker.CAPassword,
	})
	server := api.NewServer(logger, cfg.Server.Addr, svc)

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("exited cleanly")
}
