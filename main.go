package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"

	"go.uber.org/zap"

	"loucura/internal/config"
	"loucura/internal/server"
)

//go:embed web/static
var static embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	port := flag.Int("port", cfg.Port, "server port")
	flag.Parse()
	cfg.Port = *port

	logger, err := newLogger(cfg.LogDev)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	sub, err := fs.Sub(static, "web/static")
	if err != nil {
		logger.Fatal("static fs", zap.Error(err))
	}

	srv := server.New(cfg, sub, logger)
	if err := srv.Start(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
