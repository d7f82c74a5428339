package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "quickquote/docs"
	"quickquote/internal/adapter/http/routes"
	"quickquote/internal/config"
	"quickquote/internal/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           QuickQuote API
// @version         1.0
// @description     Window-cleaning rate configuration and quote pricing.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the ID token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
