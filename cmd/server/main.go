package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/ahmednasr/product-compare/internal/bootstrap"
	"github.com/ahmednasr/product-compare/internal/config"
	"github.com/ahmednasr/product-compare/internal/handler"
	"github.com/ahmednasr/product-compare/internal/logging"
)

// main is the single entry‑point for the REST API.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logging.Init(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.Port).
		Str("provider", cfg.LLMProvider).
		Str("catalog_source", cfg.CatalogSource).
		Msg("configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	assistant, err := bootstrap.New(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise assistant")
	}
	defer assistant.Close()

	app := handler.NewApp(fiber.Config{
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		DisableStartupMessage: true,
	}, assistant.Chat, cfg.CatalogSource, assistant.Mongo)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutdown signal received")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server failed")
		return
	}
	log.Info().Msg("server stopped")
}
