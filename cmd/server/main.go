package main

import (
	"boardgame-server/internal/config"
	"boardgame-server/internal/engine"
	"boardgame-server/internal/server"
	"boardgame-server/internal/version"
	"boardgame-server/pkg/logger"
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Конфигурация: .env и окружение, затем флаги поверх
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal("Invalid configuration: ", err)
	}

	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Base seed, slot N gets seed*N")
	flag.IntVar(&cfg.Layouts, "layouts", cfg.Layouts, "Number of cached layouts")
	flag.StringVar(&cfg.Port, "port", cfg.Port, "HTTP port")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		logger.Log.Fatal("Invalid flags: ", err)
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	logger.Log.Info("Starting Board Layout Server...")
	logger.Log.Info(version.String())
	logger.Log.Infof("🎲 Base seed: %d, layouts: %d", cfg.Seed, cfg.Layouts)

	// 2. Инициализация ядра: кэш раскладов строится здесь
	gameService := engine.NewService(cfg.Engine())

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, cfg.Port, cfg.StaticDir)

	go func() {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("Server start error: ", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Warn("HTTP shutdown incomplete")
	}
	gameService.Shutdown()

	logger.Log.Info("Done.")
}
