package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-console/internal/config"
	"github.com/BuzzLyutic/todo-console/internal/console"
	"github.com/BuzzLyutic/todo-console/internal/logger"
	"github.com/BuzzLyutic/todo-console/internal/repo"
	"github.com/BuzzLyutic/todo-console/internal/service"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	flag.Parse()

	// os.Exit только здесь, чтобы отложенный Sync внутри run успел сработать
	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	// Загрузка конфигурации
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Подключаем логгер
	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}
	defer log.Sync()

	// Ctrl+C завершает сессию так же, как пункт Exit
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	taskRepo := repo.NewMemoryRepo()
	taskService := service.NewTaskService(taskRepo, log)
	handler := console.NewTaskHandler(taskService, log, os.Stdin, os.Stdout).
		WithBanner(cfg.Console.Banner)

	log.Info("session started")
	if err := handler.Run(ctx); err != nil {
		log.Error("console stopped with error", zap.Error(err))
		return fmt.Errorf("console stopped: %w", err)
	}
	log.Info("session finished")
	return nil
}
