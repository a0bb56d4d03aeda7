package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/trigg3rX/feeshare-avs/internal/taskgenerator"
	"github.com/trigg3rX/feeshare-avs/internal/taskgenerator/config"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
)

func main() {
	if err := config.Init(); err != nil {
		panic(fmt.Sprintf("Failed to initialize config: %v", err))
	}

	logConfig := logging.LoggerConfig{
		ProcessName:   logging.TaskGeneratorProcess,
		IsDevelopment: config.IsDevMode(),
	}
	logger, err := logging.NewZapLogger(logConfig)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	logger.Info("Starting Task Generator service ...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	generator, err := taskgenerator.NewTaskGenerator(ctx, logger)
	if err != nil {
		logger.Fatal("Failed to create task generator", "error", err)
	}
	logger.Info("[1/2] Task generator created")

	if err := generator.Start(ctx); err != nil {
		logger.Fatal("Failed to start task generator", "error", err)
	}
	logger.Info("[2/2] Task generator started")

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	<-shutdown

	performGracefulShutdown(cancel, generator, logger)
}

func performGracefulShutdown(cancel context.CancelFunc, generator *taskgenerator.TaskGenerator, logger logging.Logger) {
	logger.Info("Initiating graceful shutdown...")
	cancel()

	if err := generator.Close(); err != nil {
		logger.Warn("Errors during task generator shutdown", "error", err)
	}
	logger.Info("Task Generator service shutdown complete")
}
