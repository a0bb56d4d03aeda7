package actions

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/trigg3rX/feeshare-avs/internal/operator"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
)

func Start(c *cli.Context) error {
	logger, err := setup(logging.OperatorProcess)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	logger.Info("Starting fee-share operator ...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	op, err := operator.NewOperator(ctx, logger)
	if err != nil {
		logger.Error("Failed to create operator", "error", err)
		return err
	}

	runErr := op.Start(ctx)
	if runErr != nil {
		logger.Error("Operator stopped with error", "error", runErr)
	}

	logger.Info("Initiating graceful shutdown...")
	if err := op.Close(); err != nil {
		logger.Warn("Non-critical errors during operator shutdown", "error", err)
	}
	logger.Info("Operator shutdown complete")
	return runErr
}
