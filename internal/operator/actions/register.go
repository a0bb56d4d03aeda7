package actions

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/trigg3rX/feeshare-avs/internal/operator"
	"github.com/trigg3rX/feeshare-avs/internal/operator/config"
	"github.com/trigg3rX/feeshare-avs/internal/operator/registration"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
)

func Register(c *cli.Context) error {
	logger, err := setup(logging.RegistrationProcess)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	privateKey, err := operator.LoadOperatorKey()
	if err != nil {
		return fmt.Errorf("failed to load operator key: %w", err)
	}
	connectCtx, cancel := context.WithTimeout(ctx, config.GetRequestTimeout())
	chain, err := operator.ConnectChain(connectCtx, privateKey, logger)
	cancel()
	if err != nil {
		return err
	}
	defer chain.Close()

	registrar, err := registration.NewRegistrar(chain.Reader, chain.Writer, privateKey, registration.Config{
		ServiceManager:    chain.Contracts.Addresses.FeeShareServiceManager,
		MetadataURI:       config.GetOperatorMetadataURI(),
		SignatureValidity: config.GetRegistrationSignatureValidity(),
		RequestTimeout:    config.GetRequestTimeout(),
	}, logger)
	if err != nil {
		return err
	}

	logger.Info("Registering operator", "operator", registrar.Operator().Hex())
	if err := registrar.Register(ctx); err != nil {
		logger.Error("Operator registration failed", "error", err)
		return err
	}
	logger.Info("Operator registration complete", "operator", registrar.Operator().Hex())
	return nil
}
