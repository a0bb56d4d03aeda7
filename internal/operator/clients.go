package operator

import (
	"context"
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/trigg3rX/feeshare-avs/internal/operator/config"
	"github.com/trigg3rX/feeshare-avs/pkg/chainio"
	"github.com/trigg3rX/feeshare-avs/pkg/client/appdirectory"
	"github.com/trigg3rX/feeshare-avs/pkg/client/explorer"
	"github.com/trigg3rX/feeshare-avs/pkg/cryptography"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
)

// LoadOperatorKey reads the operator key from PRIVATE_KEY or the keystore.
func LoadOperatorKey() (*ecdsa.PrivateKey, error) {
	return cryptography.LoadOperatorKey(config.GetPrivateKey(), config.GetKeystorePath(), config.GetKeystorePassword())
}

func NewDirectoryClient(logger logging.Logger) (*appdirectory.Client, error) {
	cfg, err := appdirectory.LoadConfig(config.GetAppAPIURL(), config.GetRequestTimeout())
	if err != nil {
		return nil, fmt.Errorf("invalid app directory config: %w", err)
	}
	return appdirectory.NewAppDirectoryClient(cfg, logger)
}

func NewExplorerClient(logger logging.Logger) (*explorer.Client, error) {
	cfg, err := explorer.LoadConfig(
		config.GetExplorerAPIURL(),
		config.GetExplorerAPIKey(),
		config.GetExplorerPageSize(),
		config.GetExplorerRateLimit(),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid explorer config: %w", err)
	}
	return explorer.NewExplorerClient(cfg, logger)
}

// Chain bundles the RPC connection and contract access of the operator key.
type Chain struct {
	EthClient *ethclient.Client
	Contracts *chainio.ContractBindings
	Reader    *chainio.ChainReader
	Writer    *chainio.ChainWriter
}

func ConnectChain(ctx context.Context, privateKey *ecdsa.PrivateKey, logger logging.Logger) (*Chain, error) {
	ethClient, err := chainio.DialEthClient(ctx, config.GetRPCURL(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	addresses, err := chainio.LoadAddresses(config.GetDeploymentsDir(), config.GetChainID(), config.GetAddressOverrides())
	if err != nil {
		ethClient.Close()
		return nil, err
	}
	contracts, err := chainio.NewContractBindings(addresses, ethClient, logger)
	if err != nil {
		ethClient.Close()
		return nil, err
	}

	txMgr, sender, err := chainio.BuildTxManager(ctx, ethClient, privateKey, config.IsDevMode())
	if err != nil {
		ethClient.Close()
		return nil, err
	}
	logger.Info("Connected to chain",
		"chain_id", config.GetChainID(),
		"sender", sender.Hex(),
		"service_manager", addresses.FeeShareServiceManager.Hex(),
	)

	return &Chain{
		EthClient: ethClient,
		Contracts: contracts,
		Reader:    chainio.NewChainReader(contracts, logger, ethClient),
		Writer:    chainio.NewChainWriter(contracts, logger, txMgr),
	}, nil
}

func (c *Chain) Close() {
	c.EthClient.Close()
}

// connectSubscriber returns nil when no websocket endpoint is configured.
func connectSubscriber(ctx context.Context, addresses chainio.Addresses, logger logging.Logger) (chainio.AvsSubscriber, *ethclient.Client, error) {
	if config.GetWSRPCURL() == "" {
		return nil, nil, nil
	}
	wsClient, err := chainio.DialEthClient(ctx, config.GetWSRPCURL(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to WS RPC: %w", err)
	}
	contracts, err := chainio.NewContractBindings(addresses, wsClient, logger)
	if err != nil {
		wsClient.Close()
		return nil, nil, err
	}
	return chainio.NewChainSubscriber(contracts, logger), wsClient, nil
}
