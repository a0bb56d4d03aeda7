package chainio

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/Layr-Labs/eigensdk-go/chainio/clients/wallet"
	"github.com/Layr-Labs/eigensdk-go/chainio/txmgr"
	sdklogging "github.com/Layr-Labs/eigensdk-go/logging"
	"github.com/Layr-Labs/eigensdk-go/signerv2"
	sdkutils "github.com/Layr-Labs/eigensdk-go/utils"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/trigg3rX/feeshare-avs/pkg/logging"
	"github.com/trigg3rX/feeshare-avs/pkg/retry"
)

// DialEthClient connects to an http or websocket RPC endpoint, retrying the
// initial dial and chain id probe.
func DialEthClient(ctx context.Context, url string, logger logging.Logger) (*ethclient.Client, error) {
	return retry.Retry(ctx, func() (*ethclient.Client, error) {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			return nil, err
		}
		if _, err := client.ChainID(ctx); err != nil {
			client.Close()
			return nil, err
		}
		return client, nil
	}, retry.DefaultRetryConfig(), logger)
}

// BuildTxManager wires an eigensdk private key wallet behind a simple tx
// manager. The returned address is the sender of every transaction.
func BuildTxManager(
	ctx context.Context,
	ethClient *ethclient.Client,
	privateKey *ecdsa.PrivateKey,
	devMode bool,
) (txmgr.TxManager, common.Address, error) {
	chainID, err := ethClient.ChainID(ctx)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("failed to get chain id: %w", err)
	}
	return buildTxManager(ethClient, privateKey, chainID, devMode)
}

func buildTxManager(
	ethClient *ethclient.Client,
	privateKey *ecdsa.PrivateKey,
	chainID *big.Int,
	devMode bool,
) (txmgr.TxManager, common.Address, error) {
	env := sdklogging.Production
	if devMode {
		env = sdklogging.Development
	}
	sdkLogger, err := sdklogging.NewZapLogger(env)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("failed to create sdk logger: %w", err)
	}

	address, err := sdkutils.EcdsaPrivateKeyToAddress(privateKey)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("failed to derive address: %w", err)
	}
	signerFn, signerAddr, err := signerv2.SignerFromConfig(signerv2.Config{PrivateKey: privateKey}, chainID)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("failed to create signer: %w", err)
	}
	if signerAddr != address {
		return nil, common.Address{}, fmt.Errorf("signer address %s does not match key address %s", signerAddr.Hex(), address.Hex())
	}

	skWallet, err := wallet.NewPrivateKeyWallet(ethClient, signerFn, address, sdkLogger)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("failed to create wallet: %w", err)
	}
	return txmgr.NewSimpleTxManager(skWallet, ethClient, sdkLogger, address), address, nil
}
