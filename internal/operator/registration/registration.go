package registration

import (
	"context"
	"crypto/ecdsa"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/trigg3rX/feeshare-avs/pkg/cryptography"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
)

// StatusReader reads the registration state of an operator.
type StatusReader interface {
	IsOperator(ctx context.Context, operator common.Address) (bool, error)
	OperatorRegistered(ctx context.Context, operator common.Address) (bool, error)
	CalculateOperatorAVSRegistrationDigestHash(
		ctx context.Context,
		operator common.Address,
		avs common.Address,
		salt [32]byte,
		expiry *big.Int,
	) ([32]byte, error)
}

// RegistrationWriter submits the registration transactions.
type RegistrationWriter interface {
	RegisterAsOperator(ctx context.Context, metadataURI string) (*gethtypes.Receipt, error)
	RegisterOperatorWithSignature(
		ctx context.Context,
		signature []byte,
		salt [32]byte,
		expiry *big.Int,
		signingKey common.Address,
	) (*gethtypes.Receipt, error)
}

type Config struct {
	ServiceManager    common.Address
	MetadataURI       string
	SignatureValidity time.Duration
	// RequestTimeout bounds each contract read.
	RequestTimeout time.Duration
	// SubmitTimeout bounds each transaction including its receipt wait.
	SubmitTimeout time.Duration
}

// Registrar registers an operator key with the delegation layer and with the
// fee-share stake registry. Steps already done on chain are skipped, so it can
// be run again after a partial failure.
type Registrar struct {
	reader     StatusReader
	writer     RegistrationWriter
	privateKey *ecdsa.PrivateKey
	operator   common.Address
	config     Config
	logger     logging.Logger

	now  func() time.Time
	rand io.Reader
}

func NewRegistrar(
	reader StatusReader,
	writer RegistrationWriter,
	privateKey *ecdsa.PrivateKey,
	config Config,
	logger logging.Logger,
) (*Registrar, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("operator private key is required")
	}
	if config.ServiceManager == (common.Address{}) {
		return nil, fmt.Errorf("service manager address is required")
	}
	if config.SignatureValidity <= 0 {
		config.SignatureValidity = time.Hour
	}
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = 30 * time.Second
	}
	if config.SubmitTimeout <= 0 {
		config.SubmitTimeout = 4 * config.RequestTimeout
	}
	return &Registrar{
		reader:     reader,
		writer:     writer,
		privateKey: privateKey,
		operator:   crypto.PubkeyToAddress(privateKey.PublicKey),
		config:     config,
		logger:     logger,
		now:        time.Now,
		rand:       rand.Reader,
	}, nil
}

func (r *Registrar) Operator() common.Address {
	return r.operator
}

func (r *Registrar) Register(ctx context.Context) error {
	r.registerWithDelegationManager(ctx)

	readCtx, cancel := context.WithTimeout(ctx, r.config.RequestTimeout)
	registered, err := r.reader.OperatorRegistered(readCtx, r.operator)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to check stake registry: %w", err)
	}
	if registered {
		r.logger.Info("Operator already registered with AVS", "operator", r.operator.Hex())
		return nil
	}

	var salt [32]byte
	if _, err := io.ReadFull(r.rand, salt[:]); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}
	expiry := big.NewInt(r.now().Add(r.config.SignatureValidity).Unix())

	readCtx, cancel = context.WithTimeout(ctx, r.config.RequestTimeout)
	digest, err := r.reader.CalculateOperatorAVSRegistrationDigestHash(readCtx, r.operator, r.config.ServiceManager, salt, expiry)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to calculate registration digest: %w", err)
	}
	signature, err := cryptography.SignDigest(digest, r.privateKey)
	if err != nil {
		return fmt.Errorf("failed to sign registration digest: %w", err)
	}

	submitCtx, cancel := context.WithTimeout(ctx, r.config.SubmitTimeout)
	defer cancel()
	receipt, err := r.writer.RegisterOperatorWithSignature(submitCtx, signature, salt, expiry, r.operator)
	if err != nil {
		return fmt.Errorf("failed to register operator with AVS: %w", err)
	}
	r.logger.Info("Successfully registered operator with AVS",
		"operator", r.operator.Hex(),
		"txHash", receipt.TxHash.Hex(),
		"blockNumber", receipt.BlockNumber,
		"gasUsed", receipt.GasUsed,
	)
	return nil
}

// registerWithDelegationManager only logs failures. The stake registry
// rejects operators the delegation manager does not know.
func (r *Registrar) registerWithDelegationManager(ctx context.Context) {
	readCtx, cancel := context.WithTimeout(ctx, r.config.RequestTimeout)
	isOperator, err := r.reader.IsOperator(readCtx, r.operator)
	cancel()
	if err != nil {
		r.logger.Warn("Failed to check delegation manager registration", "error", err)
	} else if isOperator {
		r.logger.Info("Operator already registered with delegation manager", "operator", r.operator.Hex())
		return
	}

	submitCtx, cancel := context.WithTimeout(ctx, r.config.SubmitTimeout)
	defer cancel()
	receipt, err := r.writer.RegisterAsOperator(submitCtx, r.config.MetadataURI)
	if err != nil {
		r.logger.Error("Error registering as operator", "error", err)
		return
	}
	r.logger.Info("Operator registered with delegation manager", "txHash", receipt.TxHash.Hex())
}
