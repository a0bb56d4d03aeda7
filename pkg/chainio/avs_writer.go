package chainio

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Layr-Labs/eigensdk-go/chainio/txmgr"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	stakeregistry "github.com/trigg3rX/feeshare-avs/pkg/bindings/contractECDSAStakeRegistry"
	pkgErrors "github.com/trigg3rX/feeshare-avs/pkg/errors"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
	"github.com/trigg3rX/feeshare-avs/pkg/types"
)

type AvsWriter interface {
	CreateNewTask(ctx context.Context, task types.Task) (*gethtypes.Receipt, error)
	RespondToTask(
		ctx context.Context,
		task types.Task,
		response types.TaskResponse,
		signature []byte,
	) (*gethtypes.Receipt, error)

	RegisterAsOperator(ctx context.Context, metadataURI string) (*gethtypes.Receipt, error)
	RegisterOperatorWithSignature(
		ctx context.Context,
		signature []byte,
		salt [32]byte,
		expiry *big.Int,
		signingKey common.Address,
	) (*gethtypes.Receipt, error)
}

type ChainWriter struct {
	contracts *ContractBindings
	logger    logging.Logger
	txMgr     txmgr.TxManager
}

var _ AvsWriter = (*ChainWriter)(nil)

func NewChainWriter(
	contracts *ContractBindings,
	logger logging.Logger,
	txMgr txmgr.TxManager,
) *ChainWriter {
	return &ChainWriter{
		contracts: contracts,
		logger:    logger,
		txMgr:     txMgr,
	}
}

func (w *ChainWriter) CreateNewTask(ctx context.Context, task types.Task) (*gethtypes.Receipt, error) {
	if err := task.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", pkgErrors.ErrInvalidTask, err)
	}
	from, err := toUint32("fromBlockNum", task.FromBlockNum)
	if err != nil {
		return nil, err
	}
	to, err := toUint32("toBlockNum", task.ToBlockNum)
	if err != nil {
		return nil, err
	}

	noSendTxOpts, err := w.txMgr.GetNoSendTxOpts()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build tx opts: %v", pkgErrors.ErrChainSubmission, err)
	}
	tx, err := w.contracts.ServiceManager.CreateNewTask(
		noSendTxOpts,
		task.RewardContractAddress,
		appIDsToBig(task.AppIDs),
		from,
		to,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build createNewTask tx: %v", pkgErrors.ErrChainSubmission, err)
	}
	return w.send(ctx, tx, "createNewTask")
}

func (w *ChainWriter) RespondToTask(
	ctx context.Context,
	task types.Task,
	response types.TaskResponse,
	signature []byte,
) (*gethtypes.Receipt, error) {
	taskBinding, err := TaskToBinding(task)
	if err != nil {
		return nil, err
	}

	noSendTxOpts, err := w.txMgr.GetNoSendTxOpts()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build tx opts: %v", pkgErrors.ErrChainSubmission, err)
	}
	tx, err := w.contracts.ServiceManager.RespondToTask(
		noSendTxOpts,
		taskBinding,
		ResponseToBinding(response),
		signature,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build respondToTask tx: %v", pkgErrors.ErrChainSubmission, err)
	}
	return w.send(ctx, tx, "respondToTask")
}

func (w *ChainWriter) RegisterAsOperator(ctx context.Context, metadataURI string) (*gethtypes.Receipt, error) {
	if w.contracts.DelegationManager == nil {
		return nil, fmt.Errorf("%w: delegation manager address not configured", pkgErrors.ErrChainSubmission)
	}
	noSendTxOpts, err := w.txMgr.GetNoSendTxOpts()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build tx opts: %v", pkgErrors.ErrChainSubmission, err)
	}
	tx, err := w.contracts.DelegationManager.RegisterAsOperator(noSendTxOpts, zeroAddress, 0, metadataURI)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build registerAsOperator tx: %v", pkgErrors.ErrChainSubmission, err)
	}
	return w.send(ctx, tx, "registerAsOperator")
}

func (w *ChainWriter) RegisterOperatorWithSignature(
	ctx context.Context,
	signature []byte,
	salt [32]byte,
	expiry *big.Int,
	signingKey common.Address,
) (*gethtypes.Receipt, error) {
	if w.contracts.StakeRegistry == nil {
		return nil, fmt.Errorf("%w: stake registry address not configured", pkgErrors.ErrChainSubmission)
	}
	noSendTxOpts, err := w.txMgr.GetNoSendTxOpts()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build tx opts: %v", pkgErrors.ErrChainSubmission, err)
	}
	tx, err := w.contracts.StakeRegistry.RegisterOperatorWithSignature(
		noSendTxOpts,
		stakeregistry.ISignatureUtilsSignatureWithSaltAndExpiry{
			Signature: signature,
			Salt:      salt,
			Expiry:    expiry,
		},
		signingKey,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build registerOperatorWithSignature tx: %v", pkgErrors.ErrChainSubmission, err)
	}
	return w.send(ctx, tx, "registerOperatorWithSignature")
}

// send submits tx and waits for its receipt. A reverted receipt is an error.
func (w *ChainWriter) send(ctx context.Context, tx *gethtypes.Transaction, method string) (*gethtypes.Receipt, error) {
	receipt, err := w.txMgr.Send(ctx, tx, true)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to send %s tx: %v", pkgErrors.ErrChainSubmission, method, err)
	}
	if receipt == nil {
		return nil, fmt.Errorf("%w: %s tx %s has no receipt", pkgErrors.ErrChainSubmission, method, tx.Hash().Hex())
	}
	if receipt.Status != gethtypes.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("%w: %s tx %s reverted", pkgErrors.ErrChainSubmission, method, tx.Hash().Hex())
	}
	w.logger.Infof("tx hash: %s", tx.Hash().String())
	return receipt, nil
}
