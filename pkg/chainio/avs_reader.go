package chainio

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/trigg3rX/feeshare-avs/pkg/logging"
	"github.com/trigg3rX/feeshare-avs/pkg/types"
)

type AvsReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
	LatestTaskNum(ctx context.Context) (uint32, error)
	// TaskResponse returns the response operator already recorded for a task, empty if none.
	TaskResponse(ctx context.Context, operator common.Address, taskIndex uint32) ([]byte, error)
	FilterNewTasks(ctx context.Context, fromBlock, toBlock uint64) ([]types.Task, error)

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

// blockNumberReader is the part of ethclient.Client the reader needs.
type blockNumberReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

type ChainReader struct {
	logger    logging.Logger
	contracts *ContractBindings
	ethClient blockNumberReader
}

// forces ChainReader to implement the chainio.AvsReader interface
var _ AvsReader = (*ChainReader)(nil)

func NewChainReader(
	contracts *ContractBindings,
	logger logging.Logger,
	ethClient blockNumberReader,
) *ChainReader {
	return &ChainReader{
		contracts: contracts,
		logger:    logger,
		ethClient: ethClient,
	}
}

func (r *ChainReader) BlockNumber(ctx context.Context) (uint64, error) {
	return r.ethClient.BlockNumber(ctx)
}

func (r *ChainReader) LatestTaskNum(ctx context.Context) (uint32, error) {
	return r.contracts.ServiceManager.LatestTaskNum(&bind.CallOpts{Context: ctx})
}

func (r *ChainReader) TaskResponse(ctx context.Context, operator common.Address, taskIndex uint32) ([]byte, error) {
	return r.contracts.ServiceManager.AllTaskResponses(&bind.CallOpts{Context: ctx}, operator, taskIndex)
}

// FilterNewTasks returns the tasks created in [fromBlock, toBlock] in log order.
// Events that do not decode into a valid task are logged and skipped.
func (r *ChainReader) FilterNewTasks(ctx context.Context, fromBlock, toBlock uint64) ([]types.Task, error) {
	end := toBlock
	it, err := r.contracts.ServiceManager.FilterNewTaskCreated(&bind.FilterOpts{
		Start:   fromBlock,
		End:     &end,
		Context: ctx,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to filter NewTaskCreated logs: %w", err)
	}
	defer it.Close()

	var tasks []types.Task
	for it.Next() {
		task, err := TaskFromEvent(it.Event)
		if err != nil {
			r.logger.Error("Skipping malformed NewTaskCreated event", "tx", it.Event.Raw.TxHash.Hex(), "err", err)
			continue
		}
		tasks = append(tasks, task)
	}
	if err := it.Error(); err != nil {
		return nil, fmt.Errorf("failed to iterate NewTaskCreated logs: %w", err)
	}
	return tasks, nil
}

func (r *ChainReader) IsOperator(ctx context.Context, operator common.Address) (bool, error) {
	if r.contracts.DelegationManager == nil {
		return false, fmt.Errorf("delegation manager address not configured")
	}
	return r.contracts.DelegationManager.IsOperator(&bind.CallOpts{Context: ctx}, operator)
}

func (r *ChainReader) OperatorRegistered(ctx context.Context, operator common.Address) (bool, error) {
	if r.contracts.StakeRegistry == nil {
		return false, fmt.Errorf("stake registry address not configured")
	}
	return r.contracts.StakeRegistry.OperatorRegistered(&bind.CallOpts{Context: ctx}, operator)
}

func (r *ChainReader) CalculateOperatorAVSRegistrationDigestHash(
	ctx context.Context,
	operator common.Address,
	avs common.Address,
	salt [32]byte,
	expiry *big.Int,
) ([32]byte, error) {
	if r.contracts.AVSDirectory == nil {
		return [32]byte{}, fmt.Errorf("avs directory address not configured")
	}
	return r.contracts.AVSDirectory.CalculateOperatorAVSRegistrationDigestHash(
		&bind.CallOpts{Context: ctx}, operator, avs, salt, expiry)
}
