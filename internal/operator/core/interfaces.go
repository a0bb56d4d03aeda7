package core

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/trigg3rX/feeshare-avs/pkg/logging"
	"github.com/trigg3rX/feeshare-avs/pkg/types"
)

// AppDirectory resolves the applications a task refers to.
type AppDirectory interface {
	FilterApplications(ctx context.Context, rewardAddress common.Address, appIDs []uint64) ([]types.ApplicationRecord, error)
}

// FeeAggregator computes the gas fees of one application over a block range.
type FeeAggregator interface {
	AggregateFee(ctx context.Context, app types.ApplicationRecord, fromBlock, toBlock uint64) (*big.Int, error)
}

// ResponseSigner signs task responses with the operator key.
type ResponseSigner interface {
	Address() common.Address
	Sign(response types.TaskResponse, taskCreatedBlock uint32) (*types.SignedAttestation, error)
}

// TaskResponder submits a signed response on chain.
type TaskResponder interface {
	RespondToTask(ctx context.Context, task types.Task, response types.TaskResponse, signature []byte) (*gethtypes.Receipt, error)
}

// ResponseReader reads responses already recorded by the service manager.
type ResponseReader interface {
	TaskResponse(ctx context.Context, operator common.Address, taskIndex uint32) ([]byte, error)
}

// TaskProcessor runs one attempt of a task.
type TaskProcessor interface {
	Process(ctx context.Context, task types.Task, logger logging.Logger) (Outcome, error)
}

// Outcome is the terminal state of a successful task attempt.
type Outcome string

const (
	OutcomeResponded       Outcome = "responded"
	OutcomeSkipped         Outcome = "skipped"
	OutcomeAlreadyAnswered Outcome = "already_answered"
)
