package core

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/trigg3rX/feeshare-avs/pkg/attestation"
	pkgErrors "github.com/trigg3rX/feeshare-avs/pkg/errors"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
	"github.com/trigg3rX/feeshare-avs/pkg/types"
)

type ProcessorConfig struct {
	RequestTimeout time.Duration
	// SubmitTimeout bounds respondToTask including the receipt wait.
	SubmitTimeout     time.Duration
	SubmitZeroRewards bool
}

// Processor computes, signs and submits the response to a single task.
type Processor struct {
	directory  AppDirectory
	aggregator FeeAggregator
	signer     ResponseSigner
	responder  TaskResponder
	responses  ResponseReader
	config     ProcessorConfig
}

var _ TaskProcessor = (*Processor)(nil)

// NewProcessor builds a processor. responses may be nil, in which case
// already answered tasks are left for the contract to reject.
func NewProcessor(
	directory AppDirectory,
	aggregator FeeAggregator,
	signer ResponseSigner,
	responder TaskResponder,
	responses ResponseReader,
	config ProcessorConfig,
) *Processor {
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = 30 * time.Second
	}
	if config.SubmitTimeout <= 0 {
		config.SubmitTimeout = 4 * config.RequestTimeout
	}
	return &Processor{
		directory:  directory,
		aggregator: aggregator,
		signer:     signer,
		responder:  responder,
		responses:  responses,
		config:     config,
	}
}

func (p *Processor) Process(ctx context.Context, task types.Task, logger logging.Logger) (Outcome, error) {
	if err := task.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", pkgErrors.ErrInvalidTask, err)
	}

	answered, err := p.alreadyAnswered(ctx, task)
	if err != nil {
		return "", err
	}
	if answered {
		logger.Info("Task already answered by this operator", "task_index", task.TaskIndex)
		return OutcomeAlreadyAnswered, nil
	}

	response, err := p.BuildResponse(ctx, task, logger)
	if err != nil {
		return "", err
	}

	total := response.TotalRewards()
	if total.Sign() == 0 && !p.config.SubmitZeroRewards {
		logger.Info("Aggregate fee is zero, not responding", "task_index", task.TaskIndex)
		return OutcomeSkipped, nil
	}

	att, err := p.signer.Sign(response, task.TaskCreatedBlock)
	if err != nil {
		return "", err
	}
	signature, err := attestation.EncodeAttestation(att)
	if err != nil {
		return "", fmt.Errorf("%w: %v", pkgErrors.ErrSigning, err)
	}

	// A signed response is submitted even if the worker is shutting down.
	submitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.config.SubmitTimeout)
	defer cancel()
	receipt, err := p.responder.RespondToTask(submitCtx, task, response, signature)
	if err != nil {
		return "", err
	}

	logger.Info("Task response submitted",
		"task_index", task.TaskIndex,
		"tx_hash", receipt.TxHash.Hex(),
		"block", receipt.BlockNumber,
		"total_rewards", total.String(),
	)
	return OutcomeResponded, nil
}

// BuildResponse aggregates the fees of every app id of the task, in task
// order. An id that does not resolve to exactly one record with monitored
// contracts contributes zero. Any fetch error aborts the whole response.
func (p *Processor) BuildResponse(ctx context.Context, task types.Task, logger logging.Logger) (types.TaskResponse, error) {
	dirCtx, cancel := context.WithTimeout(ctx, p.config.RequestTimeout)
	apps, err := p.directory.FilterApplications(dirCtx, task.RewardContractAddress, task.AppIDs)
	cancel()
	if err != nil {
		return types.TaskResponse{}, err
	}

	byID := make(map[uint64][]types.ApplicationRecord, len(apps))
	for _, app := range apps {
		id := uint64(app.OnchainAppID)
		byID[id] = append(byID[id], app)
	}

	response := types.TaskResponse{
		ReferenceTaskIndex: task.TaskIndex,
		AppIDs:             make([]uint64, 0, len(task.AppIDs)),
		AdditionalRewards:  make([]*big.Int, 0, len(task.AppIDs)),
	}
	computed := make(map[uint64]*big.Int, len(task.AppIDs))
	for _, id := range task.AppIDs {
		fee, ok := computed[id]
		if !ok {
			fee, err = p.appFee(ctx, task, id, byID[id], logger)
			if err != nil {
				return types.TaskResponse{}, err
			}
			computed[id] = fee
		}
		response.AppIDs = append(response.AppIDs, id)
		response.AdditionalRewards = append(response.AdditionalRewards, new(big.Int).Set(fee))
	}
	return response, nil
}

func (p *Processor) appFee(ctx context.Context, task types.Task, id uint64, records []types.ApplicationRecord, logger logging.Logger) (*big.Int, error) {
	switch {
	case len(records) == 0:
		logger.Warn("App id not found in directory", "app_id", id)
		return new(big.Int), nil
	case len(records) > 1:
		logger.Warn("App id resolves to more than one record", "app_id", id, "records", len(records))
		return new(big.Int), nil
	case len(records[0].MonitoredContracts()) == 0:
		logger.Warn("App has no monitored contracts", "app_id", id)
		return new(big.Int), nil
	}

	fee, err := p.aggregator.AggregateFee(ctx, records[0], task.FromBlockNum, task.ToBlockNum)
	if err != nil {
		return nil, err
	}
	logger.Debug("App fee aggregated", "app_id", id, "fee", fee.String())
	return fee, nil
}

func (p *Processor) alreadyAnswered(ctx context.Context, task types.Task) (bool, error) {
	if p.responses == nil {
		return false, nil
	}
	callCtx, cancel := context.WithTimeout(ctx, p.config.RequestTimeout)
	defer cancel()
	recorded, err := p.responses.TaskResponse(callCtx, p.signer.Address(), task.TaskIndex)
	if err != nil {
		return false, fmt.Errorf("%w: failed to read task response: %v", pkgErrors.ErrChainSubmission, err)
	}
	return len(recorded) > 0, nil
}
