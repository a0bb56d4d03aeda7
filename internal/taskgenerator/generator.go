package taskgenerator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"

	"github.com/trigg3rX/feeshare-avs/internal/taskgenerator/metrics"
	pkgErrors "github.com/trigg3rX/feeshare-avs/pkg/errors"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
	"github.com/trigg3rX/feeshare-avs/pkg/types"
)

// ErrNoEligibleApps ends a tick that found nothing to submit.
var ErrNoEligibleApps = errors.New("no eligible applications")

// AppLister lists every whitelisted application.
type AppLister interface {
	ListAllApplications(ctx context.Context) ([]types.ApplicationRecord, error)
}

// HeadReader returns the current chain head.
type HeadReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

// TaskCreator submits createNewTask and waits for its receipt.
type TaskCreator interface {
	CreateNewTask(ctx context.Context, task types.Task) (*gethtypes.Receipt, error)
}

// RewardGroup is the set of app ids sharing one reward contract.
type RewardGroup struct {
	RewardContract common.Address
	AppIDs         []uint64
}

// TickResult summarizes one generator tick.
type TickResult struct {
	Head    uint64
	Groups  int
	Created int
	Failed  int
}

type Config struct {
	// BlockWindow is the number of blocks before the head a task covers.
	BlockWindow    uint64
	RequestTimeout time.Duration
	// SubmitTimeout bounds one createNewTask including its receipt wait.
	SubmitTimeout time.Duration
}

type Generator struct {
	apps    AppLister
	head    HeadReader
	creator TaskCreator
	config  Config
	logger  logging.Logger
	metrics *metrics.Metrics
}

func NewGenerator(
	apps AppLister,
	head HeadReader,
	creator TaskCreator,
	config Config,
	logger logging.Logger,
	m *metrics.Metrics,
) *Generator {
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = 30 * time.Second
	}
	if config.SubmitTimeout <= 0 {
		config.SubmitTimeout = 4 * config.RequestTimeout
	}
	return &Generator{
		apps:    apps,
		head:    head,
		creator: creator,
		config:  config,
		logger:  logger,
		metrics: m,
	}
}

// Tick runs one round of task creation. Group failures are counted in the
// result and do not stop later groups; only a failure to read the head or the
// directory fails the tick.
func (g *Generator) Tick(ctx context.Context) (TickResult, error) {
	logger := g.logger.WithTraceID(uuid.New().String())
	started := time.Now()

	result, err := g.tick(ctx, logger)

	label := "success"
	switch {
	case errors.Is(err, ErrNoEligibleApps):
		label = "skipped"
		logger.Info("No whitelisted applications, skipping tick", "head", result.Head)
	case err != nil:
		label = "error"
		logger.Error("Tick failed", "error", err, "kind", pkgErrors.Kind(err))
	case result.Failed > 0:
		label = "partial"
	}
	if g.metrics != nil {
		g.metrics.Ticks.WithLabelValues(label).Inc()
		g.metrics.TickDuration.WithLabelValues(label).Observe(time.Since(started).Seconds())
	}
	if err == nil {
		logger.Info("Tick complete",
			"head", result.Head,
			"groups", result.Groups,
			"created", result.Created,
			"failed", result.Failed,
			"duration", time.Since(started),
		)
	}
	return result, err
}

func (g *Generator) tick(ctx context.Context, logger logging.Logger) (TickResult, error) {
	var result TickResult

	headCtx, cancel := context.WithTimeout(ctx, g.config.RequestTimeout)
	head, err := g.head.BlockNumber(headCtx)
	cancel()
	if err != nil {
		return result, fmt.Errorf("%w: failed to read chain head: %v", pkgErrors.ErrChainSubmission, err)
	}
	result.Head = head
	if g.metrics != nil {
		g.metrics.LastHeadBlock.Set(float64(head))
	}

	appsCtx, cancel := context.WithTimeout(ctx, g.config.RequestTimeout)
	apps, err := g.apps.ListAllApplications(appsCtx)
	cancel()
	if err != nil {
		return result, err
	}

	groups := GroupByRewardContract(apps, logger)
	result.Groups = len(groups)
	if len(groups) == 0 {
		return result, ErrNoEligibleApps
	}

	from, to := BlockRange(head, g.config.BlockWindow)
	for _, group := range groups {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		task := types.Task{
			RewardContractAddress: group.RewardContract,
			AppIDs:                group.AppIDs,
			FromBlockNum:          from,
			ToBlockNum:            to,
		}
		if err := g.createTask(ctx, task, logger); err != nil {
			result.Failed++
			if g.metrics != nil {
				g.metrics.GroupFailures.WithLabelValues(pkgErrors.Kind(err)).Inc()
			}
			logger.Error("Failed to create task",
				"reward_contract", group.RewardContract.Hex(),
				"app_ids", group.AppIDs,
				"error", err,
			)
			continue
		}
		result.Created++
	}
	return result, nil
}

func (g *Generator) createTask(ctx context.Context, task types.Task, logger logging.Logger) error {
	submitCtx, cancel := context.WithTimeout(ctx, g.config.SubmitTimeout)
	defer cancel()

	receipt, err := g.creator.CreateNewTask(submitCtx, task)
	if err != nil {
		return err
	}
	if g.metrics != nil {
		g.metrics.TasksCreated.Inc()
	}
	logger.Info("Task created",
		"reward_contract", task.RewardContractAddress.Hex(),
		"app_ids", task.AppIDs,
		"from_block", task.FromBlockNum,
		"to_block", task.ToBlockNum,
		"tx_hash", receipt.TxHash.Hex(),
	)
	return nil
}

// BlockRange returns [head - window, head], clamped at block zero.
func BlockRange(head, window uint64) (uint64, uint64) {
	if window > head {
		return 0, head
	}
	return head - window, head
}

// GroupByRewardContract groups app ids by reward contract. Groups keep the
// order in which their reward contract first appears and ids keep directory
// order. Records with a malformed reward address and repeated ids are dropped.
func GroupByRewardContract(apps []types.ApplicationRecord, logger logging.Logger) []RewardGroup {
	index := make(map[common.Address]int)
	seen := make(map[common.Address]map[uint64]struct{})
	var groups []RewardGroup

	for _, app := range apps {
		reward, ok := app.RewardContract()
		if !ok {
			logger.Warn("Skipping application with invalid reward address",
				"app_id", uint64(app.OnchainAppID),
				"reward_address", strings.TrimSpace(app.RewardAddress),
			)
			continue
		}
		id := uint64(app.OnchainAppID)

		i, exists := index[reward]
		if !exists {
			i = len(groups)
			index[reward] = i
			seen[reward] = make(map[uint64]struct{})
			groups = append(groups, RewardGroup{RewardContract: reward})
		}
		if _, dup := seen[reward][id]; dup {
			continue
		}
		seen[reward][id] = struct{}{}
		groups[i].AppIDs = append(groups[i].AppIDs, id)
	}
	return groups
}
