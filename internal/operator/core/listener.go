package core

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/event"

	servicemanager "github.com/trigg3rX/feeshare-avs/pkg/bindings/contractFeeShareServiceManager"
	"github.com/trigg3rX/feeshare-avs/pkg/chainio"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
	"github.com/trigg3rX/feeshare-avs/pkg/retry"
	"github.com/trigg3rX/feeshare-avs/pkg/types"
)

// filterBatchSize caps the block span of one eth_getLogs query.
const filterBatchSize = 500

// TaskFilterer is the polling source of NewTaskCreated events.
type TaskFilterer interface {
	BlockNumber(ctx context.Context) (uint64, error)
	FilterNewTasks(ctx context.Context, fromBlock, toBlock uint64) ([]types.Task, error)
}

type ListenerConfig struct {
	PollInterval   time.Duration
	RequestTimeout time.Duration
}

// Listener feeds the queue from NewTaskCreated events. With a subscriber it
// follows the websocket stream; otherwise it polls the logs of new blocks.
type Listener struct {
	subscriber chainio.AvsSubscriber
	filterer   TaskFilterer
	queue      *TaskQueue
	config     ListenerConfig
	logger     logging.Logger
}

func NewListener(
	subscriber chainio.AvsSubscriber,
	filterer TaskFilterer,
	queue *TaskQueue,
	config ListenerConfig,
	logger logging.Logger,
) *Listener {
	if config.PollInterval <= 0 {
		config.PollInterval = 6 * time.Second
	}
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = 30 * time.Second
	}
	return &Listener{
		subscriber: subscriber,
		filterer:   filterer,
		queue:      queue,
		config:     config,
		logger:     logger,
	}
}

// Run blocks until ctx is cancelled or the first subscription cannot be made.
func (l *Listener) Run(ctx context.Context) error {
	if l.subscriber != nil {
		return l.subscribe(ctx)
	}
	return l.poll(ctx)
}

// subscribe follows the websocket stream. After the stream drops, the logs
// emitted while it was down are read back with the filterer before new events
// are taken; stream events at or below the backfilled block are duplicates.
func (l *Listener) subscribe(ctx context.Context) error {
	var lastBlock, backfilled uint64
	if l.filterer != nil {
		head, err := l.head(ctx)
		if err != nil {
			return err
		}
		lastBlock = head
	}

	events := make(chan *servicemanager.FeeShareServiceManagerNewTaskCreated)
	sub, err := l.subscriber.SubscribeToNewTasks(events)
	if err != nil {
		return err
	}
	l.logger.Info("Listening for NewTaskCreated events", "from_block", lastBlock+1)

	for {
		select {
		case <-ctx.Done():
			sub.Unsubscribe()
			return nil
		case err := <-sub.Err():
			l.logger.Error("Task subscription dropped, resubscribing", "error", err)
			sub.Unsubscribe()
			sub, err = l.resubscribe(ctx, events)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			lastBlock = l.backfill(ctx, lastBlock)
			backfilled = lastBlock
		case ev := <-events:
			if backfilled > 0 && ev.Raw.BlockNumber <= backfilled {
				continue
			}
			lastBlock = max(lastBlock, ev.Raw.BlockNumber)
			l.handleEvent(ev)
		}
	}
}

func (l *Listener) resubscribe(
	ctx context.Context,
	events chan *servicemanager.FeeShareServiceManagerNewTaskCreated,
) (event.Subscription, error) {
	cfg := retry.DefaultRetryConfig()
	cfg.MaxRetries = 10
	return retry.Retry(ctx, func() (event.Subscription, error) {
		return l.subscriber.SubscribeToNewTasks(events)
	}, cfg, l.logger)
}

// backfill enqueues the tasks created after lastBlock and returns the last
// block read.
func (l *Listener) backfill(ctx context.Context, lastBlock uint64) uint64 {
	if l.filterer == nil {
		l.logger.Warn("No log filterer, tasks created while the subscription was down are lost")
		return lastBlock
	}
	from := lastBlock + 1
	err := retry.RetryFunc(ctx, func() error {
		next, err := l.pollOnce(ctx, lastBlock)
		lastBlock = next
		return err
	}, retry.DefaultRetryConfig(), l.logger)
	if err != nil {
		l.logger.Error("Failed to backfill NewTaskCreated events", "from_block", lastBlock+1, "error", err)
		return lastBlock
	}
	l.logger.Info("Backfilled NewTaskCreated events", "from_block", from, "to_block", lastBlock)
	return lastBlock
}

func (l *Listener) handleEvent(ev *servicemanager.FeeShareServiceManagerNewTaskCreated) {
	task, err := chainio.TaskFromEvent(ev)
	if err != nil {
		l.logger.Error("Skipping malformed NewTaskCreated event", "tx", ev.Raw.TxHash.Hex(), "error", err)
		return
	}
	l.logger.Info("New task created", "task_index", task.TaskIndex, "block", ev.Raw.BlockNumber)
	l.queue.Enqueue(task)
}

func (l *Listener) poll(ctx context.Context) error {
	lastBlock, err := l.head(ctx)
	if err != nil {
		return err
	}
	l.logger.Info("Polling for NewTaskCreated events", "from_block", lastBlock+1, "interval", l.config.PollInterval)

	ticker := time.NewTicker(l.config.PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			next, err := l.pollOnce(ctx, lastBlock)
			if err != nil {
				l.logger.Error("Failed to poll NewTaskCreated events", "from_block", lastBlock+1, "error", err)
			}
			lastBlock = next
		}
	}
}

// pollOnce enqueues the tasks created after lastBlock and returns the last
// block whose logs were fully read.
func (l *Listener) pollOnce(ctx context.Context, lastBlock uint64) (uint64, error) {
	head, err := l.head(ctx)
	if err != nil {
		return lastBlock, err
	}
	for start := lastBlock + 1; start <= head; start += filterBatchSize {
		end := start + filterBatchSize - 1
		if end > head {
			end = head
		}
		callCtx, cancel := context.WithTimeout(ctx, l.config.RequestTimeout)
		tasks, err := l.filterer.FilterNewTasks(callCtx, start, end)
		cancel()
		if err != nil {
			return start - 1, err
		}
		for _, task := range tasks {
			l.logger.Info("New task created", "task_index", task.TaskIndex, "block", task.TaskCreatedBlock)
			l.queue.Enqueue(task)
		}
	}
	return max(head, lastBlock), nil
}

func (l *Listener) head(ctx context.Context) (uint64, error) {
	callCtx, cancel := context.WithTimeout(ctx, l.config.RequestTimeout)
	defer cancel()
	return l.filterer.BlockNumber(callCtx)
}
