package operator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/trigg3rX/feeshare-avs/internal/operator/api"
	"github.com/trigg3rX/feeshare-avs/internal/operator/config"
	"github.com/trigg3rX/feeshare-avs/internal/operator/core"
	"github.com/trigg3rX/feeshare-avs/internal/operator/metrics"
	"github.com/trigg3rX/feeshare-avs/pkg/attestation"
	"github.com/trigg3rX/feeshare-avs/pkg/client/appdirectory"
	"github.com/trigg3rX/feeshare-avs/pkg/client/explorer"
	"github.com/trigg3rX/feeshare-avs/pkg/fees"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
	pkgmetrics "github.com/trigg3rX/feeshare-avs/pkg/metrics"
	"github.com/trigg3rX/feeshare-avs/pkg/retry"
)

// Operator listens for fee-share tasks and answers them with signed fee
// attestations.
type Operator struct {
	logger  logging.Logger
	address common.Address

	chain     *Chain
	wsClient  *ethclient.Client
	explorer  *explorer.Client
	directory *appdirectory.Client

	queue     *core.TaskQueue
	worker    *core.Worker
	listener  *core.Listener
	apiServer *api.Server
	collector *pkgmetrics.Collector

	startedAt time.Time
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	closeOnce sync.Once
}

var _ api.StatusProvider = (*Operator)(nil)

// NewOperator builds every component from the loaded configuration.
func NewOperator(ctx context.Context, logger logging.Logger) (*Operator, error) {
	privateKey, err := LoadOperatorKey()
	if err != nil {
		return nil, fmt.Errorf("failed to load operator key: %w", err)
	}
	signer, err := attestation.NewSigner(privateKey)
	if err != nil {
		return nil, err
	}
	logger.Info("Operator key loaded", "address", signer.Address().Hex())

	o := &Operator{
		logger:  logger,
		address: signer.Address(),
	}

	o.chain, err = ConnectChain(ctx, privateKey, logger)
	if err != nil {
		return nil, err
	}
	// Fails fast when the configured address is not a service manager.
	readCtx, cancel := context.WithTimeout(ctx, config.GetRequestTimeout())
	latestTask, err := o.chain.Reader.LatestTaskNum(readCtx)
	cancel()
	if err != nil {
		o.Close()
		return nil, fmt.Errorf("failed to read latest task number: %w", err)
	}
	logger.Info("Service manager reachable", "latest_task_num", latestTask)
	subscriber, wsClient, err := connectSubscriber(ctx, o.chain.Contracts.Addresses, logger)
	if err != nil {
		o.Close()
		return nil, err
	}
	o.wsClient = wsClient

	o.collector = pkgmetrics.NewCollector("operator")
	m := metrics.New(o.collector)

	o.explorer, err = NewExplorerClient(logger)
	if err != nil {
		o.Close()
		return nil, err
	}
	o.explorer.WithObserver(m.ObserveExplorerRequest)
	o.directory, err = NewDirectoryClient(logger)
	if err != nil {
		o.Close()
		return nil, err
	}

	processor := core.NewProcessor(
		o.directory,
		fees.NewAggregator(o.explorer, logger),
		signer,
		o.chain.Writer,
		o.chain.Reader,
		core.ProcessorConfig{
			RequestTimeout:    config.GetRequestTimeout(),
			SubmitZeroRewards: config.SubmitZeroRewards(),
		},
	)

	o.queue = core.NewTaskQueue(config.GetTaskQueueSize(), logger, m)
	o.worker = core.NewWorker(o.queue, processor, taskRetryConfig(), logger, m)

	listenerConfig := core.ListenerConfig{
		PollInterval:   config.GetEventPollInterval(),
		RequestTimeout: config.GetRequestTimeout(),
	}
	if subscriber == nil {
		logger.Warn("WS_RPC_URL not set, polling for new tasks", "interval", listenerConfig.PollInterval)
	}
	o.listener = core.NewListener(subscriber, o.chain.Reader, o.queue, listenerConfig, logger)

	o.apiServer = api.NewServer(api.Config{Port: config.GetOperatorAPIPort()}, api.Dependencies{
		Logger:    logger,
		Status:    o,
		Collector: o.collector,
	})
	return o, nil
}

func taskRetryConfig() *retry.RetryConfig {
	delay := config.GetTaskRetryDelay()
	if delay <= 0 {
		delay = time.Second
	}
	return &retry.RetryConfig{
		MaxRetries:      config.GetTaskMaxAttempts(),
		InitialDelay:    delay,
		MaxDelay:        10 * delay,
		BackoffFactor:   2.0,
		LogRetryAttempt: true,
	}
}

// Start runs the operator until ctx is cancelled or the event source fails.
func (o *Operator) Start(ctx context.Context) error {
	ctx, o.cancel = context.WithCancel(ctx)
	o.startedAt = time.Now()
	o.collector.Start()

	errCh := make(chan error, 2)
	go func() {
		if err := o.apiServer.Start(); err != nil {
			errCh <- err
		}
	}()

	o.wg.Add(2)
	go func() {
		defer o.wg.Done()
		o.worker.Run(ctx)
	}()
	go func() {
		defer o.wg.Done()
		if err := o.listener.Run(ctx); err != nil {
			errCh <- fmt.Errorf("task listener stopped: %w", err)
		}
	}()

	o.logger.Info("Operator started", "address", o.address.Hex())
	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Close stops every component. A response submission in flight finishes first.
func (o *Operator) Close() error {
	var errs []error
	o.closeOnce.Do(func() {
		if o.cancel != nil {
			o.cancel()
		}
		o.wg.Wait()

		if o.apiServer != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := o.apiServer.Stop(ctx); err != nil {
				errs = append(errs, fmt.Errorf("api server: %w", err))
			}
			cancel()
		}
		if o.collector != nil {
			o.collector.Stop()
		}
		if o.explorer != nil {
			o.explorer.Close()
		}
		if o.directory != nil {
			o.directory.Close()
		}
		if o.wsClient != nil {
			o.wsClient.Close()
		}
		if o.chain != nil {
			o.chain.Close()
		}
	})
	return errors.Join(errs...)
}

func (o *Operator) OperatorAddress() common.Address {
	return o.address
}

func (o *Operator) QueueDepth() int {
	return o.queue.Len()
}

func (o *Operator) QueueCapacity() int {
	return o.queue.Cap()
}

func (o *Operator) LastTask() *core.TaskStatus {
	return o.worker.LastTask()
}

func (o *Operator) StartedAt() time.Time {
	return o.startedAt
}
