package taskgenerator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/trigg3rX/feeshare-avs/internal/taskgenerator/config"
	"github.com/trigg3rX/feeshare-avs/internal/taskgenerator/metrics"
	"github.com/trigg3rX/feeshare-avs/internal/taskgenerator/scheduler"
	"github.com/trigg3rX/feeshare-avs/pkg/chainio"
	"github.com/trigg3rX/feeshare-avs/pkg/client/appdirectory"
	"github.com/trigg3rX/feeshare-avs/pkg/cryptography"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
	pkgmetrics "github.com/trigg3rX/feeshare-avs/pkg/metrics"
)

// TaskGenerator periodically creates one fee-share task per reward contract.
type TaskGenerator struct {
	logger    logging.Logger
	ethClient *ethclient.Client
	directory *appdirectory.Client
	generator *Generator
	scheduler *scheduler.Scheduler
	server    *metricsServer
	collector *pkgmetrics.Collector

	lastTick  atomic.Pointer[TickStatus]
	startedAt time.Time
	closeOnce sync.Once
}

// NewTaskGenerator connects to the chain and the app directory using the
// loaded configuration.
func NewTaskGenerator(ctx context.Context, logger logging.Logger) (*TaskGenerator, error) {
	privateKey, err := cryptography.LoadPrivateKey(config.GetConsumerPrivateKey())
	if err != nil {
		return nil, fmt.Errorf("failed to load consumer key: %w", err)
	}

	tg := &TaskGenerator{logger: logger}

	tg.ethClient, err = chainio.DialEthClient(ctx, config.GetRPCURL(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	serviceManager, err := chainio.LoadServiceManagerAddress(
		config.GetDeploymentsDir(),
		config.GetChainID(),
		config.GetServiceManagerOverride(),
	)
	if err != nil {
		tg.Close()
		return nil, err
	}
	contracts, err := chainio.NewContractBindings(chainio.Addresses{FeeShareServiceManager: serviceManager}, tg.ethClient, logger)
	if err != nil {
		tg.Close()
		return nil, err
	}
	txMgr, sender, err := chainio.BuildTxManager(ctx, tg.ethClient, privateKey, config.IsDevMode())
	if err != nil {
		tg.Close()
		return nil, err
	}

	dirConfig, err := appdirectory.LoadConfig(config.GetAppAPIURL(), config.GetRequestTimeout())
	if err != nil {
		tg.Close()
		return nil, fmt.Errorf("invalid app directory config: %w", err)
	}
	tg.directory, err = appdirectory.NewAppDirectoryClient(dirConfig, logger)
	if err != nil {
		tg.Close()
		return nil, err
	}

	tg.collector = pkgmetrics.NewCollector("taskgenerator")
	tg.generator = NewGenerator(
		tg.directory,
		chainio.NewChainReader(contracts, logger, tg.ethClient),
		chainio.NewChainWriter(contracts, logger, txMgr),
		Config{
			BlockWindow:    config.GetBlockWindow(),
			RequestTimeout: config.GetRequestTimeout(),
		},
		logger,
		metrics.New(tg.collector),
	)

	tg.scheduler, err = scheduler.New(config.GetNewTaskInterval(), tg.runTick, logger)
	if err != nil {
		tg.Close()
		return nil, err
	}
	tg.server = newMetricsServer(config.GetMetricsPort(), tg, tg.collector, logger)

	logger.Info("Task generator initialized",
		"sender", sender.Hex(),
		"service_manager", serviceManager.Hex(),
		"interval", config.GetNewTaskInterval(),
		"block_window", config.GetBlockWindow(),
	)
	return tg, nil
}

// Start begins ticking and serving metrics. It does not block.
func (tg *TaskGenerator) Start(ctx context.Context) error {
	tg.startedAt = time.Now()
	tg.collector.Start()

	go func() {
		if err := tg.server.Start(); err != nil {
			tg.logger.Error("Metrics server failed", "error", err)
		}
	}()
	return tg.scheduler.Start(ctx)
}

func (tg *TaskGenerator) runTick(ctx context.Context) {
	result, err := tg.generator.Tick(ctx)
	status := &TickStatus{
		Head:       result.Head,
		Groups:     result.Groups,
		Created:    result.Created,
		Failed:     result.Failed,
		FinishedAt: time.Now().UTC(),
	}
	if err != nil && !errors.Is(err, ErrNoEligibleApps) {
		status.Error = err.Error()
	}
	tg.lastTick.Store(status)
}

// Close waits for the running tick, then releases every connection.
func (tg *TaskGenerator) Close() error {
	var errs []error
	tg.closeOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*config.GetRequestTimeout())
		defer cancel()

		if tg.scheduler != nil {
			if err := tg.scheduler.Stop(ctx); err != nil {
				errs = append(errs, fmt.Errorf("scheduler: %w", err))
			}
		}
		if tg.server != nil {
			if err := tg.server.Stop(ctx); err != nil {
				errs = append(errs, fmt.Errorf("metrics server: %w", err))
			}
		}
		if tg.collector != nil {
			tg.collector.Stop()
		}
		if tg.directory != nil {
			tg.directory.Close()
		}
		if tg.ethClient != nil {
			tg.ethClient.Close()
		}
	})
	return errors.Join(errs...)
}

func (tg *TaskGenerator) LastTick() *TickStatus {
	return tg.lastTick.Load()
}

func (tg *TaskGenerator) StartedAt() time.Time {
	return tg.startedAt
}
