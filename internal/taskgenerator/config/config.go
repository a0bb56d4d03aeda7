package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/trigg3rX/feeshare-avs/pkg/env"
)

type Config struct {
	devMode bool

	rpcURL  string
	chainID uint64

	// Task creation key; CONSUMER_PRIVATE_KEY with PRIVATE_KEY as fallback
	consumerPrivateKey string

	appAPIURL string

	newTaskInterval  time.Duration
	averageBlockTime time.Duration

	deploymentsDir                string
	feeShareServiceManagerAddress string

	metricsPort    string
	requestTimeout time.Duration
}

var cfg Config

func Init() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error loading .env file: %w", err)
	}
	consumerKey := env.GetEnvSecret("CONSUMER_PRIVATE_KEY")
	if env.IsEmpty(consumerKey) {
		consumerKey = env.GetEnvSecret("PRIVATE_KEY")
	}
	cfg = Config{
		devMode:                       env.GetEnvBool("DEV_MODE", false),
		rpcURL:                        env.GetEnvString("RPC_URL", ""),
		chainID:                       env.GetEnvUint64("CHAIN_ID", 0),
		consumerPrivateKey:            consumerKey,
		appAPIURL:                     env.GetEnvString("APP_API_URL", ""),
		newTaskInterval:               env.GetEnvMillis("NEWTASK_INTERVAL", 10*time.Second),
		averageBlockTime:              env.GetEnvMillis("AVERAGE_BLOCK_TIME", 2*time.Second),
		deploymentsDir:                env.GetEnvString("DEPLOYMENTS_DIR", "contracts/deployments"),
		feeShareServiceManagerAddress: env.GetEnvString("FEESHARE_SERVICE_MANAGER_ADDRESS", ""),
		metricsPort:                   env.GetEnvString("TASK_GENERATOR_METRICS_PORT", "9012"),
		requestTimeout:                env.GetEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
	}
	if err := validateConfig(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if !cfg.devMode {
		gin.SetMode(gin.ReleaseMode)
	}
	return nil
}

func validateConfig() error {
	if !env.IsValidURL(cfg.rpcURL) {
		return fmt.Errorf("invalid RPC URL: %s", cfg.rpcURL)
	}
	if cfg.chainID == 0 {
		return fmt.Errorf("CHAIN_ID is required")
	}
	if !env.IsValidPrivateKey(cfg.consumerPrivateKey) {
		return fmt.Errorf("invalid consumer private key")
	}
	if !env.IsValidURL(cfg.appAPIURL) {
		return fmt.Errorf("invalid app API URL: %s", cfg.appAPIURL)
	}
	if cfg.newTaskInterval <= 0 {
		return fmt.Errorf("invalid new task interval: %s", cfg.newTaskInterval)
	}
	if cfg.averageBlockTime <= 0 {
		return fmt.Errorf("invalid average block time: %s", cfg.averageBlockTime)
	}
	if !env.IsEmpty(cfg.feeShareServiceManagerAddress) && !env.IsValidEthAddress(cfg.feeShareServiceManagerAddress) {
		return fmt.Errorf("invalid FeeShareServiceManager address: %s", cfg.feeShareServiceManagerAddress)
	}
	if !env.IsValidPort(cfg.metricsPort) {
		return fmt.Errorf("invalid metrics port: %s", cfg.metricsPort)
	}
	if cfg.requestTimeout <= 0 {
		return fmt.Errorf("invalid request timeout: %s", cfg.requestTimeout)
	}
	return nil
}

func IsDevMode() bool {
	return cfg.devMode
}

func GetRPCURL() string {
	return cfg.rpcURL
}

func GetChainID() uint64 {
	return cfg.chainID
}

func GetConsumerPrivateKey() string {
	return cfg.consumerPrivateKey
}

func GetAppAPIURL() string {
	return cfg.appAPIURL
}

func GetNewTaskInterval() time.Duration {
	return cfg.newTaskInterval
}

func GetAverageBlockTime() time.Duration {
	return cfg.averageBlockTime
}

// GetBlockWindow is the number of blocks one tick covers.
func GetBlockWindow() uint64 {
	return uint64(cfg.newTaskInterval / cfg.averageBlockTime)
}

func GetDeploymentsDir() string {
	return cfg.deploymentsDir
}

func GetServiceManagerOverride() common.Address {
	if env.IsEmpty(cfg.feeShareServiceManagerAddress) {
		return common.Address{}
	}
	return common.HexToAddress(cfg.feeShareServiceManagerAddress)
}

func GetMetricsPort() string {
	return cfg.metricsPort
}

func GetRequestTimeout() time.Duration {
	return cfg.requestTimeout
}
