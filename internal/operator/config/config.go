package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/trigg3rX/feeshare-avs/pkg/chainio"
	"github.com/trigg3rX/feeshare-avs/pkg/env"
)

type Config struct {
	devMode bool

	// Chain access
	rpcURL   string
	wsRPCURL string
	chainID  uint64

	// Operator key, either raw hex or an encrypted keystore
	privateKey       string
	keystorePath     string
	keystorePassword string

	// App directory and block explorer
	appAPIURL         string
	explorerAPIURL    string
	explorerAPIKey    string
	explorerPageSize  int
	explorerRateLimit float64

	// Contract addresses; zero values are read from the deployment files
	deploymentsDir                string
	feeShareServiceManagerAddress string
	stakeRegistryAddress          string
	delegationManagerAddress      string
	avsDirectoryAddress           string

	operatorAPIPort string

	// Task processing
	taskQueueSize     int
	taskMaxAttempts   int
	taskRetryDelay    time.Duration
	eventPollInterval time.Duration
	requestTimeout    time.Duration
	submitZeroRewards bool

	// Registration
	operatorMetadataURI           string
	registrationSignatureValidity time.Duration
}

var cfg Config

func Init() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error loading .env file: %w", err)
	}
	cfg = Config{
		devMode:                       env.GetEnvBool("DEV_MODE", false),
		rpcURL:                        env.GetEnvString("RPC_URL", ""),
		wsRPCURL:                      env.GetEnvString("WS_RPC_URL", ""),
		chainID:                       env.GetEnvUint64("CHAIN_ID", 0),
		privateKey:                    env.GetEnvSecret("PRIVATE_KEY"),
		keystorePath:                  env.GetEnvString("OPERATOR_KEYSTORE_PATH", ""),
		keystorePassword:              env.GetEnvSecret("OPERATOR_KEYSTORE_PASSWORD"),
		appAPIURL:                     env.GetEnvString("APP_API_URL", ""),
		explorerAPIURL:                env.GetEnvString("EXPLORER_API_URL", "https://swell-testnet-explorer.alt.technology"),
		explorerAPIKey:                env.GetEnvSecret("EXPLORER_API_KEY"),
		explorerPageSize:              env.GetEnvInt("EXPLORER_PAGE_SIZE", 1000),
		explorerRateLimit:             env.GetEnvFloat("EXPLORER_RATE_LIMIT", 5),
		deploymentsDir:                env.GetEnvString("DEPLOYMENTS_DIR", "contracts/deployments"),
		feeShareServiceManagerAddress: env.GetEnvString("FEESHARE_SERVICE_MANAGER_ADDRESS", ""),
		stakeRegistryAddress:          env.GetEnvString("STAKE_REGISTRY_ADDRESS", ""),
		delegationManagerAddress:      env.GetEnvString("DELEGATION_MANAGER_ADDRESS", ""),
		avsDirectoryAddress:           env.GetEnvString("AVS_DIRECTORY_ADDRESS", ""),
		operatorAPIPort:               env.GetEnvString("OPERATOR_API_PORT", "9011"),
		taskQueueSize:                 env.GetEnvInt("TASK_QUEUE_SIZE", 100),
		taskMaxAttempts:               env.GetEnvInt("TASK_MAX_ATTEMPTS", 3),
		taskRetryDelay:                env.GetEnvDuration("TASK_RETRY_DELAY", 5*time.Second),
		eventPollInterval:             env.GetEnvDuration("EVENT_POLL_INTERVAL", 6*time.Second),
		requestTimeout:                env.GetEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		submitZeroRewards:             env.GetEnvBool("SUBMIT_ZERO_REWARDS", false),
		operatorMetadataURI:           env.GetEnvString("OPERATOR_METADATA_URI", ""),
		registrationSignatureValidity: env.GetEnvDuration("REGISTRATION_SIGNATURE_VALIDITY", time.Hour),
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
	if !env.IsEmpty(cfg.wsRPCURL) && !env.IsValidURL(cfg.wsRPCURL) {
		return fmt.Errorf("invalid WS RPC URL: %s", cfg.wsRPCURL)
	}
	if cfg.chainID == 0 {
		return fmt.Errorf("CHAIN_ID is required")
	}
	if env.IsEmpty(cfg.keystorePath) && !env.IsValidPrivateKey(cfg.privateKey) {
		return fmt.Errorf("either a valid PRIVATE_KEY or OPERATOR_KEYSTORE_PATH is required")
	}
	if !env.IsValidURL(cfg.appAPIURL) {
		return fmt.Errorf("invalid app API URL: %s", cfg.appAPIURL)
	}
	if !env.IsValidURL(cfg.explorerAPIURL) {
		return fmt.Errorf("invalid explorer API URL: %s", cfg.explorerAPIURL)
	}
	if cfg.explorerPageSize <= 0 {
		return fmt.Errorf("invalid explorer page size: %d", cfg.explorerPageSize)
	}
	for name, addr := range map[string]string{
		"FeeShareServiceManager": cfg.feeShareServiceManagerAddress,
		"StakeRegistry":          cfg.stakeRegistryAddress,
		"DelegationManager":      cfg.delegationManagerAddress,
		"AVSDirectory":           cfg.avsDirectoryAddress,
	} {
		if !env.IsEmpty(addr) && !env.IsValidEthAddress(addr) {
			return fmt.Errorf("invalid %s address: %s", name, addr)
		}
	}
	if !env.IsValidPort(cfg.operatorAPIPort) {
		return fmt.Errorf("invalid operator API port: %s", cfg.operatorAPIPort)
	}
	if cfg.taskQueueSize <= 0 {
		return fmt.Errorf("invalid task queue size: %d", cfg.taskQueueSize)
	}
	if cfg.taskMaxAttempts <= 0 {
		return fmt.Errorf("invalid task max attempts: %d", cfg.taskMaxAttempts)
	}
	if cfg.eventPollInterval <= 0 || cfg.requestTimeout <= 0 {
		return fmt.Errorf("event poll interval and request timeout must be positive")
	}
	if cfg.registrationSignatureValidity <= 0 {
		return fmt.Errorf("invalid registration signature validity: %s", cfg.registrationSignatureValidity)
	}
	return nil
}

func IsDevMode() bool {
	return cfg.devMode
}

func GetRPCURL() string {
	return cfg.rpcURL
}

func GetWSRPCURL() string {
	return cfg.wsRPCURL
}

func GetChainID() uint64 {
	return cfg.chainID
}

func GetPrivateKey() string {
	return cfg.privateKey
}

func GetKeystorePath() string {
	return cfg.keystorePath
}

func GetKeystorePassword() string {
	return cfg.keystorePassword
}

func GetAppAPIURL() string {
	return cfg.appAPIURL
}

func GetExplorerAPIURL() string {
	return cfg.explorerAPIURL
}

func GetExplorerAPIKey() string {
	return cfg.explorerAPIKey
}

func GetExplorerPageSize() int {
	return cfg.explorerPageSize
}

func GetExplorerRateLimit() float64 {
	return cfg.explorerRateLimit
}

func GetDeploymentsDir() string {
	return cfg.deploymentsDir
}

// GetAddressOverrides returns the contract addresses set in the environment.
func GetAddressOverrides() chainio.Addresses {
	return chainio.Addresses{
		FeeShareServiceManager: toAddress(cfg.feeShareServiceManagerAddress),
		StakeRegistry:          toAddress(cfg.stakeRegistryAddress),
		DelegationManager:      toAddress(cfg.delegationManagerAddress),
		AVSDirectory:           toAddress(cfg.avsDirectoryAddress),
	}
}

func GetOperatorAPIPort() string {
	return cfg.operatorAPIPort
}

func GetTaskQueueSize() int {
	return cfg.taskQueueSize
}

func GetTaskMaxAttempts() int {
	return cfg.taskMaxAttempts
}

func GetTaskRetryDelay() time.Duration {
	return cfg.taskRetryDelay
}

func GetEventPollInterval() time.Duration {
	return cfg.eventPollInterval
}

func GetRequestTimeout() time.Duration {
	return cfg.requestTimeout
}

func SubmitZeroRewards() bool {
	return cfg.submitZeroRewards
}

func GetOperatorMetadataURI() string {
	return cfg.operatorMetadataURI
}

func GetRegistrationSignatureValidity() time.Duration {
	return cfg.registrationSignatureValidity
}

func toAddress(s string) common.Address {
	if env.IsEmpty(s) {
		return common.Address{}
	}
	return common.HexToAddress(s)
}
