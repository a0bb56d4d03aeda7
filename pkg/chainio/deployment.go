package chainio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
)

// Addresses of every contract the services talk to.
type Addresses struct {
	FeeShareServiceManager common.Address
	StakeRegistry          common.Address
	DelegationManager      common.Address
	AVSDirectory           common.Address
}

type deploymentFile struct {
	Addresses map[string]string `json:"addresses"`
}

// LoadAddresses reads {dir}/fee-share/{chainID}.json and {dir}/core/{chainID}.json.
// A non-zero override replaces the file value; a missing file is only an
// error when one of its addresses has no override.
func LoadAddresses(dir string, chainID uint64, overrides Addresses) (Addresses, error) {
	resolved := overrides

	needAVS := overrides.FeeShareServiceManager == (common.Address{}) || overrides.StakeRegistry == (common.Address{})
	needCore := overrides.DelegationManager == (common.Address{}) || overrides.AVSDirectory == (common.Address{})

	if needAVS {
		avs, err := readDeployment(filepath.Join(dir, "fee-share", fmt.Sprintf("%d.json", chainID)))
		if err != nil {
			return Addresses{}, err
		}
		if err := fill(&resolved.FeeShareServiceManager, avs, "feeShareServiceManager"); err != nil {
			return Addresses{}, err
		}
		if err := fill(&resolved.StakeRegistry, avs, "stakeRegistry"); err != nil {
			return Addresses{}, err
		}
	}

	if needCore {
		core, err := readDeployment(filepath.Join(dir, "core", fmt.Sprintf("%d.json", chainID)))
		if err != nil {
			return Addresses{}, err
		}
		if err := fill(&resolved.DelegationManager, core, "delegationManager"); err != nil {
			return Addresses{}, err
		}
		if err := fill(&resolved.AVSDirectory, core, "avsDirectory"); err != nil {
			return Addresses{}, err
		}
	}

	return resolved, nil
}

// LoadServiceManagerAddress resolves only the FeeShareServiceManager, which is
// all the task generator needs.
func LoadServiceManagerAddress(dir string, chainID uint64, override common.Address) (common.Address, error) {
	if override != (common.Address{}) {
		return override, nil
	}
	avs, err := readDeployment(filepath.Join(dir, "fee-share", fmt.Sprintf("%d.json", chainID)))
	if err != nil {
		return common.Address{}, err
	}
	var resolved common.Address
	if err := fill(&resolved, avs, "feeShareServiceManager"); err != nil {
		return common.Address{}, err
	}
	return resolved, nil
}

func readDeployment(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deployment file: %w", err)
	}
	var file deploymentFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse deployment file %s: %w", path, err)
	}
	return file.Addresses, nil
}

func fill(target *common.Address, addresses map[string]string, key string) error {
	if *target != (common.Address{}) {
		return nil
	}
	value, ok := addresses[key]
	if !ok || !common.IsHexAddress(value) {
		return fmt.Errorf("deployment file has no valid %s address", key)
	}
	*target = common.HexToAddress(value)
	return nil
}
