package chainio

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"

	avsdirectory "github.com/trigg3rX/feeshare-avs/pkg/bindings/contractAVSDirectory"
	delegation "github.com/trigg3rX/feeshare-avs/pkg/bindings/contractDelegationManager"
	stakeregistry "github.com/trigg3rX/feeshare-avs/pkg/bindings/contractECDSAStakeRegistry"
	servicemanager "github.com/trigg3rX/feeshare-avs/pkg/bindings/contractFeeShareServiceManager"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
)

type ContractBindings struct {
	Addresses         Addresses
	ServiceManager    *servicemanager.FeeShareServiceManager
	StakeRegistry     *stakeregistry.ECDSAStakeRegistry
	DelegationManager *delegation.DelegationManager
	AVSDirectory      *avsdirectory.AVSDirectory
}

// NewContractBindings binds every known contract. Zero addresses are left
// unbound so the task generator can run with only the service manager.
func NewContractBindings(
	addresses Addresses,
	backend bind.ContractBackend,
	logger logging.Logger,
) (*ContractBindings, error) {
	b := &ContractBindings{Addresses: addresses}

	var err error
	b.ServiceManager, err = servicemanager.NewFeeShareServiceManager(addresses.FeeShareServiceManager, backend)
	if err != nil {
		logger.Error("Failed to bind FeeShareServiceManager contract", "err", err)
		return nil, err
	}

	if addresses.StakeRegistry != zeroAddress {
		if b.StakeRegistry, err = stakeregistry.NewECDSAStakeRegistry(addresses.StakeRegistry, backend); err != nil {
			logger.Error("Failed to bind ECDSAStakeRegistry contract", "err", err)
			return nil, err
		}
	}
	if addresses.DelegationManager != zeroAddress {
		if b.DelegationManager, err = delegation.NewDelegationManager(addresses.DelegationManager, backend); err != nil {
			logger.Error("Failed to bind DelegationManager contract", "err", err)
			return nil, err
		}
	}
	if addresses.AVSDirectory != zeroAddress {
		if b.AVSDirectory, err = avsdirectory.NewAVSDirectory(addresses.AVSDirectory, backend); err != nil {
			logger.Error("Failed to bind AVSDirectory contract", "err", err)
			return nil, err
		}
	}
	return b, nil
}
