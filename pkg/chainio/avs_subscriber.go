package chainio

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/event"

	servicemanager "github.com/trigg3rX/feeshare-avs/pkg/bindings/contractFeeShareServiceManager"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
)

type AvsSubscriber interface {
	SubscribeToNewTasks(newTaskCreatedChan chan *servicemanager.FeeShareServiceManagerNewTaskCreated) (event.Subscription, error)
}

type ChainSubscriber struct {
	logger    logging.Logger
	contracts *ContractBindings
}

// forces ChainSubscriber to implement the chainio.AvsSubscriber interface
var _ AvsSubscriber = (*ChainSubscriber)(nil)

// NewChainSubscriber expects bindings made over a websocket client.
func NewChainSubscriber(contracts *ContractBindings, logger logging.Logger) *ChainSubscriber {
	return &ChainSubscriber{
		logger:    logger,
		contracts: contracts,
	}
}

func (s *ChainSubscriber) SubscribeToNewTasks(newTaskCreatedChan chan *servicemanager.FeeShareServiceManagerNewTaskCreated) (event.Subscription, error) {
	sub, err := s.contracts.ServiceManager.WatchNewTaskCreated(&bind.WatchOpts{}, newTaskCreatedChan, nil)
	if err != nil {
		s.logger.Error("Failed to subscribe to new tasks", "err", err)
		return nil, err
	}
	s.logger.Infof("Subscribed to new FeeShareServiceManager tasks")
	return sub, nil
}
