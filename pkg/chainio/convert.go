package chainio

import (
	"fmt"
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	servicemanager "github.com/trigg3rX/feeshare-avs/pkg/bindings/contractFeeShareServiceManager"
	pkgErrors "github.com/trigg3rX/feeshare-avs/pkg/errors"
	"github.com/trigg3rX/feeshare-avs/pkg/types"
)

var zeroAddress common.Address

func toUint32(name string, v uint64) (uint32, error) {
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %s %d does not fit in uint32", pkgErrors.ErrInvalidTask, name, v)
	}
	return uint32(v), nil
}

func appIDsToBig(ids []uint64) []*big.Int {
	out := make([]*big.Int, len(ids))
	for i, id := range ids {
		out[i] = new(big.Int).SetUint64(id)
	}
	return out
}

func appIDsFromBig(ids []*big.Int) ([]uint64, error) {
	out := make([]uint64, len(ids))
	for i, id := range ids {
		if id == nil || id.Sign() < 0 || !id.IsUint64() {
			return nil, fmt.Errorf("%w: app id %v is out of range", pkgErrors.ErrInvalidTask, id)
		}
		out[i] = id.Uint64()
	}
	return out, nil
}

// TaskToBinding converts a task into the struct respondToTask expects.
func TaskToBinding(task types.Task) (servicemanager.IFeeShareServiceManagerTask, error) {
	from, err := toUint32("fromBlockNum", task.FromBlockNum)
	if err != nil {
		return servicemanager.IFeeShareServiceManagerTask{}, err
	}
	to, err := toUint32("toBlockNum", task.ToBlockNum)
	if err != nil {
		return servicemanager.IFeeShareServiceManagerTask{}, err
	}
	return servicemanager.IFeeShareServiceManagerTask{
		RewardContractAddress: task.RewardContractAddress,
		AppIds:                appIDsToBig(task.AppIDs),
		FromBlockNum:          from,
		ToBlockNum:            to,
		TaskCreatedBlock:      task.TaskCreatedBlock,
	}, nil
}

// TaskFromEvent converts a NewTaskCreated event into a task.
func TaskFromEvent(ev *servicemanager.FeeShareServiceManagerNewTaskCreated) (types.Task, error) {
	if ev == nil {
		return types.Task{}, fmt.Errorf("%w: event is nil", pkgErrors.ErrInvalidTask)
	}
	ids, err := appIDsFromBig(ev.Task.AppIds)
	if err != nil {
		return types.Task{}, err
	}
	task := types.Task{
		RewardContractAddress: ev.Task.RewardContractAddress,
		AppIDs:                ids,
		FromBlockNum:          uint64(ev.Task.FromBlockNum),
		ToBlockNum:            uint64(ev.Task.ToBlockNum),
		TaskCreatedBlock:      ev.Task.TaskCreatedBlock,
		TaskIndex:             ev.TaskIndex,
	}
	if err := task.Validate(); err != nil {
		return types.Task{}, fmt.Errorf("%w: %v", pkgErrors.ErrInvalidTask, err)
	}
	return task, nil
}

func ResponseToBinding(response types.TaskResponse) servicemanager.IFeeShareServiceManagerTaskResponse {
	rewards := make([]*big.Int, len(response.AdditionalRewards))
	for i, r := range response.AdditionalRewards {
		rewards[i] = new(big.Int).Set(r)
	}
	return servicemanager.IFeeShareServiceManagerTaskResponse{
		ReferenceTaskIndex: response.ReferenceTaskIndex,
		AppIds:             appIDsToBig(response.AppIDs),
		AdditionalRewards:  rewards,
	}
}
