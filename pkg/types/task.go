package types

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Task is one accounting epoch for one reward contract.
// TaskCreatedBlock and TaskIndex are zero until the task is echoed by a
// NewTaskCreated event.
type Task struct {
	RewardContractAddress common.Address `json:"reward_contract_address"`
	AppIDs                []uint64       `json:"app_ids"`
	FromBlockNum          uint64         `json:"from_block_num"`
	ToBlockNum            uint64         `json:"to_block_num"`
	TaskCreatedBlock      uint32         `json:"task_created_block,omitempty"`
	TaskIndex             uint32         `json:"task_index"`
}

func (t Task) Validate() error {
	if t.RewardContractAddress == (common.Address{}) {
		return fmt.Errorf("reward contract address is empty")
	}
	if t.FromBlockNum > t.ToBlockNum {
		return fmt.Errorf("from block %d is after to block %d", t.FromBlockNum, t.ToBlockNum)
	}
	return nil
}

// TaskResponse is the payload an operator signs. AdditionalRewards[i] is the
// aggregate fee of AppIDs[i].
type TaskResponse struct {
	ReferenceTaskIndex uint32     `json:"reference_task_index"`
	AppIDs             []uint64   `json:"app_ids"`
	AdditionalRewards  []*big.Int `json:"additional_rewards"`
}

func (r TaskResponse) Validate() error {
	if len(r.AppIDs) != len(r.AdditionalRewards) {
		return fmt.Errorf("%d app ids but %d rewards", len(r.AppIDs), len(r.AdditionalRewards))
	}
	for i, reward := range r.AdditionalRewards {
		if reward == nil || reward.Sign() < 0 {
			return fmt.Errorf("reward %d for app %d is not a non-negative integer", i, r.AppIDs[i])
		}
	}
	return nil
}

// TotalRewards sums AdditionalRewards.
func (r TaskResponse) TotalRewards() *big.Int {
	total := new(big.Int)
	for _, reward := range r.AdditionalRewards {
		if reward != nil {
			total.Add(total, reward)
		}
	}
	return total
}

// SignedAttestation is what respondToTask receives as its signature argument
// once ABI encoded.
type SignedAttestation struct {
	OperatorAddresses []common.Address `json:"operator_addresses"`
	Signatures        [][]byte         `json:"signatures"`
	TaskCreatedBlock  uint32           `json:"task_created_block"`
}
