package chainio

import (
	"fmt"
	"math"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	servicemanager "github.com/trigg3rX/feeshare-avs/pkg/bindings/contractFeeShareServiceManager"
	pkgErrors "github.com/trigg3rX/feeshare-avs/pkg/errors"
	"github.com/trigg3rX/feeshare-avs/pkg/types"
)

func writeDeployment(t *testing.T, dir, kind string, chainID uint64, body string) {
	t.Helper()
	path := filepath.Join(dir, kind)
	require.NoError(t, os.MkdirAll(path, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(path, fmt.Sprintf("%d.json", chainID)), []byte(body), 0o644))
}

func TestLoadAddresses_FromDeploymentFiles(t *testing.T) {
	dir := t.TempDir()
	writeDeployment(t, dir, "fee-share", 1923, `{"addresses":{"feeShareServiceManager":"0x0000000000000000000000000000000000000001","stakeRegistry":"0x0000000000000000000000000000000000000002"}}`)
	writeDeployment(t, dir, "core", 1923, `{"addresses":{"delegationManager":"0x0000000000000000000000000000000000000003","avsDirectory":"0x0000000000000000000000000000000000000004"}}`)

	addrs, err := LoadAddresses(dir, 1923, Addresses{})
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x1"), addrs.FeeShareServiceManager)
	assert.Equal(t, common.HexToAddress("0x2"), addrs.StakeRegistry)
	assert.Equal(t, common.HexToAddress("0x3"), addrs.DelegationManager)
	assert.Equal(t, common.HexToAddress("0x4"), addrs.AVSDirectory)
}

func TestLoadAddresses_OverridesSkipFiles(t *testing.T) {
	overrides := Addresses{
		FeeShareServiceManager: common.HexToAddress("0xa"),
		StakeRegistry:          common.HexToAddress("0xb"),
		DelegationManager:      common.HexToAddress("0xc"),
		AVSDirectory:           common.HexToAddress("0xd"),
	}
	addrs, err := LoadAddresses(t.TempDir(), 1, overrides)
	require.NoError(t, err)
	assert.Equal(t, overrides, addrs)
}

func TestLoadAddresses_PartialOverride(t *testing.T) {
	dir := t.TempDir()
	writeDeployment(t, dir, "fee-share", 5, `{"addresses":{"feeShareServiceManager":"0x0000000000000000000000000000000000000001","stakeRegistry":"0x0000000000000000000000000000000000000002"}}`)
	writeDeployment(t, dir, "core", 5, `{"addresses":{"delegationManager":"0x0000000000000000000000000000000000000003","avsDirectory":"0x0000000000000000000000000000000000000004"}}`)

	addrs, err := LoadAddresses(dir, 5, Addresses{FeeShareServiceManager: common.HexToAddress("0xff")})
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0xff"), addrs.FeeShareServiceManager)
	assert.Equal(t, common.HexToAddress("0x2"), addrs.StakeRegistry)
}

func TestLoadAddresses_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadAddresses(dir, 1, Addresses{})
	assert.ErrorContains(t, err, "failed to read deployment file")

	writeDeployment(t, dir, "fee-share", 2, `{"addresses":{"feeShareServiceManager":"nope"}}`)
	_, err = LoadAddresses(dir, 2, Addresses{})
	assert.ErrorContains(t, err, "feeShareServiceManager")
}

func TestLoadServiceManagerAddress(t *testing.T) {
	dir := t.TempDir()

	addr, err := LoadServiceManagerAddress(dir, 9, common.HexToAddress("0xee"))
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0xee"), addr)

	_, err = LoadServiceManagerAddress(dir, 9, common.Address{})
	assert.Error(t, err)

	writeDeployment(t, dir, "fee-share", 9, `{"addresses":{"feeShareServiceManager":"0x0000000000000000000000000000000000000001"}}`)
	addr, err = LoadServiceManagerAddress(dir, 9, common.Address{})
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x1"), addr)
}

func TestTaskFromEvent(t *testing.T) {
	ev := &servicemanager.FeeShareServiceManagerNewTaskCreated{
		TaskIndex: 7,
		Task: servicemanager.IFeeShareServiceManagerTask{
			RewardContractAddress: common.HexToAddress("0xa"),
			AppIds:                []*big.Int{big.NewInt(1), big.NewInt(2)},
			FromBlockNum:          100,
			ToBlockNum:            105,
			TaskCreatedBlock:      106,
		},
	}

	task, err := TaskFromEvent(ev)
	require.NoError(t, err)
	assert.Equal(t, types.Task{
		RewardContractAddress: common.HexToAddress("0xa"),
		AppIDs:                []uint64{1, 2},
		FromBlockNum:          100,
		ToBlockNum:            105,
		TaskCreatedBlock:      106,
		TaskIndex:             7,
	}, task)

	ev.Task.AppIds = []*big.Int{new(big.Int).Lsh(big.NewInt(1), 70)}
	_, err = TaskFromEvent(ev)
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidTask)

	ev.Task.AppIds = nil
	ev.Task.FromBlockNum = 200
	_, err = TaskFromEvent(ev)
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidTask)

	_, err = TaskFromEvent(nil)
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidTask)
}

func TestTaskToBinding_RoundTripsAndChecksBounds(t *testing.T) {
	task := types.Task{
		RewardContractAddress: common.HexToAddress("0xa"),
		AppIDs:                []uint64{3},
		FromBlockNum:          10,
		ToBlockNum:            15,
		TaskCreatedBlock:      16,
		TaskIndex:             2,
	}
	b, err := TaskToBinding(task)
	require.NoError(t, err)

	back, err := TaskFromEvent(&servicemanager.FeeShareServiceManagerNewTaskCreated{TaskIndex: 2, Task: b})
	require.NoError(t, err)
	assert.Equal(t, task, back)

	task.ToBlockNum = math.MaxUint32 + 1
	_, err = TaskToBinding(task)
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidTask)
}

func TestResponseToBinding(t *testing.T) {
	b := ResponseToBinding(types.TaskResponse{
		ReferenceTaskIndex: 4,
		AppIDs:             []uint64{1, 2},
		AdditionalRewards:  []*big.Int{big.NewInt(15), big.NewInt(0)},
	})
	assert.Equal(t, uint32(4), b.ReferenceTaskIndex)
	assert.Equal(t, []*big.Int{big.NewInt(1), big.NewInt(2)}, b.AppIds)
	assert.Equal(t, []*big.Int{big.NewInt(15), big.NewInt(0)}, b.AdditionalRewards)
}
