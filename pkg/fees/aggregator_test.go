package fees

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "github.com/trigg3rX/feeshare-avs/pkg/errors"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
	"github.com/trigg3rX/feeshare-avs/pkg/types"
)

// fakeSource returns fixed samples per contract regardless of the requested range.
type fakeSource struct {
	samples map[common.Address]types.FeeSamples
	errs    map[common.Address]error
	calls   []common.Address
}

func (f *fakeSource) FetchTransactions(_ context.Context, contract common.Address, _, _ uint64) (types.FeeSamples, error) {
	f.calls = append(f.calls, contract)
	if err := f.errs[contract]; err != nil {
		return nil, err
	}
	return f.samples[contract], nil
}

func sample(block uint64, fee int64) types.TransactionFeeSample {
	return types.TransactionFeeSample{BlockNumber: block, GasFee: big.NewInt(fee)}
}

func app(id uint64, contracts ...string) types.ApplicationRecord {
	return types.ApplicationRecord{
		OnchainAppID: types.AppID(id),
		Params:       types.AppParams{WhitelistedAppContracts: contracts},
	}
}

var (
	contractA = common.HexToAddress("0xa")
	contractB = common.HexToAddress("0xb")
)

func TestAggregateFee_RangeIsInclusive(t *testing.T) {
	source := &fakeSource{samples: map[common.Address]types.FeeSamples{
		contractA: {99: sample(99, 1000), 100: sample(100, 10), 102: sample(102, 5), 103: sample(103, 1000)},
	}}
	agg := NewAggregator(source, logging.NewNoOpLogger())

	total, err := agg.AggregateFee(context.Background(), app(1, contractA.Hex()), 100, 102)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(15), total)
}

func TestAggregateFee_SumsAcrossContracts(t *testing.T) {
	source := &fakeSource{samples: map[common.Address]types.FeeSamples{
		contractA: {100: sample(100, 10)},
		contractB: {101: sample(101, 7)},
	}}
	agg := NewAggregator(source, logging.NewNoOpLogger())

	total, err := agg.AggregateFee(context.Background(), app(1, contractA.Hex(), contractB.Hex()), 100, 101)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(17), total)
	assert.Equal(t, []common.Address{contractA, contractB}, source.calls)
}

func TestAggregateFee_NoContractsIsZero(t *testing.T) {
	source := &fakeSource{}
	agg := NewAggregator(source, logging.NewNoOpLogger())

	total, err := agg.AggregateFee(context.Background(), app(1), 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, total.Sign())
	assert.Empty(t, source.calls)
}

func TestAggregateFee_FirstErrorAborts(t *testing.T) {
	fetchErr := fmt.Errorf("%w: boom", pkgErrors.ErrExplorerUnavailable)
	source := &fakeSource{
		samples: map[common.Address]types.FeeSamples{contractB: {1: sample(1, 1)}},
		errs:    map[common.Address]error{contractA: fetchErr},
	}
	agg := NewAggregator(source, logging.NewNoOpLogger())

	total, err := agg.AggregateFee(context.Background(), app(1, contractA.Hex(), contractB.Hex()), 0, 10)
	assert.Nil(t, total)
	assert.ErrorIs(t, err, pkgErrors.ErrExplorerUnavailable)
	assert.Equal(t, []common.Address{contractA}, source.calls)
}

func TestAggregateFee_InvalidRange(t *testing.T) {
	agg := NewAggregator(&fakeSource{}, logging.NewNoOpLogger())

	_, err := agg.AggregateFee(context.Background(), app(1, contractA.Hex()), 11, 10)
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidBlockRange)
}

func TestAggregateFee_IsDeterministic(t *testing.T) {
	source := &fakeSource{samples: map[common.Address]types.FeeSamples{
		contractA: {1: sample(1, 3), 2: sample(2, 4), 3: sample(3, 5)},
		contractB: {2: sample(2, 6)},
	}}
	agg := NewAggregator(source, logging.NewNoOpLogger())
	record := app(1, contractA.Hex(), contractB.Hex())

	first, err := agg.AggregateFee(context.Background(), record, 1, 3)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := agg.AggregateFee(context.Background(), record, 1, 3)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, big.NewInt(18), first)
}
