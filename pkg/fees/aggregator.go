package fees

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	pkgErrors "github.com/trigg3rX/feeshare-avs/pkg/errors"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
	"github.com/trigg3rX/feeshare-avs/pkg/types"
)

// TransactionSource yields per-block gas fees paid to one contract.
type TransactionSource interface {
	FetchTransactions(ctx context.Context, contract common.Address, fromBlock, toBlock uint64) (types.FeeSamples, error)
}

// Aggregator computes the gas fees generated by an application's monitored
// contracts over a block range.
type Aggregator struct {
	source TransactionSource
	logger logging.Logger
}

func NewAggregator(source TransactionSource, logger logging.Logger) *Aggregator {
	return &Aggregator{
		source: source,
		logger: logger,
	}
}

// AggregateFee returns the sum of every fee paid to the application's
// contracts in [fromBlock, toBlock]. The first fetch error is returned as is
// and no partial total is produced.
func (a *Aggregator) AggregateFee(ctx context.Context, app types.ApplicationRecord, fromBlock, toBlock uint64) (*big.Int, error) {
	if fromBlock > toBlock {
		return nil, fmt.Errorf("%w: from block %d is after to block %d", pkgErrors.ErrInvalidBlockRange, fromBlock, toBlock)
	}

	total := new(big.Int)
	for _, contract := range app.MonitoredContracts() {
		samples, err := a.source.FetchTransactions(ctx, contract, fromBlock, toBlock)
		if err != nil {
			return nil, err
		}
		fee := samples.SumRange(fromBlock, toBlock)
		a.logger.Debug("Contract fee in range",
			"app_id", uint64(app.OnchainAppID),
			"contract", contract.Hex(),
			"from_block", fromBlock,
			"to_block", toBlock,
			"fee", fee.String(),
		)
		total.Add(total, fee)
	}
	return total, nil
}
