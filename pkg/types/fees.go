package types

import "math/big"

// TransactionFeeSample is the gas fee paid to one monitored contract in one block.
type TransactionFeeSample struct {
	BlockNumber uint64   `json:"block_number"`
	GasFee      *big.Int `json:"gas_fee"`
}

// FeeSamples maps block number to the sample of that block.
type FeeSamples map[uint64]TransactionFeeSample

// SumRange adds the fees of every block in [from, to]. Missing blocks count as zero.
func (s FeeSamples) SumRange(from, to uint64) *big.Int {
	total := new(big.Int)
	for block, sample := range s {
		if block < from || block > to || sample.GasFee == nil {
			continue
		}
		total.Add(total, sample.GasFee)
	}
	return total
}
