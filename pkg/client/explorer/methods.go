package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/tidwall/gjson"

	pkgErrors "github.com/trigg3rX/feeshare-avs/pkg/errors"
	"github.com/trigg3rX/feeshare-avs/pkg/types"
)

// maxPages bounds pagination against an explorer that ignores the offset.
var maxPages = 10000

// FetchTransactions returns the gas fees paid to contract between fromBlock
// and toBlock, keyed by block. Fees of transactions in the same block are
// added together; a hash returned twice is counted once. Rows without a hash
// are always counted.
func (c *Client) FetchTransactions(ctx context.Context, contract common.Address, fromBlock, toBlock uint64) (types.FeeSamples, error) {
	if fromBlock > toBlock {
		return nil, fmt.Errorf("%w: from block %d is after to block %d", pkgErrors.ErrInvalidBlockRange, fromBlock, toBlock)
	}

	var rows []Transaction
	byHash := make(map[common.Hash]int)

	complete := false
	for pageNum := 1; pageNum <= maxPages; pageNum++ {
		p, err := c.fetchPage(ctx, contract, fromBlock, toBlock, pageNum)
		if err != nil {
			c.observe("error")
			return nil, err
		}
		c.observe("success")
		if p.empty {
			complete = true
			break
		}

		for _, tx := range p.transactions {
			if !strings.EqualFold(strings.TrimSpace(tx.To), contract.Hex()) {
				continue
			}
			if strings.TrimSpace(tx.Hash) == "" {
				rows = append(rows, tx)
				continue
			}
			hash := common.HexToHash(tx.Hash)
			if i, seen := byHash[hash]; seen {
				rows[i] = tx
				continue
			}
			byHash[hash] = len(rows)
			rows = append(rows, tx)
		}

		if len(p.transactions) < c.config.PageSize {
			complete = true
			break
		}
	}
	if !complete {
		return nil, fmt.Errorf("%w: txlist for %s still had results after %d pages", pkgErrors.ErrExplorerUnavailable, contract.Hex(), maxPages)
	}

	samples := make(types.FeeSamples)
	for _, tx := range rows {
		block, err := strconv.ParseUint(strings.TrimSpace(tx.BlockNumber), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid block number %q in tx %s", pkgErrors.ErrExplorerUnavailable, tx.BlockNumber, tx.Hash)
		}
		fee := new(big.Int).Mul(tx.GasPrice.Value(), tx.GasUsed.Value())

		sample, ok := samples[block]
		if !ok {
			sample = types.TransactionFeeSample{BlockNumber: block, GasFee: new(big.Int)}
		}
		sample.GasFee.Add(sample.GasFee, fee)
		samples[block] = sample
	}

	c.logger.Debug("Fetched explorer transactions",
		"contract", contract.Hex(),
		"from_block", fromBlock,
		"to_block", toBlock,
		"transactions", len(rows),
		"blocks", len(samples),
	)
	return samples, nil
}

func (c *Client) fetchPage(ctx context.Context, contract common.Address, fromBlock, toBlock uint64, pageNum int) (*page, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", pkgErrors.ErrExplorerUnavailable, err)
	}

	resp, err := c.httpClient.Get(ctx, c.config.TxListEndpoint(contract, fromBlock, toBlock, pageNum))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch txlist page %d: %v", pkgErrors.ErrExplorerUnavailable, pageNum, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", pkgErrors.ErrExplorerUnavailable, err)
	}
	return parsePage(body)
}

// parsePage interprets a txlist payload. On failure the explorer puts an
// error string in result instead of an array.
func parsePage(body []byte) (*page, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: response is not valid JSON", pkgErrors.ErrExplorerUnavailable)
	}

	status := gjson.GetBytes(body, "status").String()
	message := gjson.GetBytes(body, "message").String()
	result := gjson.GetBytes(body, "result")

	if status != statusOK {
		if strings.EqualFold(message, messageNoTxFound) || strings.EqualFold(message, messageNoRecordFound) {
			return &page{empty: true}, nil
		}
		return nil, fmt.Errorf("%w: explorer returned status %q: %s %s", pkgErrors.ErrExplorerUnavailable, status, message, result.String())
	}
	if !result.IsArray() {
		return nil, fmt.Errorf("%w: result is not a transaction list", pkgErrors.ErrExplorerUnavailable)
	}

	var txs []Transaction
	if err := json.Unmarshal([]byte(result.Raw), &txs); err != nil {
		return nil, fmt.Errorf("%w: failed to decode transactions: %v", pkgErrors.ErrExplorerUnavailable, err)
	}
	return &page{transactions: txs, empty: len(txs) == 0}, nil
}
