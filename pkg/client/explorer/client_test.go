package explorer

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "github.com/trigg3rX/feeshare-avs/pkg/errors"
	"github.com/trigg3rX/feeshare-avs/pkg/logging"
)

var testContract = common.HexToAddress("0x00000000000000000000000000000000000000aa")

func tx(hash, to string, block, gasPrice, gasUsed int) string {
	return fmt.Sprintf(`{"blockNumber":"%d","hash":"%s","to":"%s","gasPrice":"%d","gasUsed":"%d","isError":"0"}`,
		block, hash, to, gasPrice, gasUsed)
}

func okPage(txs ...string) string {
	return `{"status":"1","message":"OK","result":[` + strings.Join(txs, ",") + `]}`
}

func newTestClient(t *testing.T, url string, pageSize int) *Client {
	t.Helper()
	client, err := NewExplorerClient(&Config{
		BaseURL:   url,
		APIKey:    "test-key",
		PageSize:  pageSize,
		RateLimit: 0,
		Timeout:   DefaultConfig.Timeout,
	}, logging.NewNoOpLogger())
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client
}

func TestFetchTransactions_PaginatesFiltersAndSums(t *testing.T) {
	lower := strings.ToLower(testContract.Hex())
	pages := map[string]string{
		"1": okPage(
			tx("0x01", lower, 100, 10, 2),
			tx("0x02", "0x00000000000000000000000000000000000000bb", 100, 1000, 1000),
		),
		"2": okPage(
			tx("0x01", lower, 100, 10, 2),
			tx("0x03", testContract.Hex(), 102, 5, 1),
		),
		"3": `{"status":"0","message":"No transactions found","result":[]}`,
	}

	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		q := r.URL.Query()
		assert.Equal(t, "/api", r.URL.Path)
		assert.Equal(t, "account", q.Get("module"))
		assert.Equal(t, "txlist", q.Get("action"))
		assert.Equal(t, "100", q.Get("startblock"))
		assert.Equal(t, "102", q.Get("endblock"))
		assert.Equal(t, "asc", q.Get("sort"))
		assert.Equal(t, "2", q.Get("offset"))
		assert.Equal(t, "test-key", q.Get("apikey"))
		assert.True(t, strings.EqualFold(testContract.Hex(), q.Get("address")))
		_, _ = w.Write([]byte(pages[q.Get("page")]))
	}))
	defer server.Close()

	var outcomes []string
	client := newTestClient(t, server.URL, 2).WithObserver(func(outcome string) {
		outcomes = append(outcomes, outcome)
	})

	samples, err := client.FetchTransactions(context.Background(), testContract, 100, 102)
	require.NoError(t, err)

	assert.Equal(t, int32(3), requests.Load())
	assert.Equal(t, []string{"success", "success", "success"}, outcomes)
	require.Len(t, samples, 2)
	assert.Equal(t, big.NewInt(20), samples[100].GasFee)
	assert.Equal(t, big.NewInt(5), samples[102].GasFee)
	assert.Equal(t, uint64(102), samples[102].BlockNumber)
}

func TestFetchTransactions_SumsEntriesOfTheSameBlock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(okPage(
			tx("0x01", testContract.Hex(), 7, 3, 3),
			tx("0x02", testContract.Hex(), 7, 1, 1),
		)))
	}))
	defer server.Close()

	samples, err := newTestClient(t, server.URL, 100).FetchTransactions(context.Background(), testContract, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(10), samples[7].GasFee)
}

func TestFetchTransactions_CountsRowsWithoutHash(t *testing.T) {
	row := func(block, gasPrice, gasUsed int) string {
		return fmt.Sprintf(`{"blockNumber":"%d","to":"%s","gasPrice":"%d","gasUsed":"%d"}`,
			block, testContract.Hex(), gasPrice, gasUsed)
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(okPage(row(100, 5, 2), row(102, 5, 1), row(102, 1, 1))))
	}))
	defer server.Close()

	samples, err := newTestClient(t, server.URL, 100).FetchTransactions(context.Background(), testContract, 100, 102)
	require.NoError(t, err)
	assert.Len(t, samples, 2)
	assert.Equal(t, big.NewInt(10), samples[100].GasFee)
	assert.Equal(t, big.NewInt(6), samples[102].GasFee)
	assert.Equal(t, big.NewInt(16), samples.SumRange(100, 102))
}

func TestFetchTransactions_PageLimitIsAnError(t *testing.T) {
	defer func(limit int) { maxPages = limit }(maxPages)
	maxPages = 3

	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := requests.Add(1)
		_, _ = w.Write([]byte(okPage(tx(fmt.Sprintf("0x%x", n), testContract.Hex(), 1, 1, 1))))
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL, 1).FetchTransactions(context.Background(), testContract, 1, 2)
	assert.ErrorIs(t, err, pkgErrors.ErrExplorerUnavailable)
	assert.Equal(t, int32(3), requests.Load())
}

func TestFetchTransactions_NoTransactionsFoundIsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"0","message":"No transactions found","result":[]}`))
	}))
	defer server.Close()

	samples, err := newTestClient(t, server.URL, 100).FetchTransactions(context.Background(), testContract, 1, 2)
	require.NoError(t, err)
	assert.Empty(t, samples)
}

func TestFetchTransactions_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{"explorer error status", http.StatusOK, `{"status":"0","message":"NOTOK","result":"Invalid API Key"}`},
		{"server error", http.StatusInternalServerError, `oops`},
		{"malformed body", http.StatusOK, `{"status":`},
		{"result is not a list", http.StatusOK, `{"status":"1","message":"OK","result":"nope"}`},
		{"bad gas price", http.StatusOK, okPage(`{"blockNumber":"1","hash":"0x01","to":"` + testContract.Hex() + `","gasPrice":"1.5","gasUsed":"1"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.payload))
			}))
			defer server.Close()

			_, err := newTestClient(t, server.URL, 100).FetchTransactions(context.Background(), testContract, 1, 2)
			require.Error(t, err)
			assert.ErrorIs(t, err, pkgErrors.ErrExplorerUnavailable)
			assert.True(t, pkgErrors.IsRetryable(err))
		})
	}
}

func TestFetchTransactions_InvalidRange(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:1", 100)
	_, err := client.FetchTransactions(context.Background(), testContract, 5, 4)
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidBlockRange)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("https://explorer.example/", "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "https://explorer.example", cfg.BaseURL)
	assert.Equal(t, DefaultConfig.PageSize, cfg.PageSize)

	_, err = LoadConfig("::not a url", "", 0, 0)
	assert.Error(t, err)
}
