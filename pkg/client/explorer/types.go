package explorer

import "github.com/trigg3rX/feeshare-avs/pkg/types"

const (
	statusOK             = "1"
	messageNoTxFound     = "No transactions found"
	messageNoRecordFound = "No records found"
)

// Transaction is one txlist entry. The explorer serialises every number as a
// decimal string.
type Transaction struct {
	BlockNumber      string        `json:"blockNumber"`
	TimeStamp        string        `json:"timeStamp"`
	Hash             string        `json:"hash"`
	From             string        `json:"from"`
	To               string        `json:"to"`
	Value            *types.BigInt `json:"value"`
	GasPrice         *types.BigInt `json:"gasPrice"`
	GasUsed          *types.BigInt `json:"gasUsed"`
	IsError          string        `json:"isError"`
	TxReceiptStatus  string        `json:"txreceipt_status"`
	ContractAddress  string        `json:"contractAddress"`
	Confirmations    string        `json:"confirmations"`
	TransactionIndex string        `json:"transactionIndex"`
}

// page is the decoded result of one txlist request.
type page struct {
	transactions []Transaction
	empty        bool
}
