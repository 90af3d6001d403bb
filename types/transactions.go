package types

import "encoding/json"

type TransactionsResponse = Envelope[TransactionsData]

type TransactionsData struct {
	Address       string            `json:"address"`
	ChainId       uint64            `json:"chain_id"`
	ChainName     string            `json:"chain_name"`
	QuoteCurrency string            `json:"quote_currency"`
	Items         []TransactionItem `json:"items"`
}

// TransactionResponse is the envelope for a single-transaction lookup.
// The API reuses the list shape with exactly one item.
type TransactionResponse = Envelope[TransactionsData]

type TransactionItem struct {
	TxHash        string     `json:"tx_hash"`
	FromAddress   string     `json:"from_address"`
	ToAddress     string     `json:"to_address"`
	Value         string     `json:"value"`
	Successful    bool       `json:"successful"`
	BlockHeight   uint64     `json:"block_height"`
	BlockHash     string     `json:"block_hash"`
	BlockSignedAt string     `json:"block_signed_at"`
	GasPrice      uint64     `json:"gas_price"`
	GasLimit      uint64     `json:"gas_limit"`
	GasUsed       uint64     `json:"gas_used"`
	FeesPaid      string     `json:"fees_paid"`
	ValueQuote    float64    `json:"value_quote"`
	GasQuote      float64    `json:"gas_quote"`
	GasQuoteRate  float64    `json:"gas_quote_rate"`
	LogEvents     []LogEvent `json:"log_events,omitempty"`
}

type LogEvent struct {
	SenderContractAddress      string          `json:"sender_contract_address"`
	SenderContractTickerSymbol string          `json:"sender_contract_ticker_symbol"`
	RawLogData                 string          `json:"raw_log_data"`
	Decoded                    json.RawMessage `json:"decoded,omitempty"`
}

type TransactionSummaryResponse = Envelope[TransactionSummaryData]

type TransactionSummaryData struct {
	Address   string                   `json:"address"`
	ChainId   uint64                   `json:"chain_id"`
	ChainName string                   `json:"chain_name"`
	Items     []TransactionSummaryItem `json:"items"`
}

type TransactionSummaryItem struct {
	TotalCount          uint64                `json:"total_count"`
	EarliestTransaction *TransactionTimestamp `json:"earliest_transaction"`
	LatestTransaction   *TransactionTimestamp `json:"latest_transaction"`
}

type TransactionTimestamp struct {
	BlockSignedAt string `json:"block_signed_at"`
	TxHash        string `json:"tx_hash"`
	BlockHeight   uint64 `json:"block_height"`
}

type BlockTransactionsResponse = Envelope[BlockTransactionsData]

type BlockTransactionsData struct {
	ChainId   uint64            `json:"chain_id"`
	ChainName string            `json:"chain_name"`
	Items     []TransactionItem `json:"items"`
}

type TimeBucketResponse = Envelope[TimeBucketData]

type TimeBucketData struct {
	Address    string            `json:"address"`
	ChainId    uint64            `json:"chain_id"`
	ChainName  string            `json:"chain_name"`
	Complete   bool              `json:"complete"`
	TimeBucket uint64            `json:"time_bucket"`
	Items      []TransactionItem `json:"items"`
}
