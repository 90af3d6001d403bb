package types

type BtcHdWalletResponse = Envelope[BtcHdWalletData]

type BtcHdWalletData struct {
	UpdatedAt string               `json:"updated_at"`
	Address   string               `json:"address"`
	Items     []BtcHdWalletBalance `json:"items"`
}

type BtcHdWalletBalance struct {
	TotalBalance    string `json:"total_balance"`
	TotalReceive    string `json:"total_receive"`
	TotalSpend      string `json:"total_spend"`
	HdWalletAddress string `json:"hd_wallet_address"`
	Address         string `json:"address"`
	Offset          uint64 `json:"offset"`
}

type BtcTransactionsResponse = Envelope[BtcTransactionsData]

type BtcTransactionsData struct {
	UpdatedAt     string               `json:"updated_at"`
	Address       string               `json:"address"`
	ChainId       uint64               `json:"chain_id"`
	ChainName     string               `json:"chain_name"`
	QuoteCurrency string               `json:"quote_currency"`
	Items         []BtcTransactionItem `json:"items"`
}

type BtcTransactionItem struct {
	BlockSignedAt string        `json:"block_signed_at"`
	BlockHeight   uint64        `json:"block_height"`
	TxHash        string        `json:"tx_hash"`
	Successful    bool          `json:"successful"`
	FeesPaid      string        `json:"fees_paid"`
	Value         string        `json:"value"`
	ValueQuote    float64       `json:"value_quote"`
	GasQuote      float64       `json:"gas_quote"`
	Inputs        []BtcTxInput  `json:"inputs,omitempty"`
	Outputs       []BtcTxOutput `json:"outputs,omitempty"`
}

type BtcTxInput struct {
	PrevHash    string   `json:"prev_hash"`
	OutputIndex uint64   `json:"output_index"`
	Script      string   `json:"script"`
	OutputValue uint64   `json:"output_value"`
	Sequence    uint64   `json:"sequence"`
	Addresses   []string `json:"addresses,omitempty"`
}

type BtcTxOutput struct {
	Value      uint64   `json:"value"`
	Script     string   `json:"script"`
	Addresses  []string `json:"addresses,omitempty"`
	ScriptType string   `json:"script_type"`
	SpentBy    string   `json:"spent_by"`
}
