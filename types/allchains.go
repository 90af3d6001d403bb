package types

type MultiChainTransactionsResponse = Envelope[MultiChainTransactionsData]

type MultiChainTransactionsData struct {
	UpdatedAt string                      `json:"updated_at"`
	Items     []MultiChainTransactionItem `json:"items"`
}

type MultiChainTransactionItem struct {
	ChainId       uint64  `json:"chain_id"`
	ChainName     string  `json:"chain_name"`
	TxHash        string  `json:"tx_hash"`
	FromAddress   string  `json:"from_address"`
	ToAddress     string  `json:"to_address"`
	Value         string  `json:"value"`
	ValueQuote    float64 `json:"value_quote"`
	BlockSignedAt string  `json:"block_signed_at"`
	BlockHeight   uint64  `json:"block_height"`
	Successful    bool    `json:"successful"`
	GasSpent      uint64  `json:"gas_spent"`
	GasQuote      float64 `json:"gas_quote"`
	FeesPaid      string  `json:"fees_paid"`
}

type MultiChainBalancesResponse = Envelope[MultiChainBalancesData]

type MultiChainBalancesData struct {
	UpdatedAt     string                  `json:"updated_at"`
	Address       string                  `json:"address"`
	QuoteCurrency string                  `json:"quote_currency"`
	Items         []MultiChainBalanceItem `json:"items"`
}

type MultiChainBalanceItem struct {
	ChainId              uint64  `json:"chain_id"`
	ChainName            string  `json:"chain_name"`
	ContractAddress      string  `json:"contract_address"`
	ContractName         string  `json:"contract_name"`
	ContractTickerSymbol string  `json:"contract_ticker_symbol"`
	ContractDecimals     uint32  `json:"contract_decimals"`
	Balance              string  `json:"balance"`
	QuoteRate            float64 `json:"quote_rate"`
	Quote                float64 `json:"quote"`
	IsSpam               bool    `json:"is_spam"`
}
