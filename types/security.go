package types

type ApprovalsResponse = Envelope[ApprovalsData]

type ApprovalsData struct {
	UpdatedAt string         `json:"updated_at"`
	ChainId   uint64         `json:"chain_id"`
	ChainName string         `json:"chain_name"`
	Address   string         `json:"address"`
	Items     []ApprovalItem `json:"items"`
}

type ApprovalItem struct {
	TokenAddress           string        `json:"token_address"`
	TokenAddressLabel      string        `json:"token_address_label"`
	TickerSymbol           string        `json:"ticker_symbol"`
	ContractDecimals       uint32        `json:"contract_decimals"`
	LogoUrl                string        `json:"logo_url"`
	QuoteRate              float64       `json:"quote_rate"`
	Balance                string        `json:"balance"`
	BalanceQuote           float64       `json:"balance_quote"`
	PrettyBalanceQuote     string        `json:"pretty_balance_quote"`
	ValueAtRisk            string        `json:"value_at_risk"`
	ValueAtRiskQuote       float64       `json:"value_at_risk_quote"`
	PrettyValueAtRiskQuote string        `json:"pretty_value_at_risk_quote"`
	Spenders               []SpenderItem `json:"spenders,omitempty"`
}

type SpenderItem struct {
	BlockHeight         uint64 `json:"block_height"`
	TxHash              string `json:"tx_hash"`
	SpenderAddress      string `json:"spender_address"`
	SpenderAddressLabel string `json:"spender_address_label"`
	Allowance           string `json:"allowance"`
	PrettyAllowance     string `json:"pretty_allowance"`
	ValueAtRisk         string `json:"value_at_risk"`
	RiskFactor          string `json:"risk_factor"`
}

type NftApprovalsResponse = Envelope[NftApprovalsData]

type NftApprovalsData struct {
	UpdatedAt string            `json:"updated_at"`
	ChainId   uint64            `json:"chain_id"`
	ChainName string            `json:"chain_name"`
	Address   string            `json:"address"`
	Items     []NftApprovalItem `json:"items"`
}

type NftApprovalItem struct {
	ContractAddress      string           `json:"contract_address"`
	ContractAddressLabel string           `json:"contract_address_label"`
	TickerSymbol         string           `json:"ticker_symbol"`
	ContractName         string           `json:"contract_name"`
	LogoUrl              string           `json:"logo_url"`
	TokenId              string           `json:"token_id"`
	TokenBalance         string           `json:"token_balance"`
	Spenders             []NftSpenderItem `json:"spenders,omitempty"`
}

type NftSpenderItem struct {
	BlockHeight         uint64 `json:"block_height"`
	TxHash              string `json:"tx_hash"`
	SpenderAddress      string `json:"spender_address"`
	SpenderAddressLabel string `json:"spender_address_label"`
	Allowance           string `json:"allowance"`
	TokenId             string `json:"token_id"`
}
