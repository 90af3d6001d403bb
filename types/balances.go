package types

import "encoding/json"

type BalancesResponse = Envelope[BalancesData]

type BalancesData struct {
	Address       string        `json:"address"`
	ChainId       uint64        `json:"chain_id"`
	ChainName     string        `json:"chain_name"`
	QuoteCurrency string        `json:"quote_currency"`
	TotalQuote    float64       `json:"total_quote"`
	Items         []BalanceItem `json:"items"`
}

type BalanceItem struct {
	ContractAddress      string          `json:"contract_address"`
	ContractTickerSymbol string          `json:"contract_ticker_symbol"`
	ContractName         string          `json:"contract_name"`
	ContractDecimals     uint32          `json:"contract_decimals"`
	Balance              string          `json:"balance"`
	QuoteRate            float64         `json:"quote_rate"`
	Quote                float64         `json:"quote"`
	TokenType            string          `json:"token_type"`
	IsSpam               bool            `json:"is_spam"`
	NativeToken          bool            `json:"native_token"`
	LogoUrl              string          `json:"logo_url"`
	LastTransferredAt    string          `json:"last_transferred_at"`
	Metadata             json.RawMessage `json:"metadata,omitempty"`
}

type NativeBalanceResponse = Envelope[NativeBalanceData]

type NativeBalanceData struct {
	Address       string        `json:"address"`
	ChainId       uint64        `json:"chain_id"`
	ChainName     string        `json:"chain_name"`
	QuoteCurrency string        `json:"quote_currency"`
	Items         []BalanceItem `json:"items"`
}

type Erc20TransfersResponse = Envelope[Erc20TransfersData]

type Erc20TransfersData struct {
	Address       string              `json:"address"`
	ChainId       uint64              `json:"chain_id"`
	ChainName     string              `json:"chain_name"`
	QuoteCurrency string              `json:"quote_currency"`
	Items         []Erc20TransferItem `json:"items"`
}

type Erc20TransferItem struct {
	BlockSignedAt        string  `json:"block_signed_at"`
	BlockHeight          uint64  `json:"block_height"`
	TxHash               string  `json:"tx_hash"`
	FromAddress          string  `json:"from_address"`
	FromAddressLabel     string  `json:"from_address_label"`
	ToAddress            string  `json:"to_address"`
	ToAddressLabel       string  `json:"to_address_label"`
	ContractAddress      string  `json:"contract_address"`
	ContractName         string  `json:"contract_name"`
	ContractTickerSymbol string  `json:"contract_ticker_symbol"`
	ContractDecimals     uint32  `json:"contract_decimals"`
	LogoUrl              string  `json:"logo_url"`
	TransferType         string  `json:"transfer_type"`
	Delta                string  `json:"delta"`
	Balance              string  `json:"balance"`
	QuoteRate            float64 `json:"quote_rate"`
	DeltaQuote           float64 `json:"delta_quote"`
	BalanceQuote         float64 `json:"balance_quote"`
}

type TokenHoldersResponse = Envelope[TokenHoldersData]

type TokenHoldersData struct {
	UpdatedAt string            `json:"updated_at"`
	ChainId   uint64            `json:"chain_id"`
	ChainName string            `json:"chain_name"`
	Items     []TokenHolderItem `json:"items"`
}

type TokenHolderItem struct {
	Address     string `json:"address"`
	Balance     string `json:"balance"`
	TotalSupply string `json:"total_supply"`
	BlockHeight uint64 `json:"block_height"`
}

type HistoricalBalancesResponse = Envelope[HistoricalBalancesData]

type HistoricalBalancesData struct {
	Address       string                  `json:"address"`
	ChainId       uint64                  `json:"chain_id"`
	ChainName     string                  `json:"chain_name"`
	QuoteCurrency string                  `json:"quote_currency"`
	Items         []HistoricalBalanceItem `json:"items"`
}

type HistoricalBalanceItem struct {
	ContractAddress      string  `json:"contract_address"`
	ContractName         string  `json:"contract_name"`
	ContractTickerSymbol string  `json:"contract_ticker_symbol"`
	ContractDecimals     uint32  `json:"contract_decimals"`
	LogoUrl              string  `json:"logo_url"`
	Balance              string  `json:"balance"`
	Quote                float64 `json:"quote"`
	QuoteRate            float64 `json:"quote_rate"`
	BlockHeight          uint64  `json:"block_height"`
}

type PortfolioResponse = Envelope[PortfolioData]

type PortfolioData struct {
	Address       string          `json:"address"`
	ChainId       uint64          `json:"chain_id"`
	ChainName     string          `json:"chain_name"`
	QuoteCurrency string          `json:"quote_currency"`
	Items         []PortfolioItem `json:"items"`
}

type PortfolioItem struct {
	ContractAddress      string             `json:"contract_address"`
	ContractName         string             `json:"contract_name"`
	ContractTickerSymbol string             `json:"contract_ticker_symbol"`
	ContractDecimals     uint32             `json:"contract_decimals"`
	LogoUrl              string             `json:"logo_url"`
	Holdings             []PortfolioHolding `json:"holdings"`
}

type PortfolioHolding struct {
	Timestamp string          `json:"timestamp"`
	QuoteRate float64         `json:"quote_rate"`
	Open      *PortfolioQuote `json:"open"`
	High      *PortfolioQuote `json:"high"`
	Low       *PortfolioQuote `json:"low"`
	Close     *PortfolioQuote `json:"close"`
}

type PortfolioQuote struct {
	Balance string  `json:"balance"`
	Quote   float64 `json:"quote"`
}
