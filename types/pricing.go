package types

// TokenPricesResponse is the envelope for historical token prices.
// Unlike most endpoints, the API returns the price items as a
// top-level array inside data.
type TokenPricesResponse = Envelope[[]TokenPriceItem]

type TokenPriceItem struct {
	ContractAddress      string       `json:"contract_address"`
	ContractName         string       `json:"contract_name"`
	ContractTickerSymbol string       `json:"contract_ticker_symbol"`
	ContractDecimals     uint32       `json:"contract_decimals"`
	SupportsErc          []string     `json:"supports_erc,omitempty"`
	LogoUrl              string       `json:"logo_url"`
	QuoteCurrency        string       `json:"quote_currency"`
	Prices               []PricePoint `json:"prices,omitempty"`
}

type PricePoint struct {
	Date        string  `json:"date"`
	Price       float64 `json:"price"`
	PrettyPrice string  `json:"pretty_price"`
}

type PoolSpotPricesResponse = Envelope[PoolSpotPricesData]

type PoolSpotPricesData struct {
	UpdatedAt string              `json:"updated_at"`
	ChainId   uint64              `json:"chain_id"`
	ChainName string              `json:"chain_name"`
	Items     []PoolSpotPriceItem `json:"items"`
}

type PoolSpotPriceItem struct {
	Exchange            string     `json:"exchange"`
	SwapCount24h        uint64     `json:"swap_count_24h"`
	TotalLiquidityQuote float64    `json:"total_liquidity_quote"`
	Volume24hQuote      float64    `json:"volume_24h_quote"`
	Fee24hQuote         float64    `json:"fee_24h_quote"`
	Token0              *PoolToken `json:"token_0"`
	Token1              *PoolToken `json:"token_1"`
	QuoteCurrency       string     `json:"quote_currency"`
}

type PoolToken struct {
	ContractAddress      string  `json:"contract_address"`
	ContractName         string  `json:"contract_name"`
	ContractTickerSymbol string  `json:"contract_ticker_symbol"`
	ContractDecimals     uint32  `json:"contract_decimals"`
	LogoUrl              string  `json:"logo_url"`
	QuoteRate            float64 `json:"quote_rate"`
	Reserve              string  `json:"reserve"`
}
