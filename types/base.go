package types

import "encoding/json"

type BlockResponse = Envelope[BlockData]

type BlockData struct {
	UpdatedAt string      `json:"updated_at"`
	ChainId   uint64      `json:"chain_id"`
	ChainName string      `json:"chain_name"`
	Items     []BlockItem `json:"items"`
}

type BlockItem struct {
	SignedAt     string `json:"signed_at"`
	Height       uint64 `json:"height"`
	BlockHash    string `json:"block_hash"`
	MinerAddress string `json:"miner_address"`
	GasUsed      uint64 `json:"gas_used"`
	GasLimit     uint64 `json:"gas_limit"`
	ExtraData    string `json:"extra_data"`
}

type BlockHeightsResponse = Envelope[BlockHeightsData]

type BlockHeightsData struct {
	UpdatedAt string            `json:"updated_at"`
	ChainId   uint64            `json:"chain_id"`
	ChainName string            `json:"chain_name"`
	Items     []BlockHeightItem `json:"items"`
}

type BlockHeightItem struct {
	SignedAt string `json:"signed_at"`
	Height   uint64 `json:"height"`
}

type ResolvedAddressResponse = Envelope[ResolvedAddressData]

type ResolvedAddressData struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

type LogsResponse = Envelope[LogsData]

type LogsData struct {
	UpdatedAt string         `json:"updated_at"`
	ChainId   uint64         `json:"chain_id"`
	ChainName string         `json:"chain_name"`
	Items     []LogEventItem `json:"items"`
}

type LogEventItem struct {
	BlockSignedAt              string          `json:"block_signed_at"`
	BlockHeight                uint64          `json:"block_height"`
	TxOffset                   uint64          `json:"tx_offset"`
	LogOffset                  uint64          `json:"log_offset"`
	TxHash                     string          `json:"tx_hash"`
	RawLogTopics               []string        `json:"raw_log_topics,omitempty"`
	SenderContractDecimals     uint32          `json:"sender_contract_decimals"`
	SenderName                 string          `json:"sender_name"`
	SenderContractTickerSymbol string          `json:"sender_contract_ticker_symbol"`
	SenderAddress              string          `json:"sender_address"`
	SenderAddressLabel         string          `json:"sender_address_label"`
	SenderFactoryAddress       string          `json:"sender_factory_address"`
	RawLogData                 string          `json:"raw_log_data"`
	Decoded                    json.RawMessage `json:"decoded,omitempty"`
}

type AllChainsResponse = Envelope[AllChainsData]

type AllChainsData struct {
	UpdatedAt string      `json:"updated_at"`
	Items     []ChainItem `json:"items"`
}

type ChainItem struct {
	Name          string `json:"name"`
	ChainId       string `json:"chain_id"`
	IsTestnet     bool   `json:"is_testnet"`
	DbSchemaName  string `json:"db_schema_name"`
	Label         string `json:"label"`
	CategoryLabel string `json:"category_label"`
	LogoUrl       string `json:"logo_url"`
	BlackLogoUrl  string `json:"black_logo_url"`
	WhiteLogoUrl  string `json:"white_logo_url"`
	IsAppchain    bool   `json:"is_appchain"`
}

type AllChainStatusResponse = Envelope[AllChainStatusData]

type AllChainStatusData struct {
	UpdatedAt string            `json:"updated_at"`
	Items     []ChainStatusItem `json:"items"`
}

type ChainStatusItem struct {
	Name                  string `json:"name"`
	ChainId               string `json:"chain_id"`
	IsTestnet             bool   `json:"is_testnet"`
	LogoUrl               string `json:"logo_url"`
	SyncedBlockHeight     uint64 `json:"synced_block_height"`
	SyncedBlockedSignedAt string `json:"synced_blocked_signed_at"`
}

type AddressActivityResponse = Envelope[AddressActivityData]

type AddressActivityData struct {
	UpdatedAt string                `json:"updated_at"`
	Address   string                `json:"address"`
	Items     []AddressActivityItem `json:"items"`
}

type AddressActivityItem struct {
	ChainId     string `json:"chain_id"`
	ChainName   string `json:"chain_name"`
	FirstSeenAt string `json:"first_seen_at"`
	LastSeenAt  string `json:"last_seen_at"`
	IsTestnet   bool   `json:"is_testnet"`
}

type GasPricesResponse = Envelope[GasPricesData]

type GasPricesData struct {
	UpdatedAt string         `json:"updated_at"`
	ChainId   uint64         `json:"chain_id"`
	ChainName string         `json:"chain_name"`
	Items     []GasPriceItem `json:"items"`
}

type GasPriceItem struct {
	EventType           string  `json:"event_type"`
	GasQuoteRate        float64 `json:"gas_quote_rate"`
	GasPriceGwei        float64 `json:"gas_price_gwei"`
	GasPriceWei         string  `json:"gas_price_wei"`
	Interval            string  `json:"interval"`
	PrettyTotalGasQuote string  `json:"pretty_total_gas_quote"`
	TotalGasQuote       float64 `json:"total_gas_quote"`
}
