package types

import "encoding/json"

type NftsResponse = Envelope[NftsData]

type NftsData struct {
	Address   string    `json:"address"`
	ChainId   uint64    `json:"chain_id"`
	ChainName string    `json:"chain_name"`
	Items     []NftItem `json:"items"`
}

type NftItem struct {
	ContractAddress      string       `json:"contract_address"`
	TokenId              string       `json:"token_id"`
	TokenBalance         string       `json:"token_balance"`
	TokenUrl             string       `json:"token_url"`
	ContractName         string       `json:"contract_name"`
	ContractTickerSymbol string       `json:"contract_ticker_symbol"`
	SupportsErc          []string     `json:"supports_erc,omitempty"`
	NftData              *NftMetadata `json:"nft_data"`
}

type NftMetadata struct {
	TokenUri           string           `json:"token_uri"`
	ExternalData       *ExternalNftData `json:"external_data"`
	OriginalOwner      string           `json:"original_owner"`
	CurrentOwner       string           `json:"current_owner"`
	AssetOriginalUrl   string           `json:"asset_original_url"`
	AssetCachedUrl     string           `json:"asset_cached_url"`
	AssetFileExtension string           `json:"asset_file_extension"`
	AssetMimeType      string           `json:"asset_mime_type"`
}

type ExternalNftData struct {
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Image        string         `json:"image"`
	AnimationUrl string         `json:"animation_url"`
	ExternalUrl  string         `json:"external_url"`
	Attributes   []NftAttribute `json:"attributes,omitempty"`
}

type NftAttribute struct {
	TraitType   string          `json:"trait_type"`
	Value       json.RawMessage `json:"value,omitempty"`
	DisplayType string          `json:"display_type"`
}

type NftMetadataResponse = Envelope[NftMetadataData]

type NftMetadataData struct {
	UpdatedAt string            `json:"updated_at"`
	ChainId   uint64            `json:"chain_id"`
	ChainName string            `json:"chain_name"`
	Items     []NftMetadataItem `json:"items"`
}

type NftMetadataItem struct {
	ContractAddress    string           `json:"contract_address"`
	TokenId            string           `json:"token_id"`
	TokenUri           string           `json:"token_uri"`
	Metadata           json.RawMessage  `json:"metadata,omitempty"`
	ExternalData       *ExternalNftData `json:"external_data"`
	AssetOriginalUrl   string           `json:"asset_original_url"`
	AssetCachedUrl     string           `json:"asset_cached_url"`
	AssetFileExtension string           `json:"asset_file_extension"`
	AssetMimeType      string           `json:"asset_mime_type"`
}

type ChainCollectionsResponse = Envelope[ChainCollectionsData]

type ChainCollectionsData struct {
	UpdatedAt string                `json:"updated_at"`
	ChainId   uint64                `json:"chain_id"`
	ChainName string                `json:"chain_name"`
	Items     []ChainCollectionItem `json:"items"`
}

type ChainCollectionItem struct {
	ContractAddress       string  `json:"contract_address"`
	ContractName          string  `json:"contract_name"`
	ContractTickerSymbol  string  `json:"contract_ticker_symbol"`
	TokenTotalSupply      string  `json:"token_total_supply"`
	FloorPriceQuote       float64 `json:"floor_price_quote"`
	FloorPriceNativeQuote float64 `json:"floor_price_native_quote"`
	MarketCapQuote        float64 `json:"market_cap_quote"`
}

type NftTransactionsResponse = Envelope[NftTransactionsData]

type NftTransactionsData struct {
	UpdatedAt string               `json:"updated_at"`
	ChainId   uint64               `json:"chain_id"`
	ChainName string               `json:"chain_name"`
	Items     []NftTransactionItem `json:"items"`
}

type NftTransactionItem struct {
	BlockSignedAt string `json:"block_signed_at"`
	BlockHeight   uint64 `json:"block_height"`
	TxHash        string `json:"tx_hash"`
	FromAddress   string `json:"from_address"`
	ToAddress     string `json:"to_address"`
	Value         string `json:"value"`
	TokenId       string `json:"token_id"`
}

type FloorPricesResponse = Envelope[FloorPricesData]

type FloorPricesData struct {
	UpdatedAt string           `json:"updated_at"`
	ChainId   uint64           `json:"chain_id"`
	ChainName string           `json:"chain_name"`
	Items     []FloorPriceItem `json:"items"`
}

type FloorPriceItem struct {
	Date                  string  `json:"date"`
	ContractAddress       string  `json:"contract_address"`
	FloorPriceQuote       float64 `json:"floor_price_quote"`
	NativeTokenQuote      float64 `json:"native_token_quote"`
	QuoteCurrency         string  `json:"quote_currency"`
	PrettyFloorPriceQuote string  `json:"pretty_floor_price_quote"`
}

type VolumeResponse = Envelope[VolumeData]

type VolumeData struct {
	UpdatedAt string       `json:"updated_at"`
	ChainId   uint64       `json:"chain_id"`
	ChainName string       `json:"chain_name"`
	Items     []VolumeItem `json:"items"`
}

type VolumeItem struct {
	Date             string  `json:"date"`
	ContractAddress  string  `json:"contract_address"`
	VolumeQuote      float64 `json:"volume_quote"`
	NativeTokenQuote float64 `json:"native_token_quote"`
	QuoteCurrency    string  `json:"quote_currency"`
}

type SalesCountResponse = Envelope[SalesCountData]

type SalesCountData struct {
	UpdatedAt string           `json:"updated_at"`
	ChainId   uint64           `json:"chain_id"`
	ChainName string           `json:"chain_name"`
	Items     []SalesCountItem `json:"items"`
}

type SalesCountItem struct {
	Date            string `json:"date"`
	ContractAddress string `json:"contract_address"`
	SaleCount       uint64 `json:"sale_count"`
}
