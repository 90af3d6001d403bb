package types

// Chain names for commonly used networks. The API accepts any chain
// name it indexes; Base.Chains lists the full catalog at runtime.
const (
	ChainEthMainnet       = "eth-mainnet"
	ChainEthSepolia       = "eth-sepolia"
	ChainEthHolesky       = "eth-holesky"
	ChainMaticMainnet     = "matic-mainnet"
	ChainMaticAmoy        = "matic-amoy"
	ChainBscMainnet       = "bsc-mainnet"
	ChainBscTestnet       = "bsc-testnet"
	ChainAvalancheMainnet = "avalanche-mainnet"
	ChainAvalancheFuji    = "avalanche-fuji"
	ChainArbitrumMainnet  = "arbitrum-mainnet"
	ChainArbitrumSepolia  = "arbitrum-sepolia"
	ChainOptimismMainnet  = "optimism-mainnet"
	ChainOptimismSepolia  = "optimism-sepolia"
	ChainBaseMainnet      = "base-mainnet"
	ChainBaseSepolia      = "base-sepolia"
	ChainBtcMainnet       = "btc-mainnet"
)
