package config

// USDCDecimals is the decimal count of USDC on every supported chain
const USDCDecimals = 6

// supportedChains lists the chains the flow can run against, with their
// built-in defaults. Environment variables override any of these per chain.
var supportedChains = []struct {
	chainID       int
	name          string
	defaultRPCURL string
	relayRouter   string
}{
	{BaseMainnetChainID, "BASE", DefaultBaseRPCURL, BaseMainnetRelayRouter},
	{ArbitrumMainnetChainID, "ARBITRUM", DefaultArbitrumRPCURL, ArbitrumMainnetRelayRouter},
	{PolygonMainnetChainID, "POLYGON", DefaultPolygonRPCURL, PolygonMainnetRelayRouter},
	{EthereumMainnetChainID, "ETHEREUM", DefaultEthereumRPCURL, EthereumMainnetRelayRouter},
}

// usdcAddresses maps chain IDs to USDC contract addresses
var usdcAddresses = map[int]string{
	1:     "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
	137:   "0x3c499c542cEF5E3811e1192ce70d8cC03d5c3359",
	42161: "0xaf88d065e77c8cC2239327C5EDb3A432268e5831",
	8453:  "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
}

// GetChainName returns the name of the chain for a given chain ID
func GetChainName(chainID int) string {
	for _, chain := range supportedChains {
		if chain.chainID == chainID {
			return chain.name
		}
	}
	return ""
}

// GetUSDCAddress returns the USDC contract address for a given chain ID
func GetUSDCAddress(chainID int) string {
	address, exists := usdcAddresses[chainID]
	if !exists {
		return ""
	}
	return address
}
