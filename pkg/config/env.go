package config

import (
	"fmt"
	"math/big"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/tanminhan00/GasZero-sub001/pkg/logger"
)

const (
	// DefaultChainID is the chain the flow runs against when none is selected
	DefaultChainID = BaseMainnetChainID

	// DefaultPollInterval defines the balance poll interval in seconds
	DefaultPollInterval = 2

	// DefaultPollAttempts defines the balance poll attempt budget
	DefaultPollAttempts = 10

	// DefaultReserveThreshold is the native balance (wei) above which the user
	// pays for their own approval transaction instead of requesting funding
	DefaultReserveThreshold = "1000000000000000" // 0.001 ETH

	// DefaultMinFundedBalance is the native balance (wei) the balance waiter
	// requires before a funded approval proceeds
	DefaultMinFundedBalance = "500000000000000" // 0.0005 ETH

	// DefaultFundingEndpoint defines the default funding service endpoint
	DefaultFundingEndpoint = "https://api.gaszero.xyz"

	// DefaultRelayEndpoint defines the default relay service endpoint
	DefaultRelayEndpoint = "https://api.gaszero.xyz"

	// Network specific values
	// Note: relay router values are not prefixed with "Default"
	// These are the deployed router addresses but can still be overridden by
	// environment variables for debugging purposes

	// Base

	BaseMainnetChainID     = 8453
	BaseMainnetRelayRouter = "0x52F1e2DC05C1f1A2e7AC3a9fD1FDF8A563a2f7cE"

	DefaultBaseRPCURL = "https://mainnet.base.org"

	// Arbitrum

	ArbitrumMainnetChainID     = 42161
	ArbitrumMainnetRelayRouter = "0x0aD86B724CcF7F4Dc2C2b9Db5AF2eA32eB8D4a44"

	DefaultArbitrumRPCURL = "https://arb1.arbitrum.io/rpc"

	// Polygon

	PolygonMainnetChainID     = 137
	PolygonMainnetRelayRouter = "0x7D831A0c4a6cB5cDD1b52cDE8Fc91a3DB6b2E8bD"

	DefaultPolygonRPCURL = "https://polygon-rpc.com"

	// Ethereum

	EthereumMainnetChainID     = 1
	EthereumMainnetRelayRouter = "0x9F5b3C7Dd6E3aD20E67cB40D0eEe2c973D1a2BbA"

	DefaultEthereumRPCURL = "https://eth.llamarpc.com"
)

// GetEnvChainID returns the selected chain from environment variables
func GetEnvChainID() (int, error) {
	chainID := os.Getenv("CHAIN_ID")
	if chainID == "" {
		return DefaultChainID, nil
	}

	id, err := strconv.Atoi(chainID)
	if err != nil {
		return 0, fmt.Errorf("invalid CHAIN_ID value: %s, must be an integer", chainID)
	}
	if id <= 0 {
		return 0, fmt.Errorf("CHAIN_ID must be greater than 0")
	}
	return id, nil
}

// GetEnvFundingEndpoint returns the funding service endpoint from environment variables
func GetEnvFundingEndpoint() (string, error) {
	endpoint := os.Getenv("FUNDING_ENDPOINT")
	if endpoint == "" {
		return DefaultFundingEndpoint, nil
	}

	// Validate URL format
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return "", fmt.Errorf("invalid FUNDING_ENDPOINT value: %s, must be a valid URL", endpoint)
	}
	return endpoint, nil
}

// GetEnvRelayEndpoint returns the relay service endpoint from environment variables
func GetEnvRelayEndpoint() (string, error) {
	endpoint := os.Getenv("RELAY_ENDPOINT")
	if endpoint == "" {
		return DefaultRelayEndpoint, nil
	}

	// Validate URL format
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return "", fmt.Errorf("invalid RELAY_ENDPOINT value: %s, must be a valid URL", endpoint)
	}
	return endpoint, nil
}

// GetEnvPollInterval returns the balance poll interval in seconds from environment variables
func GetEnvPollInterval() (time.Duration, error) {
	pollInterval := os.Getenv("POLL_INTERVAL")
	if pollInterval == "" {
		return time.Duration(DefaultPollInterval) * time.Second, nil
	}

	// use atoi
	interval, err := strconv.Atoi(pollInterval)
	if err != nil {
		return 0, fmt.Errorf("invalid POLL_INTERVAL value: %s, must be an integer", pollInterval)
	}
	if interval <= 0 {
		return 0, fmt.Errorf("POLL_INTERVAL must be greater than 0")
	}
	return time.Duration(interval) * time.Second, nil
}

// GetEnvPollAttempts returns the balance poll attempt budget from environment variables
func GetEnvPollAttempts() (int, error) {
	pollAttempts := os.Getenv("POLL_ATTEMPTS")
	if pollAttempts == "" {
		return DefaultPollAttempts, nil
	}

	attempts, err := strconv.Atoi(pollAttempts)
	if err != nil {
		return 0, fmt.Errorf("invalid POLL_ATTEMPTS value: %s, must be an integer", pollAttempts)
	}
	if attempts <= 0 {
		return 0, fmt.Errorf("POLL_ATTEMPTS must be greater than 0")
	}
	return attempts, nil
}

// GetEnvReserveThreshold returns the reserve threshold in wei from environment variables
func GetEnvReserveThreshold() (*big.Int, error) {
	return getEnvWei("RESERVE_THRESHOLD", DefaultReserveThreshold)
}

// GetEnvMinFundedBalance returns the funded balance threshold in wei from environment variables
func GetEnvMinFundedBalance() (*big.Int, error) {
	return getEnvWei("MIN_FUNDED_BALANCE", DefaultMinFundedBalance)
}

// getEnvWei parses a wei amount from the environment with a default
func getEnvWei(key, defaultValue string) (*big.Int, error) {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	wei := new(big.Int)
	if _, ok := wei.SetString(value, 10); !ok {
		return nil, fmt.Errorf("invalid %s value: %s, must be a valid integer string", key, value)
	}
	if wei.Sign() < 0 {
		return nil, fmt.Errorf("%s must be greater than or equal to 0", key)
	}
	return wei, nil
}

// GetEnvLogLevel returns the log level from environment variables
func GetEnvLogLevel() (logger.Level, error) {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return logger.InfoLevel, nil
	}

	switch level {
	case "debug":
		return logger.DebugLevel, nil
	case "info":
		return logger.InfoLevel, nil
	case "notice":
		return logger.NoticeLevel, nil
	case "error":
		return logger.ErrorLevel, nil
	}
	return 0, fmt.Errorf("invalid LOG_LEVEL value: %s, must be debug, info, notice or error", level)
}

// GetEnvLogColoring returns whether log coloring is enabled from environment variables
func GetEnvLogColoring() (bool, error) {
	coloring := os.Getenv("LOG_COLORING")
	if coloring == "" {
		return true, nil
	}

	if coloring == "true" {
		return true, nil
	} else if coloring == "false" {
		return false, nil
	}

	return false, fmt.Errorf("invalid LOG_COLORING value: %s, must be 'true' or 'false'", coloring)
}

// GetEnvNetworks returns the network tables for all supported chains based on
// the environment variables and built-in defaults
func GetEnvNetworks() (map[int]Network, error) {
	networks := make(map[int]Network)

	for _, chain := range supportedChains {
		rpc := os.Getenv(chain.name + "_RPC_URL")
		if rpc == "" {
			rpc = chain.defaultRPCURL
		}
		router := os.Getenv(chain.name + "_RELAY_ROUTER")
		if router == "" {
			router = chain.relayRouter
		}

		usdc := os.Getenv(chain.name + "_USDC_ADDRESS")
		if usdc == "" {
			usdc = usdcAddresses[chain.chainID]
		}

		networks[chain.chainID] = Network{
			ChainID:     chain.chainID,
			Name:        chain.name,
			RPCURL:      rpc,
			RelayRouter: router,
			Tokens: map[string]Token{
				"USDC": {Address: usdc, Decimals: USDCDecimals},
			},
		}
	}

	return networks, nil
}
