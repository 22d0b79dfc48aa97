// Package config holds the static network/token tables and the knobs of the
// gasless transfer flow. The enclosing application loads a Config once at
// startup and passes it explicitly into the coordinator; nothing in the flow
// reads ambient global state.
package config

import (
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/joho/godotenv"

	"github.com/tanminhan00/GasZero-sub001/pkg/logger"
)

// Config holds the configuration for the gasless transfer flow
type Config struct {
	ChainID         int
	FundingEndpoint string
	RelayEndpoint   string
	Networks        map[int]Network
	PollInterval    time.Duration
	PollAttempts    int
	// ReserveThreshold is the native balance above which the user is assumed
	// able to pay for the approval transaction themselves (wei).
	ReserveThreshold *big.Int
	// MinFundedBalance is the native balance the balance waiter requires
	// before the funded approval proceeds (wei).
	MinFundedBalance *big.Int
	LoggerConfig     LoggerConfig
}

// LoggerConfig holds the configuration for logging
type LoggerConfig struct {
	Level    logger.Level
	Coloring bool
}

// Network describes one supported chain: where the RPC node is, which address
// the relay operates (the approval spender), and the tokens it can transfer.
type Network struct {
	ChainID     int              `yaml:"chain_id"`
	Name        string           `yaml:"name"`
	RPCURL      string           `yaml:"rpc_url"`
	RelayRouter string           `yaml:"relay_router"`
	Tokens      map[string]Token `yaml:"tokens"`
}

// Token is a transferable token on a specific chain.
type Token struct {
	Address  string `yaml:"address"`
	Decimals int    `yaml:"decimals"`
}

// LoadConfig loads the configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	chainID, err := GetEnvChainID()
	if err != nil {
		return nil, err
	}

	fundingEndpoint, err := GetEnvFundingEndpoint()
	if err != nil {
		return nil, err
	}

	relayEndpoint, err := GetEnvRelayEndpoint()
	if err != nil {
		return nil, err
	}

	pollInterval, err := GetEnvPollInterval()
	if err != nil {
		return nil, err
	}

	pollAttempts, err := GetEnvPollAttempts()
	if err != nil {
		return nil, err
	}

	reserveThreshold, err := GetEnvReserveThreshold()
	if err != nil {
		return nil, err
	}

	minFundedBalance, err := GetEnvMinFundedBalance()
	if err != nil {
		return nil, err
	}

	logLevel, err := GetEnvLogLevel()
	if err != nil {
		return nil, err
	}

	logColoring, err := GetEnvLogColoring()
	if err != nil {
		return nil, err
	}

	networks, err := GetEnvNetworks()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ChainID:          chainID,
		FundingEndpoint:  fundingEndpoint,
		RelayEndpoint:    relayEndpoint,
		Networks:         networks,
		PollInterval:     pollInterval,
		PollAttempts:     pollAttempts,
		ReserveThreshold: reserveThreshold,
		MinFundedBalance: minFundedBalance,
		LoggerConfig: LoggerConfig{
			Level:    logLevel,
			Coloring: logColoring,
		},
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Network returns the network table entry for the configured chain.
func (c *Config) Network() (Network, error) {
	network, exists := c.Networks[c.ChainID]
	if !exists {
		return Network{}, fmt.Errorf("no network configured for chain %d", c.ChainID)
	}
	return network, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if len(cfg.Networks) == 0 {
		return fmt.Errorf("at least one network configuration is required")
	}
	if _, exists := cfg.Networks[cfg.ChainID]; !exists {
		return fmt.Errorf("no network configuration for selected chain %d", cfg.ChainID)
	}
	for chainID, network := range cfg.Networks {
		if network.RelayRouter == "" {
			return fmt.Errorf("%s_RELAY_ROUTER for chain %d is required", network.Name, chainID)
		}
		if len(network.Tokens) == 0 {
			return fmt.Errorf("at least one token is required for chain %d", chainID)
		}
	}
	return nil
}
