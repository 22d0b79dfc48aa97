package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, BaseMainnetChainID, cfg.ChainID)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
	assert.Equal(t, 10, cfg.PollAttempts)
	assert.Equal(t, DefaultFundingEndpoint, cfg.FundingEndpoint)
	assert.Equal(t, DefaultRelayEndpoint, cfg.RelayEndpoint)

	network, err := cfg.Network()
	require.NoError(t, err)
	assert.Equal(t, "BASE", network.Name)
	assert.Equal(t, BaseMainnetRelayRouter, network.RelayRouter)

	usdc, ok := network.Tokens["USDC"]
	require.True(t, ok)
	assert.Equal(t, USDCDecimals, usdc.Decimals)
	assert.Equal(t, GetUSDCAddress(BaseMainnetChainID), usdc.Address)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("CHAIN_ID", "42161")
	t.Setenv("POLL_INTERVAL", "5")
	t.Setenv("POLL_ATTEMPTS", "3")
	t.Setenv("ARBITRUM_RPC_URL", "http://localhost:8545")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ArbitrumMainnetChainID, cfg.ChainID)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
	assert.Equal(t, 3, cfg.PollAttempts)

	network, err := cfg.Network()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8545", network.RPCURL)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{"non-integer chain", "CHAIN_ID", "base"},
		{"zero poll interval", "POLL_INTERVAL", "0"},
		{"negative poll attempts", "POLL_ATTEMPTS", "-1"},
		{"bad reserve threshold", "RESERVE_THRESHOLD", "1.5"},
		{"bad funding endpoint", "FUNDING_ENDPOINT", "not a url"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigUnknownChain(t *testing.T) {
	t.Setenv("CHAIN_ID", "999999")
	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadNetworksFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "networks.yaml")
	content := `networks:
  - chain_id: 8453
    name: BASE
    rpc_url: https://mainnet.base.org
    relay_router: "0x52F1e2DC05C1f1A2e7AC3a9fD1FDF8A563a2f7cE"
    tokens:
      USDC:
        address: "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"
        decimals: 6
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	networks, err := LoadNetworksFile(path)
	require.NoError(t, err)
	require.Len(t, networks, 1)

	network := networks[8453]
	assert.Equal(t, "BASE", network.Name)
	assert.Equal(t, 6, network.Tokens["USDC"].Decimals)
}

func TestLoadNetworksFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadNetworksFile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("empty table", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "networks.yaml")
		require.NoError(t, os.WriteFile(path, []byte("networks: []\n"), 0o600))
		_, err := LoadNetworksFile(path)
		assert.Error(t, err)
	})

	t.Run("duplicate chain", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "networks.yaml")
		content := `networks:
  - chain_id: 1
    name: ETHEREUM
    relay_router: "0x9F5b3C7Dd6E3aD20E67cB40D0eEe2c973D1a2BbA"
  - chain_id: 1
    name: ETHEREUM
    relay_router: "0x9F5b3C7Dd6E3aD20E67cB40D0eEe2c973D1a2BbA"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		_, err := LoadNetworksFile(path)
		assert.Error(t, err)
	})
}
