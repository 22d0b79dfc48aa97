// Package chainclient provides read access to the chain: ERC-20 allowance
// queries, native balance queries and transaction receipt lookups.
package chainclient

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/tanminhan00/GasZero-sub001/pkg/faults"
	"github.com/tanminhan00/GasZero-sub001/pkg/logger"
)

// readTimeout bounds every single RPC read
const readTimeout = 10 * time.Second

// Client contains the RPC connection for a specific blockchain
type Client struct {
	ChainID int
	RPCURL  string
	Eth     *ethclient.Client
	logger  logger.Logger
}

// Dial connects to the chain's RPC endpoint
func Dial(chainID int, rpcURL string, log logger.Logger) (*Client, error) {
	eth, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to chain %d: %v", chainID, err)
	}

	return &Client{
		ChainID: chainID,
		RPCURL:  rpcURL,
		Eth:     eth,
		logger:  log,
	}, nil
}

// Allowance performs a read-only allowance(owner, spender) call against the
// token contract. No caching: the flow requires a fresh read per run.
func (c *Client) Allowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, error) {
	erc20ABI, err := ERC20ABI()
	if err != nil {
		return nil, faults.New(faults.KindChainRead, err)
	}

	contract := bind.NewBoundContract(token, erc20ABI, c.Eth, c.Eth, c.Eth)

	readCtx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var out []interface{}
	callOpts := &bind.CallOpts{Context: readCtx}
	if err := contract.Call(callOpts, &out, "allowance", owner, spender); err != nil {
		return nil, faults.Errorf(faults.KindChainRead, "failed to check allowance: %v", err)
	}

	if len(out) == 0 || out[0] == nil {
		return nil, faults.Errorf(faults.KindChainRead, "empty result from allowance call")
	}
	allowance, ok := out[0].(*big.Int)
	if !ok || allowance == nil {
		return nil, faults.Errorf(faults.KindChainRead, "invalid allowance result type")
	}

	c.logger.DebugWithChain(c.ChainID, "Allowance for owner %s spender %s: %s",
		owner.Hex(), spender.Hex(), allowance.String())

	return allowance, nil
}

// NativeBalance returns the address's native currency balance at the latest block.
func (c *Client) NativeBalance(ctx context.Context, addr common.Address) (*big.Int, error) {
	readCtx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	balance, err := c.Eth.BalanceAt(readCtx, addr, nil)
	if err != nil {
		return nil, faults.Errorf(faults.KindChainRead, "failed to get balance for %s: %v", addr.Hex(), err)
	}
	return balance, nil
}

// TransactionConfirmed reports whether the transaction has been mined.
// Returns (false, nil) while the transaction is still pending and an error
// if it was mined with a failed status.
func (c *Client) TransactionConfirmed(ctx context.Context, hash common.Hash) (bool, error) {
	readCtx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	receipt, err := c.Eth.TransactionReceipt(readCtx, hash)
	if errors.Is(err, ethereum.NotFound) {
		return false, nil
	}
	if err != nil {
		return false, faults.Errorf(faults.KindChainRead, "failed to get receipt for %s: %v", hash.Hex(), err)
	}

	if receipt.Status == 0 {
		return false, faults.Errorf(faults.KindSubmission, "transaction %s reverted", hash.Hex())
	}
	return true, nil
}
