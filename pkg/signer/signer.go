// Package signer abstracts the wallet capability the flow needs: signing a
// plain-text message and broadcasting a transaction. The coordinator only
// sees the Signer interface so tests can substitute a double.
package signer

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/tanminhan00/GasZero-sub001/pkg/faults"
	"github.com/tanminhan00/GasZero-sub001/pkg/logger"
)

// submitTimeout bounds the assembly and broadcast of one transaction
const submitTimeout = 30 * time.Second

// Signer is the wallet capability injected into the coordinator.
type Signer interface {
	// Address returns the signer's account address.
	Address() common.Address

	// SignMessage signs a plain-text message, binding the signer to its exact content.
	SignMessage(ctx context.Context, message string) ([]byte, error)

	// SendTransaction signs and broadcasts a transaction to the given contract
	// and returns its hash.
	SendTransaction(ctx context.Context, to common.Address, data []byte) (common.Hash, error)
}

// KeySigner implements Signer over a raw private key. It signs messages in
// the EIP-191 personal-message format, matching what browser wallets produce.
type KeySigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
	chainID *big.Int
	eth     *ethclient.Client
	logger  logger.Logger
}

var _ Signer = (*KeySigner)(nil)

// NewKeySigner creates a signer from a hex-encoded private key. eth may be
// nil when only message signing is needed, but SendTransaction then fails.
func NewKeySigner(privateKeyHex string, chainID int, eth *ethclient.Client, log logger.Logger) (*KeySigner, error) {
	key, err := crypto.HexToECDSA(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %v", err)
	}

	return &KeySigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		chainID: big.NewInt(int64(chainID)),
		eth:     eth,
		logger:  log,
	}, nil
}

// Address returns the signer's account address.
func (s *KeySigner) Address() common.Address {
	return s.address
}

// SignMessage signs message with the EIP-191 personal-message prefix.
func (s *KeySigner) SignMessage(_ context.Context, message string) ([]byte, error) {
	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), s.key)
	if err != nil {
		return nil, faults.Errorf(faults.KindSignerRejected, "failed to sign message: %v", err)
	}

	// Shift the recovery id to the 27/28 convention wallets use
	sig[64] += 27
	return sig, nil
}

// SendTransaction assembles, signs and broadcasts a legacy transaction
// carrying data to the given contract address.
func (s *KeySigner) SendTransaction(ctx context.Context, to common.Address, data []byte) (common.Hash, error) {
	if s.eth == nil {
		return common.Hash{}, faults.Errorf(faults.KindSubmission, "signer has no chain connection")
	}

	submitCtx, cancel := context.WithTimeout(ctx, submitTimeout)
	defer cancel()

	nonce, err := s.eth.PendingNonceAt(submitCtx, s.address)
	if err != nil {
		return common.Hash{}, faults.Errorf(faults.KindSubmission, "failed to get nonce: %v", err)
	}

	gasPrice, err := s.eth.SuggestGasPrice(submitCtx)
	if err != nil {
		return common.Hash{}, faults.Errorf(faults.KindSubmission, "failed to get gas price: %v", err)
	}

	gasLimit, err := s.eth.EstimateGas(submitCtx, ethereum.CallMsg{
		From: s.address,
		To:   &to,
		Data: data,
	})
	if err != nil {
		return common.Hash{}, faults.Errorf(faults.KindSubmission, "failed to estimate gas: %v", err)
	}

	tx := types.NewTransaction(nonce, to, big.NewInt(0), gasLimit, gasPrice, data)

	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(s.chainID), s.key)
	if err != nil {
		return common.Hash{}, faults.Errorf(faults.KindSignerRejected, "failed to sign transaction: %v", err)
	}

	if err := s.eth.SendTransaction(submitCtx, signedTx); err != nil {
		return common.Hash{}, faults.Errorf(faults.KindSubmission, "failed to broadcast transaction: %v", err)
	}

	s.logger.Debug("Transaction sent: %s (nonce: %d)", signedTx.Hash().Hex(), nonce)
	return signedTx.Hash(), nil
}
