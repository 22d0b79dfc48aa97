package models

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// TransferIntent is a parsed transfer instruction. Immutable once parsed:
// Amount is the value scaled to the token's decimals, AmountDisplay is the
// decimal string as originally typed and re-parses to the same Amount.
type TransferIntent struct {
	Amount        *big.Int
	AmountDisplay string
	Recipient     common.Address
	TokenSymbol   string
}

// FundingReason is the reason code sent with a funding request.
type FundingReason string

// FundingReasonApproval is sent when the user needs gas for an approval transaction.
const FundingReasonApproval FundingReason = "approval_needed"

// FundingRequest asks the funding service to send a user native currency.
type FundingRequest struct {
	UserAddress string        `json:"userAddress"`
	Reason      FundingReason `json:"reason"`
}

// WaitOutcome is the result of waiting for funding to land.
type WaitOutcome int

const (
	// Funded means the observed balance met the threshold.
	Funded WaitOutcome = iota
	// TimedOut means the attempt budget was exhausted first.
	TimedOut
)

func (w WaitOutcome) String() string {
	if w == Funded {
		return "funded"
	}
	return "timed_out"
}

// RelayRequest is the payload posted to the relay service. The signature
// binds sender, amount and recipient so a captured request cannot be
// replayed for a different transfer.
type RelayRequest struct {
	Chain     int    `json:"chain"`
	From      string `json:"from"`
	To        string `json:"to"`
	Token     string `json:"token"`
	Amount    string `json:"amount"`
	Signature string `json:"signature"`
}

// RelayResponse carries the relay-issued transaction handle.
type RelayResponse struct {
	Hash string `json:"hash"`
}
