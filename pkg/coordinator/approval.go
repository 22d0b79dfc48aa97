package coordinator

import "math/big"

// MaxUint256 is the unlimited ERC-20 approval value.
var MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// approvalHeadroom is the minimum fraction of the requested amount the
// existing allowance must cover for this run to grant an exact approval.
// Below it the user's prior approvals were clearly too small for their
// transfer sizes, so an unlimited approval saves a transaction on every
// future run.
var approvalHeadroom = big.NewFloat(0.3)

// approvalAmount picks the value for the approval transaction given the
// requested transfer amount and the allowance currently on chain. Only called
// when the allowance is insufficient for the transfer.
func approvalAmount(requested, currentAllowance *big.Int) *big.Int {
	// First approval for this router: grant unlimited.
	if currentAllowance.Sign() == 0 {
		return MaxUint256
	}

	ratio := new(big.Float).Quo(
		new(big.Float).SetInt(currentAllowance),
		new(big.Float).SetInt(requested),
	)
	if ratio.Cmp(approvalHeadroom) < 0 {
		return MaxUint256
	}

	return requested
}
