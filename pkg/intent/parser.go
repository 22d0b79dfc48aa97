// Package intent parses plain-text transfer instructions into structured intents.
package intent

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/tanminhan00/GasZero-sub001/pkg/faults"
	"github.com/tanminhan00/GasZero-sub001/pkg/models"
)

// transferPattern matches instructions of the form "<amount> USDC to <address>".
// The address group is deliberately loose; the hex digits are validated separately
// so a wrong-length address reports a clean parse failure instead of no match.
var transferPattern = regexp.MustCompile(`(?i)^\s*(?:send\s+)?(\d+(?:\.\d+)?)\s+USDC\s+to\s+(0x[0-9a-fA-F]+)\s*$`)

// TokenSymbol is the only token the fixed transfer pattern understands.
const TokenSymbol = "USDC"

// Parse extracts a transfer intent from a raw instruction. decimals is the
// token's decimal count used to scale the amount. Pure function, no I/O.
func Parse(raw string, decimals int) (models.TransferIntent, error) {
	m := transferPattern.FindStringSubmatch(raw)
	if m == nil {
		return models.TransferIntent{}, faults.Errorf(faults.KindMalformedIntent,
			"instruction %q does not match \"<amount> USDC to <address>\"", raw)
	}

	amountStr, addrStr := m[1], m[2]

	if !common.IsHexAddress(addrStr) || len(addrStr) != 42 {
		return models.TransferIntent{}, faults.Errorf(faults.KindMalformedIntent,
			"invalid recipient address: %s", addrStr)
	}

	amount, err := ParseUnits(amountStr, decimals)
	if err != nil {
		return models.TransferIntent{}, faults.New(faults.KindMalformedIntent, err)
	}
	if amount.Sign() <= 0 {
		return models.TransferIntent{}, faults.Errorf(faults.KindMalformedIntent,
			"amount must be greater than zero: %s", amountStr)
	}

	return models.TransferIntent{
		Amount:        amount,
		AmountDisplay: amountStr,
		Recipient:     common.HexToAddress(addrStr),
		TokenSymbol:   TokenSymbol,
	}, nil
}

// Canonical returns the canonical text of an intent. This is the exact string
// the user signs, binding them to the amount and recipient of this transfer.
func Canonical(ti models.TransferIntent) string {
	return fmt.Sprintf("%s %s to %s", ti.AmountDisplay, ti.TokenSymbol,
		strings.ToLower(ti.Recipient.Hex()))
}
