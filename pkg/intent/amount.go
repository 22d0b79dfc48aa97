package intent

import (
	"fmt"
	"math/big"
	"strings"
)

// ParseUnits converts a decimal string to an integer scaled to the token's
// decimals. Scaling is string-based so it is lossless: "10.5" with 6 decimals
// becomes 10500000 exactly. Fails if the fractional part has more digits than
// the token supports.
func ParseUnits(value string, decimals int) (*big.Int, error) {
	whole, frac := value, ""
	if i := strings.IndexByte(value, '.'); i >= 0 {
		whole, frac = value[:i], value[i+1:]
	}

	if whole == "" || strings.Trim(whole, "0123456789") != "" || strings.Trim(frac, "0123456789") != "" {
		return nil, fmt.Errorf("invalid decimal amount: %s", value)
	}
	if len(frac) > decimals {
		return nil, fmt.Errorf("amount %s has more than %d decimal places", value, decimals)
	}

	// Pad the fractional part to the full decimal width and concatenate.
	padded := whole + frac + strings.Repeat("0", decimals-len(frac))

	scaled, ok := new(big.Int).SetString(padded, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal amount: %s", value)
	}
	return scaled, nil
}

// FormatUnits is the inverse of ParseUnits: it renders a scaled integer as a
// decimal string, trimming trailing fractional zeros. ParseUnits(FormatUnits(x))
// round-trips for any non-negative x.
func FormatUnits(value *big.Int, decimals int) string {
	s := value.String()
	if decimals == 0 {
		return s
	}
	if len(s) <= decimals {
		s = strings.Repeat("0", decimals-len(s)+1) + s
	}

	whole, frac := s[:len(s)-decimals], s[len(s)-decimals:]
	frac = strings.TrimRight(frac, "0")
	if frac == "" {
		return whole
	}
	return whole + "." + frac
}
