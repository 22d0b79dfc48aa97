package intent

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanminhan00/GasZero-sub001/pkg/faults"
)

const usdcDecimals = 6

func TestParseValidInstructions(t *testing.T) {
	recipient := "0x" + strings.Repeat("a", 40)

	testCases := []struct {
		name           string
		raw            string
		expectedAmount *big.Int
	}{
		{
			name:           "whole amount",
			raw:            "10 USDC to " + recipient,
			expectedAmount: big.NewInt(10000000),
		},
		{
			name:           "fractional amount",
			raw:            "0.5 USDC to " + recipient,
			expectedAmount: big.NewInt(500000),
		},
		{
			name:           "full precision",
			raw:            "1.234567 USDC to " + recipient,
			expectedAmount: big.NewInt(1234567),
		},
		{
			name:           "case insensitive keyword",
			raw:            "10 usdc TO " + recipient,
			expectedAmount: big.NewInt(10000000),
		},
		{
			name:           "leading send verb",
			raw:            "send 10 USDC to " + recipient,
			expectedAmount: big.NewInt(10000000),
		},
		{
			name:           "surrounding whitespace",
			raw:            "  25 USDC to " + recipient + "  ",
			expectedAmount: big.NewInt(25000000),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ti, err := Parse(tc.raw, usdcDecimals)
			require.NoError(t, err)
			assert.Equal(t, 0, ti.Amount.Cmp(tc.expectedAmount))
			assert.Equal(t, recipient, strings.ToLower(ti.Recipient.Hex()))
			assert.Equal(t, TokenSymbol, ti.TokenSymbol)
		})
	}
}

func TestParseRejectsMalformedInstructions(t *testing.T) {
	recipient := "0x" + strings.Repeat("a", 40)

	testCases := []struct {
		name string
		raw  string
	}{
		{"empty input", ""},
		{"missing keyword", "10 to " + recipient},
		{"wrong token", "10 DAI to " + recipient},
		{"missing to", "10 USDC " + recipient},
		{"no address", "10 USDC to"},
		{"short address", "10 USDC to 0x" + strings.Repeat("a", 39)},
		{"long address", "10 USDC to 0x" + strings.Repeat("a", 41)},
		{"non hex address", "10 USDC to 0x" + strings.Repeat("g", 40)},
		{"missing 0x prefix", "10 USDC to " + strings.Repeat("a", 40)},
		{"negative amount", "-10 USDC to " + recipient},
		{"zero amount", "0 USDC to " + recipient},
		{"bare dot amount", ". USDC to " + recipient},
		{"too many decimals", "1.2345678 USDC to " + recipient},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.raw, usdcDecimals)
			require.Error(t, err)
			assert.Equal(t, faults.KindMalformedIntent, faults.KindOf(err))
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	// Parsing then reformatting the scaled amount must reproduce the typed
	// string, modulo trailing-zero normalization.
	recipient := "0x" + strings.Repeat("b", 40)

	amounts := []string{"1", "10", "0.5", "0.000001", "123.456", "1000000", "99.999999"}
	for _, amount := range amounts {
		t.Run(amount, func(t *testing.T) {
			ti, err := Parse(amount+" USDC to "+recipient, usdcDecimals)
			require.NoError(t, err)
			assert.Equal(t, amount, FormatUnits(ti.Amount, usdcDecimals))
		})
	}

	// Trailing zeros normalize away but the value is identical.
	ti, err := Parse("10.500000 USDC to "+recipient, usdcDecimals)
	require.NoError(t, err)
	assert.Equal(t, "10.5", FormatUnits(ti.Amount, usdcDecimals))
	reparsed, err := ParseUnits("10.5", usdcDecimals)
	require.NoError(t, err)
	assert.Equal(t, 0, ti.Amount.Cmp(reparsed))
}

func TestCanonical(t *testing.T) {
	recipient := "0x" + strings.Repeat("A", 40)
	ti, err := Parse("10 USDC to "+recipient, usdcDecimals)
	require.NoError(t, err)

	// Canonical text is stable regardless of address casing in the input.
	assert.Equal(t, "10 USDC to 0x"+strings.Repeat("a", 40), Canonical(ti))
}
