package chainclient

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestERC20ABIParses(t *testing.T) {
	erc20ABI, err := ERC20ABI()
	require.NoError(t, err)

	_, hasAllowance := erc20ABI.Methods["allowance"]
	_, hasApprove := erc20ABI.Methods["approve"]
	assert.True(t, hasAllowance)
	assert.True(t, hasApprove)
}

func TestPackApprove(t *testing.T) {
	spender := common.HexToAddress("0x0987654321098765432109876543210987654321")

	data, err := PackApprove(spender, big.NewInt(1000000))
	require.NoError(t, err)

	// 4-byte selector + two 32-byte words
	require.Len(t, data, 68)

	// approve(address,uint256) selector
	assert.Equal(t, []byte{0x09, 0x5e, 0xa7, 0xb3}, data[:4])

	// spender is right-aligned in the first argument word
	assert.Equal(t, spender.Bytes(), data[16:36])

	// amount is the second argument word
	amount := new(big.Int).SetBytes(data[36:68])
	assert.Equal(t, int64(1000000), amount.Int64())
}
