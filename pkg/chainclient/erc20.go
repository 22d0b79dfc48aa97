package chainclient

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// erc20JSON contains the ABI for the ERC20 token functions the flow needs
const erc20JSON = `[
	{
		"constant": true,
		"inputs": [
			{
				"name": "_owner",
				"type": "address"
			},
			{
				"name": "_spender",
				"type": "address"
			}
		],
		"name": "allowance",
		"outputs": [
			{
				"name": "",
				"type": "uint256"
			}
		],
		"payable": false,
		"stateMutability": "view",
		"type": "function"
	},
	{
		"constant": false,
		"inputs": [
			{
				"name": "_spender",
				"type": "address"
			},
			{
				"name": "_value",
				"type": "uint256"
			}
		],
		"name": "approve",
		"outputs": [
			{
				"name": "",
				"type": "bool"
			}
		],
		"payable": false,
		"stateMutability": "nonpayable",
		"type": "function"
	}
]`

// ERC20ABI returns the parsed ERC20 ABI
func ERC20ABI() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(erc20JSON))
}

// PackApprove builds the calldata for approve(spender, value)
func PackApprove(spender common.Address, value *big.Int) ([]byte, error) {
	erc20ABI, err := ERC20ABI()
	if err != nil {
		return nil, err
	}
	return erc20ABI.Pack("approve", spender, value)
}
