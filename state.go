package tally

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/256dpi/tally/amount"
)

// ReadAmount will read the amount stored under the provided key. A missing
// key is interpreted as zero.
func ReadAmount(mem Memory, key []byte) (*uint256.Int, error) {
	// get value
	value, ok, err := mem.Get(key)
	if err != nil {
		return nil, err
	} else if !ok {
		return amount.Zero(), nil
	}

	return amount.Decode(value)
}

// WriteAmount will encode the provided amount and store it under the provided
// key unconditionally.
func WriteAmount(mem Memory, key []byte, num *uint256.Int) error {
	return mem.Set(key, amount.Encode(num))
}

// ReadBalance will read the balance of the provided canonical account address.
func ReadBalance(mem Memory, account []byte) (*uint256.Int, error) {
	return ReadAmount(mem, BalanceKey(account))
}

// ReadAllowance will read the allowance granted by the provided canonical
// owner address to the provided canonical spender address.
func ReadAllowance(mem Memory, owner, spender []byte) (*uint256.Int, error) {
	return ReadAmount(mem, AllowanceKey(owner, spender))
}

// ReadTotalSupply will read the total supply.
func ReadTotalSupply(mem Memory) (*uint256.Int, error) {
	return ReadAmount(mem, KeyTotalSupply)
}

// Constants hold the immutable token metadata written at initialization.
type Constants struct {
	Name     string
	Symbol   string
	Decimals uint8
}

// Read will read the token constants. It will fail if the ledger has not
// been initialized.
func (c *Constants) Read(mem Memory) error {
	// get name
	name, ok, err := mem.Get(KeyName)
	if err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("tally: not initialized")
	}

	// get symbol
	symbol, ok, err := mem.Get(KeySymbol)
	if err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("tally: not initialized")
	}

	// get decimals
	decimals, ok, err := mem.Get(KeyDecimals)
	if err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("tally: not initialized")
	} else if len(decimals) != 1 {
		return fmt.Errorf("tally: corrupted decimals data")
	}

	// set constants
	c.Name = string(name)
	c.Symbol = string(symbol)
	c.Decimals = decimals[0]

	return nil
}
