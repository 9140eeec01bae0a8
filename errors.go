package tally

import "errors"

// The errors returned by the initialization checks.
var (
	ErrInvalidName     = errors.New("tally: name is not in the expected format (3-30 bytes)")
	ErrInvalidSymbol   = errors.New("tally: ticker symbol is not in expected format [A-Z]{3,6}")
	ErrInvalidDecimals = errors.New("tally: decimals must not exceed 18")
)

// The errors returned by the accounting checks. Both are wrapped with the
// available and required figures when returned.
var (
	ErrInsufficientFunds     = errors.New("tally: insufficient funds")
	ErrInsufficientAllowance = errors.New("tally: insufficient allowance")
)
