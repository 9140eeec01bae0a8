package tally

// Well known keys for the token constants and the total supply.
var (
	KeyName        = []byte("name")
	KeySymbol      = []byte("symbol")
	KeyDecimals    = []byte("decimals")
	KeyTotalSupply = []byte("total_supply")
)

// Namespace prefixes for balances and allowances. They must stay distinct
// from each other and from the well known keys.
var (
	balancePrefix   = []byte("balance")
	allowancePrefix = []byte("allowance")
)

// BalanceKey will return the key of the balance stored for the provided
// canonical account address.
func BalanceKey(account []byte) []byte {
	b := make([]byte, 0, len(balancePrefix)+len(account))
	return append(append(b, balancePrefix...), account...)
}

// AllowanceKey will return the key of the allowance stored for the provided
// canonical owner and spender addresses. The owner segment comes first so
// that all allowances of one owner share a common prefix.
func AllowanceKey(owner, spender []byte) []byte {
	b := make([]byte, 0, len(allowancePrefix)+len(owner)+len(spender))
	return append(append(append(b, allowancePrefix...), owner...), spender...)
}
