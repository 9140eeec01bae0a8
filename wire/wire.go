// Package wire implements the encoding of the request and response records
// exchanged with the execution host.
package wire

// InitialBalance assigns an amount to an account at genesis.
type InitialBalance struct {
	// The human readable account address.
	Address string

	// The amount as a decimal string.
	Amount string
}

// Init describes the initialization of a ledger.
type Init struct {
	// The token name (3-30 bytes).
	Name string

	// The ticker symbol (3-6 uppercase letters).
	Symbol string

	// The number of decimals (0-18).
	Decimals uint8

	// The initial balances.
	InitialBalances []InitialBalance
}

// Handle is implemented by all state changing messages.
type Handle interface {
	handleTag() uint8
}

// Approve sets the allowance granted to a spender by the caller.
type Approve struct {
	Spender string
	Amount  string
}

// Transfer moves an amount from the caller to a recipient.
type Transfer struct {
	Recipient string
	Amount    string
}

// TransferFrom moves an amount from an owner to a recipient on behalf of the
// caller, consuming the callers allowance.
type TransferFrom struct {
	Owner     string
	Recipient string
	Amount    string
}

func (*Approve) handleTag() uint8      { return tagApprove }
func (*Transfer) handleTag() uint8     { return tagTransfer }
func (*TransferFrom) handleTag() uint8 { return tagTransferFrom }

// Query is implemented by all read only messages.
type Query interface {
	queryTag() uint8
}

// Balance requests the balance of an account.
type Balance struct {
	Address string
}

// Allowance requests the allowance granted by an owner to a spender.
type Allowance struct {
	Owner   string
	Spender string
}

func (*Balance) queryTag() uint8   { return tagBalance }
func (*Allowance) queryTag() uint8 { return tagAllowance }

// BalanceResponse answers a Balance query.
type BalanceResponse struct {
	// The balance as a decimal string.
	Balance string
}

// AllowanceResponse answers an Allowance query.
type AllowanceResponse struct {
	// The allowance as a decimal string.
	Allowance string
}
