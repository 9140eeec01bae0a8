package tally

import (
	"fmt"

	"github.com/256dpi/fpack"
	"github.com/holiman/uint256"

	"github.com/256dpi/tally/amount"
	"github.com/256dpi/tally/wire"
)

// Params carry the invocation context supplied by the host.
type Params struct {
	// The canonical address of the caller.
	Sender []byte
}

// Response is returned by successful state changing operations.
type Response struct {
	// A human readable status.
	Log string
}

// Init will initialize the ledger by writing the initial balances, the token
// constants and the total supply. The host must discard all writes if an
// error is returned.
func Init(mem Memory, codec AddressCodec, _ Params, msg *wire.Init) error {
	// write initial balances and accumulate the total supply
	total := amount.Zero()
	for _, row := range msg.InitialBalances {
		// canonicalize address
		account, err := codec.CanonicalAddress(row.Address)
		if err != nil {
			return err
		}

		// parse amount
		num, err := amount.Parse(row.Amount)
		if err != nil {
			return err
		}

		// write balance
		err = WriteAmount(mem, BalanceKey(account), num)
		if err != nil {
			return err
		}

		// accumulate total, wraps at 128 bits
		total = amount.Add(total, num)
	}

	// check name
	if len(msg.Name) < 3 || len(msg.Name) > 30 {
		return ErrInvalidName
	}

	// check symbol
	if !validSymbol(msg.Symbol) {
		return ErrInvalidSymbol
	}

	// check decimals
	if msg.Decimals > 18 {
		return ErrInvalidDecimals
	}

	// write constants
	err := mem.Set(KeyName, []byte(msg.Name))
	if err != nil {
		return err
	}
	err = mem.Set(KeySymbol, []byte(msg.Symbol))
	if err != nil {
		return err
	}
	err = mem.Set(KeyDecimals, []byte{msg.Decimals})
	if err != nil {
		return err
	}

	// write total supply
	err = WriteAmount(mem, KeyTotalSupply, total)
	if err != nil {
		return err
	}

	return nil
}

// Handle will apply the provided state changing message on behalf of the
// caller identified by params. The host must discard all writes if an error
// is returned.
func Handle(mem Memory, codec AddressCodec, params Params, msg wire.Handle) (*Response, error) {
	switch msg := msg.(type) {
	case *wire.Approve:
		return handleApprove(mem, codec, params, msg)
	case *wire.Transfer:
		return handleTransfer(mem, codec, params, msg)
	case *wire.TransferFrom:
		return handleTransferFrom(mem, codec, params, msg)
	default:
		return nil, fmt.Errorf("tally: unsupported handle message %T", msg)
	}
}

// Query will answer the provided read only message with an encoded response.
func Query(mem Memory, codec AddressCodec, msg wire.Query) ([]byte, fpack.Ref, error) {
	switch msg := msg.(type) {
	case *wire.Balance:
		// canonicalize address
		account, err := codec.CanonicalAddress(msg.Address)
		if err != nil {
			return nil, fpack.Ref{}, err
		}

		// read balance
		balance, err := ReadBalance(mem, account)
		if err != nil {
			return nil, fpack.Ref{}, err
		}

		// encode response
		res := wire.BalanceResponse{Balance: balance.Dec()}

		return res.Encode()
	case *wire.Allowance:
		// canonicalize addresses
		owner, err := codec.CanonicalAddress(msg.Owner)
		if err != nil {
			return nil, fpack.Ref{}, err
		}
		spender, err := codec.CanonicalAddress(msg.Spender)
		if err != nil {
			return nil, fpack.Ref{}, err
		}

		// read allowance
		allowance, err := ReadAllowance(mem, owner, spender)
		if err != nil {
			return nil, fpack.Ref{}, err
		}

		// encode response
		res := wire.AllowanceResponse{Allowance: allowance.Dec()}

		return res.Encode()
	default:
		return nil, fpack.Ref{}, fmt.Errorf("tally: unsupported query message %T", msg)
	}
}

func handleApprove(mem Memory, codec AddressCodec, params Params, msg *wire.Approve) (*Response, error) {
	// canonicalize spender
	spender, err := codec.CanonicalAddress(msg.Spender)
	if err != nil {
		return nil, err
	}

	// parse amount
	num, err := amount.Parse(msg.Amount)
	if err != nil {
		return nil, err
	}

	// overwrite allowance
	err = WriteAmount(mem, AllowanceKey(params.Sender, spender), num)
	if err != nil {
		return nil, err
	}

	return &Response{Log: "approve successful"}, nil
}

func handleTransfer(mem Memory, codec AddressCodec, params Params, msg *wire.Transfer) (*Response, error) {
	// canonicalize recipient
	recipient, err := codec.CanonicalAddress(msg.Recipient)
	if err != nil {
		return nil, err
	}

	// parse amount
	num, err := amount.Parse(msg.Amount)
	if err != nil {
		return nil, err
	}

	// move balance
	err = performTransfer(mem, params.Sender, recipient, num)
	if err != nil {
		return nil, err
	}

	return &Response{Log: "transfer successful"}, nil
}

func handleTransferFrom(mem Memory, codec AddressCodec, params Params, msg *wire.TransferFrom) (*Response, error) {
	// canonicalize owner and recipient
	owner, err := codec.CanonicalAddress(msg.Owner)
	if err != nil {
		return nil, err
	}
	recipient, err := codec.CanonicalAddress(msg.Recipient)
	if err != nil {
		return nil, err
	}

	// parse amount
	num, err := amount.Parse(msg.Amount)
	if err != nil {
		return nil, err
	}

	// read allowance
	allowance, err := ReadAllowance(mem, owner, params.Sender)
	if err != nil {
		return nil, err
	}

	// check allowance
	if allowance.Lt(num) {
		return nil, fmt.Errorf("%w: allowance=%s, required=%s", ErrInsufficientAllowance, allowance.Dec(), num.Dec())
	}

	// consume allowance before moving the balance, the host transaction
	// rolls both back together on failure
	allowance = amount.Sub(allowance, num)
	err = WriteAmount(mem, AllowanceKey(owner, params.Sender), allowance)
	if err != nil {
		return nil, err
	}

	// move balance
	err = performTransfer(mem, owner, recipient, num)
	if err != nil {
		return nil, err
	}

	return &Response{Log: "transfer from successful"}, nil
}

func performTransfer(mem Memory, from, to []byte, num *uint256.Int) error {
	// read sender balance
	fromBalance, err := ReadBalance(mem, from)
	if err != nil {
		return err
	}

	// check balance
	if fromBalance.Lt(num) {
		return fmt.Errorf("%w: balance=%s, required=%s", ErrInsufficientFunds, fromBalance.Dec(), num.Dec())
	}

	// decrement sender balance
	fromBalance = amount.Sub(fromBalance, num)
	err = WriteAmount(mem, BalanceKey(from), fromBalance)
	if err != nil {
		return err
	}

	// read recipient balance
	toBalance, err := ReadBalance(mem, to)
	if err != nil {
		return err
	}

	// increment recipient balance, wraps at 128 bits
	toBalance = amount.Add(toBalance, num)
	err = WriteAmount(mem, BalanceKey(to), toBalance)
	if err != nil {
		return err
	}

	return nil
}

func validSymbol(symbol string) bool {
	// check length
	if len(symbol) < 3 || len(symbol) > 6 {
		return false
	}

	// check letters
	for i := 0; i < len(symbol); i++ {
		if symbol[i] < 'A' || symbol[i] > 'Z' {
			return false
		}
	}

	return true
}
