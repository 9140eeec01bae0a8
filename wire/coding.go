package wire

import (
	"fmt"

	"github.com/256dpi/fpack"
)

// The tags used to encode the handle message variants.
const (
	tagApprove uint8 = iota + 1
	tagTransfer
	tagTransferFrom
)

// The tags used to encode the query message variants.
const (
	tagBalance uint8 = iota + 1
	tagAllowance
)

// EncodeInit will encode an init message.
func EncodeInit(msg *Init) ([]byte, fpack.Ref, error) {
	return fpack.Encode(true, func(enc *fpack.Encoder) error {
		// encode version
		enc.Uint8(1)

		// encode constants
		enc.String(msg.Name, 1)
		enc.String(msg.Symbol, 1)
		enc.Uint8(msg.Decimals)

		// encode length
		enc.Uint16(uint16(len(msg.InitialBalances)))

		// encode balances
		for _, row := range msg.InitialBalances {
			enc.String(row.Address, 1)
			enc.String(row.Amount, 1)
		}

		return nil
	})
}

// DecodeInit will decode an init message.
func DecodeInit(data []byte) (*Init, error) {
	// prepare message
	var msg Init

	// decode message
	err := fpack.Decode(data, func(dec *fpack.Decoder) error {
		// decode version
		var version uint8
		dec.Uint8(&version)
		if version != 1 {
			return fmt.Errorf("invalid version")
		}

		// decode constants
		dec.String(&msg.Name, 1, true)
		dec.String(&msg.Symbol, 1, true)
		dec.Uint8(&msg.Decimals)

		// decode length
		var length uint16
		dec.Uint16(&length)

		// decode balances
		msg.InitialBalances = make([]InitialBalance, length)
		for i := 0; i < int(length); i++ {
			dec.String(&msg.InitialBalances[i].Address, 1, true)
			dec.String(&msg.InitialBalances[i].Amount, 1, true)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &msg, nil
}

// EncodeHandle will encode a handle message.
func EncodeHandle(msg Handle) ([]byte, fpack.Ref, error) {
	return fpack.Encode(true, func(enc *fpack.Encoder) error {
		// encode version and tag
		enc.Uint8(1)
		enc.Uint8(msg.handleTag())

		// encode body
		switch msg := msg.(type) {
		case *Approve:
			enc.String(msg.Spender, 1)
			enc.String(msg.Amount, 1)
		case *Transfer:
			enc.String(msg.Recipient, 1)
			enc.String(msg.Amount, 1)
		case *TransferFrom:
			enc.String(msg.Owner, 1)
			enc.String(msg.Recipient, 1)
			enc.String(msg.Amount, 1)
		}

		return nil
	})
}

// DecodeHandle will decode a handle message.
func DecodeHandle(data []byte) (Handle, error) {
	// prepare message
	var msg Handle

	// decode message
	err := fpack.Decode(data, func(dec *fpack.Decoder) error {
		// decode version
		var version uint8
		dec.Uint8(&version)
		if version != 1 {
			return fmt.Errorf("invalid version")
		}

		// decode tag
		var tag uint8
		dec.Uint8(&tag)

		// decode body
		switch tag {
		case tagApprove:
			var approve Approve
			dec.String(&approve.Spender, 1, true)
			dec.String(&approve.Amount, 1, true)
			msg = &approve
		case tagTransfer:
			var transfer Transfer
			dec.String(&transfer.Recipient, 1, true)
			dec.String(&transfer.Amount, 1, true)
			msg = &transfer
		case tagTransferFrom:
			var transferFrom TransferFrom
			dec.String(&transferFrom.Owner, 1, true)
			dec.String(&transferFrom.Recipient, 1, true)
			dec.String(&transferFrom.Amount, 1, true)
			msg = &transferFrom
		default:
			return fmt.Errorf("unknown handle message tag %d", tag)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return msg, nil
}

// EncodeQuery will encode a query message.
func EncodeQuery(msg Query) ([]byte, fpack.Ref, error) {
	return fpack.Encode(true, func(enc *fpack.Encoder) error {
		// encode version and tag
		enc.Uint8(1)
		enc.Uint8(msg.queryTag())

		// encode body
		switch msg := msg.(type) {
		case *Balance:
			enc.String(msg.Address, 1)
		case *Allowance:
			enc.String(msg.Owner, 1)
			enc.String(msg.Spender, 1)
		}

		return nil
	})
}

// DecodeQuery will decode a query message.
func DecodeQuery(data []byte) (Query, error) {
	// prepare message
	var msg Query

	// decode message
	err := fpack.Decode(data, func(dec *fpack.Decoder) error {
		// decode version
		var version uint8
		dec.Uint8(&version)
		if version != 1 {
			return fmt.Errorf("invalid version")
		}

		// decode tag
		var tag uint8
		dec.Uint8(&tag)

		// decode body
		switch tag {
		case tagBalance:
			var balance Balance
			dec.String(&balance.Address, 1, true)
			msg = &balance
		case tagAllowance:
			var allowance Allowance
			dec.String(&allowance.Owner, 1, true)
			dec.String(&allowance.Spender, 1, true)
			msg = &allowance
		default:
			return fmt.Errorf("unknown query message tag %d", tag)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return msg, nil
}

// Encode will encode the response.
func (r *BalanceResponse) Encode() ([]byte, fpack.Ref, error) {
	return fpack.Encode(true, func(enc *fpack.Encoder) error {
		// encode version
		enc.Uint8(1)

		// encode balance
		enc.String(r.Balance, 1)

		return nil
	})
}

// Decode will decode the response.
func (r *BalanceResponse) Decode(data []byte) error {
	return fpack.Decode(data, func(dec *fpack.Decoder) error {
		// decode version
		var version uint8
		dec.Uint8(&version)
		if version != 1 {
			return fmt.Errorf("invalid version")
		}

		// decode balance
		dec.String(&r.Balance, 1, true)

		return nil
	})
}

// Encode will encode the response.
func (r *AllowanceResponse) Encode() ([]byte, fpack.Ref, error) {
	return fpack.Encode(true, func(enc *fpack.Encoder) error {
		// encode version
		enc.Uint8(1)

		// encode allowance
		enc.String(r.Allowance, 1)

		return nil
	})
}

// Decode will decode the response.
func (r *AllowanceResponse) Decode(data []byte) error {
	return fpack.Decode(data, func(dec *fpack.Decoder) error {
		// decode version
		var version uint8
		dec.Uint8(&version)
		if version != 1 {
			return fmt.Errorf("invalid version")
		}

		// decode allowance
		dec.String(&r.Allowance, 1, true)

		return nil
	})
}
