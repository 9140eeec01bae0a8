// Package amount implements the fixed width encoding of token amounts.
package amount

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
)

// EncodedLength defines the length of an encoded amount.
const EncodedLength = 16

// ErrCorrupted is returned if a stored amount is not exactly 16 bytes long.
var ErrCorrupted = errors.New("tally: corrupted amount data")

// mask128 covers the lower 128 bits.
var mask128 = func() *uint256.Int {
	one := uint256.NewInt(1)
	max := new(uint256.Int).Lsh(one, 128)
	return max.Sub(max, one)
}()

// Zero will return a new zero amount.
func Zero() *uint256.Int {
	return uint256.NewInt(0)
}

// Parse will parse a decimal string into an amount. It will fail on malformed
// numerals and on values that do not fit into 128 bits.
func Parse(str string) (*uint256.Int, error) {
	// parse number
	num, err := uint256.FromDecimal(str)
	if err != nil {
		return nil, fmt.Errorf("tally: invalid amount %q: %w", str, err)
	}

	// check width
	if num.BitLen() > 128 {
		return nil, fmt.Errorf("tally: invalid amount %q: exceeds 128 bits", str)
	}

	return num, nil
}

// Encode will encode an amount as a 16 byte big endian value. The amount must
// fit into 128 bits.
func Encode(num *uint256.Int) []byte {
	buf := num.Bytes32()
	return buf[16:]
}

// Decode will decode an amount from a 16 byte big endian value. It will return
// ErrCorrupted if the value has any other length.
func Decode(data []byte) (*uint256.Int, error) {
	// check length
	if len(data) != EncodedLength {
		return nil, fmt.Errorf("%w: got %d bytes, expected %d", ErrCorrupted, len(data), EncodedLength)
	}

	return new(uint256.Int).SetBytes(data), nil
}

// Add will return the sum of the provided amounts. The sum wraps around at
// 128 bits.
func Add(x, y *uint256.Int) *uint256.Int {
	sum := new(uint256.Int).Add(x, y)
	return sum.And(sum, mask128)
}

// Sub will return the difference of the provided amounts. The minuend must
// not be smaller than the subtrahend.
func Sub(x, y *uint256.Int) *uint256.Int {
	return new(uint256.Int).Sub(x, y)
}
