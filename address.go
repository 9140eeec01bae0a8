package tally

import (
	"bytes"
	"fmt"
)

// AddressCodec translates between human readable addresses and their fixed
// length canonical byte form. Implementations are provided by the host.
type AddressCodec interface {
	// CanonicalAddress will translate a human readable address into its
	// canonical byte form.
	CanonicalAddress(address string) ([]byte, error)

	// HumanAddress will translate a canonical address back into its human
	// readable form.
	HumanAddress(canonical []byte) (string, error)
}

// PadCodec is an AddressCodec that zero pads addresses to a fixed length.
type PadCodec struct {
	// The canonical address length.
	Length int
}

// CanonicalAddress implements the AddressCodec interface.
func (c *PadCodec) CanonicalAddress(address string) ([]byte, error) {
	// check address
	if len(address) == 0 {
		return nil, fmt.Errorf("tally: invalid address: empty")
	} else if len(address) > c.Length {
		return nil, fmt.Errorf("tally: invalid address %q: longer than %d bytes", address, c.Length)
	}

	// pad address
	buf := make([]byte, c.Length)
	copy(buf, address)

	return buf, nil
}

// HumanAddress implements the AddressCodec interface.
func (c *PadCodec) HumanAddress(canonical []byte) (string, error) {
	// check length
	if len(canonical) != c.Length {
		return "", fmt.Errorf("tally: invalid canonical address: got %d bytes, expected %d", len(canonical), c.Length)
	}

	return string(bytes.TrimRight(canonical, "\x00")), nil
}
