package tally

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/256dpi/tally/amount"
)

func TestReadAmountDefault(t *testing.T) {
	mem := NewMapMemory()

	num, err := ReadAmount(mem, []byte("missing"))
	assert.NoError(t, err)
	assert.True(t, num.IsZero())
}

func TestReadAmountRoundTrip(t *testing.T) {
	mem := NewMapMemory()

	err := WriteAmount(mem, []byte("key"), uint256.NewInt(66))
	assert.NoError(t, err)

	num, err := ReadAmount(mem, []byte("key"))
	assert.NoError(t, err)
	assert.Equal(t, uint64(66), num.Uint64())
}

func TestReadAmountCorrupted(t *testing.T) {
	mem := NewMapMemory()

	err := mem.Set([]byte("key"), []byte("short"))
	assert.NoError(t, err)

	_, err = ReadAmount(mem, []byte("key"))
	assert.ErrorIs(t, err, amount.ErrCorrupted)
}

func TestConstantsNotInitialized(t *testing.T) {
	mem := NewMapMemory()

	var constants Constants
	err := constants.Read(mem)
	assert.Error(t, err)
}

func TestMapMemory(t *testing.T) {
	mem := NewMapMemory()

	_, ok, err := mem.Get([]byte("foo"))
	assert.NoError(t, err)
	assert.False(t, ok)

	err = mem.Set([]byte("foo"), []byte("bar"))
	assert.NoError(t, err)

	value, ok, err := mem.Get([]byte("foo"))
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("bar"), value)
	assert.Equal(t, 1, mem.Length())
}
