package amount

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
)

const max128 = "340282366920938463463374607431768211455"

func TestParse(t *testing.T) {
	num, err := Parse("0")
	assert.NoError(t, err)
	assert.True(t, num.IsZero())

	num, err = Parse("66")
	assert.NoError(t, err)
	assert.Equal(t, uint64(66), num.Uint64())

	num, err = Parse(max128)
	assert.NoError(t, err)
	assert.Equal(t, max128, num.Dec())

	_, err = Parse("")
	assert.Error(t, err)

	_, err = Parse("12x")
	assert.Error(t, err)

	_, err = Parse("-1")
	assert.Error(t, err)

	// one above the 128 bit maximum
	_, err = Parse("340282366920938463463374607431768211456")
	assert.Error(t, err)
}

func TestEncodeDecode(t *testing.T) {
	for _, str := range []string{"0", "1", "66", "18446744073709551616", max128} {
		num, err := Parse(str)
		assert.NoError(t, err)

		data := Encode(num)
		assert.Len(t, data, EncodedLength)

		out, err := Decode(data)
		assert.NoError(t, err)
		assert.Equal(t, str, out.Dec())
	}
}

func TestDecodeCorrupted(t *testing.T) {
	for _, length := range []int{0, 1, 15, 17, 32} {
		_, err := Decode(make([]byte, length))
		assert.ErrorIs(t, err, ErrCorrupted)
	}
}

func TestAddWrap(t *testing.T) {
	max, err := Parse(max128)
	assert.NoError(t, err)

	sum := Add(max, uint256.NewInt(1))
	assert.True(t, sum.IsZero())

	sum = Add(max, uint256.NewInt(5))
	assert.Equal(t, uint64(4), sum.Uint64())
}

func TestSub(t *testing.T) {
	diff := Sub(uint256.NewInt(27), uint256.NewInt(10))
	assert.Equal(t, uint64(17), diff.Uint64())
}
