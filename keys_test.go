package tally

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBalanceKey(t *testing.T) {
	key := BalanceKey([]byte("addr0000"))
	assert.Equal(t, []byte("balanceaddr0000"), key)
}

func TestAllowanceKey(t *testing.T) {
	key := AllowanceKey([]byte("owner111"), []byte("spender2"))
	assert.Equal(t, []byte("allowanceowner111spender2"), key)
}

func TestAllowanceKeyNesting(t *testing.T) {
	// all allowances of one owner share a common prefix
	key1 := AllowanceKey([]byte("owner111"), []byte("spender1"))
	key2 := AllowanceKey([]byte("owner111"), []byte("spender2"))
	prefix := append([]byte("allowance"), []byte("owner111")...)
	assert.True(t, bytes.HasPrefix(key1, prefix))
	assert.True(t, bytes.HasPrefix(key2, prefix))
}

func TestKeyDisjointness(t *testing.T) {
	wellKnown := [][]byte{KeyName, KeySymbol, KeyDecimals, KeyTotalSupply}
	prefixes := [][]byte{balancePrefix, allowancePrefix}

	// namespace prefixes never collide with each other
	assert.False(t, bytes.HasPrefix(balancePrefix, allowancePrefix))
	assert.False(t, bytes.HasPrefix(allowancePrefix, balancePrefix))

	// well known keys never fall into a namespace
	for _, key := range wellKnown {
		for _, prefix := range prefixes {
			assert.False(t, bytes.HasPrefix(key, prefix))
		}
	}
}
