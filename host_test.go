package tally

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/256dpi/tally/wire"
)

func openHost(t *testing.T) *Host {
	db, err := OpenDB(t.TempDir())
	assert.NoError(t, err)

	t.Cleanup(func() {
		err := db.Close()
		assert.NoError(t, err)
	})

	return NewHost(db, testCodec)
}

func TestHostInit(t *testing.T) {
	host := openHost(t)

	err := host.Init("creator", initMsg())
	assert.NoError(t, err)

	err = host.View(func(mem Memory) error {
		var constants Constants
		err := constants.Read(mem)
		assert.NoError(t, err)
		assert.Equal(t, "Ash token", constants.Name)
		assert.Equal(t, "ASH", constants.Symbol)
		assert.Equal(t, uint8(5), constants.Decimals)
		assert.Equal(t, uint64(66), totalSupply(t, mem))
		assert.Equal(t, uint64(11), balance(t, mem, "addr0000"))
		return nil
	})
	assert.NoError(t, err)
}

func TestHostInitRollback(t *testing.T) {
	host := openHost(t)

	// the failing validation happens after the balances are written, the
	// batch discard must undo them
	msg := initMsg()
	msg.Symbol = "ash"
	err := host.Init("creator", msg)
	assert.ErrorIs(t, err, ErrInvalidSymbol)

	err = host.View(func(mem Memory) error {
		_, ok, err := mem.Get(KeyName)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, uint64(0), balance(t, mem, "addr0000"))
		return nil
	})
	assert.NoError(t, err)
}

func TestHostHandleRollback(t *testing.T) {
	host := openHost(t)

	err := host.Init("creator", initMsg())
	assert.NoError(t, err)

	// the allowance consumed before the failing balance transfer must not
	// become visible
	_, err = host.Handle("addr4321", &wire.Approve{
		Spender: "addr0000",
		Amount:  "40",
	})
	assert.NoError(t, err)

	_, err = host.Handle("addr0000", &wire.TransferFrom{
		Owner:     "addr4321",
		Recipient: "addr0000",
		Amount:    "40",
	})
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	err = host.View(func(mem Memory) error {
		assert.Equal(t, uint64(40), allowance(t, mem, "addr4321", "addr0000"))
		assert.Equal(t, uint64(33), balance(t, mem, "addr4321"))
		assert.Equal(t, uint64(11), balance(t, mem, "addr0000"))
		return nil
	})
	assert.NoError(t, err)
}

func TestHostScenario(t *testing.T) {
	host := openHost(t)

	err := host.Init("creator", initMsg())
	assert.NoError(t, err)

	res, err := host.Handle("addr0000", &wire.Transfer{
		Recipient: "addr1111",
		Amount:    "5",
	})
	assert.NoError(t, err)
	assert.Equal(t, "transfer successful", res.Log)

	_, err = host.Handle("addr1111", &wire.Approve{
		Spender: "addr4321",
		Amount:  "10",
	})
	assert.NoError(t, err)

	_, err = host.Handle("addr4321", &wire.TransferFrom{
		Owner:     "addr1111",
		Recipient: "addr4321",
		Amount:    "10",
	})
	assert.NoError(t, err)

	data, ref, err := host.Query(&wire.Balance{Address: "addr4321"})
	assert.NoError(t, err)
	var balanceRes wire.BalanceResponse
	err = balanceRes.Decode(data)
	assert.NoError(t, err)
	assert.Equal(t, "43", balanceRes.Balance)
	ref.Release()

	data, ref, err = host.Query(&wire.Allowance{
		Owner:   "addr1111",
		Spender: "addr4321",
	})
	assert.NoError(t, err)
	var allowanceRes wire.AllowanceResponse
	err = allowanceRes.Decode(data)
	assert.NoError(t, err)
	assert.Equal(t, "0", allowanceRes.Allowance)
	ref.Release()
}

func TestHostInvalidSender(t *testing.T) {
	host := openHost(t)

	err := host.Init("creator", initMsg())
	assert.NoError(t, err)

	_, err = host.Handle("", &wire.Transfer{
		Recipient: "addr1111",
		Amount:    "5",
	})
	assert.Error(t, err)
}
