package tally

import (
	"errors"

	"github.com/256dpi/fpack"
	"github.com/cockroachdb/pebble"

	"github.com/256dpi/tally/wire"
)

// Host executes ledger operations against a database. Every state changing
// call runs in its own batch that is only committed if the call succeeds.
// Calls must not be made concurrently.
type Host struct {
	db    *DB
	codec AddressCodec
}

// NewHost will create a host that uses the provided db and address codec.
func NewHost(db *DB, codec AddressCodec) *Host {
	return &Host{
		db:    db,
		codec: codec,
	}
}

// Init will initialize the ledger. No writes are visible if an error is
// returned.
func (h *Host) Init(sender string, msg *wire.Init) error {
	// canonicalize sender
	params, err := h.params(sender)
	if err != nil {
		return err
	}

	// begin batch
	batch := h.db.NewIndexedBatch()

	// initialize ledger
	err = Init(&batchMemory{batch: batch}, h.codec, params, msg)
	if err != nil {
		_ = batch.Close()
		return err
	}

	// commit batch
	return batch.Commit(defaultWriteOptions)
}

// Handle will apply a state changing message on behalf of sender. No writes
// are visible if an error is returned.
func (h *Host) Handle(sender string, msg wire.Handle) (*Response, error) {
	// canonicalize sender
	params, err := h.params(sender)
	if err != nil {
		return nil, err
	}

	// begin batch
	batch := h.db.NewIndexedBatch()

	// handle message
	res, err := Handle(&batchMemory{batch: batch}, h.codec, params, msg)
	if err != nil {
		_ = batch.Close()
		return nil, err
	}

	// commit batch
	err = batch.Commit(defaultWriteOptions)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Query will answer a read only message with an encoded response.
func (h *Host) Query(msg wire.Query) ([]byte, fpack.Ref, error) {
	return Query(&dbMemory{db: h.db}, h.codec, msg)
}

// View will yield the raw store for inspection.
func (h *Host) View(fn func(mem Memory) error) error {
	return fn(&dbMemory{db: h.db})
}

func (h *Host) params(sender string) (Params, error) {
	// canonicalize sender
	canonical, err := h.codec.CanonicalAddress(sender)
	if err != nil {
		return Params{}, err
	}

	return Params{Sender: canonical}, nil
}

type batchMemory struct {
	batch *pebble.Batch
}

func (m *batchMemory) Get(key []byte) ([]byte, bool, error) {
	// get value
	value, closer, err := m.batch.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}

	// copy value
	buf := append([]byte(nil), value...)

	// release value
	err = closer.Close()
	if err != nil {
		return nil, false, err
	}

	return buf, true, nil
}

func (m *batchMemory) Set(key, value []byte) error {
	return m.batch.Set(key, value, nil)
}

type dbMemory struct {
	db *DB
}

func (m *dbMemory) Get(key []byte) ([]byte, bool, error) {
	// get value
	value, closer, err := m.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}

	// copy value
	buf := append([]byte(nil), value...)

	// release value
	err = closer.Close()
	if err != nil {
		return nil, false, err
	}

	return buf, true, nil
}

func (m *dbMemory) Set(key, value []byte) error {
	return m.db.Set(key, value, defaultWriteOptions)
}
