package tally

// Memory provides access to the flat byte oriented key value store that the
// host supplies per call. The host guarantees serialized access and wraps
// every state changing call in a transaction that is only committed if the
// call succeeds.
type Memory interface {
	// Get will load the value stored under key. The second return value
	// indicates whether the key exists.
	Get(key []byte) ([]byte, bool, error)

	// Set will store value under key.
	Set(key, value []byte) error
}

// MapMemory is a Memory backed by a plain map. It is primarily used to test
// operations without a database.
type MapMemory struct {
	data map[string][]byte
}

// NewMapMemory will create an empty map backed memory.
func NewMapMemory() *MapMemory {
	return &MapMemory{
		data: map[string][]byte{},
	}
}

// Get implements the Memory interface.
func (m *MapMemory) Get(key []byte) ([]byte, bool, error) {
	value, ok := m.data[string(key)]
	if !ok {
		return nil, false, nil
	}

	return append([]byte(nil), value...), true, nil
}

// Set implements the Memory interface.
func (m *MapMemory) Set(key, value []byte) error {
	m.data[string(key)] = append([]byte(nil), value...)
	return nil
}

// Length will return the number of stored keys.
func (m *MapMemory) Length() int {
	return len(m.data)
}
