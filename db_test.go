package tally

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenDB(t *testing.T) {
	db, err := OpenDB(t.TempDir())
	assert.NoError(t, err)

	err = db.Set([]byte("foo"), []byte("bar"), defaultWriteOptions)
	assert.NoError(t, err)

	err = db.Close()
	assert.NoError(t, err)
}

func TestOpenDBMissingDirectory(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = OpenDB("")
	})
}
