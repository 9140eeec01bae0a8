package tally

import (
	"os"

	"github.com/cockroachdb/pebble"
)

var defaultWriteOptions = pebble.NoSync

// DB is a generic database.
type DB = pebble.DB

// OpenDB will open or create the specified db.
func OpenDB(directory string) (*DB, error) {
	// check directory
	if directory == "" {
		panic("tally: missing directory")
	}

	// ensure directory
	err := os.MkdirAll(directory, 0777)
	if err != nil {
		return nil, err
	}

	// open db
	db, err := pebble.Open(directory, &pebble.Options{})
	if err != nil {
		return nil, err
	}

	return db, nil
}
