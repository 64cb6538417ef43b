package inmemdb

import (
	"sync"

	"github.com/trezcool/edcentre/core/person"
)

type (
	DB struct {
		roster *rosterTable
	}

	// rosterTable keeps insertion order, which is the order records are listed and looked up in.
	rosterTable struct {
		sync.RWMutex
		rows []person.Record
	}
)

func Open() (*DB, error) {
	db := &DB{
		roster: &rosterTable{rows: make([]person.Record, 0)},
	}
	return db, nil
}
