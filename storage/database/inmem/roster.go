package inmemdb

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/trezcool/edcentre/core/person"
)

type rosterRepository struct {
	db *rosterTable
}

var _ person.Repository = (*rosterRepository)(nil) // interface compliance check

func NewRosterRepository(db *DB) person.Repository {
	return &rosterRepository{db: db.roster}
}

func (repo *rosterRepository) AppendRecord(rec person.Record) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.rows = append(repo.db.rows, rec)
	return nil
}

func (repo *rosterRepository) QueryAllRecords() ([]person.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return slices.Clone(repo.db.rows), nil
}

func (repo *rosterRepository) GetRecordByName(name string) (person.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, rec := range repo.db.rows {
		if strings.EqualFold(rec.Base().Name, name) {
			return rec, nil
		}
	}
	return nil, person.ErrNotFound
}

func (repo *rosterRepository) RemoveRecordByID(id uuid.UUID) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	idx := slices.IndexFunc(repo.db.rows, func(rec person.Record) bool { return rec.Base().ID == id })
	if idx < 0 {
		return person.ErrNotFound
	}
	repo.db.rows = slices.Delete(repo.db.rows, idx, idx+1)
	return nil
}
