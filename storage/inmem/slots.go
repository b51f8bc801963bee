package inmem

import (
	"context"
	"sync"

	"github.com/trezcool/elimu/core/school"
)

type (
	DB struct {
		slots *slotTable
	}

	slotTable struct {
		sync.RWMutex
		table map[string][]byte
	}
)

func Open() *DB {
	return &DB{
		slots: &slotTable{table: make(map[string][]byte)},
	}
}

type slotRepository struct {
	db *slotTable
}

// NewSlotRepository returns a school.Repository living in memory, for tests and throwaway runs.
func NewSlotRepository(db *DB) school.Repository {
	return &slotRepository{db: db.slots}
}

func (repo *slotRepository) LoadSlot(_ context.Context, key string) ([]byte, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	payload, ok := repo.db.table[key]
	if !ok {
		return nil, school.ErrSlotNotFound
	}
	return append([]byte(nil), payload...), nil
}

func (repo *slotRepository) SaveSlot(_ context.Context, key string, payload []byte) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[key] = append([]byte(nil), payload...)
	return nil
}
