package database

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/elimu/core/school"
)

type slotRepository struct {
	db     *sqlx.DB
	upsert string
}

// NewSlotRepository returns a school.Repository storing every slot as one row of the state table.
func NewSlotRepository(db *sqlx.DB) school.Repository {
	upsert := `INSERT INTO state (bucket, payload) VALUES (?, ?)
		ON CONFLICT (bucket) DO UPDATE SET payload = excluded.payload`
	if db.DriverName() == MySQL {
		upsert = `INSERT INTO state (bucket, payload) VALUES (?, ?)
			ON DUPLICATE KEY UPDATE payload = VALUES(payload)`
	}
	return &slotRepository{db: db, upsert: db.Rebind(upsert)}
}

func (repo *slotRepository) LoadSlot(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := repo.db.GetContext(ctx, &payload, repo.db.Rebind(`SELECT payload FROM state WHERE bucket = ?`), key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, school.ErrSlotNotFound
		}
		return nil, errors.Wrapf(err, "loading slot %q", key)
	}
	return payload, nil
}

func (repo *slotRepository) SaveSlot(ctx context.Context, key string, payload []byte) error {
	if _, err := repo.db.ExecContext(ctx, repo.upsert, key, payload); err != nil {
		return errors.Wrapf(err, "saving slot %q", key)
	}
	return nil
}
