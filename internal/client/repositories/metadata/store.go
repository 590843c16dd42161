package metadata

import (
	"context"
	"database/sql"

	"github.com/cityzen/tripbuddy/internal/dbx"
)

// Store is a Repository bound to a *sql.DB that can also group several
// writes into one transaction.
type Store struct {
	*SQLiteRepository
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{SQLiteRepository: NewSQLiteRepository(db), db: db}
}

// InTx runs fn against a transactional view of the store. Writes made through
// the Repository passed to fn are committed together or not at all.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, tx Repository) error) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, NewSQLiteRepository(tx))
	})
}
