package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// DBRepository wraps the postgres connection all storage queries go through.
type DBRepository struct {
	db *sqlx.DB
}

func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{
		db: db,
	}
}

func (dbr *DBRepository) Ping(ctx context.Context) error {
	return dbr.db.PingContext(ctx)
}

func (dbr *DBRepository) BeginTransaction(ctx context.Context) (*sqlx.Tx, error) {
	return dbr.db.BeginTxx(ctx, &sql.TxOptions{})
}
