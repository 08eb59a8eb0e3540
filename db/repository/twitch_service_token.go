package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// GetNotExpiredToken loads the newest app token that was not marked expired.
func (dbr *DBRepository) GetNotExpiredToken(ctx context.Context, tx *sqlx.Tx) (token string, found bool, err error) {

	query := `
		select t."token"
		from twitch_tokens t
		where t.is_expired = false
		order by t.created_at desc
		limit 1;
	`

	err = tx.GetContext(ctx, &token, query)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return token, true, nil
}

func (dbr *DBRepository) AddToken(ctx context.Context, tx *sqlx.Tx, token string) (err error) {

	query := `
		insert into twitch_tokens ("token") values ($1);
	`

	_, err = tx.ExecContext(ctx, query, token)

	return
}

func (dbr *DBRepository) SetExpiredToken(ctx context.Context, tx *sqlx.Tx, token string) (err error) {

	query := `
		update twitch_tokens
		set is_expired = true
		where "token" = $1;
	`

	res, err := tx.ExecContext(ctx, query, token)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n < 1 {
		return errors.New("token not found")
	}

	return
}
