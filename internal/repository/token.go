package repository

import (
	"context"
	"fmt"
	"time"

	"orderdesk/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TokenRepo stores cached courier API tokens. Rows are append-only; stale
// rows are inert and never deleted.
type TokenRepo struct{ db *pgxpool.Pool }

// NewTokenRepo creates a new TokenRepo.
func NewTokenRepo(db *pgxpool.Pool) *TokenRepo { return &TokenRepo{db: db} }

// Current returns the most recently issued token whose expiry is strictly
// after now, or nil when no such token exists.
func (r *TokenRepo) Current(ctx context.Context, now time.Time) (*domain.CourierToken, error) {
	var t domain.CourierToken
	err := r.db.QueryRow(ctx, `
        SELECT id, token, expires_at
        FROM courier_tokens
        WHERE expires_at > $1
        ORDER BY id DESC
        LIMIT 1
    `, now).Scan(&t.ID, &t.Token, &t.ExpiresAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("current courier token: %w", err)
	}
	return &t, nil
}

// Insert stores a freshly issued token.
func (r *TokenRepo) Insert(ctx context.Context, token string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO courier_tokens(token, expires_at) VALUES($1,$2)`,
		token, expiresAt)
	if err != nil {
		return fmt.Errorf("insert courier token: %w", err)
	}
	return nil
}
