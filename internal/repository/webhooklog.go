package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// WebhookLogEntry is one audit record of an inbound webhook request.
type WebhookLogEntry struct {
	Method   string
	Path     string
	Body     string
	Parsed   string
	Response string
	Duration time.Duration
	ErrText  string
}

// WebhookLogRepo is an insert-only audit log for webhook traffic.
type WebhookLogRepo struct{ db *pgxpool.Pool }

// NewWebhookLogRepo creates a new WebhookLogRepo.
func NewWebhookLogRepo(db *pgxpool.Pool) *WebhookLogRepo { return &WebhookLogRepo{db: db} }

// Insert appends an audit record. Callers are expected to swallow the
// returned error: a log-write failure never blocks the primary operation.
func (r *WebhookLogRepo) Insert(ctx context.Context, e WebhookLogEntry) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO webhook_log(method, path, body, parsed, response, duration_ms, error_text)
        VALUES($1,$2,$3,$4,$5,$6,$7)
    `, e.Method, e.Path, e.Body, e.Parsed, e.Response, e.Duration.Milliseconds(), e.ErrText)
	if err != nil {
		return fmt.Errorf("insert webhook log: %w", err)
	}
	return nil
}
