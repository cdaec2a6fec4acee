package repository

import (
	"context"
	"fmt"

	"orderdesk/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CourierConfigRepo reads the sender identity and courier API credentials.
// The table holds a single row provisioned out-of-band.
type CourierConfigRepo struct{ db *pgxpool.Pool }

// NewCourierConfigRepo creates a new CourierConfigRepo.
func NewCourierConfigRepo(db *pgxpool.Pool) *CourierConfigRepo { return &CourierConfigRepo{db: db} }

// Get returns the courier configuration, or nil when none is provisioned.
func (r *CourierConfigRepo) Get(ctx context.Context) (*domain.CourierConfig, error) {
	var c domain.CourierConfig
	err := r.db.QueryRow(ctx, `
        SELECT sender_name, sender_phone,
               sender_address1, sender_address2, sender_postcode, sender_city, sender_state,
               client_id, client_secret, courier_channel
        FROM courier_configs
        ORDER BY id
        LIMIT 1
    `).Scan(
		&c.SenderName, &c.SenderPhone,
		&c.SenderAddress.Line1, &c.SenderAddress.Line2, &c.SenderAddress.Postcode,
		&c.SenderAddress.City, &c.SenderAddress.State,
		&c.ClientID, &c.ClientSecret, &c.CourierChannel,
	)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get courier config: %w", err)
	}
	return &c, nil
}
