package courier

import (
	"context"
	"time"

	"orderdesk/internal/domain"
)

// TokenSource issues a bearer token usable against the courier API.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// tokenStore defines storage operations required by the cached token source.
type tokenStore interface {
	Current(ctx context.Context, now time.Time) (*domain.CourierToken, error)
	Insert(ctx context.Context, token string, expiresAt time.Time) error
}

// configSource resolves the courier sender identity and credentials.
type configSource interface {
	Get(ctx context.Context) (*domain.CourierConfig, error)
}
