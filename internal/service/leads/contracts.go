package leads

import (
	"context"

	"orderdesk/internal/domain"
)

// prospectStore persists captured prospects.
type prospectStore interface {
	Create(ctx context.Context, p *domain.Prospect) error
}

// orderCreator records a relay-entered order.
type orderCreator interface {
	Create(ctx context.Context, o *domain.Order) (string, error)
}

// orderFinder resolves a tracking number to its order.
type orderFinder interface {
	GetByTracking(ctx context.Context, trackingNo string) (*domain.Order, error)
}
