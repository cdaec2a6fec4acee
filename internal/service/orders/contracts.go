//go:generate mockgen -source=contracts.go -destination=orders_mocks_test.go -package=orders

package orders

import (
	"context"

	"orderdesk/internal/domain"
	"orderdesk/internal/waybill"
)

// orderRepository defines storage operations required by the lifecycle coordinator.
type orderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	Get(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Order, error)
	SetTracking(ctx context.Context, id, trackingNo, courierName string) (bool, error)
}

// courierGateway abstracts the courier REST client.
type courierGateway interface {
	SubmitOrder(ctx context.Context, o *domain.Order) (string, error)
	CancelOrder(ctx context.Context, trackingNo string) (string, error)
}

// waybillMerger abstracts waybill retrieval and consolidation.
type waybillMerger interface {
	Merge(ctx context.Context, sources []waybill.Source) (waybill.Result, error)
}
