package status

import (
	"context"

	"orderdesk/internal/domain"
	"orderdesk/internal/repository"
)

// orderStore defines order lookups and the partial status write.
type orderStore interface {
	Get(ctx context.Context, id string) (*domain.Order, error)
	GetByTracking(ctx context.Context, trackingNo string) (*domain.Order, error)
	UpdatePartial(ctx context.Context, u repository.PartialOrderUpdate) (bool, error)
}

// deviceStore resolves the notification device for a staff member.
type deviceStore interface {
	GetByStaff(ctx context.Context, staffID string) (*domain.Device, error)
}

// notifier sends a WhatsApp message through a staff device.
type notifier interface {
	Send(ctx context.Context, deviceID, phone, message string) error
}
