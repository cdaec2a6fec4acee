package kafka

import (
	"strings"
	"time"

	"orderdesk/internal/service/orders"
)

// EventDTO is the wire shape of a dispatch event.
type EventDTO struct {
	SaleID    string    `json:"sale_id"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}

// ToDomain converts EventDTO to orders.DispatchEvent.
func ToDomain(dto EventDTO) orders.DispatchEvent {
	return orders.DispatchEvent{
		SaleID:    strings.TrimSpace(dto.SaleID),
		Action:    orders.DispatchAction(strings.ToLower(strings.TrimSpace(dto.Action))),
		CreatedAt: dto.CreatedAt,
	}
}
