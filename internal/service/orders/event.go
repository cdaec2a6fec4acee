package orders

import "time"

// DispatchAction names the courier action requested by a dispatch event.
type DispatchAction string

const (
	ActionSubmit DispatchAction = "submit"
	ActionCancel DispatchAction = "cancel"
)

// DispatchEvent is an asynchronous request to act on an order, consumed
// from the dispatch topic.
type DispatchEvent struct {
	SaleID    string
	Action    DispatchAction
	CreatedAt time.Time
}
