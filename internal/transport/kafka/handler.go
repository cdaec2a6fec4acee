package kafka

import (
	"context"
	"errors"
	"fmt"

	"orderdesk/internal/apperr"
	"orderdesk/internal/gateway/courier"
	"orderdesk/internal/service/orders"
)

type dispatchUsecase interface {
	Submit(ctx context.Context, orderID string) (string, error)
	Cancel(ctx context.Context, orderID string) (string, error)
}

// NewDispatchHandler builds the HandleFunc for dispatch events. Business
// rejections (unknown order, already dispatched, courier refusal) are
// permanent: redelivering the event cannot change the outcome.
func NewDispatchHandler(uc dispatchUsecase) HandleFunc {
	return func(ctx context.Context, ev orders.DispatchEvent) error {
		var err error
		switch ev.Action {
		case orders.ActionSubmit:
			_, err = uc.Submit(ctx, ev.SaleID)
		case orders.ActionCancel:
			_, err = uc.Cancel(ctx, ev.SaleID)
		default:
			return Permanent(fmt.Errorf("unknown action %q", ev.Action))
		}
		if err == nil {
			return nil
		}

		var rejected *courier.RejectedError
		switch {
		case errors.Is(err, apperr.ErrNotFound),
			errors.Is(err, apperr.ErrConflict),
			errors.Is(err, apperr.ErrInvalid),
			errors.As(err, &rejected):
			return Permanent(err)
		default:
			return err
		}
	}
}
