package status

import (
	"context"
	"fmt"
	"time"

	"orderdesk/internal/domain"
	"orderdesk/internal/logx"
	"orderdesk/internal/repository"
)

type counter interface {
	Inc()
}

// Result reports the outcome of applying one status callback.
type Result struct {
	Found   bool
	OrderID string
	Outcome domain.StatusOutcome
}

// Adapter applies courier delivery-status callbacks to stored orders and
// notifies the assigned staff member best-effort.
type Adapter struct {
	orders       orderStore
	devices      deviceStore
	notify       notifier
	logger       logx.Logger
	sendFailures counter
	now          func() time.Time
}

// NewAdapter creates a status webhook Adapter.
func NewAdapter(orders orderStore, devices deviceStore, notify notifier, logger logx.Logger, sendFailures counter) *Adapter {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Adapter{
		orders:       orders,
		devices:      devices,
		notify:       notify,
		logger:       logger,
		sendFailures: sendFailures,
		now:          time.Now,
	}
}

func (a *Adapter) locate(ctx context.Context, upd domain.StatusUpdate) (*domain.Order, error) {
	if upd.TrackingNo != "" {
		o, err := a.orders.GetByTracking(ctx, upd.TrackingNo)
		if err != nil || o != nil {
			return o, err
		}
	}
	if upd.SaleID != "" {
		return a.orders.Get(ctx, upd.SaleID)
	}
	return nil, nil
}

// Apply locates the order by tracking number (falling back to the sale ID),
// classifies the raw status and applies the resulting transition. The raw
// status string is always stored verbatim. A missing order is a business
// outcome, not an error.
func (a *Adapter) Apply(ctx context.Context, upd domain.StatusUpdate) (Result, error) {
	o, err := a.locate(ctx, upd)
	if err != nil {
		return Result{}, err
	}
	if o == nil {
		return Result{Found: false}, nil
	}

	outcome := domain.ClassifyStatus(upd.RawStatus)
	today := a.now()

	u := repository.PartialOrderUpdate{
		ID:               o.ID,
		RawCourierStatus: &upd.RawStatus,
	}
	switch outcome {
	case domain.OutcomeSuccess:
		st := domain.DeliverySuccess
		u.DeliveryStatus = &st
		if o.PaymentMode == domain.PaymentCOD {
			u.PaymentReceivedAt = &today
		}
	case domain.OutcomeReturn:
		st := domain.DeliveryReturn
		u.DeliveryStatus = &st
		u.ReturnedAt = &today
	case domain.OutcomeOther:
		// Raw status only; the delivery status is left untouched.
	}

	if _, err := a.orders.UpdatePartial(ctx, u); err != nil {
		return Result{}, err
	}

	a.logger.Info("status callback applied",
		logx.String("order_id", o.ID),
		logx.String("outcome", string(outcome)),
		logx.String("raw_status", upd.RawStatus),
	)

	a.notifyStaff(ctx, o, upd)

	return Result{Found: true, OrderID: o.ID, Outcome: outcome}, nil
}

// notifyStaff sends a best-effort WhatsApp notification. Failures are
// logged and counted but never fail the webhook.
func (a *Adapter) notifyStaff(ctx context.Context, o *domain.Order, upd domain.StatusUpdate) {
	if a.devices == nil || a.notify == nil {
		return
	}

	d, err := a.devices.GetByStaff(ctx, o.StaffID)
	if err != nil {
		a.logger.Warn("device lookup failed",
			logx.String("staff_id", o.StaffID),
			logx.Any("err", err),
		)
		return
	}
	if d == nil || !d.Connected {
		return
	}

	trackingNo := ""
	if o.TrackingNo != nil {
		trackingNo = *o.TrackingNo
	}
	msg := fmt.Sprintf("%s: %s", trackingNo, upd.RawStatus)

	if err := a.notify.Send(ctx, d.DeviceID, d.Phone, msg); err != nil {
		if a.sendFailures != nil {
			a.sendFailures.Inc()
		}
		a.logger.Warn("whatsapp notification failed",
			logx.String("order_id", o.ID),
			logx.String("device_id", d.DeviceID),
			logx.Any("err", err),
		)
	}
}
