package leads

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"orderdesk/internal/apperr"
	"orderdesk/internal/domain"
	"orderdesk/internal/logx"
)

// Reply is the relay-facing outcome of one message. Business rejections
// land here with Accepted=false; only infrastructure failures surface as
// errors.
type Reply struct {
	Accepted bool
	Message  string
}

// Service applies parsed relay commands: prospect capture, order entry and
// tracking-status lookups.
type Service struct {
	prospects prospectStore
	orders    orderCreator
	tracking  orderFinder
	source    string
	logger    logx.Logger
}

// NewService creates the lead relay service. source labels where captured
// prospects came from, e.g. "whatsapp-relay".
func NewService(prospects prospectStore, orders orderCreator, tracking orderFinder, source string, logger logx.Logger) *Service {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		prospects: prospects,
		orders:    orders,
		tracking:  tracking,
		source:    source,
		logger:    logger,
	}
}

// Handle parses one relay message and applies it on behalf of staffID.
func (s *Service) Handle(ctx context.Context, staffID, message string) (Reply, error) {
	cmd := Parse(message)

	switch cmd.Kind {
	case KindLeadEntry:
		return s.captureLead(ctx, staffID, cmd.Lead)
	case KindOrderEntry:
		return s.enterOrder(ctx, staffID, cmd.Order)
	case KindStatusQuery:
		return s.queryStatus(ctx, cmd.Status)
	default:
		return Reply{Accepted: false, Message: "unrecognized command"}, nil
	}
}

func (s *Service) captureLead(ctx context.Context, staffID string, le *LeadEntry) (Reply, error) {
	if !domain.ValidatePhone(le.Phone) {
		return Reply{Accepted: false, Message: "invalid phone number"}, nil
	}

	p := &domain.Prospect{
		ID:      uuid.NewString(),
		Name:    le.Name,
		Phone:   le.Phone,
		Note:    le.Note,
		Source:  s.source,
		StaffID: staffID,
	}
	if err := s.prospects.Create(ctx, p); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return Reply{Accepted: false, Message: "prospect already exists"}, nil
		}
		return Reply{}, err
	}

	s.logger.Info("prospect captured",
		logx.String("prospect_id", p.ID),
		logx.String("staff_id", staffID),
	)
	return Reply{Accepted: true, Message: fmt.Sprintf("prospect %s recorded", p.ID)}, nil
}

func (s *Service) enterOrder(ctx context.Context, staffID string, oe *OrderEntry) (Reply, error) {
	o := &domain.Order{
		CustomerName:  oe.Name,
		CustomerPhone: oe.Phone,
		Address: domain.Address{
			Line1:    oe.Address,
			Postcode: oe.Postcode,
			City:     oe.City,
			State:    oe.State,
		},
		Product:     oe.Product,
		Price:       oe.Price,
		PaymentMode: domain.PaymentMode(oe.PaymentMode),
		StaffID:     staffID,
	}

	id, err := s.orders.Create(ctx, o)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalid) {
			return Reply{Accepted: false, Message: "order rejected: " + err.Error()}, nil
		}
		return Reply{}, err
	}

	s.logger.Info("order entered via relay",
		logx.String("order_id", id),
		logx.String("staff_id", staffID),
	)
	return Reply{Accepted: true, Message: fmt.Sprintf("order %s recorded", id)}, nil
}

func (s *Service) queryStatus(ctx context.Context, q *StatusQuery) (Reply, error) {
	o, err := s.tracking.GetByTracking(ctx, q.TrackingNo)
	if err != nil {
		return Reply{}, err
	}
	if o == nil {
		return Reply{Accepted: false, Message: fmt.Sprintf("no order for tracking %s", q.TrackingNo)}, nil
	}

	msg := fmt.Sprintf("%s: %s", q.TrackingNo, o.DeliveryStatus)
	if o.RawCourierStatus != "" {
		msg += fmt.Sprintf(" (%s)", o.RawCourierStatus)
	}
	return Reply{Accepted: true, Message: msg}, nil
}
