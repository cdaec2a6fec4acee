package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"orderdesk/internal/apperr"
	"orderdesk/internal/domain"
	"orderdesk/internal/logx"
	"orderdesk/internal/waybill"

	"github.com/google/uuid"
)

// Service coordinates the courier order lifecycle: validated submission,
// cancellation and consolidated waybill retrieval.
type Service struct {
	repo             orderRepository
	courier          courierGateway
	waybills         waybillMerger
	courierName      string
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates and configures the lifecycle coordinator.
func NewService(
	repo orderRepository,
	courier courierGateway,
	waybills waybillMerger,
	courierName string,
	timeout time.Duration,
	logger logx.Logger,
) *Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             repo,
		courier:          courier,
		waybills:         waybills,
		courierName:      courierName,
		operationTimeout: timeout,
		logger:           logger,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validateCreate(o *domain.Order) error {
	if o == nil {
		return apperr.ErrInvalid
	}
	if strings.TrimSpace(o.CustomerName) == "" {
		return apperr.ErrInvalid
	}
	if !domain.ValidatePhone(o.CustomerPhone) {
		return apperr.ErrInvalid
	}
	if o.Price < 0 {
		return apperr.ErrInvalid
	}
	if o.PaymentMode == "" {
		o.PaymentMode = domain.PaymentCOD
	}
	if !o.PaymentMode.Valid() {
		return apperr.ErrInvalid
	}
	return nil
}

// Create persists a new order in the Pending state and returns its ID.
func (s *Service) Create(ctx context.Context, o *domain.Order) (string, error) {
	if err := validateCreate(o); err != nil {
		return "", err
	}
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	o.DeliveryStatus = domain.DeliveryPending

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.Create(ctx, o); err != nil {
		return "", err
	}
	return o.ID, nil
}

// Get retrieves an order by its ID.
func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.ErrNotFound
	}
	return o, nil
}

// List returns orders with optional pagination
func (s *Service) List(ctx context.Context, limit, offset *int) ([]domain.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, limit, offset)
}

// Submit dispatches an order to the courier and writes the assigned
// tracking number back to the order record. An order that already has a
// tracking number is refused instead of being resubmitted.
func (s *Service) Submit(ctx context.Context, orderID string) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	o, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return "", err
	}
	if o == nil {
		return "", apperr.ErrNotFound
	}
	if o.TrackingNo != nil {
		return "", fmt.Errorf("order %s already dispatched as %s: %w", o.ID, *o.TrackingNo, apperr.ErrConflict)
	}
	if missing := domain.RequiredOrderFields(o); len(missing) > 0 {
		return "", fmt.Errorf("missing fields %s: %w", strings.Join(missing, ", "), apperr.ErrInvalid)
	}

	trackingNo, err := s.courier.SubmitOrder(ctx, o)
	if err != nil {
		return "", err
	}

	ok, err := s.repo.SetTracking(ctx, o.ID, trackingNo, s.courierName)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", apperr.ErrNotFound
	}

	s.logger.Info("order dispatched",
		logx.String("order_id", o.ID),
		logx.String("tracking_no", trackingNo),
	)
	return trackingNo, nil
}

// Cancel forwards a cancellation to the courier and returns its immediate
// acknowledgment. The delivery status is not touched here; the courier
// reports the final state through the status webhook.
func (s *Service) Cancel(ctx context.Context, orderID string) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	o, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return "", err
	}
	if o == nil {
		return "", apperr.ErrNotFound
	}
	if o.TrackingNo == nil {
		return "", fmt.Errorf("order %s has no tracking number: %w", o.ID, apperr.ErrInvalid)
	}

	return s.courier.CancelOrder(ctx, *o.TrackingNo)
}

// Waybills retrieves the consolidated waybill document for the given
// orders. Orders without a tracking number are reported as failed sources
// rather than failing the batch.
func (s *Service) Waybills(ctx context.Context, orderIDs []string) (waybill.Result, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	sources := make([]waybill.Source, 0, len(orderIDs))
	var missing []string
	for _, id := range orderIDs {
		o, err := s.repo.Get(ctx, id)
		if err != nil {
			return waybill.Result{}, err
		}
		if o == nil || o.TrackingNo == nil {
			missing = append(missing, id)
			continue
		}
		sources = append(sources, waybill.Source{TrackingNo: *o.TrackingNo})
	}

	if len(sources) == 0 {
		return waybill.Result{Failed: missing}, &waybill.AllFailedError{Failed: missing}
	}

	res, err := s.waybills.Merge(ctx, sources)
	res.Failed = append(res.Failed, missing...)
	var allFailed *waybill.AllFailedError
	if errors.As(err, &allFailed) && len(missing) > 0 {
		err = &waybill.AllFailedError{Failed: res.Failed}
	}
	return res, err
}
