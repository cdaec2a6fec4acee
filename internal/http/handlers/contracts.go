package handlers

import (
	"context"

	"orderdesk/internal/domain"
	"orderdesk/internal/repository"
	"orderdesk/internal/service/leads"
	"orderdesk/internal/service/orders"
	"orderdesk/internal/service/status"
	"orderdesk/internal/waybill"
)

type orderUsecase interface {
	Create(ctx context.Context, o *domain.Order) (string, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Order, error)
	Submit(ctx context.Context, orderID string) (string, error)
	Cancel(ctx context.Context, orderID string) (string, error)
	Waybills(ctx context.Context, orderIDs []string) (waybill.Result, error)
}

// NewOrderUsecase wires the lifecycle coordinator into an orderUsecase.
func NewOrderUsecase(svc *orders.Service) orderUsecase {
	return svc
}

type prospectUsecase interface {
	Create(ctx context.Context, p *domain.Prospect) error
	List(ctx context.Context, limit, offset *int) ([]domain.Prospect, error)
}

// NewProspectUsecase wires the prospect repository into a prospectUsecase.
func NewProspectUsecase(repo *repository.ProspectRepo) prospectUsecase {
	return repo
}

type statusUsecase interface {
	Apply(ctx context.Context, upd domain.StatusUpdate) (status.Result, error)
}

// NewStatusUsecase wires the status adapter into a statusUsecase.
func NewStatusUsecase(a *status.Adapter) statusUsecase {
	return a
}

type leadUsecase interface {
	Handle(ctx context.Context, staffID, message string) (leads.Reply, error)
}

// NewLeadUsecase wires the lead relay service into a leadUsecase.
func NewLeadUsecase(svc *leads.Service) leadUsecase {
	return svc
}

// webhookAuditor appends one audit record per webhook request. Write
// failures are swallowed by the callers.
type webhookAuditor interface {
	Insert(ctx context.Context, e repository.WebhookLogEntry) error
}

// NewWebhookAuditor wires the webhook log repository into a webhookAuditor.
func NewWebhookAuditor(repo *repository.WebhookLogRepo) webhookAuditor {
	return repo
}
