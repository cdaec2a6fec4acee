package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/domain"
	"orderdesk/internal/logx"
	"orderdesk/internal/repository"
	"orderdesk/internal/service/leads"
	"orderdesk/internal/service/status"
)

type stubStatusUsecase struct {
	applyFn func(ctx context.Context, upd domain.StatusUpdate) (status.Result, error)
}

func (s *stubStatusUsecase) Apply(ctx context.Context, upd domain.StatusUpdate) (status.Result, error) {
	if s.applyFn == nil {
		panic("Apply not expected in this test")
	}
	return s.applyFn(ctx, upd)
}

type stubLeadUsecase struct {
	handleFn func(ctx context.Context, staffID, message string) (leads.Reply, error)
}

func (s *stubLeadUsecase) Handle(ctx context.Context, staffID, message string) (leads.Reply, error) {
	if s.handleFn == nil {
		panic("Handle not expected in this test")
	}
	return s.handleFn(ctx, staffID, message)
}

type recordingAuditor struct {
	entries []repository.WebhookLogEntry
	err     error
}

func (a *recordingAuditor) Insert(_ context.Context, e repository.WebhookLogEntry) error {
	if a.err != nil {
		return a.err
	}
	a.entries = append(a.entries, e)
	return nil
}

func TestWebhookHandler_CourierStatus_OK(t *testing.T) {
	t.Parallel()

	body := `{"tracking_id":"T123","status":"Successful Delivery","extra_field":"ignored"}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/courier-status", strings.NewReader(body))
	rr := httptest.NewRecorder()

	audit := &recordingAuditor{}
	uc := &stubStatusUsecase{
		applyFn: func(_ context.Context, upd domain.StatusUpdate) (status.Result, error) {
			require.Equal(t, "T123", upd.TrackingNo)
			require.Equal(t, "Successful Delivery", upd.RawStatus)
			return status.Result{Found: true, OrderID: "order-1", Outcome: domain.OutcomeSuccess}, nil
		},
	}

	h := NewWebhookHandler(logx.Nop(), uc, &stubLeadUsecase{}, audit)
	h.CourierStatus(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"message":"order order-1 updated to success"}`, rr.Body.String())

	require.Len(t, audit.entries, 1)
	assert.Equal(t, body, audit.entries[0].Body)
	assert.Contains(t, audit.entries[0].Parsed, "T123")
}

func TestWebhookHandler_CourierStatus_UnknownOrderAnswers200(t *testing.T) {
	t.Parallel()

	body := `{"tracking_id":"T404","status":"delivered"}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/courier-status", strings.NewReader(body))
	rr := httptest.NewRecorder()

	uc := &stubStatusUsecase{
		applyFn: func(context.Context, domain.StatusUpdate) (status.Result, error) {
			return status.Result{Found: false}, nil
		},
	}

	h := NewWebhookHandler(logx.Nop(), uc, &stubLeadUsecase{}, &recordingAuditor{})
	h.CourierStatus(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"order not found"}`, rr.Body.String())
}

func TestWebhookHandler_CourierStatus_InfrastructureFailureIs500(t *testing.T) {
	t.Parallel()

	body := `{"tracking_id":"T123","status":"delivered"}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/courier-status", strings.NewReader(body))
	rr := httptest.NewRecorder()

	audit := &recordingAuditor{}
	uc := &stubStatusUsecase{
		applyFn: func(context.Context, domain.StatusUpdate) (status.Result, error) {
			return status.Result{}, errors.New("db down")
		},
	}

	h := NewWebhookHandler(logx.Nop(), uc, &stubLeadUsecase{}, audit)
	h.CourierStatus(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, "db down", audit.entries[0].ErrText)
}

func TestWebhookHandler_CourierStatus_BadJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/webhooks/courier-status", strings.NewReader(`{bad`))
	rr := httptest.NewRecorder()

	h := NewWebhookHandler(logx.Nop(), &stubStatusUsecase{}, &stubLeadUsecase{}, &recordingAuditor{})
	h.CourierStatus(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestWebhookHandler_CourierStatus_AuditFailureSwallowed(t *testing.T) {
	t.Parallel()

	body := `{"tracking_id":"T123","status":"delivered"}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/courier-status", strings.NewReader(body))
	rr := httptest.NewRecorder()

	uc := &stubStatusUsecase{
		applyFn: func(context.Context, domain.StatusUpdate) (status.Result, error) {
			return status.Result{Found: true, OrderID: "order-1", Outcome: domain.OutcomeSuccess}, nil
		},
	}

	h := NewWebhookHandler(logx.Nop(), uc, &stubLeadUsecase{}, &recordingAuditor{err: errors.New("log table gone")})
	h.CourierStatus(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestWebhookHandler_LeadRelay_BusinessRejectionAnswers200(t *testing.T) {
	t.Parallel()

	body := `{"staff_id":"staff-1","message":"good morning"}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/lead", strings.NewReader(body))
	rr := httptest.NewRecorder()

	uc := &stubLeadUsecase{
		handleFn: func(_ context.Context, staffID, message string) (leads.Reply, error) {
			require.Equal(t, "staff-1", staffID)
			require.Equal(t, "good morning", message)
			return leads.Reply{Accepted: false, Message: "unrecognized command"}, nil
		},
	}

	h := NewWebhookHandler(logx.Nop(), &stubStatusUsecase{}, uc, &recordingAuditor{})
	h.LeadRelay(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"unrecognized command"}`, rr.Body.String())
}

func TestWebhookHandler_LeadRelay_Accepted(t *testing.T) {
	t.Parallel()

	body := `{"staff_id":"staff-1","message":"lead: Siti | 0123456789"}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/lead", strings.NewReader(body))
	rr := httptest.NewRecorder()

	audit := &recordingAuditor{}
	uc := &stubLeadUsecase{
		handleFn: func(context.Context, string, string) (leads.Reply, error) {
			return leads.Reply{Accepted: true, Message: "prospect p-1 recorded"}, nil
		},
	}

	h := NewWebhookHandler(logx.Nop(), &stubStatusUsecase{}, uc, audit)
	h.LeadRelay(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"message":"prospect p-1 recorded"}`, rr.Body.String())
	require.Len(t, audit.entries, 1)
	assert.Equal(t, "prospect p-1 recorded", audit.entries[0].Response)
}
