package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"orderdesk/internal/domain"
	"orderdesk/internal/logx"
	"orderdesk/internal/repository"
)

// WebhookHandler serves the inbound webhook surface: courier delivery
// status callbacks and chat-relay lead messages. Business-level rejections
// answer 200 with success=false so the upstream does not retry them;
// non-200 is reserved for transport and infrastructure failures.
type WebhookHandler struct {
	statuses statusUsecase
	leads    leadUsecase
	audit    webhookAuditor
	logger   logx.Logger
	now      func() time.Time
}

// NewWebhookHandler wires the webhook usecases into HTTP handlers.
func NewWebhookHandler(logger logx.Logger, statuses statusUsecase, leads leadUsecase, audit webhookAuditor) *WebhookHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &WebhookHandler{
		statuses: statuses,
		leads:    leads,
		audit:    audit,
		logger:   logger,
		now:      time.Now,
	}
}

// CourierStatus handles POST /webhooks/courier-status. Courier payloads
// carry fields we do not model, so unknown fields are tolerated here.
func (h *WebhookHandler) CourierStatus(w http.ResponseWriter, r *http.Request) {
	started := h.now()
	body, ok := h.readBody(w, r)
	if !ok {
		h.logAudit(r, started, body, "", "", "body too large")
		return
	}

	var req statusCallbackRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid json")
		h.logAudit(r, started, body, "", "", "invalid json")
		return
	}
	parsed := fmt.Sprintf("tracking_id=%s sale_id=%s status=%q", req.TrackingID, req.SaleID, req.Status)

	res, err := h.statuses.Apply(r.Context(), domain.StatusUpdate{
		TrackingNo: req.TrackingID,
		SaleID:     req.SaleID,
		RawStatus:  req.Status,
		ReceivedAt: started,
	})
	switch {
	case err != nil:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		h.logAudit(r, started, body, parsed, "", err.Error())
	case !res.Found:
		writeAck(h.logger, w, r, false, "order not found")
		h.logAudit(r, started, body, parsed, "order not found", "")
	default:
		msg := fmt.Sprintf("order %s updated to %s", res.OrderID, res.Outcome)
		writeAck(h.logger, w, r, true, msg)
		h.logAudit(r, started, body, parsed, msg, "")
	}
}

// LeadRelay handles POST /webhooks/lead: free-text commands from the chat
// relay. Every parseable request is acknowledged with 200; the success
// flag reports the business outcome.
func (h *WebhookHandler) LeadRelay(w http.ResponseWriter, r *http.Request) {
	started := h.now()
	body, ok := h.readBody(w, r)
	if !ok {
		h.logAudit(r, started, body, "", "", "body too large")
		return
	}

	var req leadRelayRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid json")
		h.logAudit(r, started, body, "", "", "invalid json")
		return
	}
	parsed := fmt.Sprintf("staff_id=%s message=%q", req.StaffID, req.Message)

	reply, err := h.leads.Handle(r.Context(), req.StaffID, req.Message)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		h.logAudit(r, started, body, parsed, "", err.Error())
		return
	}

	writeAck(h.logger, w, r, reply.Accepted, reply.Message)
	h.logAudit(r, started, body, parsed, reply.Message, "")
}

func (h *WebhookHandler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, bodyLimit))
	if err != nil {
		writeError(h.logger, w, r, http.StatusRequestEntityTooLarge, "body too large")
		return nil, false
	}
	return body, true
}

// logAudit appends one audit record. A failed write never fails the
// webhook.
func (h *WebhookHandler) logAudit(r *http.Request, started time.Time, body []byte, parsed, response, errText string) {
	if h.audit == nil {
		return
	}
	e := repository.WebhookLogEntry{
		Method:   r.Method,
		Path:     r.URL.Path,
		Body:     string(body),
		Parsed:   parsed,
		Response: response,
		Duration: h.now().Sub(started),
		ErrText:  errText,
	}
	if err := h.audit.Insert(r.Context(), e); err != nil {
		h.logger.Debug("webhook audit write failed",
			logx.String("req_id", reqID(r.Context())),
			logx.Any("err", err),
		)
	}
}
