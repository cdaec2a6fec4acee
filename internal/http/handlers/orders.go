package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"orderdesk/internal/apperr"
	"orderdesk/internal/gateway/courier"
	"orderdesk/internal/logx"
	"orderdesk/internal/waybill"
)

// OrderHandler serves HTTP endpoints for order resources and their courier
// lifecycle actions.
type OrderHandler struct {
	uc     orderUsecase
	logger logx.Logger
}

// NewOrderHandler wires an orderUsecase into HTTP handlers.
func NewOrderHandler(logger logx.Logger, uc orderUsecase) *OrderHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &OrderHandler{uc: uc, logger: logger}
}

// Create handles POST /orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	id, err := h.uc.Create(r.Context(), req.toModel())
	switch {
	case err == nil:
		w.Header().Set("Location", "/orders/"+id)
		writeJSON(h.logger, w, r, http.StatusCreated, map[string]string{"id": id})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "order already exists")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// GetByID handles GET /orders/{id}.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	o, err := h.uc.Get(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, orderToResponse(*o))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	limitPtr, offsetPtr, ok := pagination(h.logger, w, r)
	if !ok {
		return
	}

	list, err := h.uc.List(r.Context(), limitPtr, offsetPtr)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, ordersToResponse(list))
}

// Submit handles POST /orders/{id}/submit: dispatch the order to the
// courier and return the assigned tracking number.
func (h *OrderHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	trackingNo, err := h.uc.Submit(r.Context(), id)

	var rejected *courier.RejectedError
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"tracking_no": trackingNo})
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "already dispatched")
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
	case errors.As(err, &rejected):
		writeJSON(h.logger, w, r, http.StatusUnprocessableEntity, map[string]string{
			"error":   "courier rejected order",
			"details": rejected.Body,
		})
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Cancel handles POST /orders/{id}/cancel.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	st, err := h.uc.Cancel(r.Context(), id)

	var rejected *courier.RejectedError
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": st})
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "order has no tracking number")
	case errors.As(err, &rejected):
		writeJSON(h.logger, w, r, http.StatusUnprocessableEntity, map[string]string{
			"error":   "courier rejected cancellation",
			"details": rejected.Body,
		})
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Waybill handles POST /orders/waybill: fetch and merge the waybill
// documents for the requested orders. Partial failures are reported in the
// X-Failed-Sources header; the merged PDF is the body.
func (h *OrderHandler) Waybill(w http.ResponseWriter, r *http.Request) {
	var req waybillRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if len(req.OrderIDs) == 0 {
		writeError(h.logger, w, r, http.StatusBadRequest, "order_ids is empty")
		return
	}

	res, err := h.uc.Waybills(r.Context(), req.OrderIDs)

	var allFailed *waybill.AllFailedError
	switch {
	case err == nil:
		if len(res.Failed) > 0 {
			w.Header().Set("X-Failed-Sources", strings.Join(res.Failed, ","))
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="waybills.pdf"`)
		w.WriteHeader(http.StatusOK)
		if _, werr := w.Write(res.Document); werr != nil {
			h.logger.Debug("waybill response write failed", logx.Any("err", werr))
		}
	case errors.As(err, &allFailed):
		writeJSON(h.logger, w, r, http.StatusBadGateway, map[string]any{
			"error":  "all waybill sources failed",
			"failed": allFailed.Failed,
		})
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

func pagination(logger logx.Logger, w http.ResponseWriter, r *http.Request) (limit, offset *int, ok bool) {
	q := r.URL.Query()
	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			writeError(logger, w, r, http.StatusBadRequest, "invalid limit")
			return nil, nil, false
		}
		limit = &v
	}
	if s := q.Get("offset"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			writeError(logger, w, r, http.StatusBadRequest, "invalid offset")
			return nil, nil, false
		}
		offset = &v
	}
	return limit, offset, true
}
