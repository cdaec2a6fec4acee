package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"orderdesk/internal/apperr"
	"orderdesk/internal/domain"
	"orderdesk/internal/logx"
)

// ProspectHandler serves HTTP endpoints for prospect (lead) resources.
type ProspectHandler struct {
	uc     prospectUsecase
	logger logx.Logger
}

// NewProspectHandler wires a prospectUsecase into HTTP handlers.
func NewProspectHandler(logger logx.Logger, uc prospectUsecase) *ProspectHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &ProspectHandler{uc: uc, logger: logger}
}

// Create handles POST /prospects.
func (h *ProspectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProspectRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.Name == "" || !domain.ValidatePhone(req.Phone) {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
		return
	}

	p := req.toModel()
	p.ID = uuid.NewString()

	err := h.uc.Create(r.Context(), p)
	switch {
	case err == nil:
		w.Header().Set("Location", "/prospects/"+p.ID)
		writeJSON(h.logger, w, r, http.StatusCreated, map[string]string{"id": p.ID})
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "prospect already exists")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /prospects.
func (h *ProspectHandler) List(w http.ResponseWriter, r *http.Request) {
	limitPtr, offsetPtr, ok := pagination(h.logger, w, r)
	if !ok {
		return
	}

	list, err := h.uc.List(r.Context(), limitPtr, offsetPtr)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, prospectsToResponse(list))
}
