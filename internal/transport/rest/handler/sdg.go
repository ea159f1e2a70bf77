package handler

import (
	"errors"
	"net/http"

	"github.com/dhananjayaDev/trivity/internal/service"
	"github.com/dhananjayaDev/trivity/internal/transport/rest/middleware"
)

// SDGHandler handles SDG recommendation endpoints
type SDGHandler struct {
	sdgSvc *service.SDGService
}

// NewSDGHandler creates a new SDG handler
func NewSDGHandler(sdgSvc *service.SDGService) *SDGHandler {
	return &SDGHandler{sdgSvc: sdgSvc}
}

// Generate handles POST /v1/sdg/recommendations
func (h *SDGHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	rec, err := h.sdgSvc.Generate(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to generate recommendations")
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// Latest handles GET /v1/sdg/recommendations
func (h *SDGHandler) Latest(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	rec, err := h.sdgSvc.Latest(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load recommendations")
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "no recommendations found")
		return
	}

	writeJSON(w, http.StatusOK, rec)
}
