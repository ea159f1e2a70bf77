package handler

import (
	"net/http"

	"github.com/dhananjayaDev/trivity/internal/service"
	"github.com/dhananjayaDev/trivity/internal/transport/rest/middleware"
)

// DashboardHandler aggregates the data behind the main dashboard view
type DashboardHandler struct {
	userSvc   *service.UserService
	sriSvc    *service.SRIService
	carbonSvc *service.CarbonService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(userSvc *service.UserService, sriSvc *service.SRIService, carbonSvc *service.CarbonService) *DashboardHandler {
	return &DashboardHandler{
		userSvc:   userSvc,
		sriSvc:    sriSvc,
		carbonSvc: carbonSvc,
	}
}

// Overview handles GET /v1/dashboard
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	user, err := h.userSvc.Profile(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	summary, err := h.sriSvc.ScoresSummary(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load scores")
		return
	}

	// Carbon data is optional on the dashboard.
	carbon, err := h.carbonSvc.Latest(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load carbon data")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":   user,
		"scores": summary,
		"carbon": carbon,
	})
}
