package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dhananjayaDev/trivity/internal/model"
	"github.com/dhananjayaDev/trivity/internal/service"
	"github.com/dhananjayaDev/trivity/internal/transport/rest/middleware"
)

// CarbonHandler handles carbon footprint endpoints
type CarbonHandler struct {
	carbonSvc *service.CarbonService
}

// NewCarbonHandler creates a new carbon handler
func NewCarbonHandler(carbonSvc *service.CarbonService) *CarbonHandler {
	return &CarbonHandler{carbonSvc: carbonSvc}
}

// Save handles POST /v1/carbon
func (h *CarbonHandler) Save(w http.ResponseWriter, r *http.Request) {
	var input model.CarbonInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := middleware.GetUserID(r.Context())
	data, err := h.carbonSvc.Save(r.Context(), userID, &input)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, data)
}

// Latest handles GET /v1/carbon
func (h *CarbonHandler) Latest(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	data, err := h.carbonSvc.Latest(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load carbon data")
		return
	}
	if data == nil {
		writeError(w, http.StatusNotFound, "no carbon data found")
		return
	}

	writeJSON(w, http.StatusOK, data)
}

// History handles GET /v1/carbon/history
func (h *CarbonHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	records, err := h.carbonSvc.History(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load carbon history")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"records": records,
		"count":   len(records),
	})
}

// Analyze handles POST /v1/carbon/analyze
func (h *CarbonHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	analysis, err := h.carbonSvc.Analyze(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}
