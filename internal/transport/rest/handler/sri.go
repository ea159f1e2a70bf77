package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dhananjayaDev/trivity/internal/model"
	"github.com/dhananjayaDev/trivity/internal/service"
	"github.com/dhananjayaDev/trivity/internal/transport/rest/middleware"
)

// SRIHandler handles sustainability assessment endpoints
type SRIHandler struct {
	sriSvc *service.SRIService
}

// NewSRIHandler creates a new SRI handler
func NewSRIHandler(sriSvc *service.SRIService) *SRIHandler {
	return &SRIHandler{sriSvc: sriSvc}
}

type submitRequest struct {
	Answers     model.AnswerSet `json:"answers"`
	Industry    string          `json:"industry"`
	CompanySize string          `json:"company_size"`
	Location    string          `json:"location"`
}

// Questions handles GET /v1/sri/questions
func (h *SRIHandler) Questions(w http.ResponseWriter, r *http.Request) {
	category := model.Category(r.URL.Query().Get("category"))
	if category != "" && !validCategory(category) {
		writeError(w, http.StatusBadRequest, "unknown category")
		return
	}

	questions := h.sriSvc.Questions(category)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": questions,
		"count":     len(questions),
	})
}

func validCategory(c model.Category) bool {
	for _, known := range model.Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Submit handles POST /v1/sri/submit
func (h *SRIHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, &model.SubmitResult{Error: "invalid request body"})
		return
	}
	if len(req.Answers) == 0 {
		writeJSON(w, http.StatusBadRequest, &model.SubmitResult{Error: "no answers provided"})
		return
	}

	userID := middleware.GetUserID(r.Context())
	assessCtx := model.AssessmentContext{
		Industry:    req.Industry,
		CompanySize: req.CompanySize,
		Location:    req.Location,
	}

	result := h.sriSvc.SubmitAssessment(r.Context(), userID, req.Answers, assessCtx)
	if !result.Success {
		writeJSON(w, http.StatusInternalServerError, result)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Scores handles GET /v1/sri/scores
func (h *SRIHandler) Scores(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	summary, err := h.sriSvc.ScoresSummary(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load scores")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Latest handles GET /v1/sri/latest
func (h *SRIHandler) Latest(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	assessment, err := h.sriSvc.LatestAssessment(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load assessment")
		return
	}
	if assessment == nil {
		writeError(w, http.StatusNotFound, "no assessment found")
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// History handles GET /v1/sri/history
func (h *SRIHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	history, err := h.sriSvc.AssessmentHistory(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"assessments": history,
		"count":       len(history),
	})
}
