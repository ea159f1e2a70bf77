package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/dhananjayaDev/trivity/internal/model"
	"github.com/dhananjayaDev/trivity/internal/report"
	"github.com/dhananjayaDev/trivity/internal/service"
	"github.com/dhananjayaDev/trivity/internal/transport/rest/middleware"
)

// ReportHandler serves downloadable report files
type ReportHandler struct {
	userSvc   *service.UserService
	sriSvc    *service.SRIService
	carbonSvc *service.CarbonService
	sdgSvc    *service.SDGService
}

// NewReportHandler creates a new report handler
func NewReportHandler(userSvc *service.UserService, sriSvc *service.SRIService, carbonSvc *service.CarbonService, sdgSvc *service.SDGService) *ReportHandler {
	return &ReportHandler{
		userSvc:   userSvc,
		sriSvc:    sriSvc,
		carbonSvc: carbonSvc,
		sdgSvc:    sdgSvc,
	}
}

// Download handles GET /v1/reports/{kind}
func (h *ReportHandler) Download(w http.ResponseWriter, r *http.Request) {
	kind := mux.Vars(r)["kind"]

	format, err := report.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	userID := middleware.GetUserID(r.Context())
	user, err := h.userSvc.Profile(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	table, err := h.buildTable(r, kind, userID, user)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if table == nil {
		writeError(w, http.StatusBadRequest, "unknown report kind")
		return
	}

	filename := fmt.Sprintf("%s_report_%s.%s", kind, time.Now().Format("20060102"), format.Extension())
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := table.Write(w, format); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render report")
	}
}

func (h *ReportHandler) buildTable(r *http.Request, kind, userID string, user *model.User) (*report.Table, error) {
	switch kind {
	case "assessment":
		assessment, err := h.sriSvc.LatestAssessment(r.Context(), userID)
		if err != nil {
			return nil, err
		}
		if assessment == nil {
			return nil, fmt.Errorf("no assessment found")
		}
		return report.AssessmentReport(user, assessment), nil
	case "carbon":
		data, err := h.carbonSvc.Latest(r.Context(), userID)
		if err != nil {
			return nil, err
		}
		if data == nil {
			return nil, fmt.Errorf("no carbon data found")
		}
		return report.CarbonReport(user, data), nil
	case "sdg":
		rec, err := h.sdgSvc.Latest(r.Context(), userID)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, fmt.Errorf("no recommendations found")
		}
		return report.SDGReport(user, rec), nil
	}
	return nil, nil
}
