package http

import (
	"net/http"

	"github.com/clockwise-hr/attendance-backend-go/internal/handler/http/response"
	"github.com/clockwise-hr/attendance-backend-go/internal/pkg/validator"
	anomalysvc "github.com/clockwise-hr/attendance-backend-go/internal/service/anomaly"
	"github.com/go-chi/chi/v5"
)

type AnomalyHandler interface {
	GetDaily(w http.ResponseWriter, r *http.Request)
	GetRange(w http.ResponseWriter, r *http.Request)
}

type anomalyHandlerImpl struct {
	analysisService *anomalysvc.AnalysisService
}

func NewAnomalyHandler(analysisService *anomalysvc.AnalysisService) AnomalyHandler {
	return &anomalyHandlerImpl{
		analysisService: analysisService,
	}
}

// GetDaily implements AnomalyHandler.
func (h *anomalyHandlerImpl) GetDaily(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerID")
	date := chi.URLParam(r, "date")
	tenantID := r.URL.Query().Get("tenant_id")

	if _, ok := validator.IsValidDate(date); !ok {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.analysisService.AnalyzeEntry(r.Context(), workerID, date, tenantID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetRange implements AnomalyHandler.
func (h *anomalyHandlerImpl) GetRange(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerID")
	tenantID := r.URL.Query().Get("tenant_id")
	fromDate := r.URL.Query().Get("from")
	toDate := r.URL.Query().Get("to")

	if _, ok := validator.IsValidDate(fromDate); !ok {
		response.BadRequest(w, "from must be in YYYY-MM-DD format", nil)
		return
	}
	if _, ok := validator.IsValidDate(toDate); !ok {
		response.BadRequest(w, "to must be in YYYY-MM-DD format", nil)
		return
	}

	results, err := h.analysisService.AnalyzeRange(r.Context(), workerID, fromDate, toDate, tenantID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
