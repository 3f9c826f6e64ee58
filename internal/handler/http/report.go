package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ujustbe/attendance-backend-go/internal/domain/report"
	"github.com/ujustbe/attendance-backend-go/internal/handler/http/response"
	"github.com/ujustbe/attendance-backend-go/internal/pkg/validator"
)

type ReportHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	MyHistory(w http.ResponseWriter, r *http.Request)
	EmployeeHistory(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
	timeout       time.Duration
}

func NewReportHandler(reportService report.ReportService, timeout time.Duration) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		timeout:       timeout,
	}
}

// Generate implements ReportHandler. The engine is fail-open, so this
// always renders a report; a timeout returns whatever buckets completed.
func (h *reportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		response.BadRequest(w, "Query parameter 'date' is required", nil)
		return
	}

	date, ok := validator.IsValidDate(dateStr)
	if !ok {
		response.BadRequest(w, "Query parameter 'date' must be YYYY-MM-DD", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result := h.reportService.GenerateReport(ctx, date)
	response.Success(w, result)
}

// MyHistory implements ReportHandler.
func (h *reportHandlerImpl) MyHistory(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromRequest(r)
	if employeeID == "" {
		response.Unauthorized(w, "employee_id claim is missing")
		return
	}

	h.history(w, r, employeeID)
}

// EmployeeHistory implements ReportHandler.
func (h *reportHandlerImpl) EmployeeHistory(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	h.history(w, r, employeeID)
}

func (h *reportHandlerImpl) history(w http.ResponseWriter, r *http.Request, employeeID string) {
	rows, err := h.reportService.History(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Optional substring filters over the rendered month and date, the
	// way the attendance screen filters client-side.
	monthFilter := strings.ToLower(r.URL.Query().Get("month"))
	dateFilter := strings.ToLower(r.URL.Query().Get("date"))
	if monthFilter != "" || dateFilter != "" {
		filtered := make([]report.HistoryRow, 0, len(rows))
		for _, row := range rows {
			if monthFilter != "" && !strings.Contains(strings.ToLower(row.Month), monthFilter) {
				continue
			}
			if dateFilter != "" && !strings.Contains(strings.ToLower(row.Date), dateFilter) {
				continue
			}
			filtered = append(filtered, row)
		}
		rows = filtered
	}

	response.Success(w, rows)
}
