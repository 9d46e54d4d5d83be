package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/pdks-app/pdks-backend-go/internal/domain/report"
	"github.com/pdks-app/pdks-backend-go/internal/handler/http/response"
	"github.com/pdks-app/pdks-backend-go/internal/pkg/validator"
)

type ReportHandler interface {
	// Report catalog metadata
	List(w http.ResponseWriter, r *http.Request)

	// Report export (CSV/XLSX/PDF download)
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// List handles GET /reports
func (h *reportHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	reports := h.reportService.ListReports(r.Context())
	response.Success(w, map[string]interface{}{
		"reports": reports,
	})
}

// Export handles GET /reports/export
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := report.Params{
		DateFrom:    q.Get("dateFrom"),
		DateTo:      q.Get("dateTo"),
		Date:        q.Get("date"),
		Department:  q.Get("department"),
		PerID:       q.Get("perId"),
		LeaveStatus: q.Get("leaveStatus"),
		LeaveType:   q.Get("leaveType"),
	}

	if err := validateParams(params); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.Export(r.Context(), report.ExportRequest{
		ReportID: q.Get("reportId"),
		FileType: q.Get("fileType"),
		Params:   params,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Content is fully buffered by the service, so headers are only sent
	// for a complete file.
	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	_, _ = w.Write(result.Content)
}

// validateParams rejects malformed filter values before they reach the
// query layer. Absent values are fine; they mean "no filter".
func validateParams(p report.Params) error {
	var errs validator.ValidationErrors

	dates := []struct {
		field string
		value string
	}{
		{"dateFrom", p.DateFrom},
		{"dateTo", p.DateTo},
		{"date", p.Date},
	}
	for _, d := range dates {
		if d.value == "" {
			continue
		}
		if _, ok := validator.IsValidDate(d.value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   d.field,
				Message: d.field + " must be in YYYY-MM-DD format",
			})
		}
	}

	if p.PerID != "" && !validator.IsNumeric(p.PerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "perId",
			Message: "perId must be numeric",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
