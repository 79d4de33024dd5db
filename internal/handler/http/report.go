package http

import (
	"encoding/json"
	"net/http"

	"github.com/cecytebcs/attendance-backend-go/internal/domain/report"
	"github.com/cecytebcs/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	BuildAttendanceReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// BuildAttendanceReport implements ReportHandler
func (h *reportHandlerImpl) BuildAttendanceReport(w http.ResponseWriter, r *http.Request) {
	var req report.AttendanceReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.reportService.BuildAttendanceReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
