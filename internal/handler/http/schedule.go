package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cecytebcs/attendance-backend-go/internal/domain/schedule"
	"github.com/cecytebcs/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ScheduleHandler interface {
	ImportSchedules(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	ListShiftsByEmployee(w http.ResponseWriter, r *http.Request)
	ListShiftsByEmployeeAndWeekday(w http.ResponseWriter, r *http.Request)
	DownloadTemplate(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{scheduleService: scheduleService}
}

// ImportSchedules implements ScheduleHandler - xlsx schedule upload.
// The optional replace_all form field wipes the stored schedule first.
func (h *scheduleHandlerImpl) ImportSchedules(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportFileSize); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Invalid multipart form data", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "A spreadsheet file is required in the 'file' field", nil)
		return
	}
	defer file.Close()

	replaceAll, _ := strconv.ParseBool(r.FormValue("replace_all"))

	result, err := h.scheduleService.ImportSchedules(r.Context(), file, replaceAll)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule import finished", result)
}

// ListShifts implements ScheduleHandler
func (h *scheduleHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	results, err := h.scheduleService.ListShifts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListShiftsByEmployee implements ScheduleHandler
func (h *scheduleHandlerImpl) ListShiftsByEmployee(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil || number <= 0 {
		response.BadRequest(w, "Employee number must be a positive integer", nil)
		return
	}

	results, err := h.scheduleService.ListShiftsByEmployee(r.Context(), number)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListShiftsByEmployeeAndWeekday implements ScheduleHandler
func (h *scheduleHandlerImpl) ListShiftsByEmployeeAndWeekday(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil || number <= 0 {
		response.BadRequest(w, "Employee number must be a positive integer", nil)
		return
	}

	weekday, err := strconv.Atoi(chi.URLParam(r, "weekday"))
	if err != nil {
		response.BadRequest(w, "Weekday must be a number between 1 and 7", nil)
		return
	}

	results, err := h.scheduleService.ListShiftsByEmployeeAndWeekday(r.Context(), number, weekday)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// DownloadTemplate implements ScheduleHandler
func (h *scheduleHandlerImpl) DownloadTemplate(w http.ResponseWriter, r *http.Request) {
	buf, filename, err := h.scheduleService.ScheduleTemplate()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Spreadsheet(w, filename, buf)
}
