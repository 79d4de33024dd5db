package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cecytebcs/attendance-backend-go/internal/domain/employee"
	"github.com/cecytebcs/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// maxImportFileSize caps spreadsheet and punch-dump uploads at 10MB.
const maxImportFileSize = 10 << 20

type EmployeeHandler interface {
	ImportRoster(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	DownloadTemplate(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

// ImportRoster implements EmployeeHandler - xlsx roster upload
func (h *employeeHandlerImpl) ImportRoster(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.employeeService.ImportRoster(r.Context(), file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Roster import finished", result)
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	workCenter := r.URL.Query().Get("work_center")

	results, err := h.employeeService.ListEmployees(r.Context(), workCenter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil || number <= 0 {
		response.BadRequest(w, "Employee number must be a positive integer", nil)
		return
	}

	result, err := h.employeeService.GetByNumber(r.Context(), number)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DownloadTemplate implements EmployeeHandler
func (h *employeeHandlerImpl) DownloadTemplate(w http.ResponseWriter, r *http.Request) {
	buf, filename, err := h.employeeService.RosterTemplate()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Spreadsheet(w, filename, buf)
}
