package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cecytebcs/attendance-backend-go/internal/domain/punch"
	"github.com/cecytebcs/attendance-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	RegisterPunch(w http.ResponseWriter, r *http.Request)
	ImportPunchFile(w http.ResponseWriter, r *http.Request)
	ListPunches(w http.ResponseWriter, r *http.Request)
}

type punchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &punchHandlerImpl{punchService: punchService}
}

// RegisterPunch implements PunchHandler - single JSON punch
func (h *punchHandlerImpl) RegisterPunch(w http.ResponseWriter, r *http.Request) {
	var req punch.RegisterPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.punchService.RegisterPunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch registered", result)
}

// ImportPunchFile implements PunchHandler - raw device dump upload
func (h *punchHandlerImpl) ImportPunchFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportFileSize); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Invalid multipart form data", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "A punch file is required in the 'file' field", nil)
		return
	}
	defer file.Close()

	result, err := h.punchService.ImportPunchFile(r.Context(), file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch file import finished", result)
}

// ListPunches implements PunchHandler
func (h *punchHandlerImpl) ListPunches(w http.ResponseWriter, r *http.Request) {
	filter, err := parsePunchFilter(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	results, err := h.punchService.ListPunches(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func parsePunchFilter(r *http.Request) (punch.Filter, error) {
	var filter punch.Filter

	if v := r.URL.Query().Get("employee_number"); v != "" {
		number, err := strconv.Atoi(v)
		if err != nil || number <= 0 {
			return punch.Filter{}, errInvalidFilter("employee_number must be a positive integer")
		}
		filter.EmployeeNumber = &number
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		date, err := time.Parse("2006-01-02", v)
		if err != nil {
			return punch.Filter{}, errInvalidFilter("start_date must be in YYYY-MM-DD format")
		}
		filter.StartDate = &date
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		date, err := time.Parse("2006-01-02", v)
		if err != nil {
			return punch.Filter{}, errInvalidFilter("end_date must be in YYYY-MM-DD format")
		}
		filter.EndDate = &date
	}

	return filter, nil
}

type errInvalidFilter string

func (e errInvalidFilter) Error() string { return string(e) }
