package response

import (
	"errors"
	"net/http"

	"github.com/cecytebcs/attendance-backend-go/internal/domain/employee"
	"github.com/cecytebcs/attendance-backend-go/internal/domain/punch"
	"github.com/cecytebcs/attendance-backend-go/internal/domain/report"
	"github.com/cecytebcs/attendance-backend-go/internal/domain/schedule"
	"github.com/cecytebcs/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNumberExists):
		Conflict(w, "Employee number already exists")
	case errors.Is(err, employee.ErrCURPExists):
		Conflict(w, "CURP already registered")
	case errors.Is(err, employee.ErrRFCExists):
		Conflict(w, "RFC already registered")
	case errors.Is(err, employee.ErrInvalidEmployeeNumber):
		BadRequest(w, "Employee number must be a positive integer", nil)
	case errors.Is(err, employee.ErrMissingRequiredColumns),
		errors.Is(err, schedule.ErrMissingRequiredColumns):
		BadRequest(w, "Spreadsheet is missing required columns", nil)
	case errors.Is(err, employee.ErrEmptySpreadsheet),
		errors.Is(err, schedule.ErrEmptySpreadsheet):
		BadRequest(w, "Spreadsheet has no data rows", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, schedule.ErrInvalidWeekday):
		BadRequest(w, "Weekday must be between 1 (Monday) and 7 (Sunday)", nil)

	// Punch domain errors
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch not found")
	case errors.Is(err, punch.ErrDuplicatePunch):
		Conflict(w, "Punch already registered for that employee, date and time")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidDateRange):
		BadRequest(w, "Start date must not be after end date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
