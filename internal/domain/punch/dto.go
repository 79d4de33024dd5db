package punch

import (
	"time"

	"github.com/cecytebcs/attendance-backend-go/internal/pkg/validator"
)

type RegisterPunchRequest struct {
	EmployeeNumber int    `json:"employee_number"`
	Date           string `json:"date"`
	Time           string `json:"time"`
}

func (r *RegisterPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeNumber <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_number",
			Message: "employee_number must be a positive integer",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidTimeOfDay(r.Time); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be in HH:MM:SS format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchResponse struct {
	ID             string `json:"id"`
	EmployeeNumber int    `json:"employee_number"`
	Date           string `json:"date"`
	Time           string `json:"time"`
}

// ImportPunchesResult summarizes one device-dump ingestion run. Every
// rejected line carries its line number so the operator can fix the
// file; a bad line never aborts the rest of the dump.
type ImportPunchesResult struct {
	BatchID    string   `json:"batch_id"`
	TotalLines int      `json:"total_lines"`
	Registered int      `json:"registered"`
	Errors     []string `json:"errors"`
}

type Filter struct {
	EmployeeNumber *int
	StartDate      *time.Time
	EndDate        *time.Time
}

func MapToResponse(p Punch) PunchResponse {
	return PunchResponse{
		ID:             p.ID,
		EmployeeNumber: p.EmployeeNumber,
		Date:           p.Date.Format("2006-01-02"),
		Time:           p.Time.Format("15:04:05"),
	}
}
