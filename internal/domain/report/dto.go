package report

import (
	"github.com/cecytebcs/attendance-backend-go/internal/pkg/validator"
)

type AttendanceReportRequest struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	WorkCenter string `json:"work_center"`
}

func (r *AttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartDate == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if r.EndDate == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.WorkCenter) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_center",
			Message: "work_center is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EntryStatus classifies the first punch of a scheduled day. The values
// are the strings the report grid prints.
type EntryStatus string

const (
	EntryNoSchedule EntryStatus = "Sin horario"
	EntryMissing    EntryStatus = "Falta Entrada"
	EntryLate       EntryStatus = "Retraso"
	EntryOnTime     EntryStatus = "Puntual"
)

// ExitStatus classifies the last punch of a scheduled day.
type ExitStatus string

const (
	ExitNoSchedule     ExitStatus = "Sin horario"
	ExitMissing        ExitStatus = "Falta"
	ExitEarlyDeparture ExitStatus = "Salida Temprano"
	ExitNormal         ExitStatus = "Normal"
)

// DayAttendance is the reconciled view of one employee-day. It is
// derived on every request and never persisted. Every calendar day in
// the requested range produces exactly one record, scheduled or not.
type DayAttendance struct {
	Date           string      `json:"date"`
	Weekday        int         `json:"weekday"`
	WeekdayName    string      `json:"weekday_name"`
	EntryDisplay   string      `json:"entry"`
	EntryStatus    EntryStatus `json:"entry_status"`
	ExitDisplay    string      `json:"exit"`
	ExitStatus     ExitStatus  `json:"exit_status"`
	WorkedTime     string      `json:"worked_time"`
	ScheduledEntry *string     `json:"scheduled_entry"`
	ScheduledExit  *string     `json:"scheduled_exit"`
	Punches        []string    `json:"punches"`
	FirstPunch     *string     `json:"first_punch"`
	LastPunch      *string     `json:"last_punch"`
	TotalPunches   int         `json:"total_punches"`

	// Error carries a diagnostic when this day's stored data could not
	// be processed; the surrounding report still completes.
	Error *string `json:"error,omitempty"`
}

type AttendanceSummary struct {
	TotalWorkedTime string `json:"total_worked_time"`
	WorkedDays      int    `json:"worked_days"`
	MissingEntries  int    `json:"missing_entries"`
	MissingExits    int    `json:"missing_exits"`
}

type EmployeeAttendanceReport struct {
	EmployeeNumber int     `json:"employee_number"`
	FullName       string  `json:"full_name"`
	Position       *string `json:"position"`
	WorkCenterName *string `json:"work_center_name"`

	Days    []DayAttendance   `json:"days"`
	Summary AttendanceSummary `json:"summary"`
}

type AttendanceReport struct {
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	WorkCenter  string `json:"work_center"`
	GeneratedAt string `json:"generated_at"`

	Employees []EmployeeAttendanceReport `json:"employees"`
}
