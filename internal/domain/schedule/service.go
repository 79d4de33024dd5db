package schedule

import (
	"bytes"
	"context"
	"io"
)

type ScheduleService interface {
	// ImportSchedules ingests an xlsx schedule. Each row is one shift
	// (employee number, weekday 1..7, entry, exit). Rows referencing
	// unknown employees are reported, exact duplicates are skipped, and
	// replaceAll wipes the stored schedule first.
	ImportSchedules(ctx context.Context, file io.Reader, replaceAll bool) (ImportSchedulesResult, error)

	ListShifts(ctx context.Context) ([]ShiftResponse, error)
	ListShiftsByEmployee(ctx context.Context, employeeNumber int) ([]ShiftResponse, error)
	ListShiftsByEmployeeAndWeekday(ctx context.Context, employeeNumber, weekday int) ([]ShiftResponse, error)

	// ScheduleTemplate builds the downloadable import template.
	ScheduleTemplate() (*bytes.Buffer, string, error)
}
