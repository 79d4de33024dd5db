package schedule

import (
	"context"
	"time"
)

type ShiftRepository interface {
	// GetByEmployeeAndWeekday returns every shift for the employee on
	// that weekday, ordered by entry time ascending. An empty slice is
	// a valid result meaning no work is expected that day.
	GetByEmployeeAndWeekday(ctx context.Context, employeeNumber, weekday int) ([]Shift, error)

	ListByEmployee(ctx context.Context, employeeNumber int) ([]Shift, error)
	List(ctx context.Context) ([]Shift, error)

	Create(ctx context.Context, shift Shift) (Shift, error)

	// ExistsExact reports whether the exact (employee, weekday, entry,
	// exit) row is already stored; import skips such rows instead of
	// duplicating them.
	ExistsExact(ctx context.Context, employeeNumber, weekday int, entry, exit time.Time) (bool, error)

	// DeleteAll wipes the schedule table before a replace-all import.
	DeleteAll(ctx context.Context) error
}
