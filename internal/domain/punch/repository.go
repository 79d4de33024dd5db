package punch

import (
	"context"
	"time"
)

type PunchRepository interface {
	Create(ctx context.Context, p Punch) (Punch, error)

	// ExistsAt reports whether the exact (employee, date, time) triple
	// is already stored. Duplicates are rejected at ingestion; the
	// reconciliation core never deduplicates.
	ExistsAt(ctx context.Context, employeeNumber int, date, timeOfDay time.Time) (bool, error)

	// ListTimesForDate returns the employee's punch times for one
	// calendar date, sorted ascending. Empty is a valid result.
	ListTimesForDate(ctx context.Context, employeeNumber int, date time.Time) ([]time.Time, error)

	List(ctx context.Context, filter Filter) ([]Punch, error)
}
