package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cecytebcs/attendance-backend-go/internal/domain/schedule"
	"github.com/cecytebcs/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// shiftRepositoryImpl reads and writes the shifts table:
// id uuid default gen_random_uuid(), employee_number int references
// employees(employee_number), weekday smallint 1..7, entry_time time,
// exit_time time, created_at/updated_at timestamptz.
type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) schedule.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// GetByEmployeeAndWeekday implements schedule.ShiftRepository.
// Shifts come back ordered by entry time so the reconciler's
// "first shift is the primary one" rule is deterministic.
func (r *shiftRepositoryImpl) GetByEmployeeAndWeekday(ctx context.Context, employeeNumber, weekday int) ([]schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_number, weekday, entry_time, exit_time, created_at, updated_at
		FROM shifts
		WHERE employee_number = $1 AND weekday = $2
		ORDER BY entry_time, exit_time
	`

	rows, err := q.Query(ctx, query, employeeNumber, weekday)
	if err != nil {
		return nil, fmt.Errorf("failed to get shifts for weekday: %w", err)
	}
	defer rows.Close()

	return collectShifts(rows)
}

// ListByEmployee implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) ListByEmployee(ctx context.Context, employeeNumber int) ([]schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_number, weekday, entry_time, exit_time, created_at, updated_at
		FROM shifts
		WHERE employee_number = $1
		ORDER BY weekday, entry_time
	`

	rows, err := q.Query(ctx, query, employeeNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts for employee: %w", err)
	}
	defer rows.Close()

	return collectShifts(rows)
}

// List implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) List(ctx context.Context) ([]schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_number, weekday, entry_time, exit_time, created_at, updated_at
		FROM shifts
		ORDER BY employee_number, weekday, entry_time
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	return collectShifts(rows)
}

// Create implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, shift schedule.Shift) (schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (employee_number, weekday, entry_time, exit_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		shift.EmployeeNumber, shift.Weekday, shift.EntryTime, shift.ExitTime,
	).Scan(&shift.ID, &shift.CreatedAt, &shift.UpdatedAt)

	if err != nil {
		return schedule.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return shift, nil
}

// ExistsExact implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) ExistsExact(ctx context.Context, employeeNumber, weekday int, entry, exit time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM shifts
			WHERE employee_number = $1 AND weekday = $2
			  AND entry_time = $3 AND exit_time = $4
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeNumber, weekday, entry, exit).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check shift existence: %w", err)
	}

	return exists, nil
}

// DeleteAll implements schedule.ShiftRepository.
func (r *shiftRepositoryImpl) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `TRUNCATE TABLE shifts`); err != nil {
		return fmt.Errorf("failed to wipe shifts: %w", err)
	}

	return nil
}

func collectShifts(rows pgx.Rows) ([]schedule.Shift, error) {
	shifts := make([]schedule.Shift, 0)
	for rows.Next() {
		var s schedule.Shift
		if err := rows.Scan(&s.ID, &s.EmployeeNumber, &s.Weekday, &s.EntryTime, &s.ExitTime, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shift row: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shift rows: %w", err)
	}
	return shifts, nil
}
