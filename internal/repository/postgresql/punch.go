package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cecytebcs/attendance-backend-go/internal/domain/punch"
	"github.com/cecytebcs/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// punchRepositoryImpl reads and writes the punches table:
// id uuid default gen_random_uuid(), employee_number int references
// employees(employee_number), date date, time time, created_at
// timestamptz, unique (employee_number, date, time).
type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// Create implements punch.PunchRepository.
func (r *punchRepositoryImpl) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (employee_number, date, time)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, p.EmployeeNumber, p.Date, p.Time).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return p, nil
}

// ExistsAt implements punch.PunchRepository.
func (r *punchRepositoryImpl) ExistsAt(ctx context.Context, employeeNumber int, date, timeOfDay time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM punches
			WHERE employee_number = $1 AND date = $2 AND time = $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeNumber, date, timeOfDay).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check punch existence: %w", err)
	}

	return exists, nil
}

// ListTimesForDate implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListTimesForDate(ctx context.Context, employeeNumber int, date time.Time) ([]time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT time
		FROM punches
		WHERE employee_number = $1 AND date = $2
		ORDER BY time
	`

	rows, err := q.Query(ctx, query, employeeNumber, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch times: %w", err)
	}
	defer rows.Close()

	times := make([]time.Time, 0)
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan punch time: %w", err)
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read punch times: %w", err)
	}

	return times, nil
}

// List implements punch.PunchRepository.
func (r *punchRepositoryImpl) List(ctx context.Context, filter punch.Filter) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeNumber != nil {
		conditions = append(conditions, fmt.Sprintf("employee_number = $%d", argIdx))
		args = append(args, *filter.EmployeeNumber)
		argIdx++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	query := `
		SELECT id, employee_number, date, time, created_at
		FROM punches
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date DESC, time DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	return collectPunches(rows)
}

func collectPunches(rows pgx.Rows) ([]punch.Punch, error) {
	punches := make([]punch.Punch, 0)
	for rows.Next() {
		var p punch.Punch
		if err := rows.Scan(&p.ID, &p.EmployeeNumber, &p.Date, &p.Time, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan punch row: %w", err)
		}
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read punch rows: %w", err)
	}
	return punches, nil
}
