package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cecytebcs/attendance-backend-go/internal/domain/employee"
	"github.com/cecytebcs/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// employeeRepositoryImpl reads and writes the employees table:
// id uuid default gen_random_uuid(), employee_number int unique,
// full_name text, curp varchar(18) unique, rfc varchar(13) unique,
// work_center_number/work_center_code/work_center_name/position text null,
// created_at/updated_at timestamptz.
type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, employee_number, full_name, curp, rfc,
	   work_center_number, work_center_code, work_center_name, position,
	   created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.EmployeeNumber, &e.FullName, &e.CURP, &e.RFC,
		&e.WorkCenterNumber, &e.WorkCenterCode, &e.WorkCenterName, &e.Position,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// GetByEmployeeNumber implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmployeeNumber(ctx context.Context, employeeNumber int) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE employee_number = $1
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, employeeNumber))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee by number: %w", err)
	}

	return e, nil
}

// GetByIdentity implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByIdentity(ctx context.Context, fullName, curp, rfc string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE full_name = $1 AND curp = $2 AND rfc = $3
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, fullName, curp, rfc))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee by identity: %w", err)
	}

	return e, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			employee_number, full_name, curp, rfc,
			work_center_number, work_center_code, work_center_name, position
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.EmployeeNumber, newEmployee.FullName, newEmployee.CURP, newEmployee.RFC,
		newEmployee.WorkCenterNumber, newEmployee.WorkCenterCode, newEmployee.WorkCenterName, newEmployee.Position,
	).Scan(&newEmployee.ID, &newEmployee.CreatedAt, &newEmployee.UpdatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET employee_number = $1,
			work_center_number = $2,
			work_center_code = $3,
			work_center_name = $4,
			position = $5,
			updated_at = $6
		WHERE id = $7
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		emp.EmployeeNumber,
		emp.WorkCenterNumber, emp.WorkCenterCode, emp.WorkCenterName, emp.Position,
		time.Now(), id,
	).Scan(&updatedID)

	if errors.Is(err, pgx.ErrNoRows) {
		return employee.ErrEmployeeNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		ORDER BY employee_number
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

// ListByWorkCenter implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByWorkCenter(ctx context.Context, workCenter string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE work_center_code = $1 OR work_center_name ILIKE '%' || $1 || '%'
		ORDER BY employee_number
	`

	rows, err := q.Query(ctx, query, workCenter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by work center: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	employees := make([]employee.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee rows: %w", err)
	}
	return employees, nil
}
