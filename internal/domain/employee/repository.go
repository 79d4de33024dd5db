package employee

import "context"

type EmployeeRepository interface {
	GetByEmployeeNumber(ctx context.Context, employeeNumber int) (Employee, error)

	// GetByIdentity matches the roster-import identity triple
	// (full name, CURP, RFC) used to decide between insert and update.
	GetByIdentity(ctx context.Context, fullName, curp, rfc string) (Employee, error)

	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, id string, emp Employee) error
	List(ctx context.Context) ([]Employee, error)

	// ListByWorkCenter resolves a report group: exact work-center code
	// match or case-insensitive substring match on the work-center name.
	ListByWorkCenter(ctx context.Context, workCenter string) ([]Employee, error)
}
