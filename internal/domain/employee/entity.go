package employee

import (
	"time"
)

// Employee is a roster entry. The employee number is assigned by the
// payroll system, not generated here; CURP and RFC are the two national
// identity codes and are unique across the whole roster.
type Employee struct {
	ID               string
	EmployeeNumber   int
	FullName         string
	CURP             string
	RFC              string
	WorkCenterNumber *string
	WorkCenterCode   *string
	WorkCenterName   *string
	Position         *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
