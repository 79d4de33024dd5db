package punch

import (
	"time"
)

// Punch is one raw clock event: an employee number, a calendar date and
// a time of day. Devices report no direction flag; whether a punch is
// an entry or an exit is inferred downstream from its position within
// the day's sorted sequence.
type Punch struct {
	ID             string
	EmployeeNumber int
	Date           time.Time
	Time           time.Time
	CreatedAt      time.Time
}
