package schedule

import (
	"time"
)

// Shift is one scheduled entry/exit pair for an employee on a weekday
// (1=Monday .. 7=Sunday). An employee may have several shifts on the
// same weekday (split morning/afternoon schedules). Entry and exit are
// wall-clock times of day; shifts never span midnight, so the exit is
// always on the same calendar day as the entry.
type Shift struct {
	ID             string
	EmployeeNumber int
	Weekday        int
	EntryTime      time.Time
	ExitTime       time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// WeekdayNames maps the domain weekday numbering to the names the
// report renderer prints.
var WeekdayNames = map[int]string{
	1: "Lunes",
	2: "Martes",
	3: "Miércoles",
	4: "Jueves",
	5: "Viernes",
	6: "Sábado",
	7: "Domingo",
}

// WeekdayName returns the Spanish weekday name, or "Desconocido" for a
// number outside 1..7.
func WeekdayName(weekday int) string {
	if name, ok := WeekdayNames[weekday]; ok {
		return name
	}
	return "Desconocido"
}
