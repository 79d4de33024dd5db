package report

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cecytebcs/attendance-backend-go/internal/domain/report"
	"github.com/cecytebcs/attendance-backend-go/internal/domain/schedule"
)

// graceSeconds is the tolerance window applied on both sides: arriving
// up to 15 minutes after the scheduled entry is still on time, leaving
// up to 15 minutes before the scheduled exit is still normal.
const graceSeconds = 15 * 60

// dayReconciler classifies one employee-day from its resolved shifts
// and its sorted punch sequence. It is pure apart from the injected
// diagnostic logger.
type dayReconciler struct {
	logger *slog.Logger
}

func newDayReconciler(logger *slog.Logger) *dayReconciler {
	return &dayReconciler{logger: logger}
}

// ReconcileDay builds the DayAttendance for one date. shifts must be
// the shifts resolved for that date's weekday ordered by entry time
// (the first one is the primary schedule when the day is split);
// punches must be sorted ascending. The second return value is the
// worked duration in whole minutes, for the period totals.
func (r *dayReconciler) ReconcileDay(date time.Time, shifts []schedule.Shift, punches []time.Time) (report.DayAttendance, int) {
	weekday := WeekdayNumber(date)

	var primary *schedule.Shift
	if len(shifts) > 0 {
		primary = &shifts[0]
		if len(shifts) > 1 {
			r.logger.Debug("multiple shifts resolved, using earliest as primary",
				slog.Int("employee_number", primary.EmployeeNumber),
				slog.Int("weekday", weekday),
				slog.Int("shift_count", len(shifts)),
			)
		}
	}

	first, last := classifyPunches(punches)

	day := report.DayAttendance{
		Date:         date.Format("2006-01-02"),
		Weekday:      weekday,
		WeekdayName:  schedule.WeekdayName(weekday),
		EntryStatus:  entryStatus(primary, first),
		ExitStatus:   exitStatus(primary, punches),
		Punches:      formatPunches(punches),
		FirstPunch:   formatClockPtr(first),
		LastPunch:    formatClockPtr(last),
		TotalPunches: len(punches),
	}

	if primary != nil {
		entry := primary.EntryTime.Format("15:04:05")
		exit := primary.ExitTime.Format("15:04:05")
		day.ScheduledEntry = &entry
		day.ScheduledExit = &exit
	}

	minutesWorked := workedMinutes(first, last)
	day.WorkedTime = formatMinutes(minutesWorked)
	day.EntryDisplay = displayPair(scheduledEntry(primary), first)
	day.ExitDisplay = displayPair(scheduledExit(primary), last)

	return day, minutesWorked
}

// classifyPunches infers punch direction from ordinal position: the
// earliest punch of the day is the entry, the latest is the exit.
// Punches in between are kept in the record but not classified. This
// is the single place that rule lives; swapping in explicit direction
// tagging would only touch this function.
func classifyPunches(punches []time.Time) (first, last *time.Time) {
	if len(punches) == 0 {
		return nil, nil
	}
	return &punches[0], &punches[len(punches)-1]
}

func entryStatus(primary *schedule.Shift, first *time.Time) report.EntryStatus {
	if primary == nil {
		return report.EntryNoSchedule
	}
	if first == nil {
		return report.EntryMissing
	}
	if secondsOfDay(*first) > secondsOfDay(primary.EntryTime)+graceSeconds {
		return report.EntryLate
	}
	return report.EntryOnTime
}

func exitStatus(primary *schedule.Shift, punches []time.Time) report.ExitStatus {
	if primary == nil {
		return report.ExitNoSchedule
	}
	// A lone punch already counted as the entry; there is nothing left
	// to close the day with.
	if len(punches) < 2 {
		return report.ExitMissing
	}
	lastPunch := punches[len(punches)-1]
	if secondsOfDay(lastPunch) < secondsOfDay(primary.ExitTime)-graceSeconds {
		return report.ExitEarlyDeparture
	}
	return report.ExitNormal
}

// workedMinutes is last minus first truncated to whole minutes. The
// punches arrive sorted so the span cannot be negative, but clamp
// anyway rather than report a negative day.
func workedMinutes(first, last *time.Time) int {
	if first == nil || last == nil || first == last {
		return 0
	}
	seconds := secondsOfDay(*last) - secondsOfDay(*first)
	if seconds < 0 {
		return 0
	}
	return seconds / 60
}

// displayPair renders the "scheduled - actual" cell of the report grid.
func displayPair(scheduled, actual *time.Time) string {
	switch {
	case scheduled != nil && actual != nil:
		return formatClock(*scheduled) + " - " + formatClock(*actual)
	case scheduled != nil:
		return formatClock(*scheduled) + " - Sin checada"
	case actual != nil:
		return "Sin horario - " + formatClock(*actual)
	default:
		return "Sin datos"
	}
}

func scheduledEntry(primary *schedule.Shift) *time.Time {
	if primary == nil {
		return nil
	}
	return &primary.EntryTime
}

func scheduledExit(primary *schedule.Shift) *time.Time {
	if primary == nil {
		return nil
	}
	return &primary.ExitTime
}

// secondsOfDay collapses a wall-clock time to seconds since midnight,
// ignoring whatever date component the value carries.
func secondsOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

func formatClock(t time.Time) string {
	return t.Format("15:04")
}

func formatClockPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatClock(*t)
	return &s
}

func formatPunches(punches []time.Time) []string {
	out := make([]string, 0, len(punches))
	for _, p := range punches {
		out = append(out, p.Format("15:04:05"))
	}
	return out
}

// formatMinutes renders a minute count as hours:minutes, e.g. "4:05".
func formatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}
