package report

import "time"

// WeekdayNumber maps a calendar date to the schedule's weekday
// numbering: 1 for Monday through 7 for Sunday. Go counts weekdays
// from 0=Sunday, so Sunday folds to 7 and the rest map straight across.
func WeekdayNumber(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
