package report

import (
	"testing"
	"time"
)

func TestWeekdayNumber(t *testing.T) {
	// 2024-06-03 is a Monday
	cases := []struct {
		date string
		want int
	}{
		{"2024-06-03", 1},
		{"2024-06-04", 2},
		{"2024-06-05", 3},
		{"2024-06-06", 4},
		{"2024-06-07", 5},
		{"2024-06-08", 6},
		{"2024-06-09", 7},
	}
	for _, c := range cases {
		date, err := time.Parse("2006-01-02", c.date)
		if err != nil {
			t.Fatalf("parse %q: %v", c.date, err)
		}
		got := WeekdayNumber(date)
		if got != c.want {
			t.Errorf("WeekdayNumber(%s) = %d, want %d", c.date, got, c.want)
		}
	}
}

func TestWeekdayNumber_AlwaysInRange(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 400; i++ {
		date := start.AddDate(0, 0, i)
		got := WeekdayNumber(date)
		if got < 1 || got > 7 {
			t.Fatalf("WeekdayNumber(%s) = %d, outside 1..7", date.Format("2006-01-02"), got)
		}
		if again := WeekdayNumber(date); again != got {
			t.Fatalf("WeekdayNumber(%s) not stable: %d then %d", date.Format("2006-01-02"), got, again)
		}
	}
}
