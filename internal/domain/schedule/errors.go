package schedule

import "errors"

var (
	ErrShiftNotFound          = errors.New("shift not found")
	ErrInvalidWeekday         = errors.New("weekday must be between 1 (Monday) and 7 (Sunday)")
	ErrMissingRequiredColumns = errors.New("spreadsheet is missing required columns")
	ErrEmptySpreadsheet       = errors.New("spreadsheet must contain at least one data row")
)
