package punch

import "errors"

var (
	ErrDuplicatePunch = errors.New("a punch for this employee at this date and time already exists")
	ErrPunchNotFound  = errors.New("punch not found")
)
