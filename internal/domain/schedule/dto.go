package schedule

type ShiftResponse struct {
	ID             string `json:"id"`
	EmployeeNumber int    `json:"employee_number"`
	Weekday        int    `json:"weekday"`
	WeekdayName    string `json:"weekday_name"`
	EntryTime      string `json:"entry_time"`
	ExitTime       string `json:"exit_time"`
}

type ImportSchedulesResult struct {
	BatchID          string   `json:"batch_id"`
	Processed        int      `json:"processed"`
	Created          int      `json:"created"`
	Skipped          int      `json:"skipped"`
	UnknownEmployees []string `json:"unknown_employees"`
	Errors           []string `json:"errors"`
	ReplacedPrevious bool     `json:"replaced_previous"`
}

func MapToResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:             s.ID,
		EmployeeNumber: s.EmployeeNumber,
		Weekday:        s.Weekday,
		WeekdayName:    WeekdayName(s.Weekday),
		EntryTime:      s.EntryTime.Format("15:04:05"),
		ExitTime:       s.ExitTime.Format("15:04:05"),
	}
}
