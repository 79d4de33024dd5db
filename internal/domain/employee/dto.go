package employee

type EmployeeResponse struct {
	ID               string  `json:"id"`
	EmployeeNumber   int     `json:"employee_number"`
	FullName         string  `json:"full_name"`
	CURP             string  `json:"curp"`
	RFC              string  `json:"rfc"`
	WorkCenterNumber *string `json:"work_center_number"`
	WorkCenterCode   *string `json:"work_center_code"`
	WorkCenterName   *string `json:"work_center_name"`
	Position         *string `json:"position"`
}

// ImportRosterResult summarizes one spreadsheet ingestion run. Row
// failures are collected, never fatal: one bad row must not sink the
// rest of the file.
type ImportRosterResult struct {
	BatchID   string   `json:"batch_id"`
	Processed int      `json:"processed"`
	Created   int      `json:"created"`
	Updated   int      `json:"updated"`
	Errors    []string `json:"errors"`
}

func MapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID,
		EmployeeNumber:   e.EmployeeNumber,
		FullName:         e.FullName,
		CURP:             e.CURP,
		RFC:              e.RFC,
		WorkCenterNumber: e.WorkCenterNumber,
		WorkCenterCode:   e.WorkCenterCode,
		WorkCenterName:   e.WorkCenterName,
		Position:         e.Position,
	}
}
