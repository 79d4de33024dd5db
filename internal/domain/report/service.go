package report

import "context"

// ReportService builds the per-employee, per-day attendance report for
// an inclusive date range and a work-center group.
type ReportService interface {
	BuildAttendanceReport(ctx context.Context, req AttendanceReportRequest) (AttendanceReport, error)
}
