package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cecytebcs/attendance-backend-go/internal/domain/employee"
	"github.com/cecytebcs/attendance-backend-go/internal/domain/punch"
	"github.com/cecytebcs/attendance-backend-go/internal/domain/report"
	"github.com/cecytebcs/attendance-backend-go/internal/domain/schedule"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentEmployees bounds the per-employee fan-out. Employees are
// independent, so the only shared resource is the connection pool.
const maxConcurrentEmployees = 8

type ReportServiceImpl struct {
	employee.EmployeeRepository
	schedule.ShiftRepository
	punch.PunchRepository

	reconciler *dayReconciler
	logger     *slog.Logger
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	shiftRepo schedule.ShiftRepository,
	punchRepo punch.PunchRepository,
	logger *slog.Logger,
) report.ReportService {
	return &ReportServiceImpl{
		EmployeeRepository: employeeRepo,
		ShiftRepository:    shiftRepo,
		PunchRepository:    punchRepo,
		reconciler:         newDayReconciler(logger),
		logger:             logger,
	}
}

// BuildAttendanceReport implements report.ReportService. It walks every
// calendar day of the inclusive range for every employee in the work
// center, reconciling each day against schedule and punches. Employees
// are processed concurrently but results keep the resolver's order.
func (s *ReportServiceImpl) BuildAttendanceReport(ctx context.Context, req report.AttendanceReportRequest) (report.AttendanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.AttendanceReport{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	if startDate.After(endDate) {
		return report.AttendanceReport{}, report.ErrInvalidDateRange
	}

	employees, err := s.EmployeeRepository.ListByWorkCenter(ctx, req.WorkCenter)
	if err != nil {
		return report.AttendanceReport{}, fmt.Errorf("failed to resolve employee group: %w", err)
	}

	s.logger.Debug("building attendance report",
		slog.String("work_center", req.WorkCenter),
		slog.String("start_date", req.StartDate),
		slog.String("end_date", req.EndDate),
		slog.Int("employee_count", len(employees)),
	)

	results := make([]report.EmployeeAttendanceReport, len(employees))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentEmployees)
	for i, emp := range employees {
		g.Go(func() error {
			empReport, err := s.buildEmployeeReport(gctx, emp, startDate, endDate)
			if err != nil {
				return err
			}
			results[i] = empReport
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report.AttendanceReport{}, fmt.Errorf("failed to build attendance report: %w", err)
	}

	return report.AttendanceReport{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		WorkCenter:  req.WorkCenter,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Employees:   results,
	}, nil
}

// buildEmployeeReport reconciles one employee across the whole range.
// A day whose data cannot be read becomes an errored DayAttendance
// instead of sinking the report.
func (s *ReportServiceImpl) buildEmployeeReport(ctx context.Context, emp employee.Employee, startDate, endDate time.Time) (report.EmployeeAttendanceReport, error) {
	if err := ctx.Err(); err != nil {
		return report.EmployeeAttendanceReport{}, err
	}

	days := make([]report.DayAttendance, 0, int(endDate.Sub(startDate).Hours()/24)+1)
	var summary report.AttendanceSummary
	totalMinutes := 0

	for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		weekday := WeekdayNumber(date)

		shifts, err := s.ShiftRepository.GetByEmployeeAndWeekday(ctx, emp.EmployeeNumber, weekday)
		if err != nil {
			days = append(days, s.erroredDay(emp.EmployeeNumber, date, weekday, err))
			continue
		}

		punches, err := s.PunchRepository.ListTimesForDate(ctx, emp.EmployeeNumber, date)
		if err != nil {
			days = append(days, s.erroredDay(emp.EmployeeNumber, date, weekday, err))
			continue
		}

		day, minutesWorked := s.reconciler.ReconcileDay(date, shifts, punches)
		days = append(days, day)

		totalMinutes += minutesWorked
		if minutesWorked > 0 {
			summary.WorkedDays++
		}
		if day.EntryStatus == report.EntryMissing {
			summary.MissingEntries++
		}
		if day.ExitStatus == report.ExitMissing {
			summary.MissingExits++
		}
	}

	summary.TotalWorkedTime = formatMinutes(totalMinutes)

	return report.EmployeeAttendanceReport{
		EmployeeNumber: emp.EmployeeNumber,
		FullName:       emp.FullName,
		Position:       emp.Position,
		WorkCenterName: emp.WorkCenterName,
		Days:           days,
		Summary:        summary,
	}, nil
}

// erroredDay records the diagnostic for a day whose schedule or punch
// data could not be read, so the rest of the report still completes.
func (s *ReportServiceImpl) erroredDay(employeeNumber int, date time.Time, weekday int, cause error) report.DayAttendance {
	s.logger.Warn("skipping unreadable employee-day",
		slog.Int("employee_number", employeeNumber),
		slog.String("date", date.Format("2006-01-02")),
		slog.String("error", cause.Error()),
	)

	diag := cause.Error()
	return report.DayAttendance{
		Date:         date.Format("2006-01-02"),
		Weekday:      weekday,
		WeekdayName:  schedule.WeekdayName(weekday),
		EntryDisplay: "Sin datos",
		ExitDisplay:  "Sin datos",
		WorkedTime:   formatMinutes(0),
		Punches:      []string{},
		Error:        &diag,
	}
}
