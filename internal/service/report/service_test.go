package report

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/cecytebcs/attendance-backend-go/internal/domain/employee"
	"github.com/cecytebcs/attendance-backend-go/internal/domain/punch"
	"github.com/cecytebcs/attendance-backend-go/internal/domain/report"
	"github.com/cecytebcs/attendance-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
	listErr   error
}

func (f *fakeEmployeeRepo) GetByEmployeeNumber(ctx context.Context, employeeNumber int) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.EmployeeNumber == employeeNumber {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByIdentity(ctx context.Context, fullName, curp, rfc string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, newEmployee)
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, id string, emp employee.Employee) error {
	return nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) ListByWorkCenter(ctx context.Context, workCenter string) ([]employee.Employee, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.employees, nil
}

type fakeShiftRepo struct {
	// keyed by employee number, then weekday
	shifts map[int]map[int][]schedule.Shift
	err    error
}

func (f *fakeShiftRepo) GetByEmployeeAndWeekday(ctx context.Context, employeeNumber, weekday int) ([]schedule.Shift, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.shifts[employeeNumber][weekday], nil
}

func (f *fakeShiftRepo) ListByEmployee(ctx context.Context, employeeNumber int) ([]schedule.Shift, error) {
	return nil, nil
}

func (f *fakeShiftRepo) List(ctx context.Context) ([]schedule.Shift, error) { return nil, nil }

func (f *fakeShiftRepo) Create(ctx context.Context, shift schedule.Shift) (schedule.Shift, error) {
	return shift, nil
}

func (f *fakeShiftRepo) ExistsExact(ctx context.Context, employeeNumber, weekday int, entry, exit time.Time) (bool, error) {
	return false, nil
}

func (f *fakeShiftRepo) DeleteAll(ctx context.Context) error { return nil }

type fakePunchRepo struct {
	// keyed by employee number, then date string
	punches map[int]map[string][]time.Time
	// failDate makes ListTimesForDate error for that one date only
	failDate string
}

func (f *fakePunchRepo) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	return p, nil
}

func (f *fakePunchRepo) ExistsAt(ctx context.Context, employeeNumber int, date, timeOfDay time.Time) (bool, error) {
	return false, nil
}

func (f *fakePunchRepo) ListTimesForDate(ctx context.Context, employeeNumber int, date time.Time) ([]time.Time, error) {
	key := date.Format("2006-01-02")
	if f.failDate != "" && key == f.failDate {
		return nil, errors.New("connection reset")
	}
	return f.punches[employeeNumber][key], nil
}

func (f *fakePunchRepo) List(ctx context.Context, filter punch.Filter) ([]punch.Punch, error) {
	return nil, nil
}

func newTestService(emps *fakeEmployeeRepo, shifts *fakeShiftRepo, punches *fakePunchRepo) report.ReportService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewReportService(emps, shifts, punches, logger)
}

func testEmployee(number int, name string) employee.Employee {
	return employee.Employee{
		ID:             name,
		EmployeeNumber: number,
		FullName:       name,
		CURP:           "AAAA800101HBSLRL01",
		RFC:            "AAA800101AA1",
	}
}

func TestBuildAttendanceReport_InvalidRange(t *testing.T) {
	svc := newTestService(&fakeEmployeeRepo{}, &fakeShiftRepo{}, &fakePunchRepo{})

	_, err := svc.BuildAttendanceReport(context.Background(), report.AttendanceReportRequest{
		StartDate:  "2024-06-10",
		EndDate:    "2024-06-03",
		WorkCenter: "156",
	})

	assert.ErrorIs(t, err, report.ErrInvalidDateRange)
}

func TestBuildAttendanceReport_RejectsMalformedRequest(t *testing.T) {
	svc := newTestService(&fakeEmployeeRepo{}, &fakeShiftRepo{}, &fakePunchRepo{})

	cases := []report.AttendanceReportRequest{
		{StartDate: "", EndDate: "2024-06-03", WorkCenter: "156"},
		{StartDate: "2024-06-03", EndDate: "03/06/2024", WorkCenter: "156"},
		{StartDate: "2024-06-03", EndDate: "2024-06-03", WorkCenter: ""},
	}
	for _, req := range cases {
		_, err := svc.BuildAttendanceReport(context.Background(), req)
		assert.Error(t, err, "request %+v", req)
	}
}

func TestBuildAttendanceReport_SingleDayRangeIsInclusive(t *testing.T) {
	emps := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee(1001, "ANA LOPEZ")}}
	shifts := &fakeShiftRepo{shifts: map[int]map[int][]schedule.Shift{
		1001: {1: {{EmployeeNumber: 1001, Weekday: 1, EntryTime: clockAt(8, 0, 0), ExitTime: clockAt(16, 0, 0)}}},
	}}
	punches := &fakePunchRepo{punches: map[int]map[string][]time.Time{
		1001: {"2024-06-03": {clockAt(8, 1, 0), clockAt(16, 2, 0)}},
	}}
	svc := newTestService(emps, shifts, punches)

	result, err := svc.BuildAttendanceReport(context.Background(), report.AttendanceReportRequest{
		StartDate:  "2024-06-03",
		EndDate:    "2024-06-03",
		WorkCenter: "156",
	})

	require.NoError(t, err)
	require.Len(t, result.Employees, 1)
	require.Len(t, result.Employees[0].Days, 1)

	day := result.Employees[0].Days[0]
	assert.Equal(t, "2024-06-03", day.Date)
	assert.Equal(t, report.EntryOnTime, day.EntryStatus)
	assert.Equal(t, report.ExitNormal, day.ExitStatus)
	assert.Equal(t, "8:01", day.WorkedTime)

	summary := result.Employees[0].Summary
	assert.Equal(t, "8:01", summary.TotalWorkedTime)
	assert.Equal(t, 1, summary.WorkedDays)
	assert.Equal(t, 0, summary.MissingEntries)
	assert.Equal(t, 0, summary.MissingExits)
}

func TestBuildAttendanceReport_SummaryTotals(t *testing.T) {
	emps := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee(1001, "ANA LOPEZ")}}
	shifts := &fakeShiftRepo{shifts: map[int]map[int][]schedule.Shift{
		1001: {
			1: {{EmployeeNumber: 1001, Weekday: 1, EntryTime: clockAt(8, 0, 0), ExitTime: clockAt(16, 0, 0)}},
			2: {{EmployeeNumber: 1001, Weekday: 2, EntryTime: clockAt(8, 0, 0), ExitTime: clockAt(16, 0, 0)}},
			3: {{EmployeeNumber: 1001, Weekday: 3, EntryTime: clockAt(8, 0, 0), ExitTime: clockAt(16, 0, 0)}},
		},
	}}
	punches := &fakePunchRepo{punches: map[int]map[string][]time.Time{
		1001: {
			// Monday: full day, 8h00.
			"2024-06-03": {clockAt(8, 0, 0), clockAt(16, 0, 0)},
			// Tuesday: entry only, no time credited.
			"2024-06-04": {clockAt(8, 0, 0)},
			// Wednesday: nothing at all.
		},
	}}
	svc := newTestService(emps, shifts, punches)

	result, err := svc.BuildAttendanceReport(context.Background(), report.AttendanceReportRequest{
		StartDate:  "2024-06-03",
		EndDate:    "2024-06-05",
		WorkCenter: "156",
	})

	require.NoError(t, err)
	require.Len(t, result.Employees, 1)

	summary := result.Employees[0].Summary
	assert.Equal(t, "8:00", summary.TotalWorkedTime)
	assert.Equal(t, 1, summary.WorkedDays)
	assert.Equal(t, 1, summary.MissingEntries)
	assert.Equal(t, 2, summary.MissingExits)
}

func TestBuildAttendanceReport_PreservesEmployeeOrder(t *testing.T) {
	var emps fakeEmployeeRepo
	for i := 0; i < 40; i++ {
		emps.employees = append(emps.employees, testEmployee(2000+i, "EMP"))
	}
	svc := newTestService(&emps, &fakeShiftRepo{}, &fakePunchRepo{})

	result, err := svc.BuildAttendanceReport(context.Background(), report.AttendanceReportRequest{
		StartDate:  "2024-06-03",
		EndDate:    "2024-06-09",
		WorkCenter: "156",
	})

	require.NoError(t, err)
	require.Len(t, result.Employees, 40)
	for i, emp := range result.Employees {
		assert.Equal(t, 2000+i, emp.EmployeeNumber)
	}
}

func TestBuildAttendanceReport_Deterministic(t *testing.T) {
	emps := &fakeEmployeeRepo{employees: []employee.Employee{
		testEmployee(1001, "ANA LOPEZ"),
		testEmployee(1002, "JUAN MARTINEZ"),
	}}
	shifts := &fakeShiftRepo{shifts: map[int]map[int][]schedule.Shift{
		1001: {1: {{EmployeeNumber: 1001, Weekday: 1, EntryTime: clockAt(8, 0, 0), ExitTime: clockAt(16, 0, 0)}}},
	}}
	punches := &fakePunchRepo{punches: map[int]map[string][]time.Time{
		1001: {"2024-06-03": {clockAt(8, 5, 0), clockAt(15, 50, 0)}},
	}}
	svc := newTestService(emps, shifts, punches)

	req := report.AttendanceReportRequest{
		StartDate:  "2024-06-03",
		EndDate:    "2024-06-07",
		WorkCenter: "156",
	}

	first, err := svc.BuildAttendanceReport(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.BuildAttendanceReport(context.Background(), req)
	require.NoError(t, err)

	// GeneratedAt is wall clock; everything else must be identical.
	assert.Equal(t, first.Employees, second.Employees)
}

func TestBuildAttendanceReport_UnreadableDayIsIsolated(t *testing.T) {
	emps := &fakeEmployeeRepo{employees: []employee.Employee{testEmployee(1001, "ANA LOPEZ")}}
	punches := &fakePunchRepo{failDate: "2024-06-04"}
	svc := newTestService(emps, &fakeShiftRepo{}, punches)

	result, err := svc.BuildAttendanceReport(context.Background(), report.AttendanceReportRequest{
		StartDate:  "2024-06-03",
		EndDate:    "2024-06-05",
		WorkCenter: "156",
	})

	require.NoError(t, err)
	require.Len(t, result.Employees, 1)
	require.Len(t, result.Employees[0].Days, 3)

	broken := result.Employees[0].Days[1]
	assert.Equal(t, "2024-06-04", broken.Date)
	require.NotNil(t, broken.Error)
	assert.Contains(t, *broken.Error, "connection reset")
	assert.Equal(t, "Sin datos", broken.EntryDisplay)

	// Neighboring days are untouched.
	assert.Nil(t, result.Employees[0].Days[0].Error)
	assert.Nil(t, result.Employees[0].Days[2].Error)
}

func TestBuildAttendanceReport_EmployeeListFailure(t *testing.T) {
	emps := &fakeEmployeeRepo{listErr: errors.New("relation does not exist")}
	svc := newTestService(emps, &fakeShiftRepo{}, &fakePunchRepo{})

	_, err := svc.BuildAttendanceReport(context.Background(), report.AttendanceReportRequest{
		StartDate:  "2024-06-03",
		EndDate:    "2024-06-05",
		WorkCenter: "156",
	})

	assert.Error(t, err)
}
