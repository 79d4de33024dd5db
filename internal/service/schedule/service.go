package schedule

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/cecytebcs/attendance-backend-go/internal/domain/employee"
	"github.com/cecytebcs/attendance-backend-go/internal/domain/schedule"
	"github.com/cecytebcs/attendance-backend-go/internal/pkg/database"
	"github.com/cecytebcs/attendance-backend-go/internal/pkg/validator"
	"github.com/cecytebcs/attendance-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

var scheduleHeaderVariants = map[string][]string{
	"employee_number": {"EMPLEADO_NO", "NUMERO_EMPLEADO", "NUM_EMPLEADO", "NO_EMPLEADO"},
	"weekday":         {"DIA", "DIA_SEMANA", "NUM_DIA"},
	"entry":           {"ENTRADA", "HORA_ENTRADA"},
	"exit":            {"SALIDA", "HORA_SALIDA"},
}

var scheduleRequiredColumns = []string{"employee_number", "weekday", "entry", "exit"}

type ScheduleServiceImpl struct {
	schedule.ShiftRepository
	employee.EmployeeRepository
	logger *slog.Logger

	// transact wraps a replace-all import in a database transaction so
	// the wipe and the reload land together or not at all.
	transact func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewScheduleService(
	db *database.DB,
	shiftRepo schedule.ShiftRepository,
	employeeRepo employee.EmployeeRepository,
	logger *slog.Logger,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		ShiftRepository:    shiftRepo,
		EmployeeRepository: employeeRepo,
		logger:             logger,
		transact: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// ImportSchedules implements schedule.ScheduleService. Each data row is
// one shift. The referenced employee must already be on the roster;
// rows that reference nobody are collected in UnknownEmployees. A row
// identical to a stored shift is skipped, not duplicated, so the same
// file can be loaded twice without bloating the schedule.
func (s *ScheduleServiceImpl) ImportSchedules(ctx context.Context, file io.Reader, replaceAll bool) (schedule.ImportSchedulesResult, error) {
	result := schedule.ImportSchedulesResult{
		BatchID:          uuid.NewString(),
		UnknownEmployees: []string{},
		Errors:           []string{},
	}

	rows, columns, err := readScheduleSheet(file)
	if err != nil {
		return schedule.ImportSchedulesResult{}, err
	}

	ingest := func(ctx context.Context) error {
		if replaceAll {
			if err := s.ShiftRepository.DeleteAll(ctx); err != nil {
				return fmt.Errorf("failed to clear previous schedule: %w", err)
			}
			result.ReplacedPrevious = true
		}
		s.ingestRows(ctx, rows, columns, &result)
		return nil
	}

	if replaceAll {
		err = s.transact(ctx, ingest)
	} else {
		err = ingest(ctx)
	}
	if err != nil {
		return schedule.ImportSchedulesResult{}, err
	}

	s.logger.Info("schedule import finished",
		slog.String("batch_id", result.BatchID),
		slog.Int("created", result.Created),
		slog.Int("skipped", result.Skipped),
		slog.Int("unknown_employees", len(result.UnknownEmployees)),
		slog.Int("errors", len(result.Errors)),
		slog.Bool("replaced_previous", result.ReplacedPrevious),
	)

	return result, nil
}

// ingestRows walks the data rows, accumulating per-row outcomes into
// result. Row failures never abort the run.
func (s *ScheduleServiceImpl) ingestRows(ctx context.Context, rows [][]string, columns map[string]int, result *schedule.ImportSchedulesResult) {
	for i, row := range rows {
		rowNumber := i + 2

		shift, err := parseScheduleRow(row, columns)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("fila %d: %v", rowNumber, err))
			continue
		}
		result.Processed++

		if _, err := s.EmployeeRepository.GetByEmployeeNumber(ctx, shift.EmployeeNumber); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				result.UnknownEmployees = append(result.UnknownEmployees, strconv.Itoa(shift.EmployeeNumber))
				continue
			}
			result.Errors = append(result.Errors, fmt.Sprintf("fila %d: %v", rowNumber, err))
			continue
		}

		exists, err := s.ShiftRepository.ExistsExact(ctx, shift.EmployeeNumber, shift.Weekday, shift.EntryTime, shift.ExitTime)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("fila %d: %v", rowNumber, err))
			continue
		}
		if exists {
			result.Skipped++
			continue
		}

		if _, err := s.ShiftRepository.Create(ctx, shift); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("fila %d: %v", rowNumber, err))
			continue
		}
		result.Created++
	}
}

// ListShifts implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListShifts(ctx context.Context) ([]schedule.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return mapShifts(shifts), nil
}

// ListShiftsByEmployee implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListShiftsByEmployee(ctx context.Context, employeeNumber int) ([]schedule.ShiftResponse, error) {
	if _, err := s.EmployeeRepository.GetByEmployeeNumber(ctx, employeeNumber); err != nil {
		return nil, err
	}
	shifts, err := s.ShiftRepository.ListByEmployee(ctx, employeeNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return mapShifts(shifts), nil
}

// ListShiftsByEmployeeAndWeekday implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListShiftsByEmployeeAndWeekday(ctx context.Context, employeeNumber, weekday int) ([]schedule.ShiftResponse, error) {
	if !validator.IsValidWeekday(weekday) {
		return nil, schedule.ErrInvalidWeekday
	}
	if _, err := s.EmployeeRepository.GetByEmployeeNumber(ctx, employeeNumber); err != nil {
		return nil, err
	}
	shifts, err := s.ShiftRepository.GetByEmployeeAndWeekday(ctx, employeeNumber, weekday)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return mapShifts(shifts), nil
}

// ScheduleTemplate implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ScheduleTemplate() (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"EMPLEADO_NO", "DIA", "ENTRADA", "SALIDA"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, "", fmt.Errorf("failed to build template: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", fmt.Errorf("failed to build template: %w", err)
		}
	}
	// Example row showing the expected formats.
	example := []any{1001, 1, "07:00:00", "15:00:00"}
	for i, v := range example {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, "", fmt.Errorf("failed to build template: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return nil, "", fmt.Errorf("failed to build template: %w", err)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, "", fmt.Errorf("failed to write template: %w", err)
	}
	return buf, "plantilla_horarios.xlsx", nil
}

func mapShifts(shifts []schedule.Shift) []schedule.ShiftResponse {
	responses := make([]schedule.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, schedule.MapToResponse(sh))
	}
	return responses
}

func readScheduleSheet(file io.Reader) ([][]string, map[string]int, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read spreadsheet rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, schedule.ErrEmptySpreadsheet
	}

	columns := matchHeaders(rows[0])
	for _, required := range scheduleRequiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, nil, schedule.ErrMissingRequiredColumns
		}
	}

	return rows[1:], columns, nil
}

func matchHeaders(header []string) map[string]int {
	columns := make(map[string]int)
	for i, cell := range header {
		normalized := normalizeHeader(cell)
		for name, spellings := range scheduleHeaderVariants {
			if _, taken := columns[name]; taken {
				continue
			}
			for _, spelling := range spellings {
				if normalized == spelling {
					columns[name] = i
					break
				}
			}
		}
	}
	return columns
}

func normalizeHeader(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "_")
}

func cellAt(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseScheduleRow(row []string, columns map[string]int) (schedule.Shift, error) {
	number := cellAt(row, columns, "employee_number")
	weekdayCell := cellAt(row, columns, "weekday")
	entryCell := cellAt(row, columns, "entry")
	exitCell := cellAt(row, columns, "exit")

	if number == "" || weekdayCell == "" || entryCell == "" || exitCell == "" {
		return schedule.Shift{}, errors.New("numero de empleado, dia, entrada y salida son obligatorios")
	}

	employeeNumber, err := strconv.Atoi(number)
	if err != nil || employeeNumber <= 0 {
		return schedule.Shift{}, employee.ErrInvalidEmployeeNumber
	}

	weekday, err := strconv.Atoi(weekdayCell)
	if err != nil || !validator.IsValidWeekday(weekday) {
		return schedule.Shift{}, schedule.ErrInvalidWeekday
	}

	entry, err := parseTimeOfDay(entryCell)
	if err != nil {
		return schedule.Shift{}, fmt.Errorf("hora de entrada invalida: %s", entryCell)
	}
	exit, err := parseTimeOfDay(exitCell)
	if err != nil {
		return schedule.Shift{}, fmt.Errorf("hora de salida invalida: %s", exitCell)
	}

	// Exit before entry is stored as-is. The reconciler classifies
	// against whatever the schedule says.
	return schedule.Shift{
		EmployeeNumber: employeeNumber,
		Weekday:        weekday,
		EntryTime:      entry,
		ExitTime:       exit,
	}, nil
}

func parseTimeOfDay(s string) (time.Time, error) {
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t, nil
	}
	return time.Parse("15:04", s)
}
