package employee

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/cecytebcs/attendance-backend-go/internal/domain/employee"
	"github.com/cecytebcs/attendance-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Accepted header spellings for each roster column. Spreadsheets come
// from several offices and the headers are never quite the same twice.
var rosterHeaderVariants = map[string][]string{
	"employee_number":    {"EMPLEADO_NO", "NUMERO_EMPLEADO", "NUM_EMPLEADO", "NO_EMPLEADO"},
	"full_name":          {"NOMBRE_COMPLETO", "NOMBRE"},
	"curp":               {"CURP"},
	"rfc":                {"RFC"},
	"work_center_number": {"CCT_NO", "CCT_NUMERO"},
	"work_center_code":   {"CCT_CLAVE", "CLAVE_CCT"},
	"work_center_name":   {"CCT_NOMBRE", "NOMBRE_CCT", "CENTRO_TRABAJO"},
	"position":           {"PUESTO", "CARGO"},
}

var rosterRequiredColumns = []string{"employee_number", "full_name", "curp", "rfc"}

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	logger *slog.Logger
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, logger *slog.Logger) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		logger:             logger,
	}
}

// ImportRoster implements employee.EmployeeService. Rows whose identity
// triple (full name, CURP, RFC) already exists are updated in place;
// everything else is inserted. Row failures are accumulated per row so
// one bad line never sinks the rest of the file.
func (s *EmployeeServiceImpl) ImportRoster(ctx context.Context, file io.Reader) (employee.ImportRosterResult, error) {
	result := employee.ImportRosterResult{
		BatchID: uuid.NewString(),
		Errors:  []string{},
	}

	rows, columns, err := readRosterSheet(file)
	if err != nil {
		return employee.ImportRosterResult{}, err
	}

	for i, row := range rows {
		rowNumber := i + 2 // 1-based, after the header row

		emp, err := parseRosterRow(row, columns)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("fila %d: %v", rowNumber, err))
			continue
		}
		result.Processed++

		existing, err := s.EmployeeRepository.GetByIdentity(ctx, emp.FullName, emp.CURP, emp.RFC)
		switch {
		case err == nil:
			if err := s.EmployeeRepository.Update(ctx, existing.ID, emp); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("fila %d: %v", rowNumber, err))
				continue
			}
			result.Updated++
		case errors.Is(err, employee.ErrEmployeeNotFound):
			if _, err := s.EmployeeRepository.Create(ctx, emp); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("fila %d: %v", rowNumber, err))
				continue
			}
			result.Created++
		default:
			result.Errors = append(result.Errors, fmt.Sprintf("fila %d: %v", rowNumber, err))
		}
	}

	s.logger.Info("roster import finished",
		slog.String("batch_id", result.BatchID),
		slog.Int("created", result.Created),
		slog.Int("updated", result.Updated),
		slog.Int("errors", len(result.Errors)),
	)

	return result, nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, workCenter string) ([]employee.EmployeeResponse, error) {
	var (
		employees []employee.Employee
		err       error
	)
	if validator.IsEmpty(workCenter) {
		employees, err = s.EmployeeRepository.List(ctx)
	} else {
		employees, err = s.EmployeeRepository.ListByWorkCenter(ctx, workCenter)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.MapToResponse(emp))
	}
	return responses, nil
}

// GetByNumber implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByNumber(ctx context.Context, employeeNumber int) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByEmployeeNumber(ctx, employeeNumber)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.MapToResponse(emp), nil
}

// RosterTemplate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) RosterTemplate() (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"EMPLEADO_NO", "NOMBRE_COMPLETO", "CURP", "RFC", "CCT_NO", "CCT_CLAVE", "CCT_NOMBRE", "PUESTO"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, "", fmt.Errorf("failed to build template: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", fmt.Errorf("failed to build template: %w", err)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, "", fmt.Errorf("failed to write template: %w", err)
	}
	return buf, "plantilla_empleados.xlsx", nil
}

// readRosterSheet opens the workbook, resolves the header row against
// the accepted variants and returns the data rows plus the column map.
func readRosterSheet(file io.Reader) ([][]string, map[string]int, error) {
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
		return nil, nil, employee.ErrEmptySpreadsheet
	}

	columns := matchHeaders(rows[0], rosterHeaderVariants)
	for _, required := range rosterRequiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, nil, employee.ErrMissingRequiredColumns
		}
	}

	return rows[1:], columns, nil
}

// matchHeaders maps logical column names to sheet column indexes by
// comparing each header cell against the accepted spellings. Matching
// ignores case, surrounding space and space-vs-underscore differences.
func matchHeaders(header []string, variants map[string][]string) map[string]int {
	columns := make(map[string]int)
	for i, cell := range header {
		normalized := normalizeHeader(cell)
		for name, spellings := range variants {
			if _, taken := columns[name]; taken {
				continue
			}
			for _, spelling := range spellings {
				if normalized == normalizeHeader(spelling) {
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

func optionalCellAt(row []string, columns map[string]int, name string) *string {
	v := cellAt(row, columns, name)
	if v == "" {
		return nil
	}
	return &v
}

func parseRosterRow(row []string, columns map[string]int) (employee.Employee, error) {
	number := cellAt(row, columns, "employee_number")
	fullName := cellAt(row, columns, "full_name")
	curp := cellAt(row, columns, "curp")
	rfc := cellAt(row, columns, "rfc")

	if number == "" || fullName == "" || curp == "" || rfc == "" {
		return employee.Employee{}, errors.New("numero de empleado, nombre, CURP y RFC son obligatorios")
	}

	employeeNumber, err := strconv.Atoi(number)
	if err != nil || employeeNumber <= 0 {
		return employee.Employee{}, employee.ErrInvalidEmployeeNumber
	}
	if !validator.IsValidCURP(curp) {
		return employee.Employee{}, fmt.Errorf("CURP invalida: %s", curp)
	}
	if !validator.IsValidRFC(rfc) {
		return employee.Employee{}, fmt.Errorf("RFC invalido: %s", rfc)
	}

	return employee.Employee{
		EmployeeNumber:   employeeNumber,
		FullName:         fullName,
		CURP:             strings.ToUpper(curp),
		RFC:              strings.ToUpper(rfc),
		WorkCenterNumber: optionalCellAt(row, columns, "work_center_number"),
		WorkCenterCode:   optionalCellAt(row, columns, "work_center_code"),
		WorkCenterName:   optionalCellAt(row, columns, "work_center_name"),
		Position:         optionalCellAt(row, columns, "position"),
	}, nil
}
