package employee

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/cecytebcs/attendance-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeEmployeeRepo struct {
	byIdentity map[string]employee.Employee
	created    []employee.Employee
	updated    []employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byIdentity: map[string]employee.Employee{}}
}

func identityKey(fullName, curp, rfc string) string {
	return fullName + "|" + curp + "|" + rfc
}

func (f *fakeEmployeeRepo) GetByEmployeeNumber(ctx context.Context, employeeNumber int) (employee.Employee, error) {
	for _, e := range f.byIdentity {
		if e.EmployeeNumber == employeeNumber {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByIdentity(ctx context.Context, fullName, curp, rfc string) (employee.Employee, error) {
	if e, ok := f.byIdentity[identityKey(fullName, curp, rfc)]; ok {
		return e, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	newEmployee.ID = "generated"
	f.byIdentity[identityKey(newEmployee.FullName, newEmployee.CURP, newEmployee.RFC)] = newEmployee
	f.created = append(f.created, newEmployee)
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, id string, emp employee.Employee) error {
	f.updated = append(f.updated, emp)
	return nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(f.byIdentity))
	for _, e := range f.byIdentity {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListByWorkCenter(ctx context.Context, workCenter string) ([]employee.Employee, error) {
	return f.List(ctx)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// buildRosterSheet writes an xlsx with the given header row and data
// rows, the way the offices hand them in.
func buildRosterSheet(t *testing.T, header []string, rows [][]string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	all := append([][]string{header}, rows...)
	for r, row := range all {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}

	buf := new(bytes.Buffer)
	require.NoError(t, f.Write(buf))
	return buf
}

var standardHeader = []string{"EMPLEADO_NO", "NOMBRE_COMPLETO", "CURP", "RFC", "CCT_CLAVE", "CCT_NOMBRE", "PUESTO"}

func validRow(number, name string) []string {
	return []string{number, name, "LOPA800101HBSLRL09", "LOPA800101AA1", "03DTA0156K", "CECYTE PLANTEL 156", "DOCENTE"}
}

func TestImportRoster_CreatesNewEmployees(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, discardLogger())

	buf := buildRosterSheet(t, standardHeader, [][]string{
		validRow("1001", "ANA LOPEZ PEREZ"),
	})

	result, err := svc.ImportRoster(context.Background(), buf)

	require.NoError(t, err)
	assert.NotEmpty(t, result.BatchID)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Empty(t, result.Errors)

	require.Len(t, repo.created, 1)
	created := repo.created[0]
	assert.Equal(t, 1001, created.EmployeeNumber)
	assert.Equal(t, "ANA LOPEZ PEREZ", created.FullName)
	require.NotNil(t, created.WorkCenterCode)
	assert.Equal(t, "03DTA0156K", *created.WorkCenterCode)
	require.NotNil(t, created.Position)
	assert.Equal(t, "DOCENTE", *created.Position)
}

func TestImportRoster_UpdatesExistingIdentity(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.byIdentity[identityKey("ANA LOPEZ PEREZ", "LOPA800101HBSLRL09", "LOPA800101AA1")] = employee.Employee{
		ID:             "existing-id",
		EmployeeNumber: 900,
		FullName:       "ANA LOPEZ PEREZ",
		CURP:           "LOPA800101HBSLRL09",
		RFC:            "LOPA800101AA1",
	}
	svc := NewEmployeeService(repo, discardLogger())

	buf := buildRosterSheet(t, standardHeader, [][]string{
		validRow("1001", "ANA LOPEZ PEREZ"),
	})

	result, err := svc.ImportRoster(context.Background(), buf)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Updated)
	require.Len(t, repo.updated, 1)
	assert.Equal(t, 1001, repo.updated[0].EmployeeNumber)
}

func TestImportRoster_AcceptsHeaderVariants(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, discardLogger())

	// Alternate spellings, mixed case, stray spaces.
	header := []string{"numero_empleado", " Nombre ", "curp", "Rfc", "clave cct"}
	buf := buildRosterSheet(t, header, [][]string{
		{"1002", "JUAN MARTINEZ RIOS", "MARJ850505HBSRNS02", "MARJ850505BB2", "03DTA0157L"},
	})

	result, err := svc.ImportRoster(context.Background(), buf)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Empty(t, result.Errors)
	require.Len(t, repo.created, 1)
	require.NotNil(t, repo.created[0].WorkCenterCode)
	assert.Equal(t, "03DTA0157L", *repo.created[0].WorkCenterCode)
}

func TestImportRoster_MissingRequiredColumns(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), discardLogger())

	// No RFC column anywhere.
	buf := buildRosterSheet(t, []string{"EMPLEADO_NO", "NOMBRE", "CURP"}, [][]string{
		{"1001", "ANA LOPEZ PEREZ", "LOPA800101HBSLRL09"},
	})

	_, err := svc.ImportRoster(context.Background(), buf)

	assert.ErrorIs(t, err, employee.ErrMissingRequiredColumns)
}

func TestImportRoster_EmptySheet(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), discardLogger())

	buf := buildRosterSheet(t, standardHeader, nil)

	_, err := svc.ImportRoster(context.Background(), buf)

	assert.ErrorIs(t, err, employee.ErrEmptySpreadsheet)
}

func TestImportRoster_BadRowsAreIsolated(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, discardLogger())

	buf := buildRosterSheet(t, standardHeader, [][]string{
		validRow("1001", "ANA LOPEZ PEREZ"),
		{"not-a-number", "PEDRO SOLIS", "SOLP900101HBSLDR03", "SOLP900101CC3"},
		{"1003", "", "GARM910101HBSRRN04", "GARM910101DD4"},
		{"1004", "MARIA GARCIA NUNEZ", "GARM910101HBSRRN04", "GARM910101DD4", "03DTA0156K", "CECYTE PLANTEL 156", "ADMINISTRATIVO"},
	})

	result, err := svc.ImportRoster(context.Background(), buf)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "fila 3")
	assert.Contains(t, result.Errors[1], "fila 4")
}

func TestRosterTemplate(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), discardLogger())

	buf, filename, err := svc.RosterTemplate()

	require.NoError(t, err)
	assert.Equal(t, "plantilla_empleados.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Contains(t, rows[0], "CURP")
	assert.Contains(t, rows[0], "EMPLEADO_NO")
}
