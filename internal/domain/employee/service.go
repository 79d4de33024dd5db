package employee

import (
	"bytes"
	"context"
	"io"
)

// EmployeeService defines the roster surface: spreadsheet ingestion and
// read-only lookups. Employees are never created one by one here; the
// roster spreadsheet is the source of truth.
type EmployeeService interface {
	// ImportRoster ingests an xlsx roster. Column headers are matched
	// fuzzily against known variants; rows with missing identity fields
	// are reported in the result and skipped.
	ImportRoster(ctx context.Context, file io.Reader) (ImportRosterResult, error)

	// ListEmployees returns the roster, optionally filtered by work
	// center (exact code or name substring).
	ListEmployees(ctx context.Context, workCenter string) ([]EmployeeResponse, error)

	GetByNumber(ctx context.Context, employeeNumber int) (EmployeeResponse, error)

	// RosterTemplate builds the downloadable import template.
	RosterTemplate() (*bytes.Buffer, string, error)
}
