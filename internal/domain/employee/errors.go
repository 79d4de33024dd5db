package employee

import "errors"

var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrEmployeeNumberExists   = errors.New("employee number already exists")
	ErrCURPExists             = errors.New("CURP already registered")
	ErrRFCExists              = errors.New("RFC already registered")
	ErrInvalidEmployeeNumber  = errors.New("employee number must be a positive integer")
	ErrMissingRequiredColumns = errors.New("spreadsheet is missing required columns")
	ErrEmptySpreadsheet       = errors.New("spreadsheet must contain at least one data row")
)
