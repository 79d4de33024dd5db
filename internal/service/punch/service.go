package punch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/cecytebcs/attendance-backend-go/internal/domain/employee"
	"github.com/cecytebcs/attendance-backend-go/internal/domain/punch"
	"github.com/cecytebcs/attendance-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type PunchServiceImpl struct {
	punch.PunchRepository
	employee.EmployeeRepository
	logger *slog.Logger
}

func NewPunchService(
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	logger *slog.Logger,
) punch.PunchService {
	return &PunchServiceImpl{
		PunchRepository:    punchRepo,
		EmployeeRepository: employeeRepo,
		logger:             logger,
	}
}

// RegisterPunch implements punch.PunchService.
func (s *PunchServiceImpl) RegisterPunch(ctx context.Context, req punch.RegisterPunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByEmployeeNumber(ctx, req.EmployeeNumber); err != nil {
		return punch.PunchResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	timeOfDay, _ := validator.IsValidTimeOfDay(req.Time)

	exists, err := s.PunchRepository.ExistsAt(ctx, req.EmployeeNumber, date, timeOfDay)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to check for duplicate punch: %w", err)
	}
	if exists {
		return punch.PunchResponse{}, punch.ErrDuplicatePunch
	}

	created, err := s.PunchRepository.Create(ctx, punch.Punch{
		EmployeeNumber: req.EmployeeNumber,
		Date:           date,
		Time:           timeOfDay,
	})
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to register punch: %w", err)
	}

	return punch.MapToResponse(created), nil
}

// ImportPunchFile implements punch.PunchService. The dump format is one
// punch per line: employee number, date, time, separated by arbitrary
// whitespace. Anything after the third field is device metadata and is
// ignored. Blank lines are skipped silently; every other failure is
// recorded with its line number and ingestion continues.
func (s *PunchServiceImpl) ImportPunchFile(ctx context.Context, file io.Reader) (punch.ImportPunchesResult, error) {
	result := punch.ImportPunchesResult{
		BatchID: uuid.NewString(),
		Errors:  []string{},
	}

	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result.TotalLines++

		req, err := parsePunchLine(line)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("linea %d: %v", lineNumber, err))
			continue
		}

		if _, err := s.RegisterPunch(ctx, req); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("linea %d: %v", lineNumber, err))
			continue
		}
		result.Registered++
	}
	if err := scanner.Err(); err != nil {
		return punch.ImportPunchesResult{}, fmt.Errorf("failed to read punch file: %w", err)
	}

	s.logger.Info("punch file import finished",
		slog.String("batch_id", result.BatchID),
		slog.Int("total_lines", result.TotalLines),
		slog.Int("registered", result.Registered),
		slog.Int("errors", len(result.Errors)),
	)

	return result, nil
}

// ListPunches implements punch.PunchService.
func (s *PunchServiceImpl) ListPunches(ctx context.Context, filter punch.Filter) ([]punch.PunchResponse, error) {
	punches, err := s.PunchRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}

	responses := make([]punch.PunchResponse, 0, len(punches))
	for _, p := range punches {
		responses = append(responses, punch.MapToResponse(p))
	}
	return responses, nil
}

func parsePunchLine(line string) (punch.RegisterPunchRequest, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return punch.RegisterPunchRequest{}, fmt.Errorf("se esperaban al menos 3 campos, hay %d", len(fields))
	}

	employeeNumber, err := strconv.Atoi(fields[0])
	if err != nil || employeeNumber <= 0 {
		return punch.RegisterPunchRequest{}, employee.ErrInvalidEmployeeNumber
	}

	if _, err := time.Parse("2006-01-02", fields[1]); err != nil {
		return punch.RegisterPunchRequest{}, fmt.Errorf("fecha invalida: %s", fields[1])
	}
	if _, err := time.Parse("15:04:05", fields[2]); err != nil {
		return punch.RegisterPunchRequest{}, fmt.Errorf("hora invalida: %s", fields[2])
	}

	return punch.RegisterPunchRequest{
		EmployeeNumber: employeeNumber,
		Date:           fields[1],
		Time:           fields[2],
	}, nil
}
