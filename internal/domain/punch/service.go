package punch

import (
	"context"
	"io"
)

type PunchService interface {
	// RegisterPunch stores a single punch. The employee must exist and
	// the exact (employee, date, time) triple must not already be stored.
	RegisterPunch(ctx context.Context, req RegisterPunchRequest) (PunchResponse, error)

	// ImportPunchFile ingests a raw device dump: one punch per line,
	// whitespace-separated fields (employee number, date, time, then
	// device columns that are ignored). Line failures are isolated.
	ImportPunchFile(ctx context.Context, file io.Reader) (ImportPunchesResult, error)

	ListPunches(ctx context.Context, filter Filter) ([]PunchResponse, error)
}
