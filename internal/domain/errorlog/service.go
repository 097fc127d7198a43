package errorlog

import "context"

// Recorder persists an unexpected failure. It is best-effort: a failing
// write is logged and never returned to the caller.
type Recorder interface {
	Record(ctx context.Context, errType string, err error, userID *string)
}

type ErrorLogService interface {
	Recorder

	Create(ctx context.Context, req CreateErrorLogRequest) (ErrorLogResponse, error)
	GetByID(ctx context.Context, id string) (ErrorLogResponse, error)
	List(ctx context.Context, filter ListFilter) (ListErrorLogResponse, error)
}
