package errorlog

import "context"

type ErrorLogRepository interface {
	Create(ctx context.Context, log ErrorLog) (ErrorLog, error)
	GetByID(ctx context.Context, id string) (ErrorLog, error)
	// List returns entries newest first.
	List(ctx context.Context, filter ListFilter) ([]ErrorLog, int64, error)
}
