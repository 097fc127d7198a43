package recap

import "context"

type RecapService interface {
	// Generate recomputes every active employee's recap for the month.
	// Re-running it on unchanged data yields the same totals.
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)

	List(ctx context.Context, filter ListFilter) ([]RecapResponse, error)
}
