package recap

import "context"

type RecapRepository interface {
	// Upsert overwrites the totals keyed by (employee_id, month, year).
	Upsert(ctx context.Context, r Recap) (Recap, error)

	// List returns rows inside the filter's period range, ordered by
	// period then employee name.
	List(ctx context.Context, filter ListFilter) ([]Recap, error)
}
