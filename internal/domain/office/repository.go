package office

import "context"

// PolicyRepository stores the singleton office policy.
type PolicyRepository interface {
	// Get returns ErrOfficePolicyNotFound when no policy is configured.
	Get(ctx context.Context) (Policy, error)
	// Create returns ErrOfficePolicyExists if a policy is already configured.
	Create(ctx context.Context, p Policy) (Policy, error)
	Update(ctx context.Context, p Policy) (Policy, error)
	Delete(ctx context.Context) error
}
