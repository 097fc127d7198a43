package office

import "context"

type OfficeService interface {
	Get(ctx context.Context) (PolicyResponse, error)
	Create(ctx context.Context, req UpsertPolicyRequest) (PolicyResponse, error)
	Update(ctx context.Context, req UpsertPolicyRequest) (PolicyResponse, error)
	Delete(ctx context.Context) error
}
