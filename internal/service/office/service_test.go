package office

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/office"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPolicyRepo struct {
	policy *office.Policy
}

func (m *memPolicyRepo) Get(context.Context) (office.Policy, error) {
	if m.policy == nil {
		return office.Policy{}, office.ErrOfficePolicyNotFound
	}
	return *m.policy, nil
}

func (m *memPolicyRepo) Create(_ context.Context, p office.Policy) (office.Policy, error) {
	if m.policy != nil {
		return office.Policy{}, office.ErrOfficePolicyExists
	}
	p.ID = "policy-1"
	m.policy = &p
	return p, nil
}

func (m *memPolicyRepo) Update(_ context.Context, p office.Policy) (office.Policy, error) {
	if m.policy == nil {
		return office.Policy{}, office.ErrOfficePolicyNotFound
	}
	p.ID = m.policy.ID
	m.policy = &p
	return p, nil
}

func (m *memPolicyRepo) Delete(context.Context) error {
	if m.policy == nil {
		return office.ErrOfficePolicyNotFound
	}
	m.policy = nil
	return nil
}

func TestOfficeService_Lifecycle(t *testing.T) {
	repo := &memPolicyRepo{}
	svc := NewOfficeService(repo, "Asia/Jakarta")
	ctx := context.Background()

	_, err := svc.Get(ctx)
	assert.ErrorIs(t, err, office.ErrOfficePolicyNotFound)

	req := office.UpsertPolicyRequest{
		OfficeStartTime: "09:00", OfficeEndTime: "17:00", OfficeLocation: "Jakarta HQ", MonthlyRecapDay: 1,
	}
	created, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", created.Timezone)

	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, office.ErrOfficePolicyExists)

	req.Timezone = "Asia/Makassar"
	req.OfficeEndTime = "18:00"
	updated, err := svc.Update(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Asia/Makassar", updated.Timezone)
	assert.Equal(t, "18:00", updated.OfficeEndTime)

	require.NoError(t, svc.Delete(ctx))
	assert.ErrorIs(t, svc.Delete(ctx), office.ErrOfficePolicyNotFound)
}

func TestOfficeService_RejectsInvalidPolicy(t *testing.T) {
	svc := NewOfficeService(&memPolicyRepo{}, "Asia/Jakarta")

	_, err := svc.Create(context.Background(), office.UpsertPolicyRequest{
		OfficeStartTime: "17:00", OfficeEndTime: "09:00", OfficeLocation: "HQ", MonthlyRecapDay: 1,
	})
	assert.Error(t, err)
}
