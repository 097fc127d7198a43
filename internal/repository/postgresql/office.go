package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type officePolicyRepository struct {
	db *database.DB
}

func NewOfficePolicyRepository(db *database.DB) office.PolicyRepository {
	return &officePolicyRepository{db: db}
}

const officePolicyColumns = `id, office_start_time, office_end_time, office_location, monthly_recap_day, timezone, created_at, updated_at`

func scanPolicy(row pgx.Row) (office.Policy, error) {
	var p office.Policy
	err := row.Scan(&p.ID, &p.StartTime, &p.EndTime, &p.Location, &p.MonthlyRecapDay, &p.Timezone, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// Get implements office.PolicyRepository.
func (r *officePolicyRepository) Get(ctx context.Context) (office.Policy, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPolicy(q.QueryRow(ctx, `SELECT `+officePolicyColumns+` FROM office_settings LIMIT 1`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return office.Policy{}, office.ErrOfficePolicyNotFound
		}
		return office.Policy{}, fmt.Errorf("failed to get office settings: %w", err)
	}
	return p, nil
}

// Create implements office.PolicyRepository.
func (r *officePolicyRepository) Create(ctx context.Context, p office.Policy) (office.Policy, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return office.Policy{}, err
	}

	query := `
		INSERT INTO office_settings (id, office_start_time, office_end_time, office_location, monthly_recap_day, timezone)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + officePolicyColumns

	created, err := scanPolicy(q.QueryRow(ctx, query, id.String(), p.StartTime, p.EndTime, p.Location, p.MonthlyRecapDay, p.Timezone))
	if err != nil {
		if isUniqueViolation(err) {
			return office.Policy{}, office.ErrOfficePolicyExists
		}
		return office.Policy{}, fmt.Errorf("failed to create office settings: %w", err)
	}
	return created, nil
}

// Update implements office.PolicyRepository.
func (r *officePolicyRepository) Update(ctx context.Context, p office.Policy) (office.Policy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE office_settings
		SET office_start_time = $1, office_end_time = $2, office_location = $3,
			monthly_recap_day = $4, timezone = $5, updated_at = NOW()
		RETURNING ` + officePolicyColumns

	updated, err := scanPolicy(q.QueryRow(ctx, query, p.StartTime, p.EndTime, p.Location, p.MonthlyRecapDay, p.Timezone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return office.Policy{}, office.ErrOfficePolicyNotFound
		}
		return office.Policy{}, fmt.Errorf("failed to update office settings: %w", err)
	}
	return updated, nil
}

// Delete implements office.PolicyRepository.
func (r *officePolicyRepository) Delete(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM office_settings`)
	if err != nil {
		return fmt.Errorf("failed to delete office settings: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return office.ErrOfficePolicyNotFound
	}
	return nil
}
