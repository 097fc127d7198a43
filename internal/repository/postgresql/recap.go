package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/recap"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type recapRepository struct {
	db *database.DB
}

func NewRecapRepository(db *database.DB) recap.RecapRepository {
	return &recapRepository{db: db}
}

const recapColumns = `r.id, r.employee_id, r.month, r.year, r.total_days_present, r.total_days_absent,
	r.total_days_late, r.total_work_hours, r.created_at, r.updated_at`

func scanRecap(row pgx.Row, withName bool) (recap.Recap, error) {
	var rc recap.Recap
	dest := []any{
		&rc.ID, &rc.EmployeeID, &rc.Month, &rc.Year, &rc.TotalDaysPresent, &rc.TotalDaysAbsent,
		&rc.TotalDaysLate, &rc.TotalWorkHours, &rc.CreatedAt, &rc.UpdatedAt,
	}
	if withName {
		dest = append(dest, &rc.EmployeeName)
	}
	err := row.Scan(dest...)
	return rc, err
}

// Upsert implements recap.RecapRepository.
func (r *recapRepository) Upsert(ctx context.Context, rc recap.Recap) (recap.Recap, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return recap.Recap{}, err
	}

	query := `
		INSERT INTO attendance_recaps AS r (id, employee_id, month, year, total_days_present, total_days_absent, total_days_late, total_work_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (employee_id, month, year) DO UPDATE SET
			total_days_present = EXCLUDED.total_days_present,
			total_days_absent = EXCLUDED.total_days_absent,
			total_days_late = EXCLUDED.total_days_late,
			total_work_hours = EXCLUDED.total_work_hours,
			updated_at = NOW()
		RETURNING ` + recapColumns

	saved, err := scanRecap(q.QueryRow(ctx, query,
		id.String(), rc.EmployeeID, rc.Month, rc.Year,
		rc.TotalDaysPresent, rc.TotalDaysAbsent, rc.TotalDaysLate, rc.TotalWorkHours,
	), false)
	if err != nil {
		return recap.Recap{}, fmt.Errorf("failed to save recap for employee %s: %w", rc.EmployeeID, err)
	}
	return saved, nil
}

// List implements recap.RecapRepository.
func (r *recapRepository) List(ctx context.Context, filter recap.ListFilter) ([]recap.Recap, error) {
	q := GetQuerier(ctx, r.db)

	// Periods compare as year*12+month so ranges can cross year boundaries.
	baseWhere := "(r.year * 12 + r.month) BETWEEN $1 AND $2"
	args := []interface{}{filter.FromYear*12 + filter.FromMonth, filter.ToYear*12 + filter.ToMonth}
	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += " AND r.employee_id = $3"
		args = append(args, *filter.EmployeeID)
	}

	query := fmt.Sprintf(`
		SELECT %s, e.full_name
		FROM attendance_recaps r
		JOIN employees e ON e.id = r.employee_id
		WHERE %s
		ORDER BY r.year ASC, r.month ASC, e.full_name ASC
	`, recapColumns, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recaps: %w", err)
	}
	defer rows.Close()

	var recaps []recap.Recap
	for rows.Next() {
		rc, err := scanRecap(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recap: %w", err)
		}
		recaps = append(recaps, rc)
	}
	return recaps, rows.Err()
}
