package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/streak"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type streakRepository struct {
	db *database.DB
}

func NewStreakRepository(db *database.DB) streak.StreakRepository {
	return &streakRepository{db: db}
}

const streakColumns = `s.id, s.employee_id, s.current_streak, s.longest_streak, s.last_streak_date,
	s.reset_reason, s.last_reset_date, s.created_at, s.updated_at`

func scanStreak(row pgx.Row, withName bool) (streak.Streak, error) {
	var s streak.Streak
	dest := []any{
		&s.ID, &s.EmployeeID, &s.CurrentStreak, &s.LongestStreak, &s.LastStreakDate,
		&s.ResetReason, &s.LastResetDate, &s.CreatedAt, &s.UpdatedAt,
	}
	if withName {
		dest = append(dest, &s.EmployeeName)
	}
	err := row.Scan(dest...)
	return s, err
}

// GetByEmployeeID implements streak.StreakRepository.
func (r *streakRepository) GetByEmployeeID(ctx context.Context, employeeID string) (streak.Streak, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + streakColumns + `, e.full_name
		FROM streaks s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1
	`

	s, err := scanStreak(q.QueryRow(ctx, query, employeeID), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return streak.Streak{}, streak.ErrStreakNotFound
		}
		return streak.Streak{}, fmt.Errorf("failed to get streak: %w", err)
	}
	return s, nil
}

// GetForUpdate implements streak.StreakRepository.
func (r *streakRepository) GetForUpdate(ctx context.Context, employeeID string) (*streak.Streak, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + streakColumns + ` FROM streaks s WHERE s.employee_id = $1 FOR UPDATE`

	s, err := scanStreak(q.QueryRow(ctx, query, employeeID), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock streak: %w", err)
	}
	return &s, nil
}

// Upsert implements streak.StreakRepository.
func (r *streakRepository) Upsert(ctx context.Context, s streak.Streak) (streak.Streak, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return streak.Streak{}, err
	}

	query := `
		INSERT INTO streaks AS s (id, employee_id, current_streak, longest_streak, last_streak_date, reset_reason, last_reset_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id) DO UPDATE SET
			current_streak = EXCLUDED.current_streak,
			longest_streak = EXCLUDED.longest_streak,
			last_streak_date = EXCLUDED.last_streak_date,
			reset_reason = EXCLUDED.reset_reason,
			last_reset_date = EXCLUDED.last_reset_date,
			updated_at = NOW()
		RETURNING ` + streakColumns

	saved, err := scanStreak(q.QueryRow(ctx, query,
		id.String(), s.EmployeeID, s.CurrentStreak, s.LongestStreak, s.LastStreakDate, s.ResetReason, s.LastResetDate,
	), false)
	if err != nil {
		return streak.Streak{}, fmt.Errorf("failed to save streak: %w", err)
	}
	saved.EmployeeName = s.EmployeeName
	return saved, nil
}

// List implements streak.StreakRepository.
func (r *streakRepository) List(ctx context.Context) ([]streak.Streak, error) {
	query := `
		SELECT ` + streakColumns + `, e.full_name
		FROM streaks s
		JOIN employees e ON e.id = s.employee_id
		ORDER BY s.current_streak DESC, e.full_name ASC
	`
	return r.query(ctx, query)
}

// ListByRange implements streak.StreakRepository.
func (r *streakRepository) ListByRange(ctx context.Context, employeeID *string, start, end time.Time) ([]streak.Streak, error) {
	baseWhere := "s.last_streak_date >= $1 AND s.last_streak_date <= $2"
	args := []interface{}{start, end}
	if employeeID != nil && *employeeID != "" {
		baseWhere += " AND s.employee_id = $3"
		args = append(args, *employeeID)
	}

	query := fmt.Sprintf(`
		SELECT %s, e.full_name
		FROM streaks s
		JOIN employees e ON e.id = s.employee_id
		WHERE %s
		ORDER BY s.last_streak_date DESC, e.full_name ASC
	`, streakColumns, baseWhere)
	return r.query(ctx, query, args...)
}

func (r *streakRepository) query(ctx context.Context, query string, args ...interface{}) ([]streak.Streak, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query streaks: %w", err)
	}
	defer rows.Close()

	var streaks []streak.Streak
	for rows.Next() {
		s, err := scanStreak(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan streak: %w", err)
		}
		streaks = append(streaks, s)
	}
	return streaks, rows.Err()
}
