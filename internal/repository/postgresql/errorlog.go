package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/errorlog"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type errorLogRepository struct {
	db *database.DB
}

func NewErrorLogRepository(db *database.DB) errorlog.ErrorLogRepository {
	return &errorLogRepository{db: db}
}

const errorLogSelect = `
	SELECT l.id, l.error_message, l.error_type, l.error_timestamp, l.user_id, u.email
	FROM error_logs l
	LEFT JOIN users u ON u.id = l.user_id
`

func scanErrorLog(row pgx.Row) (errorlog.ErrorLog, error) {
	var l errorlog.ErrorLog
	err := row.Scan(&l.ID, &l.ErrorMessage, &l.ErrorType, &l.ErrorTimestamp, &l.UserID, &l.UserEmail)
	return l, err
}

// Create implements errorlog.ErrorLogRepository.
func (r *errorLogRepository) Create(ctx context.Context, log errorlog.ErrorLog) (errorlog.ErrorLog, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return errorlog.ErrorLog{}, err
	}

	query := `
		INSERT INTO error_logs (id, error_message, error_type, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, error_message, error_type, error_timestamp, user_id
	`

	var created errorlog.ErrorLog
	err = q.QueryRow(ctx, query, id.String(), log.ErrorMessage, log.ErrorType, log.UserID).Scan(
		&created.ID, &created.ErrorMessage, &created.ErrorType, &created.ErrorTimestamp, &created.UserID,
	)
	if err != nil {
		return errorlog.ErrorLog{}, fmt.Errorf("failed to create error log: %w", err)
	}
	return created, nil
}

// GetByID implements errorlog.ErrorLogRepository.
func (r *errorLogRepository) GetByID(ctx context.Context, id string) (errorlog.ErrorLog, error) {
	q := GetQuerier(ctx, r.db)

	l, err := scanErrorLog(q.QueryRow(ctx, errorLogSelect+` WHERE l.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorlog.ErrorLog{}, errorlog.ErrErrorLogNotFound
		}
		return errorlog.ErrorLog{}, fmt.Errorf("failed to get error log: %w", err)
	}
	return l, nil
}

// List implements errorlog.ErrorLogRepository.
func (r *errorLogRepository) List(ctx context.Context, filter errorlog.ListFilter) ([]errorlog.ErrorLog, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1
	if filter.ErrorType != nil && *filter.ErrorType != "" {
		baseWhere += fmt.Sprintf(" AND l.error_type = $%d", argIdx)
		args = append(args, *filter.ErrorType)
		argIdx++
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM error_logs l WHERE "+baseWhere, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count error logs: %w", err)
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY l.error_timestamp DESC LIMIT $%d OFFSET $%d`,
		errorLogSelect, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query error logs: %w", err)
	}
	defer rows.Close()

	var logs []errorlog.ErrorLog
	for rows.Next() {
		l, err := scanErrorLog(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan error log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
