package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestSelect = `
	SELECT lr.id, lr.employee_id, lr.manager_id, lr.leave_type, lr.start_date, lr.end_date,
		lr.leave_reason, lr.status, lr.created_at, lr.updated_at,
		e.full_name, m.full_name
	FROM leave_requests lr
	JOIN employees e ON e.id = lr.employee_id
	LEFT JOIN employees m ON m.id = lr.manager_id
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.ManagerID, &lr.LeaveType, &lr.StartDate, &lr.EndDate,
		&lr.Reason, &lr.Status, &lr.CreatedAt, &lr.UpdatedAt,
		&lr.EmployeeName, &lr.ManagerName,
	)
	return lr, err
}

func (r *leaveRequestRepositoryImpl) queryMany(ctx context.Context, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	query := `
		INSERT INTO leave_requests (id, employee_id, manager_id, leave_type, start_date, end_date, leave_reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := q.Exec(ctx, query, id.String(), req.EmployeeID, req.ManagerID, req.LeaveType,
		req.StartDate, req.EndDate, req.Reason, req.Status); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return r.GetByID(ctx, id.String())
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	lr, err := scanLeaveRequest(q.QueryRow(ctx, leaveRequestSelect+` WHERE lr.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return lr, nil
}

// HasOverlap implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) HasOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1 AND status <> $2
				AND start_date <= $4 AND end_date >= $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, leave.LeaveRequestStatusRejected, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overlapping leave: %w", err)
	}
	return exists, nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	return r.queryMany(ctx, leaveRequestSelect+` WHERE lr.employee_id = $1 ORDER BY lr.created_at DESC`, employeeID)
}

// ListByManager implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByManager(ctx context.Context, managerID string, status *leave.LeaveRequestStatus) ([]leave.LeaveRequest, error) {
	if status != nil {
		return r.queryMany(ctx, leaveRequestSelect+` WHERE lr.manager_id = $1 AND lr.status = $2 ORDER BY lr.created_at DESC`, managerID, *status)
	}
	return r.queryMany(ctx, leaveRequestSelect+` WHERE lr.manager_id = $1 ORDER BY lr.created_at DESC`, managerID)
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.LeaveRequestStatus) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE leave_requests SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

// HasApprovedLeaveOn implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) HasApprovedLeaveOn(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1 AND status = $2 AND start_date <= $3 AND end_date >= $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, leave.LeaveRequestStatusApproved, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check approved leave: %w", err)
	}
	return exists, nil
}
