package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userSelect = `
	SELECT u.id, u.email, u.password_hash, u.roles, u.created_at, u.updated_at, e.id
	FROM users u
	LEFT JOIN employees e ON e.user_id = u.id
`

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.getOne(ctx, userSelect+` WHERE LOWER(u.email) = LOWER($1)`, email)
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.getOne(ctx, userSelect+` WHERE u.id = $1`, id)
}

func (r *userRepositoryImpl) getOne(ctx context.Context, query string, arg string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	var u user.User
	var roles []string
	err := q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &roles, &u.CreatedAt, &u.UpdatedAt, &u.EmployeeID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	u.Roles = make([]user.Role, 0, len(roles))
	for _, role := range roles {
		u.Roles = append(u.Roles, user.Role(role))
	}
	return u, nil
}
