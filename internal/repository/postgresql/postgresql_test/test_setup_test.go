package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestDatabaseSetup wraps a migrated test database.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL and applies the schema.
// Tests are skipped when the variable is unset.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(context.Background(), dsn, database.PoolOptions{MaxConns: 10})
	require.NoError(t, err, "failed to connect to test database")

	require.NoError(t, postgresql.Migrate(context.Background(), db))

	setup := &TestDatabaseSetup{DB: db}
	require.NoError(t, setup.TruncateAllTables(context.Background()))
	t.Cleanup(setup.Close)
	return setup
}

// TruncateAllTables removes all rows from every application table.
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := t.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"error_logs",
		"leave_requests",
		"attendance_recaps",
		"streaks",
		"attendances",
		"office_settings",
		"employees",
		"users",
	}

	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

// SeedEmployee inserts a user and its employee row and returns
// (userID, employeeID).
func (t *TestDatabaseSetup) SeedEmployee(tb testing.TB, name string, managerID *string) (string, string) {
	tb.Helper()
	ctx := context.Background()

	userID := uuid.Must(uuid.NewV7()).String()
	employeeID := uuid.Must(uuid.NewV7()).String()

	_, err := t.DB.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, roles) VALUES ($1, $2, $3, $4)`,
		userID, name+"@example.com", "hash", []string{"employee"},
	)
	require.NoError(tb, err)

	_, err = t.DB.Exec(ctx,
		`INSERT INTO employees (id, user_id, manager_id, full_name) VALUES ($1, $2, $3, $4)`,
		employeeID, userID, managerID, name,
	)
	require.NoError(tb, err)

	return userID, employeeID
}

// Close closes the database pool.
func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}
