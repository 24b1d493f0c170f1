package postgresql_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/ems-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
)

var truncatedTables = []string{
	"documents",
	"salaries",
	"leave_applications",
	"attendance",
	"employees",
	"users",
}

// newTestDB connects to TEST_DATABASE_URL, applies migrations and empties
// every table. Tests are skipped when no database is configured.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.Migrate(ctx))

	_, err = db.Exec(ctx, "TRUNCATE TABLE "+strings.Join(truncatedTables, ", ")+" CASCADE")
	require.NoError(t, err)

	return db
}

// seedEmployee creates an employee account with its default profile.
func seedEmployee(t *testing.T, db *database.DB, email string) (user.User, employee.Employee) {
	t.Helper()
	ctx := context.Background()

	u, err := postgresql.NewUserRepository(db).Create(ctx, user.User{
		FirstName:    "Test",
		LastName:     strings.Split(email, "@")[0],
		Email:        email,
		PasswordHash: "hash",
		Role:         user.RoleEmployee,
	})
	require.NoError(t, err)

	profile, err := postgresql.NewEmployeeRepository(db).Create(ctx, employee.NewProfile(u.ID, "2024-01-15"))
	require.NoError(t, err)

	return u, profile
}
