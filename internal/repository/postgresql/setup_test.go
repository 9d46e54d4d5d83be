package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdks-app/pdks-backend-go/internal/pkg/database"
)

var testDB *database.DB

// testInit connects to the integration database, or skips the test when
// TEST_DATABASE_URL is not set.
func testInit(t *testing.T) *database.DB {
	t.Helper()

	if testDB != nil {
		return testDB
	}

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping repository integration tests")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")
	testDB = db

	createTestSchema(t, context.Background())
	return testDB
}

func createTestSchema(t *testing.T, ctx context.Context) {
	t.Helper()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS personnel (
			id BIGSERIAL PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			department TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'personel',
			status TEXT NOT NULL DEFAULT 'aktif'
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id BIGSERIAL PRIMARY KEY,
			per_id BIGINT NOT NULL REFERENCES personnel(id),
			date DATE NOT NULL,
			checkin TIME,
			checkout TIME
		)`,
		`CREATE TABLE IF NOT EXISTS leave_requests (
			id BIGSERIAL PRIMARY KEY,
			per_id BIGINT NOT NULL REFERENCES personnel(id),
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			leave_type TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'beklemede',
			other_reason TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		_, err := testDB.Exec(ctx, stmt)
		require.NoError(t, err)
	}
}

func truncateTables(t *testing.T, ctx context.Context) {
	t.Helper()
	_, err := testDB.Exec(ctx, "TRUNCATE TABLE attendance, leave_requests, personnel RESTART IDENTITY CASCADE")
	require.NoError(t, err)
}

func createPerson(t *testing.T, ctx context.Context, firstName, lastName, department string) int64 {
	t.Helper()
	var id int64
	err := testDB.QueryRow(ctx, `
		INSERT INTO personnel (first_name, last_name, department, role, status)
		VALUES ($1, $2, $3, 'personel', 'aktif')
		RETURNING id
	`, firstName, lastName, department).Scan(&id)
	require.NoError(t, err)
	return id
}

func createAttendance(t *testing.T, ctx context.Context, perID int64, date, checkin, checkout string) {
	t.Helper()
	_, err := testDB.Exec(ctx, `
		INSERT INTO attendance (per_id, date, checkin, checkout)
		VALUES ($1, $2::date, NULLIF($3, '')::time, NULLIF($4, '')::time)
	`, perID, date, checkin, checkout)
	require.NoError(t, err)
}

func createLeave(t *testing.T, ctx context.Context, perID int64, startDate, endDate, leaveType, status string) {
	t.Helper()
	_, err := testDB.Exec(ctx, `
		INSERT INTO leave_requests (per_id, start_date, end_date, leave_type, status)
		VALUES ($1, $2::date, $3::date, $4, $5)
	`, perID, startDate, endDate, leaveType, status)
	require.NoError(t, err)
}
