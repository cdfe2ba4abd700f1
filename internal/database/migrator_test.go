package database

import (
	"os"
	"testing"

	"retail-analytics/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMigrationRunner(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, config.DriverSQLite)

	assert.NotNil(t, runner)
	assert.Equal(t, db, runner.db)
	assert.Equal(t, config.DriverSQLite, runner.driver)
	assert.Equal(t, migrationsPath, runner.migrationsPath)
}

func TestRunMigrations_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := &MigrationRunner{
		db:             db,
		driver:         config.DriverSQLite,
		migrationsPath: "/nonexistent/path/to/migrations",
	}

	// A missing migrations directory is skipped, not an error.
	assert.NoError(t, runner.RunMigrations())
}

func TestGetMigrationStatus_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := &MigrationRunner{
		db:             db,
		driver:         config.DriverSQLite,
		migrationsPath: "/nonexistent/path/to/migrations",
	}

	_, _, err = runner.GetMigrationStatus()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations directory not found")
}

func TestRunMigrationsIfEnabled_Disabled(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	original := os.Getenv("AUTO_MIGRATE")
	os.Unsetenv("AUTO_MIGRATE")
	defer func() {
		if original != "" {
			os.Setenv("AUTO_MIGRATE", original)
		}
	}()

	// No expectations set: the runner must not touch the store.
	assert.NoError(t, RunMigrationsIfEnabled(db, config.DriverSQLite))
	assert.NoError(t, mock.ExpectationsWereMet())
}
