package db

import (
	"errors"
	"os"
)

// ErrNoTestDatabase is returned by InitTestDB when TEST_DATABASE_URL is unset.
var ErrNoTestDatabase = errors.New("TEST_DATABASE_URL environment variable is not set")

// InitTestDB connects to TEST_DATABASE_URL, applies migrations and returns a Store on it.
func InitTestDB(migrationsPath string) (Store, error) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		return nil, ErrNoTestDatabase
	}

	if err := Init(dbURL); err != nil {
		return nil, err
	}

	if err := RunMigrations(migrationsPath); err != nil {
		return nil, err
	}

	return NewStore(DB), nil
}
