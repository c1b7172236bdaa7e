//go:build integration

package testutil

import (
	"fmt"

	"github.com/Gunvolt24/storefront/internal/repo/postgres"
)

// ApplyMigrations — накатывает встроенные goose-миграции схемы магазина.
func ApplyMigrations(dsn string) error {
	if err := postgres.Migrate(dsn); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
