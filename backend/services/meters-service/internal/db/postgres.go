package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	libdb "meterbook/backend/libs/db"
)

//go:embed migrations/*.sql
var migrations embed.FS

// NewPostgres returns the shared DB pool.
func NewPostgres(dsn string, opts libdb.Options) (*sql.DB, error) {
	return libdb.NewPostgresDB(dsn, opts)
}

// Migrate applies the embedded schema files in name order. Each file is idempotent
// and runs in its own transaction.
func Migrate(ctx context.Context, sqlDB *sql.DB) ([]string, error) {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	applied := make([]string, 0, len(names))
	for _, name := range names {
		body, err := migrations.ReadFile(name)
		if err != nil {
			return applied, err
		}
		err = libdb.WithTx(ctx, sqlDB, func(tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, string(body))
			return err
		})
		if err != nil {
			return applied, fmt.Errorf("db: migrate %s: %w", name, err)
		}
		applied = append(applied, name)
	}
	return applied, nil
}
