package postgres

import (
    "context"
    "embed"
    "fmt"

    "github.com/jackc/pgx/v5/stdlib"
    "github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies the embedded goose migrations.
func (db *DB) Migrate(ctx context.Context) error {
    sqlDB := stdlib.OpenDBFromPool(db.Pool)
    defer sqlDB.Close()

    goose.SetBaseFS(migrations)
    if err := goose.SetDialect("postgres"); err != nil {
        return err
    }
    if err := goose.UpContext(ctx, sqlDB, "migrations"); err != nil {
        return fmt.Errorf("apply migrations: %w", err)
    }
    return nil
}
