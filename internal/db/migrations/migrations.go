package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/DIMO-Network/shared/pkg/db"
	_ "github.com/lib/pq" // postgres driver
	"github.com/pressly/goose/v3"
)

// SchemaName is the postgres schema that holds the synchronized users.
const SchemaName = "user_sync"

//go:embed *.sql
var baseFS embed.FS

// goose keeps its migrations and FS in package globals.
var migrationLock sync.Mutex

// RunGoose runs a goose command against the database described by settings.
// gooseArgs holds the command followed by its arguments, eg []string{"up", "-v"}.
func RunGoose(ctx context.Context, gooseArgs []string, settings db.Settings) (err error) {
	if len(gooseArgs) == 0 {
		return errors.New("goose command not provided")
	}
	conn, err := openDatabase(ctx, settings)
	if err != nil {
		return fmt.Errorf("failed to open migration database: %w", err)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close migration database: %w", closeErr)
		}
	}()

	migrationLock.Lock()
	defer migrationLock.Unlock()

	goose.SetBaseFS(baseFS)
	goose.ResetGlobalMigrations()
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	goose.SetTableName(SchemaName + ".migrations")

	if err := goose.RunContext(ctx, gooseArgs[0], conn, ".", gooseArgs[1:]...); err != nil {
		return fmt.Errorf("failed to run goose %s: %w", gooseArgs[0], err)
	}
	return nil
}

// openDatabase connects to postgres and makes sure SchemaName exists.
func openDatabase(ctx context.Context, settings db.Settings) (*sql.DB, error) {
	conn, err := sql.Open("postgres", settings.BuildConnectionString(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}
	if _, err := conn.ExecContext(ctx, "CREATE SCHEMA IF NOT EXISTS "+SchemaName+";"); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("could not create schema: %w", err)
	}
	return conn, nil
}
