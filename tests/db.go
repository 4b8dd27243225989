package tests

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/DIMO-Network/shared/pkg/db"
	"github.com/karimi-wahid/landmark-user-sync/internal/db/migrations"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// TestContainer is a migrated postgres instance shared by every test in a package.
type TestContainer struct {
	container testcontainers.Container
	DB        *sql.DB
	Settings  db.Settings
	onceSetup sync.Once
	refs      atomic.Int64
}

var globalTestContainer TestContainer

// TeardownIfLastTest terminates the container once the last test holding a reference finishes.
func (tc *TestContainer) TeardownIfLastTest(t *testing.T) {
	tc.refs.Add(1)
	t.Cleanup(func() {
		refs := tc.refs.Add(-1)
		if refs != 0 {
			return
		}
		tc.Close()
		// allow a later test to start a fresh container
		globalTestContainer.onceSetup = sync.Once{}
	})
}

func (tc *TestContainer) Close() {
	_ = tc.container.Terminate(context.Background())
	_ = tc.DB.Close()
}

// SetupTestContainer starts postgres (once per package) and applies all migrations.
func SetupTestContainer(t *testing.T) *TestContainer {
	t.Helper()
	globalTestContainer.onceSetup.Do(func() {
		ctx := context.Background()
		var err error
		globalTestContainer.container, err = postgres.Run(ctx,
			"postgres:15",
			postgres.WithDatabase(migrations.SchemaName),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			postgres.BasicWaitStrategies(),
		)
		require.NoError(t, err)

		host, err := globalTestContainer.container.Host(ctx)
		require.NoError(t, err)
		port, err := globalTestContainer.container.MappedPort(ctx, "5432")
		require.NoError(t, err)

		globalTestContainer.Settings = db.Settings{
			Host:     host,
			Port:     port.Port(),
			User:     "postgres",
			Password: "postgres",
			Name:     migrations.SchemaName,
			SSLMode:  "disable",
		}

		globalTestContainer.DB, err = sql.Open("postgres", globalTestContainer.Settings.BuildConnectionString(true))
		require.NoError(t, err)

		err = migrations.RunGoose(ctx, []string{"up"}, globalTestContainer.Settings)
		require.NoError(t, err)
	})
	globalTestContainer.TeardownIfLastTest(t)
	return &globalTestContainer
}

// CountUsers returns how many rows exist for externalID.
func (tc *TestContainer) CountUsers(t *testing.T, externalID string) int {
	t.Helper()
	var count int
	err := tc.DB.QueryRowContext(context.Background(),
		"SELECT count(*) FROM "+migrations.SchemaName+".users WHERE external_id = $1", externalID).Scan(&count)
	require.NoError(t, err)
	return count
}
