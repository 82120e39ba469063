//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestFullbackWithMySQL tests the fullback CLI with a MySQL run store.
func TestFullbackWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "fullback",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/fullback?parseTime=true", host, port.Port())

	// Set environment variables
	t.Setenv("FULLBACK_STORE_BACKEND", "mysql")
	t.Setenv("FULLBACK_STORE_DB_CONNECT", connStr)

	runStoreScenario(t)
}

// TestFullbackWithPostgres tests the fullback CLI with a PostgreSQL run store.
func TestFullbackWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	// Set environment variables
	t.Setenv("FULLBACK_STORE_BACKEND", "postgresql")
	t.Setenv("FULLBACK_STORE_DB_CONNECT", connStr)

	runStoreScenario(t)
}

// runStoreScenario exercises the run store through the CLI: clear, score,
// then verify status reports the recorded run.
func runStoreScenario(t *testing.T) {
	t.Helper()

	dataset, err := os.Getwd()
	require.NoError(t, err)
	dataset += "/testdata/scouting.csv"

	// Start from a clean store
	_, err = runFullbackCommand(t, "store", "clear")
	require.NoError(t, err)

	// Score the fixture dataset, recording the run
	out, err := runFullbackCommand(t, "shortlist", dataset, "--limit", "5")
	require.NoError(t, err)
	require.Contains(t, out, "Showing top")

	// Status should report one recorded run
	out, err = runFullbackCommand(t, "store", "status")
	require.NoError(t, err)
	require.Contains(t, out, "Total Runs: 1")
	require.Contains(t, out, "fullback_player_scores: 6 rows")

	// A second scoring command appends another run
	_, err = runFullbackCommand(t, "feasibility", dataset, "--limit", "3")
	require.NoError(t, err)

	out, err = runFullbackCommand(t, "store", "status")
	require.NoError(t, err)
	require.Contains(t, out, "Total Runs: 2")
}
