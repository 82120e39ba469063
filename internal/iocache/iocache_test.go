package iocache

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/lmarsden/fullback/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTempSQLiteStore(t *testing.T) *RunStoreImpl {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runs.db")
	store, err := NewRunStore(schema.SQLiteBackend, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*RunStoreImpl)
}

func TestRunStoreLifecycle(t *testing.T) {
	store := newTempSQLiteStore(t)

	start := time.Now().Add(-time.Second)
	runID, err := store.BeginRun(start, map[string]any{"mode": "balanced", "clip": 3.0})
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	scoredAt := time.Now()
	players := []schema.PlayerResult{
		{
			Player: "A. Carrier", League: "Premier League",
			Age: 24, Minutes: 2700,
			BuildUp: 1.2, Creation: 0.8, Defending: 0.4,
			Bonus: 0.15, Overall: 1.1, Feasibility: 0.6,
			Flags: "Progressive; 1v1 risk",
		},
		{
			Player: "B. Stopper", League: "La Liga",
			Age: math.NaN(), Minutes: 1900,
			BuildUp: -0.5, Creation: -0.2, Defending: 1.4,
			Bonus: 0.05, Overall: 0.3, Feasibility: math.NaN(),
		},
	}
	for _, p := range players {
		require.NoError(t, store.RecordPlayerScore(runID, scoredAt, p))
	}

	require.NoError(t, store.EndRun(runID, time.Now(), len(players)))

	runs, err := store.GetRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].RunID)
	require.NotNil(t, runs[0].EndTime)
	require.NotNil(t, runs[0].RunDurationMs)
	assert.GreaterOrEqual(t, *runs[0].RunDurationMs, int32(0))
	assert.Equal(t, int32(2), runs[0].TotalPlayers)
	require.NotNil(t, runs[0].ConfigParams)
	assert.Contains(t, *runs[0].ConfigParams, `"mode":"balanced"`)

	scores, err := store.GetPlayerScores()
	require.NoError(t, err)
	require.Len(t, scores, 2)

	first := scores[0]
	assert.Equal(t, "A. Carrier", first.Player)
	assert.Equal(t, "Elite", first.Label)
	assert.InDelta(t, 1.1, first.Overall, 0.0001)
	assert.Equal(t, "Progressive; 1v1 risk", first.Flags)
	assert.WithinDuration(t, scoredAt, first.ScoredAt, time.Second)

	second := scores[1]
	assert.True(t, math.IsNaN(second.Age), "NULL scans back to the missing sentinel")
	assert.True(t, math.IsNaN(second.Feasibility))
	assert.Equal(t, "Below", second.Label)
}

func TestRunStoreStatus(t *testing.T) {
	store := newTempSQLiteStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, "sqlite", status.Backend)
	assert.Zero(t, status.TotalRuns)
	assert.Equal(t, int64(0), status.TableSizes[scoringRunsTable])

	start := time.Now()
	runID, err := store.BeginRun(start, nil)
	require.NoError(t, err)
	require.NoError(t, store.RecordPlayerScore(runID, start, schema.PlayerResult{Player: "A", League: "L"}))
	require.NoError(t, store.EndRun(runID, time.Now(), 1))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 1, status.TotalRuns)
	assert.Equal(t, runID, status.LastRunID)
	assert.Equal(t, 1, status.TotalPlayersScored)
	assert.Equal(t, int64(1), status.TableSizes[scoringRunsTable])
	assert.Equal(t, int64(1), status.TableSizes[playerScoresTable])
	assert.WithinDuration(t, start, status.LastRunTime, time.Second)
	assert.WithinDuration(t, start, status.OldestRunTime, time.Second)
}

func TestRunStoreClear(t *testing.T) {
	store := newTempSQLiteStore(t)

	runID, err := store.BeginRun(time.Now(), nil)
	require.NoError(t, err)
	require.NoError(t, store.RecordPlayerScore(runID, time.Now(), schema.PlayerResult{Player: "A", League: "L"}))

	require.NoError(t, store.Clear())

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Zero(t, status.TotalRuns)
	assert.Equal(t, int64(0), status.TableSizes[playerScoresTable])
}

func TestRunStoreNoneBackend(t *testing.T) {
	store, err := NewRunStore(schema.NoneBackend, "")
	require.NoError(t, err)

	runID, err := store.BeginRun(time.Now(), nil)
	require.NoError(t, err)
	assert.Zero(t, runID)

	require.NoError(t, store.RecordPlayerScore(0, time.Now(), schema.PlayerResult{}))
	require.NoError(t, store.EndRun(0, time.Now(), 0))
	require.NoError(t, store.Clear())

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)

	runs, err := store.GetRuns()
	require.NoError(t, err)
	assert.Nil(t, runs)

	require.NoError(t, store.Close())
}

func TestRunStoreUnsupportedBackend(t *testing.T) {
	_, err := NewRunStore(schema.DatabaseBackend("oracle"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}

func TestRunStorePersistsAcrossConnections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	store, err := NewRunStore(schema.SQLiteBackend, path)
	require.NoError(t, err)
	runID, err := store.BeginRun(time.Now(), nil)
	require.NoError(t, err)
	require.NoError(t, store.EndRun(runID, time.Now(), 0))
	require.NoError(t, store.Close())

	reopened, err := NewRunStore(schema.SQLiteBackend, path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	status, err := reopened.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 1, status.TotalRuns)
}

func TestValidateTableName(t *testing.T) {
	assert.NoError(t, validateTableName("fullback_scoring_runs"))
	assert.NoError(t, validateTableName("_internal"))
	assert.Error(t, validateTableName(""))
	assert.Error(t, validateTableName("runs; DROP TABLE players"))
	assert.Error(t, validateTableName("1runs"))
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, `"runs"`, quoteTableName("runs", schema.SQLiteBackend))
	assert.Equal(t, "`runs`", quoteTableName("runs", schema.MySQLBackend))
	assert.Equal(t, `"runs"`, quoteTableName("runs", schema.PostgreSQLBackend))
}

func TestNullFloatRoundTrip(t *testing.T) {
	assert.Nil(t, nullFloat(math.NaN()))
	assert.Equal(t, 1.5, nullFloat(1.5))

	assert.True(t, math.IsNaN(floatOrNaN(nil)))
	v := 2.5
	assert.Equal(t, 2.5, floatOrNaN(&v))
}

func TestFormatTime(t *testing.T) {
	now := time.Now()
	formatted := formatTime(now, schema.SQLiteBackend)
	s, ok := formatted.(string)
	require.True(t, ok)
	parsed, err := time.Parse(time.RFC3339Nano, s)
	require.NoError(t, err)
	assert.True(t, now.Equal(parsed))

	assert.Equal(t, now, formatTime(now, schema.PostgreSQLBackend))
}
