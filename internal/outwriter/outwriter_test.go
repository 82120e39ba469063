package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/lmarsden/fullback/internal/contract"
	"github.com/lmarsden/fullback/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlayers() []schema.EnrichedPlayerResult {
	return schema.EnrichPlayers([]schema.PlayerResult{
		{
			Player: "A. Carrier", League: "Premier League",
			Age: 24, Minutes: 2700,
			BuildUp: 1.2, Creation: 0.8, Defending: 0.4,
			Bonus: 0.15, Overall: 1.1, Feasibility: 0.6,
			Flags: "Progressive; 1v1 risk", Mode: schema.BalancedMode,
		},
		{
			Player: "B. Stopper", League: "La Liga",
			Age: math.NaN(), Minutes: 1900,
			BuildUp: -0.5, Creation: -0.2, Defending: 1.4,
			Bonus: 0.05, Overall: 0.3, Feasibility: 0.8,
			Mode: schema.BalancedMode,
		},
	})
}

func TestCreateFormatter(t *testing.T) {
	fmtFloat := createFormatter(2)
	assert.Equal(t, "1.23", fmtFloat(1.2345))
	assert.Equal(t, "", fmtFloat(math.NaN()), "missing renders empty")

	assert.Equal(t, "1", createFormatter(0)(1.2345))
}

func TestFinitePtr(t *testing.T) {
	require.NotNil(t, finitePtr(0.5))
	assert.Equal(t, 0.5, *finitePtr(0.5))
	assert.Nil(t, finitePtr(math.NaN()))
}

func TestWriteCSVResultsForPlayers(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVResultsForPlayers(&buf, samplePlayers(), createFormatter(2))
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus two players")

	assert.Equal(t, "rank", records[0][0])
	assert.Equal(t, []string{
		"1", "A. Carrier", "Premier League",
		"24.00", "2700.00",
		"1.20", "0.80", "0.40", "0.15", "1.10", "0.60",
		"Elite", "Progressive; 1v1 risk", "balanced",
	}, records[1])
	assert.Equal(t, "", records[2][3], "missing age renders empty")
	assert.Equal(t, "Below", records[2][11])
}

func TestWriteJSONResultsForPlayers(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSONResultsForPlayers(&buf, samplePlayers())
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, float64(1), decoded[0]["rank"])
	assert.Equal(t, "Elite", decoded[0]["label"])
	assert.InDelta(t, 1.1, decoded[0]["overall"].(float64), 0.0001)
	assert.Nil(t, decoded[1]["age"], "NaN serializes as null")
	assert.NotContains(t, decoded[1], "flags", "empty flags omitted")
}

func TestWritePlayerTable(t *testing.T) {
	cfg := &contract.Config{
		Mode:         schema.BalancedMode,
		Precision:    2,
		Width:        120,
		StoreBackend: schema.SQLiteBackend,
	}

	var buf bytes.Buffer
	err := writePlayerTable(samplePlayers(), cfg, createFormatter(2), 50*time.Millisecond,
		"Showing top %d players by overall score (mode: %s)\n", &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "A. Carrier")
	assert.Contains(t, out, "Elite")
	assert.Contains(t, out, "Showing top 2 players by overall score (mode: balanced)")
	assert.Contains(t, out, "Run store backend: sqlite")
	assert.NotContains(t, out, "Feas", "feasibility column hidden by default")
}

func TestWritePlayerTableDetailAndExplain(t *testing.T) {
	cfg := &contract.Config{
		Mode:            schema.BalancedMode,
		Precision:       2,
		Width:           200,
		Detail:          true,
		Explain:         true,
		ShowFeasibility: true,
		StoreBackend:    schema.NoneBackend,
	}

	var buf bytes.Buffer
	err := writePlayerTable(samplePlayers(), cfg, createFormatter(2), time.Millisecond,
		"Showing top %d players by overall score (mode: %s)\n", &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "BUILDUP")
	assert.Contains(t, out, "FEAS")
	assert.Contains(t, out, "Progressive; 1v1 risk")
}

func TestGetMaxTableNameWidth(t *testing.T) {
	tests := []struct {
		name string
		cfg  contract.Config
		want int
	}{
		{"narrow floor", contract.Config{Width: 40}, 12},
		{"plain table", contract.Config{Width: 80}, 30},
		{"wide cap", contract.Config{Width: 300}, 40},
		{"detail eats width", contract.Config{Width: 120, Detail: true}, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetMaxTableNameWidth(&tc.cfg))
		})
	}
}

func TestFormatWeights(t *testing.T) {
	got := formatWeights(map[string]float64{
		"defending": 0.35,
		"build_up":  0.35,
		"creation":  0.30,
	})
	assert.Equal(t, "0.35*build_up + 0.30*creation + 0.35*defending", got)

	assert.Equal(t, "", formatWeights(map[string]float64{"creation": 0}),
		"zero weights are omitted")
}

func TestBuildMetricsRenderModel(t *testing.T) {
	cfg := &contract.Config{
		PillarMetrics: schema.PillarMetrics,
		Bonus:         schema.DefaultBonusParams(),
	}

	model := buildMetricsRenderModel(nil, cfg)

	require.Len(t, model.Modes, 3)
	assert.Equal(t, "balanced", model.Modes[0].Name)
	assert.Contains(t, model.Modes[0].Formula, "build_up")
	require.Len(t, model.Pillars, 3)
	assert.Contains(t, model.BonusNote, "age 20-27")
}

func TestWriteCSVMetrics(t *testing.T) {
	cfg := &contract.Config{
		PillarMetrics: schema.PillarMetrics,
		Bonus:         schema.DefaultBonusParams(),
	}
	model := buildMetricsRenderModel(nil, cfg)

	var buf bytes.Buffer
	require.NoError(t, writeCSVMetrics(&buf, model))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 7, "header, three modes, three pillars")
	assert.Equal(t, "pillar", records[4][1])
	assert.True(t, strings.Contains(records[4][2], "|"), "pillar metrics are pipe-joined")
}

func TestPrintMetricsText(t *testing.T) {
	cfg := &contract.Config{
		PillarMetrics: schema.PillarMetrics,
		Bonus:         schema.DefaultBonusParams(),
	}
	model := buildMetricsRenderModel(nil, cfg)

	var buf bytes.Buffer
	require.NoError(t, printMetricsText(&buf, model))

	out := buf.String()
	assert.Contains(t, out, "Fullback Scoring Modes")
	assert.Contains(t, out, "BALANCED")
	assert.Contains(t, out, "Pillar build_up")
	assert.Contains(t, out, "Bonus: +0.10")
}
