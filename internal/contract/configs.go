package contract

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/lmarsden/fullback/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit    = 25
	MaxResultLimit        = 1000
	DefaultPrecision      = 2
	DefaultCheckThreshold = 0.5
	DefaultMinCandidates  = 3
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig populates profiling settings from the flag value.
func ProcessProfilingConfig(profile *ProfileConfig, prefix string) error {
	profile.Enabled = prefix != ""
	profile.Prefix = prefix
	return nil
}

// PillarWeightsRaw holds custom pillar weights for a single scoring mode.
// Use float64 pointers so an omitted field keeps its default.
type PillarWeightsRaw struct {
	BuildUp   *float64 `mapstructure:"build_up"`
	Creation  *float64 `mapstructure:"creation"`
	Defending *float64 `mapstructure:"defending"`
}

// WeightsRawInput holds all custom scoring definitions from the YAML config file.
type WeightsRawInput struct {
	Balanced    *PillarWeightsRaw `mapstructure:"balanced"`
	Progressive *PillarWeightsRaw `mapstructure:"progressive"`
	Defensive   *PillarWeightsRaw `mapstructure:"defensive"`
}

// BonusRawInput holds bonus parameter overrides from the YAML config file.
type BonusRawInput struct {
	AgeColumn    *string  `mapstructure:"age_column"`
	AgeMin       *float64 `mapstructure:"age_min"`
	AgeMax       *float64 `mapstructure:"age_max"`
	MinMinutes   *float64 `mapstructure:"min_minutes"`
	AgeBonus     *float64 `mapstructure:"age_bonus"`
	MinutesBonus *float64 `mapstructure:"minutes_bonus"`
}

// FeasibilityRawInput holds feasibility overrides from the YAML config file.
type FeasibilityRawInput struct {
	ValueColumn    *string  `mapstructure:"value_column"`
	ContractColumn *string  `mapstructure:"contract_column"`
	GBEColumn      *string  `mapstructure:"gbe_column"`
	ValueWeight    *float64 `mapstructure:"value_weight"`
	ContractWeight *float64 `mapstructure:"contract_weight"`
	GBEWeight      *float64 `mapstructure:"gbe_weight"`
}

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	DatasetPathStr string // Positional argument, set outside Viper

	ModeStr        string  `mapstructure:"mode"`
	OutputStr      string  `mapstructure:"output"`
	OutputFile     string  `mapstructure:"output-file"`
	ResultLimit    int     `mapstructure:"limit"`
	Precision      int     `mapstructure:"precision"`
	Width          int     `mapstructure:"width"`
	ColorStr       string  `mapstructure:"color"`
	Detail         bool    `mapstructure:"detail"`
	Explain        bool    `mapstructure:"explain"`
	Feasibility    bool    `mapstructure:"feasibility"`
	GroupColumn    string  `mapstructure:"group-column"`
	MinutesColumn  string  `mapstructure:"minutes-column"`
	Clip           float64 `mapstructure:"clip"`
	StoreBackend   string  `mapstructure:"store-backend"`
	StoreDBConnect string  `mapstructure:"store-db-connect"`

	CheckThreshold float64 `mapstructure:"threshold"`
	MinCandidates  int     `mapstructure:"min-candidates"`

	Weights          *WeightsRawInput     `mapstructure:"weights"`
	Bonus            *BonusRawInput       `mapstructure:"bonus"`
	FeasibilityInput *FeasibilityRawInput `mapstructure:"feasibility_config"`
}

// Config holds the runtime configuration for a scoring run.
// This struct remains the "final, validated" config.
type Config struct {
	DatasetPath string
	Mode        schema.ScoringMode
	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	Detail          bool // Print per-player pillar columns
	Explain         bool // Print profile flags column
	ShowFeasibility bool // Print feasibility column

	GroupColumn   string  // Peer group column for standardization
	MinutesColumn string  // Minutes-played column
	Clip          float64 // Z-score clip bound

	// PillarMetrics maps each pillar to its metric columns.
	PillarMetrics map[schema.PillarKey][]string

	// ComputedWeights is the final pillar weight map for each mode,
	// computed from defaults + custom overrides.
	ComputedWeights map[schema.ScoringMode]map[schema.PillarKey]float64

	Bonus       schema.BonusParams
	Feasibility schema.FeasibilityParams

	CheckThreshold float64 // Overall-score gate for the check command
	MinCandidates  int     // Minimum players clearing the gate

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored labels in table output
}

// ModeWeights returns the computed pillar weights for the active mode.
func (c *Config) ModeWeights() map[schema.PillarKey]float64 {
	if w, ok := c.ComputedWeights[c.Mode]; ok {
		return w
	}
	return schema.GetDefaultWeights(c.Mode)
}

// Clone returns a deep copy of the config, so per-request overrides never
// leak into the base configuration.
func (c *Config) Clone() *Config {
	clone := *c

	clone.PillarMetrics = make(map[schema.PillarKey][]string, len(c.PillarMetrics))
	for k, v := range c.PillarMetrics {
		clone.PillarMetrics[k] = append([]string(nil), v...)
	}

	clone.ComputedWeights = make(map[schema.ScoringMode]map[schema.PillarKey]float64, len(c.ComputedWeights))
	for mode, weights := range c.ComputedWeights {
		clone.ComputedWeights[mode] = maps.Clone(weights)
	}

	clone.Feasibility.Weights = maps.Clone(c.Feasibility.Weights)
	return &clone
}

// ProcessAndValidate converts raw input into the final validated Config.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.DatasetPath = input.DatasetPathStr

	mode := schema.ScoringMode(strings.ToLower(input.ModeStr))
	if _, ok := schema.ValidScoringModes[mode]; !ok {
		return fmt.Errorf("invalid mode %q (expected balanced, progressive or defensive)", input.ModeStr)
	}
	cfg.Mode = mode

	output := schema.OutputMode(strings.ToLower(input.OutputStr))
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output %q (expected text, csv, json or parquet)", input.OutputStr)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	if input.ResultLimit <= 0 || input.ResultLimit > MaxResultLimit {
		return fmt.Errorf("limit must be between 1 and %d", MaxResultLimit)
	}
	cfg.ResultLimit = input.ResultLimit

	if input.Precision < 0 || input.Precision > 10 {
		return fmt.Errorf("precision must be between 0 and 10")
	}
	cfg.Precision = input.Precision
	cfg.Width = input.Width

	useColors, err := ParseBoolString(input.ColorStr)
	if err != nil {
		return fmt.Errorf("invalid color value: %w", err)
	}
	cfg.UseColors = useColors

	cfg.Detail = input.Detail
	cfg.Explain = input.Explain
	cfg.ShowFeasibility = input.Feasibility

	cfg.GroupColumn = input.GroupColumn
	if cfg.GroupColumn == "" {
		cfg.GroupColumn = schema.LeagueColumn
	}
	cfg.MinutesColumn = input.MinutesColumn
	if cfg.MinutesColumn == "" {
		cfg.MinutesColumn = schema.MinutesColumn
	}
	cfg.Clip = input.Clip
	if cfg.Clip <= 0 {
		cfg.Clip = schema.DefaultClip
	}

	cfg.PillarMetrics = make(map[schema.PillarKey][]string, len(schema.PillarMetrics))
	for k, v := range schema.PillarMetrics {
		cfg.PillarMetrics[k] = append([]string(nil), v...)
	}

	cfg.ComputedWeights = computeWeights(input.Weights)
	cfg.Bonus = processBonus(input.Bonus)
	cfg.Bonus.MinutesColumn = cfg.MinutesColumn
	cfg.Feasibility = processFeasibility(input.FeasibilityInput)

	cfg.CheckThreshold = input.CheckThreshold
	cfg.MinCandidates = input.MinCandidates
	if cfg.MinCandidates <= 0 {
		cfg.MinCandidates = DefaultMinCandidates
	}

	backend := schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if backend == "" {
		backend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidRunStoreBackends[backend]; !ok {
		return fmt.Errorf("invalid store backend %q (expected sqlite, mysql, postgresql or none)", input.StoreBackend)
	}
	cfg.StoreBackend = backend
	cfg.StoreDBConnect = input.StoreDBConnect

	return nil
}

// ValidateDatabaseConnectionString validates the connection string format
// for the given backend.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") && !strings.Contains(connStr, "postgres://") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter or use URL form")
		}
	}
	return nil
}

// computeWeights merges custom per-mode pillar overrides over the defaults.
func computeWeights(raw *WeightsRawInput) map[schema.ScoringMode]map[schema.PillarKey]float64 {
	computed := make(map[schema.ScoringMode]map[schema.PillarKey]float64, len(schema.AllScoringModes))
	for _, mode := range schema.AllScoringModes {
		computed[mode] = schema.GetDefaultWeights(mode)
	}
	if raw == nil {
		return computed
	}

	overrides := map[schema.ScoringMode]*PillarWeightsRaw{
		schema.BalancedMode:    raw.Balanced,
		schema.ProgressiveMode: raw.Progressive,
		schema.DefensiveMode:   raw.Defensive,
	}
	for mode, o := range overrides {
		if o == nil {
			continue
		}
		if o.BuildUp != nil {
			computed[mode][schema.BuildUpPillar] = *o.BuildUp
		}
		if o.Creation != nil {
			computed[mode][schema.CreationPillar] = *o.Creation
		}
		if o.Defending != nil {
			computed[mode][schema.DefendingPillar] = *o.Defending
		}
	}
	return computed
}

// processBonus merges bonus overrides over the defaults.
func processBonus(raw *BonusRawInput) schema.BonusParams {
	params := schema.DefaultBonusParams()
	if raw == nil {
		return params
	}
	if raw.AgeColumn != nil {
		params.AgeColumn = *raw.AgeColumn
	}
	if raw.AgeMin != nil {
		params.AgeMin = *raw.AgeMin
	}
	if raw.AgeMax != nil {
		params.AgeMax = *raw.AgeMax
	}
	if raw.MinMinutes != nil {
		params.MinMinutes = *raw.MinMinutes
	}
	if raw.AgeBonus != nil {
		params.AgeBonus = *raw.AgeBonus
	}
	if raw.MinutesBonus != nil {
		params.MinutesBonus = *raw.MinutesBonus
	}
	return params
}

// processFeasibility merges feasibility overrides over the defaults.
func processFeasibility(raw *FeasibilityRawInput) schema.FeasibilityParams {
	params := schema.DefaultFeasibilityParams()
	if raw == nil {
		return params
	}
	if raw.ValueColumn != nil {
		params.ValueColumn = *raw.ValueColumn
	}
	if raw.ContractColumn != nil {
		params.ContractColumn = *raw.ContractColumn
	}
	if raw.GBEColumn != nil {
		params.EligibilityColumn = *raw.GBEColumn
	}
	if raw.ValueWeight != nil {
		params.Weights[schema.ValueFeasibility] = *raw.ValueWeight
	}
	if raw.ContractWeight != nil {
		params.Weights[schema.ContractFeasibility] = *raw.ContractWeight
	}
	if raw.GBEWeight != nil {
		params.Weights[schema.EligibilityFeasibility] = *raw.GBEWeight
	}
	return params
}
