package schema

// Custom string types for type safety.
type (
	// ColumnKind represents the storage kind of a table column.
	ColumnKind string

	// PillarKey represents a thematic pillar of right-back play.
	PillarKey string

	// OutputMode represents the format of the output.
	OutputMode string

	// ScoringMode represents the pillar weighting profile used.
	ScoringMode string

	// FeasibilityKey represents a feasibility sub-score.
	FeasibilityKey string

	// DatabaseBackend represents the database backend for run tracking.
	DatabaseBackend string
)

// Column kinds.
const (
	TextColumn    ColumnKind = "text"
	NumericColumn ColumnKind = "numeric"
)

// Pillar keys used in scoring and weight maps.
const (
	BuildUpPillar   PillarKey = "build_up"
	CreationPillar  PillarKey = "creation"
	DefendingPillar PillarKey = "defending"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All scoring modes supported.
const (
	BalancedMode    ScoringMode = "balanced" // default
	ProgressiveMode ScoringMode = "progressive"
	DefensiveMode   ScoringMode = "defensive"
)

// Feasibility sub-score keys.
const (
	ValueFeasibility       FeasibilityKey = "value"
	ContractFeasibility    FeasibilityKey = "contract"
	EligibilityFeasibility FeasibilityKey = "gbe"
)

// All run store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Well-known dataset column names.
const (
	PlayerColumn      = "Player"
	LeagueColumn      = "League"
	MinutesColumn     = "Minutes"
	AgeColumn         = "Age"
	MarketValueColumn = "(€) Market Value"
	ContractEndColumn = "Contract End"
	EligibilityColumn = "GBE"
)

// Columns the pipeline appends to the dataset.
const (
	BonusScoreColumn       = "Bonus"
	OverallScoreColumn     = "Overall"
	FeasibilityScoreColumn = "Feasibility"
	FlagsColumn            = "Flags"
)

// AllScoringModes returns a list of all supported scoring modes.
var AllScoringModes = []ScoringMode{BalancedMode, ProgressiveMode, DefensiveMode}

// AllPillars returns pillars in presentation order.
var AllPillars = []PillarKey{BuildUpPillar, CreationPillar, DefendingPillar}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidScoringModes lists all valid scoring modes.
var ValidScoringModes = map[ScoringMode]struct{}{
	BalancedMode:    {},
	ProgressiveMode: {},
	DefensiveMode:   {},
}

// ValidRunStoreBackends lists all valid run store backends.
var ValidRunStoreBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// PillarMetrics maps each pillar to the metric columns that feed it. Pillar
// aggregation resolves each to its standardized variant, so a raw name here
// means "the z-score of that column".
var PillarMetrics = map[PillarKey][]string{
	BuildUpPillar: {
		"% Passing",
		"Progressive Carries per90",
		"Ball Prog. by Carrying per90",
		"Pass Receipts in Space Completed",
		"% Passing Under Pressure",
	},
	CreationPillar: {
		"Expected Assists per90",
		"Open Play Key Passes per90",
		"Completed Crosses per90",
		"Cross Efficiency",
		"xT Passing per90",
	},
	DefendingPillar: {
		"Successful Tackles per90",
		"Interceptions per90",
		"Tackles/Was Dribbled",
		"% Aerial Wins",
	},
}

// GetDefaultWeights returns the default pillar weight map for a scoring mode.
func GetDefaultWeights(mode ScoringMode) map[PillarKey]float64 {
	switch mode {
	case ProgressiveMode:
		return map[PillarKey]float64{
			BuildUpPillar:   0.45,
			CreationPillar:  0.40,
			DefendingPillar: 0.15,
		}
	case DefensiveMode:
		return map[PillarKey]float64{
			BuildUpPillar:   0.20,
			CreationPillar:  0.15,
			DefendingPillar: 0.65,
		}
	default: // BalancedMode
		return map[PillarKey]float64{
			BuildUpPillar:   0.35,
			CreationPillar:  0.30,
			DefendingPillar: 0.35,
		}
	}
}

// GetDefaultFeasibilityWeights returns the default blend for the three
// feasibility sub-scores. The eligibility weight is a policy default with no
// derivation; it is configurable rather than a call-site constant.
func GetDefaultFeasibilityWeights() map[FeasibilityKey]float64 {
	return map[FeasibilityKey]float64{
		ValueFeasibility:       0.6,
		ContractFeasibility:    0.3,
		EligibilityFeasibility: 0.1,
	}
}
