package schema

import "time"

// Default scoring parameters.
const (
	DefaultClip         = 3.0
	DefaultAgeMin       = 20
	DefaultAgeMax       = 27.0
	DefaultMinMinutes   = 1800
	DefaultAgeBonus     = 0.10
	DefaultMinutesBonus = 0.05
)

// BonusParams configures the age-window and minutes-played bonuses applied on
// top of the weighted pillar blend.
type BonusParams struct {
	AgeColumn     string
	MinutesColumn string
	AgeMin        float64 // Inclusive lower bound of the bonus age window
	AgeMax        float64 // Inclusive upper bound of the bonus age window
	MinMinutes    float64 // Minutes threshold for the playing-time bonus
	AgeBonus      float64
	MinutesBonus  float64
}

// DefaultBonusParams returns the default bonus configuration.
func DefaultBonusParams() BonusParams {
	return BonusParams{
		AgeColumn:     AgeColumn,
		MinutesColumn: MinutesColumn,
		AgeMin:        DefaultAgeMin,
		AgeMax:        DefaultAgeMax,
		MinMinutes:    DefaultMinMinutes,
		AgeBonus:      DefaultAgeBonus,
		MinutesBonus:  DefaultMinutesBonus,
	}
}

// FeasibilityParams configures the transfer feasibility score, which is
// independent of footballing merit.
type FeasibilityParams struct {
	ValueColumn       string
	ContractColumn    string
	EligibilityColumn string

	// Weights blends the three sub-scores. Missing keys fall back to the
	// defaults rather than zero, so a partial override keeps a sane blend.
	Weights map[FeasibilityKey]float64

	// Now is the reference date for contract runway. The zero value means
	// time.Now(); tests pin it for determinism.
	Now time.Time
}

// DefaultFeasibilityParams returns the default feasibility configuration.
func DefaultFeasibilityParams() FeasibilityParams {
	return FeasibilityParams{
		ValueColumn:       MarketValueColumn,
		ContractColumn:    ContractEndColumn,
		EligibilityColumn: EligibilityColumn,
		Weights:           GetDefaultFeasibilityWeights(),
	}
}
