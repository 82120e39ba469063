// Package schema has configs, models and shared types for all parts of fullback.
package schema

// PlayerResult represents one scored recruitment candidate.
// It carries the identifying columns from the dataset alongside every derived
// score the pipeline produces.
type PlayerResult struct {
	Player      string      `json:"player"`          // Player name from the dataset
	League      string      `json:"league"`          // Peer group used for standardization
	Age         float64     `json:"age"`             // Age in years (NaN if missing)
	Minutes     float64     `json:"minutes"`         // Minutes played (NaN if missing)
	BuildUp     float64     `json:"build_up"`        // Build-up pillar score
	Creation    float64     `json:"creation"`        // Creation pillar score
	Defending   float64     `json:"defending"`       // Defending pillar score
	Bonus       float64     `json:"bonus"`           // Age/minutes bonus adjustment
	Overall     float64     `json:"overall"`         // Weighted pillar blend plus bonus
	Feasibility float64     `json:"feasibility"`     // Transfer feasibility in [0,1]
	Flags       string      `json:"flags,omitempty"` // Profile tags joined by "; "
	Mode        ScoringMode `json:"mode,omitempty"`  // Scoring mode used for Overall
}

// ShortlistOutput bundles the scored results with the augmented table they
// were derived from, for callers that want both.
type ShortlistOutput struct {
	Results []PlayerResult
	Table   *Table
}

// EnrichedPlayerResult adds presentation data to a PlayerResult.
type EnrichedPlayerResult struct {
	Rank  int    `json:"rank"`
	Label string `json:"label"`
	PlayerResult
}

// GetPlainLabel returns a plain text label indicating the strength of a
// candidate based on the overall score. Overall scores are blends of clipped
// z-scores, so the thresholds sit on the standardized scale.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 1.0:
		return "Elite"
	case score >= 0.4:
		return "Strong"
	case score >= -0.4:
		return "Average"
	default:
		return "Below"
	}
}

// EnrichPlayers adds rank and label to a list of player results.
func EnrichPlayers(players []PlayerResult) []EnrichedPlayerResult {
	output := make([]EnrichedPlayerResult, len(players))
	for i, p := range players {
		output[i] = EnrichedPlayerResult{
			Rank:         i + 1,
			Label:        GetPlainLabel(p.Overall),
			PlayerResult: p,
		}
	}
	return output
}
