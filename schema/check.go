package schema

// CheckResult represents the outcome of a recruitment pool gate: whether the
// dataset holds enough candidates clearing the overall-score threshold.
type CheckResult struct {
	Mode          ScoringMode    `json:"mode"`
	Threshold     float64        `json:"threshold"`
	MinCandidates int            `json:"min_candidates"`
	TotalPlayers  int            `json:"total_players"`
	Passing       []PlayerResult `json:"passing"`
	Passed        bool           `json:"passed"`
}
