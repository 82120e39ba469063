package schema

// MetricsMode describes one scoring mode for display purposes.
type MetricsMode struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
}

// MetricsModeWithData combines mode information with computed weights and formula.
type MetricsModeWithData struct {
	MetricsMode
	Weights map[string]float64 `json:"weights"`
	Formula string             `json:"formula"`
}

// MetricsPillar describes one pillar and the metric columns feeding it.
type MetricsPillar struct {
	Name    string   `json:"name"`
	Metrics []string `json:"metrics"`
}

// MetricsRenderModel contains all processed data for metrics display.
type MetricsRenderModel struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Modes       []MetricsModeWithData `json:"modes"`
	Pillars     []MetricsPillar       `json:"pillars"`
	BonusNote   string                `json:"bonus_note"`
}
