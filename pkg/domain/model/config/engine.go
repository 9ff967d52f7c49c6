package config

// Default engine settings
const (
	DefaultTopRisks          = 3
	DefaultHighRiskThreshold = 6.0
	DefaultHeatmapSize       = 10
)

// Engine tunes a scoring pass
type Engine struct {
	TopRisks          int
	HighRiskThreshold float64
	HeatmapSize       int
}

// DefaultEngine returns the settings used when no profile is given
func DefaultEngine() *Engine {
	return &Engine{
		TopRisks:          DefaultTopRisks,
		HighRiskThreshold: DefaultHighRiskThreshold,
		HeatmapSize:       DefaultHeatmapSize,
	}
}
