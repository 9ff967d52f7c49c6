package model

import (
	"github.com/secmon-lab/aegis/pkg/domain/types"
)

// TopRisk is one entry of the ranked risk list
type TopRisk struct {
	AssetID   AssetID         `json:"assetId"`
	AssetName string          `json:"assetName"`
	Category  types.Category  `json:"category"`
	RiskScore float64         `json:"riskScore"`
	Level     types.RiskLevel `json:"level"`
	Reason    string          `json:"reason"`
}

// CategoryMetric aggregates the assets of one category
type CategoryMetric struct {
	Category            types.Category `json:"category"`
	AssetCount          int            `json:"assetCount"`
	AvgRiskScore        float64        `json:"avgRiskScore"`
	AvgContingencyScore float64        `json:"avgContingencyScore"`
	ResilienceScore     float64        `json:"resilienceScore"`
}

// CategoryMetrics keeps metrics in order of first appearance of the category
// in the asset list.
type CategoryMetrics []CategoryMetric

// Get returns the metric for the category
func (m CategoryMetrics) Get(c types.Category) (CategoryMetric, bool) {
	for _, metric := range m {
		if metric.Category == c {
			return metric, true
		}
	}
	return CategoryMetric{}, false
}

// Diversification summarizes how concentrated the dependencies are
type Diversification struct {
	Score           float64                    `json:"score"`
	Level           types.DiversificationLevel `json:"level"`
	Recommendations []string                   `json:"recommendations"`
}

// HeatmapPoint is one asset plotted by importance and replaceability
type HeatmapPoint struct {
	AssetName      string         `json:"asset"`
	Category       types.Category `json:"category"`
	Importance     int            `json:"importance"`
	Replaceability int            `json:"replaceability"`
	RiskScore      float64        `json:"riskScore"`
}

// Report is the full outcome of one scoring pass
type Report struct {
	Name            string          `json:"name,omitempty"`
	ResilienceScore float64         `json:"resilienceScore"`
	Band            types.ScoreBand `json:"band"`
	TopRisks        []TopRisk       `json:"topRisks"`
	CategoryMetrics CategoryMetrics `json:"categoryMetrics"`
	Diversification Diversification `json:"diversification"`
	Heatmap         []HeatmapPoint  `json:"heatmap"`
	Recommendations Recommendations `json:"recommendations"`
}
