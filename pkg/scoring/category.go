package scoring

import (
	"github.com/secmon-lab/aegis/pkg/domain/model"
	"github.com/secmon-lab/aegis/pkg/domain/types"
)

type categoryAccumulator struct {
	category      types.Category
	assetCount    int
	risks         []float64
	contingencies []float64
}

// CategoryMetrics groups assets by category and scores each group. Categories
// appear in order of their first asset; categories without assets are absent.
func CategoryMetrics(a *model.Assessment) model.CategoryMetrics {
	metrics := model.CategoryMetrics{}
	if !a.IsWellFormed() {
		return metrics
	}

	var order []*categoryAccumulator
	index := make(map[types.Category]*categoryAccumulator)

	for _, asset := range a.Assets {
		category := asset.Category.OrDefault()
		acc, ok := index[category]
		if !ok {
			acc = &categoryAccumulator{category: category}
			index[category] = acc
			order = append(order, acc)
		}

		acc.assetCount++
		if d, ok := a.DependencyFor(asset.ID); ok {
			acc.risks = append(acc.risks, RiskScore(d))
		}
		if c, ok := a.ContingencyFor(asset.ID); ok {
			acc.contingencies = append(acc.contingencies, ContingencyScore(c))
		}
	}

	for _, acc := range order {
		avgRisk := mean(acc.risks)
		avgContingency := mean(acc.contingencies)
		metrics = append(metrics, model.CategoryMetric{
			Category:            acc.category,
			AssetCount:          acc.assetCount,
			AvgRiskScore:        avgRisk,
			AvgContingencyScore: avgContingency,
			ResilienceScore:     categoryResilience(avgRisk, avgContingency),
		})
	}
	return metrics
}
