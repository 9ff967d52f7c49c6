// Package scoring turns an assessment into risk scores, an overall resilience
// score, a ranked list of top risks, per-category metrics and a
// diversification rating. Every function is pure and tolerates partial input.
package scoring

import (
	"slices"

	"github.com/secmon-lab/aegis/pkg/domain/model"
	"github.com/secmon-lab/aegis/pkg/domain/types"
)

const (
	// DefaultTopRisks is the number of risks returned when no limit is given
	DefaultTopRisks = 3

	// DefaultHeatmapSize caps the number of plotted assets
	DefaultHeatmapSize = 10

	// criticalRating is the rating at or above which a factor is called out
	criticalRating = 8
)

// Risk reasons, in priority order
const (
	ReasonCritical        = "Critical asset with very difficult replaceability."
	ReasonImportant       = "Highly important to operations."
	ReasonIrreplaceable   = "Extremely difficult to replace."
	ReasonConcentrated    = "Highly concentrated dependency."
	ReasonYearsToReplace  = "Would take years to replace."
	ReasonMonthsToReplace = "Would take months to replace."
	ReasonModerate        = "Moderate overall risk."
)

// RiskScore returns (importance x replaceability x concentration) / 100, in
// [0.01, 10] for ratings on the 1-10 scale. Missing ratings count as 5.
func RiskScore(d model.Dependency) float64 {
	return float64(d.ImportanceOrDefault()*d.ReplaceabilityOrDefault()*d.ConcentrationOrDefault()) / 100
}

// RiskReason explains the dominant driver of a dependency's risk
func RiskReason(d model.Dependency) string {
	importance := d.ImportanceOrDefault()
	replaceability := d.ReplaceabilityOrDefault()

	switch {
	case importance >= criticalRating && replaceability >= criticalRating:
		return ReasonCritical
	case importance >= criticalRating:
		return ReasonImportant
	case replaceability >= criticalRating:
		return ReasonIrreplaceable
	case d.ConcentrationOrDefault() >= criticalRating:
		return ReasonConcentrated
	}

	switch d.TimeToReplace.OrDefault() {
	case types.TimeToReplaceYears:
		return ReasonYearsToReplace
	case types.TimeToReplaceMonths:
		return ReasonMonthsToReplace
	default:
		return ReasonModerate
	}
}

// scoredAsset pairs an asset with its matched dependency and risk score
type scoredAsset struct {
	asset      model.Asset
	dependency model.Dependency
	risk       float64
}

// scoredAssets returns every asset that has a dependency record, in asset
// order. Assets without a dependency are excluded.
func scoredAssets(a *model.Assessment) []scoredAsset {
	var result []scoredAsset
	for _, asset := range a.Assets {
		d, ok := a.DependencyFor(asset.ID)
		if !ok {
			continue
		}
		result = append(result, scoredAsset{
			asset:      asset,
			dependency: d,
			risk:       RiskScore(d),
		})
	}
	return result
}

// sortByRisk orders assets by descending risk, keeping asset order on ties
func sortByRisk(assets []scoredAsset) {
	slices.SortStableFunc(assets, func(x, y scoredAsset) int {
		switch {
		case x.risk > y.risk:
			return -1
		case x.risk < y.risk:
			return 1
		default:
			return 0
		}
	})
}

// RiskScores returns the risk score of every asset with a matched dependency
func RiskScores(a *model.Assessment) []float64 {
	if !a.IsWellFormed() {
		return nil
	}

	assets := scoredAssets(a)
	scores := make([]float64, len(assets))
	for i, s := range assets {
		scores[i] = s.risk
	}
	return scores
}

// TopRisks returns at most limit assets ranked by descending risk score
func TopRisks(a *model.Assessment, limit int) []model.TopRisk {
	risks := []model.TopRisk{}
	if !a.IsWellFormed() || limit <= 0 {
		return risks
	}

	assets := scoredAssets(a)
	sortByRisk(assets)
	if len(assets) > limit {
		assets = assets[:limit]
	}

	for _, s := range assets {
		risks = append(risks, model.TopRisk{
			AssetID:   s.asset.ID,
			AssetName: s.asset.Name,
			Category:  s.asset.Category.OrDefault(),
			RiskScore: s.risk,
			Level:     types.RiskLevelOf(s.risk),
			Reason:    RiskReason(s.dependency),
		})
	}
	return risks
}

// Heatmap returns the highest risk assets, at most limit of them, positioned
// by importance and replaceability.
func Heatmap(a *model.Assessment, limit int) []model.HeatmapPoint {
	points := []model.HeatmapPoint{}
	if !a.IsWellFormed() || limit <= 0 {
		return points
	}

	assets := scoredAssets(a)
	sortByRisk(assets)
	if len(assets) > limit {
		assets = assets[:limit]
	}

	for _, s := range assets {
		points = append(points, model.HeatmapPoint{
			AssetName:      s.asset.Name,
			Category:       s.asset.Category.OrDefault(),
			Importance:     s.dependency.ImportanceOrDefault(),
			Replaceability: s.dependency.ReplaceabilityOrDefault(),
			RiskScore:      s.risk,
		})
	}
	return points
}
