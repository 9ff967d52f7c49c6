package scoring

import (
	"github.com/secmon-lab/aegis/pkg/domain/model"
)

const (
	maxScore = 100
	minScore = 0

	// riskWeight converts an average risk (0-10) into score points
	riskWeight = 10

	// contingencyWeight converts an average contingency score (0-10) into
	// bonus points
	contingencyWeight = 2
)

func clamp(v float64) float64 {
	if v < minScore {
		return minScore
	}
	if v > maxScore {
		return maxScore
	}
	return v
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// ContingencyScore is the mean of backup, knowledge sharing and documentation
func ContingencyScore(c model.Contingency) float64 {
	return float64(c.Backup+c.KnowledgeSharing+c.Documentation) / 3
}

// ContingencyBonus is twice the mean contingency score over all contingency
// records, or 0 when there are none.
func ContingencyBonus(a *model.Assessment) float64 {
	if len(a.Contingencies) == 0 {
		return 0
	}

	scores := make([]float64, len(a.Contingencies))
	for i, c := range a.Contingencies {
		scores[i] = ContingencyScore(c)
	}
	return mean(scores) * contingencyWeight
}

// ProfileAdjustment is the sum of the industry and size adjustments of the
// organization profile. It is 0 without a profile.
func ProfileAdjustment(a *model.Assessment) float64 {
	return a.Industry().Adjustment() + a.Size().Adjustment()
}

// ResilienceScore returns the overall resilience score in [0, 100]. It is 0
// when no asset has a matched dependency.
func ResilienceScore(a *model.Assessment) float64 {
	scores := RiskScores(a)
	if len(scores) == 0 {
		return 0
	}

	base := maxScore - mean(scores)*riskWeight
	return clamp(base + ContingencyBonus(a) + ProfileAdjustment(a))
}

// categoryResilience scores a single category from its averages
func categoryResilience(avgRisk, avgContingency float64) float64 {
	return clamp(maxScore - avgRisk*riskWeight + avgContingency*contingencyWeight)
}
