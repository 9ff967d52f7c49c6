package scoring

import (
	"github.com/secmon-lab/aegis/pkg/domain/model"
	"github.com/secmon-lab/aegis/pkg/domain/types"
)

// diversificationCeiling inverts a 1-10 concentration into a 1-10
// diversification score
const diversificationCeiling = 11

var diversificationAdvice = map[types.DiversificationLevel][3]string{
	types.DiversificationVeryLow: {
		"Urgent action needed to reduce dependency concentration",
		"Identify alternative suppliers/partners for key dependencies",
		"Develop backup systems for critical assets",
	},
	types.DiversificationLow: {
		"Develop formal diversification strategy",
		"Cross-train personnel for key roles",
		"Explore redundancy options for critical systems",
	},
	types.DiversificationModerate: {
		"Continue improving diversification efforts",
		"Document knowledge to reduce personnel dependencies",
		"Regularly test contingency measures",
	},
	types.DiversificationHigh: {
		"Maintain current diversification practices",
		"Periodically review for new concentration risks",
		"Share best practices across the organization",
	},
	types.DiversificationVeryHigh: {
		"Maintain excellent diversification practices",
		"Consider optimizing for efficiency where appropriate",
		"Document your approach for organizational knowledge",
	},
}

// DiversificationAdvice returns the fixed advice for a level. Unknown levels
// have none.
func DiversificationAdvice(level types.DiversificationLevel) []string {
	advice, ok := diversificationAdvice[level]
	if !ok {
		return []string{}
	}
	return advice[:]
}

// AverageConcentration is the mean concentration over all dependency records,
// or DefaultRating when there are none.
func AverageConcentration(a *model.Assessment) float64 {
	if len(a.Dependencies) == 0 {
		return model.DefaultRating
	}

	values := make([]float64, len(a.Dependencies))
	for i, d := range a.Dependencies {
		values[i] = float64(d.ConcentrationOrDefault())
	}
	return mean(values)
}

// Diversification rates how spread out the organization's dependencies are
func Diversification(a *model.Assessment) model.Diversification {
	if !a.IsWellFormed() {
		return model.Diversification{
			Score:           0,
			Level:           types.DiversificationUnknown,
			Recommendations: []string{},
		}
	}

	score := diversificationCeiling - AverageConcentration(a)
	level := types.DiversificationLevelOf(score)
	return model.Diversification{
		Score:           score,
		Level:           level,
		Recommendations: DiversificationAdvice(level),
	}
}
