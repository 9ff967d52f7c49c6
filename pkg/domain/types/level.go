package types

// DiversificationLevel buckets the diversification score
type DiversificationLevel string

const (
	DiversificationUnknown  DiversificationLevel = "Unknown"
	DiversificationVeryLow  DiversificationLevel = "Very Low"
	DiversificationLow      DiversificationLevel = "Low"
	DiversificationModerate DiversificationLevel = "Moderate"
	DiversificationHigh     DiversificationLevel = "High"
	DiversificationVeryHigh DiversificationLevel = "Very High"
)

// DiversificationLevelOf returns the level for a diversification score in [1,10]
func DiversificationLevelOf(score float64) DiversificationLevel {
	switch {
	case score < 3:
		return DiversificationVeryLow
	case score < 5:
		return DiversificationLow
	case score < 7:
		return DiversificationModerate
	case score < 9:
		return DiversificationHigh
	default:
		return DiversificationVeryHigh
	}
}

// String returns the string representation of the level
func (l DiversificationLevel) String() string {
	return string(l)
}

// ScoreBand classifies an overall resilience score
type ScoreBand string

const (
	ScoreBandVulnerable ScoreBand = "vulnerable"
	ScoreBandModerate   ScoreBand = "moderate"
	ScoreBandStrong     ScoreBand = "strong"
)

// ScoreBandOf returns the band of a resilience score in [0,100]
func ScoreBandOf(score float64) ScoreBand {
	switch {
	case score < 40:
		return ScoreBandVulnerable
	case score < 70:
		return ScoreBandModerate
	default:
		return ScoreBandStrong
	}
}

// Description returns the summary sentence shown next to the score
func (b ScoreBand) Description() string {
	switch b {
	case ScoreBandVulnerable:
		return "Your organization has significant vulnerabilities. Immediate action is recommended."
	case ScoreBandModerate:
		return "Your organization has moderate resilience. There are opportunities for improvement."
	case ScoreBandStrong:
		return "Your organization demonstrates strong resilience. Continue monitoring and enhancing your strategies."
	default:
		return ""
	}
}

// String returns the string representation of the band
func (b ScoreBand) String() string {
	return string(b)
}

// RiskLevel labels a single asset risk score
type RiskLevel string

const (
	RiskLevelHigh   RiskLevel = "High"
	RiskLevelMedium RiskLevel = "Medium"
	RiskLevelLow    RiskLevel = "Low"
)

// RiskLevelOf returns the level of a risk score in (0,10]
func RiskLevelOf(score float64) RiskLevel {
	switch {
	case score > 7:
		return RiskLevelHigh
	case score > 4:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// String returns the string representation of the level
func (l RiskLevel) String() string {
	return string(l)
}
