package types

import "fmt"

// Horizon is the time frame a recommendation belongs to
type Horizon string

const (
	HorizonQuickWins  Horizon = "quickWins"
	HorizonMediumTerm Horizon = "mediumTerm"
	HorizonLongTerm   Horizon = "longTerm"
)

// AllHorizons returns all horizons in presentation order
func AllHorizons() []Horizon {
	return []Horizon{
		HorizonQuickWins,
		HorizonMediumTerm,
		HorizonLongTerm,
	}
}

// IsValid checks if the horizon is valid
func (h Horizon) IsValid() bool {
	switch h {
	case HorizonQuickWins, HorizonMediumTerm, HorizonLongTerm:
		return true
	default:
		return false
	}
}

// Label returns the heading used when presenting the horizon
func (h Horizon) Label() string {
	switch h {
	case HorizonQuickWins:
		return "Quick Wins"
	case HorizonMediumTerm:
		return "Medium-Term Plans (3-6 months)"
	case HorizonLongTerm:
		return "Long-Term Strategy (6+ months)"
	default:
		return string(h)
	}
}

// String returns the string representation of the horizon
func (h Horizon) String() string {
	return string(h)
}

// ParseHorizon parses a string into a Horizon
func ParseHorizon(s string) (Horizon, error) {
	h := Horizon(s)
	if !h.IsValid() {
		return "", fmt.Errorf("invalid horizon: %s", s)
	}
	return h, nil
}
