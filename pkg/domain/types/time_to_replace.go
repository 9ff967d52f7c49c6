package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// TimeToReplace is the rough time needed to replace a lost asset
type TimeToReplace string

const (
	TimeToReplaceDays   TimeToReplace = "days"
	TimeToReplaceWeeks  TimeToReplace = "weeks"
	TimeToReplaceMonths TimeToReplace = "months"
	TimeToReplaceYears  TimeToReplace = "years"
)

// IsValid checks if the value is one of the known durations
func (t TimeToReplace) IsValid() bool {
	switch t {
	case TimeToReplaceDays, TimeToReplaceWeeks, TimeToReplaceMonths, TimeToReplaceYears:
		return true
	default:
		return false
	}
}

// Validate checks if the TimeToReplace is valid. Empty means "not specified".
func (t TimeToReplace) Validate() error {
	if t == "" || t.IsValid() {
		return nil
	}
	return goerr.New("unknown time to replace", goerr.V("timeToReplace", t))
}

// OrDefault returns TimeToReplaceWeeks for an unset value
func (t TimeToReplace) OrDefault() TimeToReplace {
	if t == "" {
		return TimeToReplaceWeeks
	}
	return t
}

// String returns the string representation of TimeToReplace
func (t TimeToReplace) String() string {
	return string(t)
}
