package model

import "github.com/m-mizutani/goerr/v2"

// Validation errors
var (
	ErrInvalidAssessment = goerr.New("invalid assessment")
)

// Context keys for error values
const (
	FieldKey = "field"
	RuleKey  = "rule"
	ValueKey = "value"
	IndexKey = "index"
)
