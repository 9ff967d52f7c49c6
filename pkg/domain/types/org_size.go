package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// OrgSize is the headcount class of an organization
type OrgSize string

const (
	OrgSizeMicro  OrgSize = "micro"
	OrgSizeSmall  OrgSize = "small"
	OrgSizeMedium OrgSize = "medium"
	OrgSizeLarge  OrgSize = "large"
)

// AllOrgSizes returns all known organization sizes
func AllOrgSizes() []OrgSize {
	return []OrgSize{
		OrgSizeMicro,
		OrgSizeSmall,
		OrgSizeMedium,
		OrgSizeLarge,
	}
}

// IsValid checks if the size is one of the known sizes
func (s OrgSize) IsValid() bool {
	switch s {
	case OrgSizeMicro, OrgSizeSmall, OrgSizeMedium, OrgSizeLarge:
		return true
	default:
		return false
	}
}

// Validate checks if the OrgSize is valid. Empty means "not specified".
func (s OrgSize) Validate() error {
	if s == "" || s.IsValid() {
		return nil
	}
	return goerr.New("unknown organization size", goerr.V("size", s))
}

// Adjustment returns the resilience adjustment for the organization size.
// Unknown sizes adjust by 0.
func (s OrgSize) Adjustment() float64 {
	switch s {
	case OrgSizeMicro:
		return -3
	case OrgSizeSmall:
		return -1
	case OrgSizeMedium:
		return 1
	case OrgSizeLarge:
		return 3
	default:
		return 0
	}
}

// String returns the string representation of OrgSize
func (s OrgSize) String() string {
	return string(s)
}
