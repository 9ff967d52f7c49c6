package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// Industry is the sector an organization operates in
type Industry string

const (
	IndustrySports        Industry = "sports"
	IndustryTechnology    Industry = "technology"
	IndustryFinance       Industry = "finance"
	IndustryHealthcare    Industry = "healthcare"
	IndustryRetail        Industry = "retail"
	IndustryManufacturing Industry = "manufacturing"
	IndustryEducation     Industry = "education"
	IndustryProfessional  Industry = "professional"
	IndustryEntertainment Industry = "entertainment"
	IndustryOther         Industry = "other"
)

// AllIndustries returns all known industries
func AllIndustries() []Industry {
	return []Industry{
		IndustrySports,
		IndustryTechnology,
		IndustryFinance,
		IndustryHealthcare,
		IndustryRetail,
		IndustryManufacturing,
		IndustryEducation,
		IndustryProfessional,
		IndustryEntertainment,
		IndustryOther,
	}
}

// IsValid checks if the industry is one of the known industries
func (i Industry) IsValid() bool {
	switch i {
	case IndustrySports,
		IndustryTechnology,
		IndustryFinance,
		IndustryHealthcare,
		IndustryRetail,
		IndustryManufacturing,
		IndustryEducation,
		IndustryProfessional,
		IndustryEntertainment,
		IndustryOther:
		return true
	default:
		return false
	}
}

// Validate checks if the Industry is valid. Empty means "not specified".
func (i Industry) Validate() error {
	if i == "" || i.IsValid() {
		return nil
	}
	return goerr.New("unknown industry", goerr.V("industry", i))
}

// Adjustment returns the baseline resilience adjustment applied to the overall
// score for organizations in this industry. Unknown industries adjust by 0.
func (i Industry) Adjustment() float64 {
	switch i {
	case IndustrySports:
		return -2
	case IndustryTechnology:
		return -1
	case IndustryFinance:
		return 2
	case IndustryHealthcare:
		return 1
	case IndustryRetail:
		return 0
	case IndustryManufacturing:
		return -1
	case IndustryEducation:
		return 1
	case IndustryProfessional:
		return -1
	case IndustryEntertainment:
		return -3
	case IndustryOther:
		return 0
	default:
		return 0
	}
}

// String returns the string representation of Industry
func (i Industry) String() string {
	return string(i)
}
