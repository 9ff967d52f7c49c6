package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// Category classifies an organizational asset
type Category string

const (
	CategoryPeople        Category = "people"
	CategorySystems       Category = "systems"
	CategoryRelationships Category = "relationships"
	CategoryFacilities    Category = "facilities"
	CategoryKnowledge     Category = "knowledge"
	CategoryMarket        Category = "market"
	CategoryOther         Category = "other"
)

// AllCategories returns all known asset categories
func AllCategories() []Category {
	return []Category{
		CategoryPeople,
		CategorySystems,
		CategoryRelationships,
		CategoryFacilities,
		CategoryKnowledge,
		CategoryMarket,
		CategoryOther,
	}
}

// IsValid checks if the category is one of the known categories
func (c Category) IsValid() bool {
	switch c {
	case CategoryPeople,
		CategorySystems,
		CategoryRelationships,
		CategoryFacilities,
		CategoryKnowledge,
		CategoryMarket,
		CategoryOther:
		return true
	default:
		return false
	}
}

// Validate checks if the Category is valid. An empty category is accepted and
// treated as CategoryOther by OrDefault.
func (c Category) Validate() error {
	if c == "" || c.IsValid() {
		return nil
	}
	return goerr.New("unknown asset category", goerr.V("category", c))
}

// OrDefault returns CategoryOther for an unset category
func (c Category) OrDefault() Category {
	if c == "" {
		return CategoryOther
	}
	return c
}

// DisplayName returns the human readable name of the category. Unknown
// categories are returned verbatim.
func (c Category) DisplayName() string {
	switch c {
	case CategoryPeople:
		return "People"
	case CategorySystems:
		return "Systems & Technology"
	case CategoryRelationships:
		return "Partnerships & Relationships"
	case CategoryFacilities:
		return "Facilities & Equipment"
	case CategoryKnowledge:
		return "Intellectual Property"
	case CategoryMarket:
		return "Market Access"
	case CategoryOther:
		return "Other"
	default:
		return string(c)
	}
}

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}
