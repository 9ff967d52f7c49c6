package model

import (
	"github.com/secmon-lab/aegis/pkg/domain/types"
)

// DefaultRating is used for any dependency rating that is not provided
const DefaultRating = 5

// AssetID identifies an asset within an assessment
type AssetID string

// String returns the string representation of AssetID
func (id AssetID) String() string {
	return string(id)
}

// Asset is something the organization depends on: a person, a system, a
// partner, a facility, a body of knowledge or a market channel.
type Asset struct {
	ID          AssetID        `json:"id" yaml:"id" toml:"id" validate:"required"`
	Name        string         `json:"name" yaml:"name" toml:"name" validate:"required"`
	Category    types.Category `json:"category,omitempty" yaml:"category,omitempty" toml:"category,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

// Dependency rates how strongly the organization depends on one asset. Every
// rating is on a 1-10 scale; zero means "not provided".
type Dependency struct {
	AssetID        AssetID             `json:"assetId" yaml:"assetId" toml:"assetId" validate:"required"`
	Importance     int                 `json:"importance,omitempty" yaml:"importance,omitempty" toml:"importance,omitempty" validate:"omitempty,min=1,max=10"`
	Replaceability int                 `json:"replaceability,omitempty" yaml:"replaceability,omitempty" toml:"replaceability,omitempty" validate:"omitempty,min=1,max=10"`
	TimeToReplace  types.TimeToReplace `json:"timeToReplace,omitempty" yaml:"timeToReplace,omitempty" toml:"timeToReplace,omitempty"`
	Concentration  int                 `json:"concentration,omitempty" yaml:"concentration,omitempty" toml:"concentration,omitempty" validate:"omitempty,min=1,max=10"`
}

func orDefaultRating(v int) int {
	if v == 0 {
		return DefaultRating
	}
	return v
}

// ImportanceOrDefault returns Importance, or DefaultRating if unset
func (d Dependency) ImportanceOrDefault() int { return orDefaultRating(d.Importance) }

// ReplaceabilityOrDefault returns Replaceability, or DefaultRating if unset
func (d Dependency) ReplaceabilityOrDefault() int { return orDefaultRating(d.Replaceability) }

// ConcentrationOrDefault returns Concentration, or DefaultRating if unset
func (d Dependency) ConcentrationOrDefault() int { return orDefaultRating(d.Concentration) }

// Contingency rates the fallback readiness for one asset
type Contingency struct {
	AssetID          AssetID `json:"assetId" yaml:"assetId" toml:"assetId" validate:"required"`
	Backup           int     `json:"backup" yaml:"backup" toml:"backup" validate:"omitempty,min=1,max=10"`
	KnowledgeSharing int     `json:"knowledgeSharing" yaml:"knowledgeSharing" toml:"knowledgeSharing" validate:"omitempty,min=1,max=10"`
	Documentation    int     `json:"documentation" yaml:"documentation" toml:"documentation" validate:"omitempty,min=1,max=10"`
}

// OrganizationProfile describes the organization being assessed
type OrganizationProfile struct {
	Name       string         `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Industry   types.Industry `json:"industry,omitempty" yaml:"industry,omitempty" toml:"industry,omitempty"`
	Size       types.OrgSize  `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty"`
	Objectives string         `json:"objectives,omitempty" yaml:"objectives,omitempty" toml:"objectives,omitempty"`
}

// Recommendation is a single piece of advice
type Recommendation struct {
	Title       string `json:"title" yaml:"title" toml:"title"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

// Recommendations groups advice by time horizon
type Recommendations struct {
	QuickWins  []Recommendation `json:"quickWins" yaml:"quickWins" toml:"quickWins"`
	MediumTerm []Recommendation `json:"mediumTerm" yaml:"mediumTerm" toml:"mediumTerm"`
	LongTerm   []Recommendation `json:"longTerm" yaml:"longTerm" toml:"longTerm"`
}

// NewRecommendations returns a set with three empty, non-nil buckets
func NewRecommendations() *Recommendations {
	return &Recommendations{
		QuickWins:  []Recommendation{},
		MediumTerm: []Recommendation{},
		LongTerm:   []Recommendation{},
	}
}

// Bucket returns a pointer to the list for the given horizon, or nil for an
// unknown horizon.
func (r *Recommendations) Bucket(h types.Horizon) *[]Recommendation {
	switch h {
	case types.HorizonQuickWins:
		return &r.QuickWins
	case types.HorizonMediumTerm:
		return &r.MediumTerm
	case types.HorizonLongTerm:
		return &r.LongTerm
	default:
		return nil
	}
}

// Len returns the total number of recommendations across all horizons
func (r *Recommendations) Len() int {
	return len(r.QuickWins) + len(r.MediumTerm) + len(r.LongTerm)
}

// Assessment is the aggregate root of a self-assessment. ResilienceScore and
// Recommendations are filled in by a scoring pass.
type Assessment struct {
	Name                string               `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Assets              []Asset              `json:"assets" yaml:"assets" toml:"assets" validate:"dive"`
	Dependencies        []Dependency         `json:"dependencies" yaml:"dependencies" toml:"dependencies" validate:"dive"`
	Contingencies       []Contingency        `json:"contingencies,omitempty" yaml:"contingencies,omitempty" toml:"contingencies,omitempty" validate:"dive"`
	OrganizationProfile *OrganizationProfile `json:"organizationProfile,omitempty" yaml:"organizationProfile,omitempty" toml:"organizationProfile,omitempty"`
	ResilienceScore     *float64             `json:"resilienceScore,omitempty" yaml:"resilienceScore,omitempty" toml:"resilienceScore,omitempty"`
	Recommendations     *Recommendations     `json:"recommendations,omitempty" yaml:"recommendations,omitempty" toml:"recommendations,omitempty"`
}

// IsWellFormed reports whether the assessment carries both an asset list and a
// dependency list. Engines return their empty result for anything else.
func (a *Assessment) IsWellFormed() bool {
	return a != nil && a.Assets != nil && a.Dependencies != nil
}

// DependencyFor returns the first dependency record referencing the asset
func (a *Assessment) DependencyFor(id AssetID) (Dependency, bool) {
	for _, d := range a.Dependencies {
		if d.AssetID == id {
			return d, true
		}
	}
	return Dependency{}, false
}

// ContingencyFor returns the first contingency record referencing the asset
func (a *Assessment) ContingencyFor(id AssetID) (Contingency, bool) {
	for _, c := range a.Contingencies {
		if c.AssetID == id {
			return c, true
		}
	}
	return Contingency{}, false
}

// AssetByID returns the asset with the given ID
func (a *Assessment) AssetByID(id AssetID) (Asset, bool) {
	for _, asset := range a.Assets {
		if asset.ID == id {
			return asset, true
		}
	}
	return Asset{}, false
}

// Industry returns the profile industry, or empty if there is no profile
func (a *Assessment) Industry() types.Industry {
	if a.OrganizationProfile == nil {
		return ""
	}
	return a.OrganizationProfile.Industry
}

// Size returns the profile size, or empty if there is no profile
func (a *Assessment) Size() types.OrgSize {
	if a.OrganizationProfile == nil {
		return ""
	}
	return a.OrganizationProfile.Size
}
