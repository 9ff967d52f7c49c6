package model

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks rating ranges, required identifiers and enum values of an
// input assessment. It is applied to decoded input only; the engines accept any
// assessment and fall back to defaults.
func (a *Assessment) Validate() error {
	if a == nil {
		return goerr.Wrap(ErrInvalidAssessment, "assessment is empty")
	}

	if err := structValidator.Struct(a); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return goerr.Wrap(ErrInvalidAssessment, "field validation failed",
				goerr.V(FieldKey, fe.Namespace()),
				goerr.V(RuleKey, fe.Tag()),
				goerr.V(ValueKey, fe.Value()),
			)
		}
		return goerr.Wrap(err, "failed to validate assessment")
	}

	for i, asset := range a.Assets {
		if err := asset.Category.Validate(); err != nil {
			return goerr.Wrap(ErrInvalidAssessment, err.Error(), goerr.V(FieldKey, "assets"), goerr.V(IndexKey, i))
		}
	}
	for i, d := range a.Dependencies {
		if err := d.TimeToReplace.Validate(); err != nil {
			return goerr.Wrap(ErrInvalidAssessment, err.Error(), goerr.V(FieldKey, "dependencies"), goerr.V(IndexKey, i))
		}
	}
	if p := a.OrganizationProfile; p != nil {
		if err := p.Industry.Validate(); err != nil {
			return goerr.Wrap(ErrInvalidAssessment, err.Error(), goerr.V(FieldKey, "organizationProfile.industry"))
		}
		if err := p.Size.Validate(); err != nil {
			return goerr.Wrap(ErrInvalidAssessment, err.Error(), goerr.V(FieldKey, "organizationProfile.size"))
		}
	}

	return nil
}
