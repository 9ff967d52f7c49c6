package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/aegis/pkg/domain/model"
	"github.com/secmon-lab/aegis/pkg/domain/types"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func validAssessment() *model.Assessment {
	return &model.Assessment{
		Assets: []model.Asset{
			{ID: "a1", Name: "Lead Engineer", Category: types.CategoryPeople},
		},
		Dependencies: []model.Dependency{
			{AssetID: "a1", Importance: 9, Replaceability: 8, TimeToReplace: types.TimeToReplaceMonths, Concentration: 7},
		},
		Contingencies: []model.Contingency{
			{AssetID: "a1", Backup: 3, KnowledgeSharing: 4, Documentation: 2},
		},
		OrganizationProfile: &model.OrganizationProfile{
			Industry: types.IndustryTechnology,
			Size:     types.OrgSizeSmall,
		},
	}
}

func TestAssessment_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(a *model.Assessment)
		wantErr bool
	}{
		{
			name:   "valid assessment",
			modify: func(a *model.Assessment) {},
		},
		{
			name: "missing ratings are accepted",
			modify: func(a *model.Assessment) {
				a.Dependencies[0] = model.Dependency{AssetID: "a1"}
			},
		},
		{
			name: "importance above range",
			modify: func(a *model.Assessment) {
				a.Dependencies[0].Importance = 11
			},
			wantErr: true,
		},
		{
			name: "negative concentration",
			modify: func(a *model.Assessment) {
				a.Dependencies[0].Concentration = -1
			},
			wantErr: true,
		},
		{
			name: "contingency backup above range",
			modify: func(a *model.Assessment) {
				a.Contingencies[0].Backup = 12
			},
			wantErr: true,
		},
		{
			name: "asset without name",
			modify: func(a *model.Assessment) {
				a.Assets[0].Name = ""
			},
			wantErr: true,
		},
		{
			name: "unknown category",
			modify: func(a *model.Assessment) {
				a.Assets[0].Category = "vehicles"
			},
			wantErr: true,
		},
		{
			name: "unknown time to replace",
			modify: func(a *model.Assessment) {
				a.Dependencies[0].TimeToReplace = "decades"
			},
			wantErr: true,
		},
		{
			name: "unknown industry",
			modify: func(a *model.Assessment) {
				a.OrganizationProfile.Industry = "aerospace"
			},
			wantErr: true,
		},
		{
			name: "unknown size",
			modify: func(a *model.Assessment) {
				a.OrganizationProfile.Size = "huge"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAssessment()
			tt.modify(a)
			err := a.Validate()
			if tt.wantErr {
				gt.Error(t, err).Is(model.ErrInvalidAssessment)
			} else {
				gt.NoError(t, err)
			}
		})
	}

	t.Run("nil assessment", func(t *testing.T) {
		var a *model.Assessment
		gt.Error(t, a.Validate()).Is(model.ErrInvalidAssessment)
	})
}

func TestAssessment_Lookups(t *testing.T) {
	a := validAssessment()
	a.Dependencies = append(a.Dependencies, model.Dependency{AssetID: "a1", Importance: 1})

	d, ok := a.DependencyFor("a1")
	gt.Bool(t, ok).True()
	gt.Value(t, d.Importance).Equal(9)

	_, ok = a.DependencyFor("missing")
	gt.Bool(t, ok).False()

	gt.Value(t, model.Dependency{}.ImportanceOrDefault()).Equal(model.DefaultRating)
	gt.Value(t, model.Dependency{Concentration: 2}.ConcentrationOrDefault()).Equal(2)

	gt.Bool(t, a.IsWellFormed()).True()
	gt.Bool(t, (&model.Assessment{Assets: []model.Asset{}}).IsWellFormed()).False()

	var empty model.Assessment
	gt.Value(t, empty.Industry()).Equal(types.Industry(""))
}

func TestNewRecord(t *testing.T) {
	t.Run("falls back to assessment name then default", func(t *testing.T) {
		rec := model.NewRecord("", "", &model.Assessment{Name: "Q3 review"}, fixedNow)
		gt.Value(t, rec.Name).Equal("Q3 review")
		gt.Value(t, rec.ID).NotEqual(model.RecordID(""))
		gt.Value(t, rec.Timestamp).Equal(fixedNow.UnixMilli())

		rec = model.NewRecord("r1", "", &model.Assessment{}, fixedNow)
		gt.Value(t, rec.Name).Equal(model.DefaultRecordName)
		gt.Value(t, rec.ID).Equal(model.RecordID("r1"))
	})

	t.Run("summary", func(t *testing.T) {
		rec := model.NewRecord("r1", "Named", nil, fixedNow)
		s := rec.Summary()
		gt.Value(t, s.ID).Equal(rec.ID)
		gt.Value(t, s.Name).Equal("Named")
		gt.Bool(t, rec.Time().Equal(fixedNow)).True()
	})
}

func TestRecommendations_Bucket(t *testing.T) {
	recs := model.NewRecommendations()
	*recs.Bucket(types.HorizonLongTerm) = append(*recs.Bucket(types.HorizonLongTerm), model.Recommendation{Title: "x"})
	gt.Array(t, recs.LongTerm).Length(1)
	gt.Value(t, recs.Len()).Equal(1)
	gt.Bool(t, recs.Bucket(types.Horizon("never")) == nil).True()
}
