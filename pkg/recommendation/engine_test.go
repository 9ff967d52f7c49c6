package recommendation_test

import (
	"math/rand/v2"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/aegis/pkg/domain/model"
	"github.com/secmon-lab/aegis/pkg/domain/types"
	"github.com/secmon-lab/aegis/pkg/recommendation"
)

// scriptedRand returns the scripted values in order, cycling when exhausted
type scriptedRand struct {
	values []int
	calls  []int
}

func (r *scriptedRand) IntN(n int) int {
	r.calls = append(r.calls, n)
	v := r.values[(len(r.calls)-1)%len(r.values)]
	return v % n
}

func titles(recs []model.Recommendation) []string {
	result := make([]string, len(recs))
	for i, r := range recs {
		result[i] = r.Title
	}
	return result
}

func assessmentWith(deps ...model.Dependency) *model.Assessment {
	a := &model.Assessment{Assets: []model.Asset{}, Dependencies: deps}
	for _, d := range deps {
		a.Assets = append(a.Assets, model.Asset{
			ID:       d.AssetID,
			Name:     "Asset " + d.AssetID.String(),
			Category: types.CategorySystems,
		})
	}
	return a
}

func TestEngine_HighRiskAssets(t *testing.T) {
	a := &model.Assessment{
		Assets: []model.Asset{
			{ID: "edge", Name: "Edge"},
			{ID: "low", Name: "Low"},
			{ID: "top", Name: "Top"},
			{ID: "unrated", Name: "Unrated"},
			{ID: "edge2", Name: "Edge Two"},
		},
		Dependencies: []model.Dependency{
			{AssetID: "edge", Importance: 10, Replaceability: 6, Concentration: 10},
			{AssetID: "low", Importance: 2, Replaceability: 2, Concentration: 2},
			{AssetID: "top", Importance: 10, Replaceability: 10, Concentration: 10},
			{AssetID: "edge2", Importance: 6, Replaceability: 10, Concentration: 10},
		},
	}

	t.Run("default threshold is inclusive", func(t *testing.T) {
		assets := recommendation.New().HighRiskAssets(a)
		gt.Array(t, assets).Length(3)
		gt.Value(t, assets[0].Asset.ID).Equal(model.AssetID("top"))
		gt.Value(t, assets[0].RiskScore).Equal(10.0)
		gt.Value(t, assets[1].Asset.ID).Equal(model.AssetID("edge"))
		gt.Value(t, assets[1].RiskScore).Equal(6.0)
		gt.Value(t, assets[2].Asset.ID).Equal(model.AssetID("edge2"))
	})

	t.Run("custom threshold", func(t *testing.T) {
		assets := recommendation.New(recommendation.WithThreshold(8)).HighRiskAssets(a)
		gt.Array(t, assets).Length(1)
		gt.Value(t, assets[0].Asset.Name).Equal("Top")
	})

	t.Run("malformed assessment", func(t *testing.T) {
		gt.Array(t, recommendation.New().HighRiskAssets(&model.Assessment{})).Length(0)
	})
}

func TestEngine_Generate(t *testing.T) {
	t.Run("single critical asset", func(t *testing.T) {
		rnd := &scriptedRand{values: []int{0, 4}}
		a := assessmentWith(model.Dependency{AssetID: "a1", Importance: 9, Replaceability: 9, Concentration: 9})

		recs := recommendation.New(recommendation.WithRand(rnd)).Generate(a)

		gt.Array(t, rnd.calls).Length(2)
		gt.Value(t, rnd.calls[0]).Equal(5)

		gt.Array(t, recs.QuickWins).Length(1)
		gt.Value(t, recs.QuickWins[0].Title).Equal("Document Critical Processes")
		gt.Value(t, recs.QuickWins[0].Description).Equal(
			"Create detailed documentation for critical processes related to Asset a1. Include step-by-step procedures, key contacts, and troubleshooting guides.")

		gt.Value(t, titles(recs.MediumTerm)).Equal([]string{
			"Conduct Continuity Drills",
			"Develop Formal Diversification Strategy",
			"Systems & Technology Resilience Strategy",
		})
		gt.Value(t, recs.MediumTerm[2].Description).Equal(
			"Develop a focused resilience strategy for your systems & technology assets, which currently represent your most vulnerable category.")

		gt.Array(t, recs.LongTerm).Length(1)
		gt.Value(t, recs.LongTerm[0].Title).Equal("Invest in Resilience Training")
	})

	t.Run("extreme risk adds long term advice", func(t *testing.T) {
		rnd := &scriptedRand{values: []int{1, 1, 1}}
		a := assessmentWith(model.Dependency{AssetID: "a1", Importance: 10, Replaceability: 9, Concentration: 10})

		recs := recommendation.New(recommendation.WithRand(rnd)).Generate(a)
		gt.Array(t, rnd.calls).Length(3)
		gt.Value(t, recs.LongTerm[0].Title).Equal("Strategic Diversification Plan")
		gt.Value(t, recs.LongTerm[0].Description).Equal(
			"Develop a long-term diversification plan to reduce overall dependency on systems resources like Asset a1.")
	})

	t.Run("minimum population", func(t *testing.T) {
		rnd := &scriptedRand{values: []int{0}}
		a := assessmentWith(model.Dependency{AssetID: "a1", Importance: 1, Replaceability: 1, Concentration: 1})

		recs := recommendation.New(recommendation.WithRand(rnd)).Generate(a)
		gt.Array(t, rnd.calls).Length(0)
		gt.Value(t, titles(recs.QuickWins)).Equal([]string{"Conduct Comprehensive Resilience Assessment"})
		gt.Value(t, titles(recs.MediumTerm)).Equal([]string{"Develop Organization-Wide Resilience Policy"})
		gt.Value(t, titles(recs.LongTerm)).Equal([]string{"Invest in Resilience Training"})
	})

	t.Run("empty lists still get defaults", func(t *testing.T) {
		recs := recommendation.New().Generate(&model.Assessment{
			Assets:       []model.Asset{},
			Dependencies: []model.Dependency{},
		})
		gt.Value(t, recs.Len()).Equal(3)
	})

	t.Run("malformed assessment yields empty buckets", func(t *testing.T) {
		for _, a := range []*model.Assessment{nil, {}, {Assets: []model.Asset{}}} {
			recs := recommendation.New().Generate(a)
			gt.Array(t, recs.QuickWins).Length(0)
			gt.Array(t, recs.MediumTerm).Length(0)
			gt.Array(t, recs.LongTerm).Length(0)
		}
	})

	t.Run("same template is not repeated", func(t *testing.T) {
		rnd := &scriptedRand{values: []int{4}}
		a := assessmentWith(
			model.Dependency{AssetID: "a1", Importance: 10, Replaceability: 10, Concentration: 10},
			model.Dependency{AssetID: "a2", Importance: 10, Replaceability: 10, Concentration: 10},
		)

		recs := recommendation.New(recommendation.WithRand(rnd)).Generate(a)
		gt.Array(t, rnd.calls).Length(6)
		gt.Value(t, titles(recs.QuickWins)).Equal([]string{"Create Emergency Contact List"})
		gt.Value(t, titles(recs.LongTerm)).Equal([]string{"Foster Culture of Resilience"})
		gt.Value(t, recs.MediumTerm[0].Title).Equal("Conduct Continuity Drills")
	})

	t.Run("different templates for different assets", func(t *testing.T) {
		rnd := &scriptedRand{values: []int{0, 2}}
		a := assessmentWith(
			model.Dependency{AssetID: "a1", Importance: 8, Replaceability: 8, Concentration: 10},
			model.Dependency{AssetID: "a2", Importance: 10, Replaceability: 8, Concentration: 8},
		)

		recs := recommendation.New(recommendation.WithRand(rnd)).Generate(a)
		gt.Value(t, titles(recs.QuickWins)).Equal([]string{
			"Document Critical Processes",
			"Cross-Train Personnel",
		})
	})

	t.Run("industry recommendations", func(t *testing.T) {
		a := assessmentWith(model.Dependency{AssetID: "a1", Importance: 1, Replaceability: 1, Concentration: 1})
		a.OrganizationProfile = &model.OrganizationProfile{Industry: types.IndustryTechnology}

		recs := recommendation.New().Generate(a)
		gt.Value(t, titles(recs.QuickWins)).Equal([]string{"Document System Architecture"})
		gt.Value(t, titles(recs.MediumTerm)).Equal([]string{"Implement Service Redundancy"})
		gt.Value(t, titles(recs.LongTerm)).Equal([]string{"Adopt Microservices Architecture"})

		a.OrganizationProfile.Industry = types.IndustrySports
		recs = recommendation.New().Generate(a)
		gt.Value(t, titles(recs.MediumTerm)).Equal([]string{"Develop Bench Strength"})

		a.OrganizationProfile.Industry = types.IndustryFinance
		recs = recommendation.New().Generate(a)
		gt.Value(t, titles(recs.QuickWins)).Equal([]string{"Conduct Comprehensive Resilience Assessment"})
	})

	t.Run("weakest category tie keeps first category", func(t *testing.T) {
		a := &model.Assessment{
			Assets: []model.Asset{
				{ID: "p", Name: "Founder", Category: types.CategoryPeople},
				{ID: "m", Name: "Distributor", Category: types.CategoryMarket},
			},
			Dependencies: []model.Dependency{
				{AssetID: "p", Importance: 10, Replaceability: 10, Concentration: 6},
				{AssetID: "m", Importance: 10, Replaceability: 10, Concentration: 6},
			},
		}

		recs := recommendation.New(recommendation.WithRand(&scriptedRand{values: []int{0}})).Generate(a)
		gt.Value(t, titles(recs.MediumTerm)).Equal([]string{"People Resilience Strategy"})
	})

	t.Run("seeded source is deterministic", func(t *testing.T) {
		a := assessmentWith(
			model.Dependency{AssetID: "a1", Importance: 10, Replaceability: 10, Concentration: 10},
			model.Dependency{AssetID: "a2", Importance: 9, Replaceability: 10, Concentration: 10},
		)
		first := recommendation.New(recommendation.WithRand(rand.New(rand.NewPCG(7, 7)))).Generate(a)
		second := recommendation.New(recommendation.WithRand(rand.New(rand.NewPCG(7, 7)))).Generate(a)
		gt.Value(t, *first).Equal(*second)
	})
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		asset    string
		category string
		want     string
	}{
		{
			name:     "both placeholders",
			input:    "{assetCategory} resources like {assetName}",
			asset:    "CRM",
			category: "systems",
			want:     "systems resources like CRM",
		},
		{
			name:  "empty category keeps placeholder",
			input: "related to {assetCategory} near {assetName}",
			asset: "HQ",
			want:  "related to {assetCategory} near HQ",
		},
		{
			name:  "nothing to substitute",
			input: "plain {assetName}",
			want:  "plain {assetName}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, recommendation.Substitute(tt.input, tt.asset, tt.category)).Equal(tt.want)
		})
	}
}
