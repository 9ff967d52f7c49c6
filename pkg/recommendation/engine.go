// Package recommendation turns scored findings into advice grouped by time
// horizon. Asset specific advice is drawn at random from a fixed catalog; the
// rest is rule based.
package recommendation

import (
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/secmon-lab/aegis/pkg/domain/interfaces"
	"github.com/secmon-lab/aegis/pkg/domain/model"
	"github.com/secmon-lab/aegis/pkg/domain/types"
	"github.com/secmon-lab/aegis/pkg/scoring"
)

const (
	// DefaultHighRiskThreshold is the minimum risk score of a high-risk asset
	DefaultHighRiskThreshold = 6.0

	// mediumTermRisk and longTermRisk are the risk scores above which an
	// asset also gets medium and long term advice
	mediumTermRisk = 7.0
	longTermRisk   = 8.5

	// diversificationFloor is the diversification score under which a
	// diversification strategy is recommended
	diversificationFloor = 5.0

	// categoryFloor is the category resilience under which the weakest
	// category gets a dedicated strategy
	categoryFloor = 50.0
)

// HighRiskAsset is an asset whose risk score reached the threshold
type HighRiskAsset struct {
	Asset     model.Asset
	RiskScore float64
}

// globalRand draws from the goroutine-safe top level source of math/rand/v2
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Engine generates recommendations for an assessment
type Engine struct {
	threshold float64

	mu  sync.Mutex
	rnd interfaces.Rand
}

// Option configures Engine
type Option func(*Engine)

// WithRand sets the random source used to pick templates
func WithRand(rnd interfaces.Rand) Option {
	return func(e *Engine) {
		e.rnd = rnd
	}
}

// WithThreshold sets the high-risk threshold
func WithThreshold(threshold float64) Option {
	return func(e *Engine) {
		e.threshold = threshold
	}
}

// New creates an Engine. Without options it uses DefaultHighRiskThreshold and
// the process wide random source.
func New(opts ...Option) *Engine {
	e := &Engine{
		threshold: DefaultHighRiskThreshold,
		rnd:       globalRand{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Threshold returns the configured high-risk threshold
func (e *Engine) Threshold() float64 {
	return e.threshold
}

// HighRiskAssets returns the assets whose risk score is at least the
// threshold, ordered by descending risk. Equal scores keep asset order.
func (e *Engine) HighRiskAssets(a *model.Assessment) []HighRiskAsset {
	var result []HighRiskAsset
	if !a.IsWellFormed() {
		return result
	}

	for _, asset := range a.Assets {
		d, ok := a.DependencyFor(asset.ID)
		if !ok {
			continue
		}
		if risk := scoring.RiskScore(d); risk >= e.threshold {
			result = append(result, HighRiskAsset{Asset: asset, RiskScore: risk})
		}
	}

	slices.SortStableFunc(result, func(x, y HighRiskAsset) int {
		switch {
		case x.RiskScore > y.RiskScore:
			return -1
		case x.RiskScore < y.RiskScore:
			return 1
		default:
			return 0
		}
	})
	return result
}

// Generate builds the three recommendation buckets. A malformed assessment
// yields three empty buckets; otherwise every bucket has at least one entry.
func (e *Engine) Generate(a *model.Assessment) *model.Recommendations {
	recs := model.NewRecommendations()
	if !a.IsWellFormed() {
		return recs
	}

	for _, h := range e.HighRiskAssets(a) {
		e.addFromCatalog(recs, types.HorizonQuickWins, h.Asset)
		if h.RiskScore > mediumTermRisk {
			e.addFromCatalog(recs, types.HorizonMediumTerm, h.Asset)
			if h.RiskScore > longTermRisk {
				e.addFromCatalog(recs, types.HorizonLongTerm, h.Asset)
			}
		}
	}

	for _, rec := range industryRecommendations(a.Industry()) {
		add(recs.Bucket(rec.horizon), rec.Recommendation)
	}

	if scoring.Diversification(a).Score < diversificationFloor {
		add(&recs.MediumTerm, diversificationStrategy)
	}

	if category, ok := weakestCategory(scoring.CategoryMetrics(a)); ok {
		add(&recs.MediumTerm, categoryStrategy(category))
	}

	for _, h := range types.AllHorizons() {
		bucket := recs.Bucket(h)
		if len(*bucket) == 0 {
			*bucket = append(*bucket, defaultRecommendation(h))
		}
	}

	return recs
}

func (e *Engine) addFromCatalog(recs *model.Recommendations, h types.Horizon, asset model.Asset) {
	catalog := templates(h)
	if len(catalog) == 0 {
		return
	}

	e.mu.Lock()
	picked := catalog[e.rnd.IntN(len(catalog))]
	e.mu.Unlock()

	add(recs.Bucket(h), model.Recommendation{
		Title:       picked.title,
		Description: Substitute(picked.description, asset.Name, asset.Category.String()),
	})
}

// add appends rec unless the bucket already holds an entry with the same
// title or the same description.
func add(bucket *[]model.Recommendation, rec model.Recommendation) {
	if bucket == nil {
		return
	}
	exists := slices.ContainsFunc(*bucket, func(r model.Recommendation) bool {
		return r.Title == rec.Title || r.Description == rec.Description
	})
	if !exists {
		*bucket = append(*bucket, rec)
	}
}

// weakestCategory returns the first category with the strictly lowest
// resilience score, if that score is below categoryFloor.
func weakestCategory(metrics model.CategoryMetrics) (types.Category, bool) {
	var (
		lowest   types.Category
		found    bool
		minScore = 100.0
	)
	for _, m := range metrics {
		if m.ResilienceScore < minScore {
			minScore = m.ResilienceScore
			lowest = m.Category
			found = true
		}
	}
	if !found || minScore >= categoryFloor {
		return "", false
	}
	return lowest, true
}
