package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aegis/pkg/domain/interfaces"
	"github.com/secmon-lab/aegis/pkg/domain/model"
	"github.com/secmon-lab/aegis/pkg/domain/model/config"
	"github.com/secmon-lab/aegis/pkg/domain/types"
	"github.com/secmon-lab/aegis/pkg/recommendation"
	"github.com/secmon-lab/aegis/pkg/scoring"
	"github.com/secmon-lab/aegis/pkg/utils/logging"
)

type AssessmentUseCase struct {
	repo   interfaces.Repository
	cfg    *config.Engine
	engine *recommendation.Engine
	now    func() time.Time
}

func NewAssessmentUseCase(repo interfaces.Repository, cfg *config.Engine, rnd interfaces.Rand, now func() time.Time) *AssessmentUseCase {
	if cfg == nil {
		cfg = config.DefaultEngine()
	}
	if now == nil {
		now = time.Now
	}

	opts := []recommendation.Option{recommendation.WithThreshold(cfg.HighRiskThreshold)}
	if rnd != nil {
		opts = append(opts, recommendation.WithRand(rnd))
	}

	return &AssessmentUseCase{
		repo:   repo,
		cfg:    cfg,
		engine: recommendation.New(opts...),
		now:    now,
	}
}

// Evaluate runs one scoring pass. The assessment's ResilienceScore and
// Recommendations are replaced with the outcome.
func (uc *AssessmentUseCase) Evaluate(ctx context.Context, a *model.Assessment) *model.Report {
	score := scoring.ResilienceScore(a)
	recs := uc.engine.Generate(a)

	report := &model.Report{
		ResilienceScore: score,
		Band:            types.ScoreBandOf(score),
		TopRisks:        scoring.TopRisks(a, uc.cfg.TopRisks),
		CategoryMetrics: scoring.CategoryMetrics(a),
		Diversification: scoring.Diversification(a),
		Heatmap:         scoring.Heatmap(a, uc.cfg.HeatmapSize),
		Recommendations: *recs,
	}

	if a != nil {
		report.Name = a.Name
		a.ResilienceScore = &score
		a.Recommendations = recs
	}

	logging.From(ctx).Debug("assessment evaluated",
		"name", report.Name,
		"score", score,
		"band", report.Band,
		"recommendations", recs.Len(),
	)
	return report
}

func (uc *AssessmentUseCase) repository() (interfaces.AssessmentRepository, error) {
	if uc.repo == nil {
		return nil, goerr.Wrap(ErrRepositoryNotConfigured, "assessment repository is required")
	}
	return uc.repo.Assessment(), nil
}

// Save stores the assessment as a new record
func (uc *AssessmentUseCase) Save(ctx context.Context, name string, a *model.Assessment) (*model.Record, error) {
	if a == nil {
		return nil, goerr.Wrap(model.ErrInvalidAssessment, "assessment is empty")
	}

	repo, err := uc.repository()
	if err != nil {
		return nil, err
	}

	record := model.NewRecord("", name, a, uc.now())
	if _, err := repo.Put(ctx, record); err != nil {
		return nil, goerr.Wrap(err, "failed to save assessment")
	}

	logging.From(ctx).Info("assessment saved", "id", record.ID, "name", record.Name)
	return record, nil
}

// Load returns a stored record
func (uc *AssessmentUseCase) Load(ctx context.Context, id model.RecordID) (*model.Record, error) {
	repo, err := uc.repository()
	if err != nil {
		return nil, err
	}

	record, err := repo.Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load assessment", goerr.V("id", id))
	}
	return record, nil
}

// List returns summaries of every stored record, oldest first
func (uc *AssessmentUseCase) List(ctx context.Context) ([]*model.RecordSummary, error) {
	repo, err := uc.repository()
	if err != nil {
		return nil, err
	}

	summaries, err := repo.List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list assessments")
	}
	return summaries, nil
}

// Delete removes a record and reports whether it existed
func (uc *AssessmentUseCase) Delete(ctx context.Context, id model.RecordID) (bool, error) {
	repo, err := uc.repository()
	if err != nil {
		return false, err
	}

	deleted, err := repo.Delete(ctx, id)
	if err != nil {
		return false, goerr.Wrap(err, "failed to delete assessment", goerr.V("id", id))
	}

	logging.From(ctx).Info("assessment deleted", "id", id, "existed", deleted)
	return deleted, nil
}

// Clear removes every stored record
func (uc *AssessmentUseCase) Clear(ctx context.Context) error {
	repo, err := uc.repository()
	if err != nil {
		return err
	}

	if err := repo.Clear(ctx); err != nil {
		return goerr.Wrap(err, "failed to clear assessments")
	}

	logging.From(ctx).Info("all assessments cleared")
	return nil
}

// Export writes the stored record as indented JSON
func (uc *AssessmentUseCase) Export(ctx context.Context, id model.RecordID, w io.Writer) error {
	record, err := uc.Load(ctx, id)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(record); err != nil {
		return goerr.Wrap(err, "failed to export assessment", goerr.V("id", id))
	}
	return nil
}

// Import reads an exported record, or a bare assessment document, and stores
// it. An exported record keeps its ID and timestamp, so importing twice
// overwrites rather than duplicates.
func (uc *AssessmentUseCase) Import(ctx context.Context, r io.Reader) (*model.Record, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read import data")
	}

	record, err := parseImport(raw)
	if err != nil {
		return nil, err
	}
	if err := record.Data.Validate(); err != nil {
		return nil, err
	}

	repo, err := uc.repository()
	if err != nil {
		return nil, err
	}

	stored := model.NewRecord(record.ID, record.Name, record.Data, uc.now())
	if record.Timestamp != 0 {
		stored.Timestamp = record.Timestamp
	}
	if _, err := repo.Put(ctx, stored); err != nil {
		return nil, goerr.Wrap(err, "failed to store imported assessment")
	}

	logging.From(ctx).Info("assessment imported", "id", stored.ID, "name", stored.Name)
	return stored, nil
}

func parseImport(raw []byte) (*model.Record, error) {
	var record model.Record
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, goerr.Wrap(model.ErrInvalidAssessment, "import data is not valid JSON",
			goerr.V("error", err.Error()))
	}
	if record.Data != nil {
		return &record, nil
	}

	var a model.Assessment
	if err := json.NewDecoder(bytes.NewReader(raw)).Decode(&a); err != nil {
		return nil, goerr.Wrap(model.ErrInvalidAssessment, "import data is not an assessment",
			goerr.V("error", err.Error()))
	}
	if !a.IsWellFormed() {
		return nil, goerr.Wrap(model.ErrInvalidAssessment, "import data has neither a record nor assessment lists")
	}
	return &model.Record{Data: &a}, nil
}
