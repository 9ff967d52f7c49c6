package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aegis/pkg/domain/model"
	"github.com/secmon-lab/aegis/pkg/utils/logging"
)

// assessmentRepository stores records as encoded JSON so that callers never
// share memory with the store.
type assessmentRepository struct {
	mu      sync.RWMutex
	records map[model.RecordID][]byte
}

func newAssessmentRepository() *assessmentRepository {
	return &assessmentRepository{
		records: make(map[model.RecordID][]byte),
	}
}

func (r *assessmentRepository) Put(ctx context.Context, record *model.Record) (model.RecordID, error) {
	if record == nil {
		return "", goerr.New("record is nil")
	}

	stored := *record
	if stored.ID == "" {
		stored.ID = model.NewRecordID()
	}

	raw, err := json.Marshal(&stored)
	if err != nil {
		return "", goerr.Wrap(err, "failed to encode record", goerr.V("id", stored.ID))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[stored.ID] = raw

	return stored.ID, nil
}

func (r *assessmentRepository) Get(ctx context.Context, id model.RecordID) (*model.Record, error) {
	r.mu.RLock()
	raw, exists := r.records[id]
	r.mu.RUnlock()

	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "assessment not found", goerr.V("id", id))
	}

	var record model.Record
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, goerr.Wrap(err, "failed to decode record", goerr.V("id", id))
	}
	return &record, nil
}

func (r *assessmentRepository) List(ctx context.Context) ([]*model.RecordSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]*model.RecordSummary, 0, len(r.records))
	for id, raw := range r.records {
		var record model.Record
		if err := json.Unmarshal(raw, &record); err != nil {
			logging.From(ctx).Warn("skip undecodable assessment record", "id", id, "error", err)
			continue
		}
		summaries = append(summaries, record.Summary())
	}

	model.SortSummaries(summaries)
	return summaries, nil
}

func (r *assessmentRepository) Delete(ctx context.Context, id model.RecordID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[id]; !exists {
		return false, nil
	}
	delete(r.records, id)
	return true, nil
}

func (r *assessmentRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.records)
	return nil
}
