package badger

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aegis/pkg/domain/model"
	"github.com/secmon-lab/aegis/pkg/utils/logging"
	"github.com/timshannon/badgerhold/v4"
)

// assessmentEntry is the stored form of a record. The assessment itself is
// kept as JSON so the wire format matches export files.
type assessmentEntry struct {
	ID        string `badgerhold:"key"`
	Name      string
	Timestamp int64
	Payload   []byte
}

type assessmentRepository struct {
	store *badgerhold.Store
}

func newAssessmentRepository(store *badgerhold.Store) *assessmentRepository {
	return &assessmentRepository{store: store}
}

func (r *assessmentRepository) Put(ctx context.Context, record *model.Record) (model.RecordID, error) {
	if record == nil {
		return "", goerr.New("record is nil")
	}

	id := record.ID
	if id == "" {
		id = model.NewRecordID()
	}

	payload, err := json.Marshal(record.Data)
	if err != nil {
		return "", goerr.Wrap(err, "failed to encode assessment", goerr.V("id", id))
	}

	entry := &assessmentEntry{
		ID:        id.String(),
		Name:      record.Name,
		Timestamp: record.Timestamp,
		Payload:   payload,
	}
	if err := r.store.Upsert(entry.ID, entry); err != nil {
		return "", goerr.Wrap(err, "failed to put assessment", goerr.V("id", id))
	}

	return id, nil
}

func (r *assessmentRepository) Get(ctx context.Context, id model.RecordID) (*model.Record, error) {
	var entry assessmentEntry
	if err := r.store.Get(id.String(), &entry); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, goerr.Wrap(ErrNotFound, "assessment not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get assessment", goerr.V("id", id))
	}

	return entry.toRecord(id)
}

func (r *assessmentRepository) List(ctx context.Context) ([]*model.RecordSummary, error) {
	var entries []assessmentEntry
	if err := r.store.Find(&entries, nil); err != nil {
		return nil, goerr.Wrap(err, "failed to list assessments")
	}

	summaries := make([]*model.RecordSummary, 0, len(entries))
	for _, entry := range entries {
		if !json.Valid(entry.Payload) {
			logging.From(ctx).Warn("skip undecodable assessment record", "id", entry.ID)
			continue
		}
		summaries = append(summaries, &model.RecordSummary{
			ID:        model.RecordID(entry.ID),
			Name:      entry.Name,
			Timestamp: entry.Timestamp,
		})
	}

	model.SortSummaries(summaries)
	return summaries, nil
}

func (r *assessmentRepository) Delete(ctx context.Context, id model.RecordID) (bool, error) {
	var entry assessmentEntry
	if err := r.store.Get(id.String(), &entry); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to look up assessment", goerr.V("id", id))
	}

	if err := r.store.Delete(id.String(), &assessmentEntry{}); err != nil {
		return false, goerr.Wrap(err, "failed to delete assessment", goerr.V("id", id))
	}
	return true, nil
}

func (r *assessmentRepository) Clear(ctx context.Context) error {
	if err := r.store.DeleteMatching(&assessmentEntry{}, nil); err != nil {
		return goerr.Wrap(err, "failed to clear assessments")
	}
	return nil
}

func (e *assessmentEntry) toRecord(id model.RecordID) (*model.Record, error) {
	var data *model.Assessment
	if err := json.Unmarshal(e.Payload, &data); err != nil {
		return nil, goerr.Wrap(err, "failed to decode assessment", goerr.V("id", id))
	}
	return &model.Record{
		ID:        id,
		Name:      e.Name,
		Timestamp: e.Timestamp,
		Data:      data,
	}, nil
}
