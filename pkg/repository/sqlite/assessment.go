package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aegis/pkg/domain/model"
	"github.com/secmon-lab/aegis/pkg/utils/logging"
)

type assessmentRepository struct {
	db *sql.DB
}

func newAssessmentRepository(db *sql.DB) *assessmentRepository {
	return &assessmentRepository{db: db}
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

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO assessments (id, name, timestamp, payload) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, timestamp = excluded.timestamp, payload = excluded.payload`,
		id.String(), record.Name, record.Timestamp, string(payload),
	)
	if err != nil {
		return "", goerr.Wrap(err, "failed to put assessment", goerr.V("id", id))
	}

	return id, nil
}

func (r *assessmentRepository) Get(ctx context.Context, id model.RecordID) (*model.Record, error) {
	var (
		name      string
		timestamp int64
		payload   string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT name, timestamp, payload FROM assessments WHERE id = ?`, id.String(),
	).Scan(&name, &timestamp, &payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(ErrNotFound, "assessment not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get assessment", goerr.V("id", id))
	}

	var data *model.Assessment
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, goerr.Wrap(err, "failed to decode assessment", goerr.V("id", id))
	}

	return &model.Record{
		ID:        id,
		Name:      name,
		Timestamp: timestamp,
		Data:      data,
	}, nil
}

func (r *assessmentRepository) List(ctx context.Context) ([]*model.RecordSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, timestamp, payload FROM assessments ORDER BY timestamp, id`,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list assessments")
	}
	defer func() { _ = rows.Close() }()

	summaries := []*model.RecordSummary{}
	for rows.Next() {
		var (
			summary model.RecordSummary
			payload string
		)
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.Timestamp, &payload); err != nil {
			return nil, goerr.Wrap(err, "failed to scan assessment")
		}
		if !json.Valid([]byte(payload)) {
			logging.From(ctx).Warn("skip undecodable assessment record", "id", summary.ID)
			continue
		}
		summaries = append(summaries, &summary)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate assessments")
	}

	return summaries, nil
}

func (r *assessmentRepository) Delete(ctx context.Context, id model.RecordID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assessments WHERE id = ?`, id.String())
	if err != nil {
		return false, goerr.Wrap(err, "failed to delete assessment", goerr.V("id", id))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, goerr.Wrap(err, "failed to get affected rows", goerr.V("id", id))
	}
	return n > 0, nil
}

func (r *assessmentRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM assessments`); err != nil {
		return goerr.Wrap(err, "failed to clear assessments")
	}
	return nil
}
