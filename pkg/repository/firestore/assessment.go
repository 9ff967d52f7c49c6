package firestore

import (
	"context"
	"encoding/json"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aegis/pkg/domain/model"
	"github.com/secmon-lab/aegis/pkg/utils/logging"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// assessmentDocument keeps the assessment as a JSON string so optional
// ratings survive the round trip unchanged.
type assessmentDocument struct {
	ID        string `firestore:"id"`
	Name      string `firestore:"name"`
	Timestamp int64  `firestore:"timestamp"`
	Payload   string `firestore:"payload"`
}

type assessmentRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newAssessmentRepository(client *firestore.Client) *assessmentRepository {
	return &assessmentRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *assessmentRepository) collection() *firestore.CollectionRef {
	if r.collectionPrefix != "" {
		return r.client.Collection(r.collectionPrefix + "_assessments")
	}
	return r.client.Collection("assessments")
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

	doc := &assessmentDocument{
		ID:        id.String(),
		Name:      record.Name,
		Timestamp: record.Timestamp,
		Payload:   string(payload),
	}
	if _, err := r.collection().Doc(doc.ID).Set(ctx, doc); err != nil {
		return "", goerr.Wrap(err, "failed to put assessment", goerr.V("id", id))
	}

	return id, nil
}

func (r *assessmentRepository) Get(ctx context.Context, id model.RecordID) (*model.Record, error) {
	snapshot, err := r.collection().Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "assessment not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get assessment", goerr.V("id", id))
	}

	var doc assessmentDocument
	if err := snapshot.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal assessment", goerr.V("id", id))
	}

	var data *model.Assessment
	if err := json.Unmarshal([]byte(doc.Payload), &data); err != nil {
		return nil, goerr.Wrap(err, "failed to decode assessment", goerr.V("id", id))
	}

	return &model.Record{
		ID:        id,
		Name:      doc.Name,
		Timestamp: doc.Timestamp,
		Data:      data,
	}, nil
}

func (r *assessmentRepository) List(ctx context.Context) ([]*model.RecordSummary, error) {
	iter := r.collection().Documents(ctx)
	defer iter.Stop()

	summaries := []*model.RecordSummary{}
	for {
		snapshot, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate assessments")
		}

		var doc assessmentDocument
		if err := snapshot.DataTo(&doc); err != nil || !json.Valid([]byte(doc.Payload)) {
			logging.From(ctx).Warn("skip undecodable assessment record", "id", snapshot.Ref.ID, "error", err)
			continue
		}

		summaries = append(summaries, &model.RecordSummary{
			ID:        model.RecordID(snapshot.Ref.ID),
			Name:      doc.Name,
			Timestamp: doc.Timestamp,
		})
	}

	model.SortSummaries(summaries)
	return summaries, nil
}

func (r *assessmentRepository) Delete(ctx context.Context, id model.RecordID) (bool, error) {
	docRef := r.collection().Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to get assessment", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return false, goerr.Wrap(err, "failed to delete assessment", goerr.V("id", id))
	}
	return true, nil
}

func (r *assessmentRepository) Clear(ctx context.Context) error {
	iter := r.collection().Documents(ctx)
	defer iter.Stop()

	var refs []*firestore.DocumentRef
	for {
		snapshot, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate assessments for deletion")
		}
		refs = append(refs, snapshot.Ref)
	}

	if len(refs) == 0 {
		return nil
	}

	bulkWriter := r.client.BulkWriter(ctx)
	defer bulkWriter.End()

	for _, ref := range refs {
		if _, err := bulkWriter.Delete(ref); err != nil {
			return goerr.Wrap(err, "failed to add Delete operation to bulk writer", goerr.V("id", ref.ID))
		}
	}
	bulkWriter.Flush()

	return nil
}
