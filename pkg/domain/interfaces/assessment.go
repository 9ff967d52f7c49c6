package interfaces

import (
	"context"

	"github.com/secmon-lab/aegis/pkg/domain/model"
)

type AssessmentRepository interface {
	// Put creates or replaces a record and returns its ID. An empty ID is
	// assigned a new one.
	Put(ctx context.Context, record *model.Record) (model.RecordID, error)

	// Get retrieves a record by ID
	Get(ctx context.Context, id model.RecordID) (*model.Record, error)

	// List returns summaries of all stored records ordered by timestamp.
	// Records that cannot be decoded are skipped.
	List(ctx context.Context) ([]*model.RecordSummary, error)

	// Delete removes a record and reports whether it existed
	Delete(ctx context.Context, id model.RecordID) (bool, error)

	// Clear removes every record
	Clear(ctx context.Context) error
}
