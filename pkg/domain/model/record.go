package model

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"
)

// DefaultRecordName is used when an assessment is saved without a name
const DefaultRecordName = "Unnamed Assessment"

// RecordID identifies a stored assessment
type RecordID string

// NewRecordID generates a new UUID v4 RecordID
func NewRecordID() RecordID {
	return RecordID(uuid.New().String())
}

// String returns the string representation of RecordID
func (id RecordID) String() string {
	return string(id)
}

// Record is the persisted form of an assessment. Timestamp is milliseconds
// since the Unix epoch.
type Record struct {
	ID        RecordID    `json:"id"`
	Name      string      `json:"name"`
	Timestamp int64       `json:"timestamp"`
	Data      *Assessment `json:"data"`
}

// RecordSummary is the listing view of a Record
type RecordSummary struct {
	ID        RecordID `json:"id"`
	Name      string   `json:"name"`
	Timestamp int64    `json:"timestamp"`
}

// Summary returns the listing view of the record
func (r *Record) Summary() *RecordSummary {
	return &RecordSummary{
		ID:        r.ID,
		Name:      r.Name,
		Timestamp: r.Timestamp,
	}
}

// Time returns Timestamp as a time.Time
func (r *Record) Time() time.Time {
	return time.UnixMilli(r.Timestamp)
}

// NewRecord builds a record for the assessment. Name falls back to the
// assessment's own name and then to DefaultRecordName.
func NewRecord(id RecordID, name string, data *Assessment, now time.Time) *Record {
	if name == "" && data != nil {
		name = data.Name
	}
	if name == "" {
		name = DefaultRecordName
	}
	if id == "" {
		id = NewRecordID()
	}
	return &Record{
		ID:        id,
		Name:      name,
		Timestamp: now.UnixMilli(),
		Data:      data,
	}
}

// SortSummaries orders summaries by timestamp, then by ID
func SortSummaries(summaries []*RecordSummary) {
	slices.SortFunc(summaries, func(a, b *RecordSummary) int {
		if c := cmp.Compare(a.Timestamp, b.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
