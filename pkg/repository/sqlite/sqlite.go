package sqlite

import (
	"context"
	"database/sql"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aegis/pkg/domain/interfaces"
	_ "modernc.org/sqlite"
)

const migration = `
CREATE TABLE IF NOT EXISTS assessments (
	id        TEXT PRIMARY KEY,
	name      TEXT NOT NULL,
	timestamp INTEGER NOT NULL,
	payload   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_assessments_timestamp ON assessments(timestamp);
`

// SQLite keeps assessment records in a single SQLite file
type SQLite struct {
	db         *sql.DB
	assessment *assessmentRepository
}

var _ interfaces.Repository = &SQLite{}

// New opens the database at dsn in WAL mode and applies the schema
func New(ctx context.Context, dsn string) (*SQLite, error) {
	if dsn == "" {
		return nil, goerr.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open sqlite database", goerr.V("dsn", dsn))
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, goerr.Wrap(err, "failed to configure sqlite", goerr.V("pragma", pragma))
		}
	}

	if _, err := db.ExecContext(ctx, migration); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to migrate sqlite schema")
	}

	return &SQLite{
		db:         db,
		assessment: newAssessmentRepository(db),
	}, nil
}

func (s *SQLite) Assessment() interfaces.AssessmentRepository {
	return s.assessment
}

func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
