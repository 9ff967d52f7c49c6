package badger

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aegis/pkg/domain/interfaces"
	"github.com/timshannon/badgerhold/v4"
)

// Badger keeps assessment records in an embedded Badger database
type Badger struct {
	store      *badgerhold.Store
	assessment *assessmentRepository
}

var _ interfaces.Repository = &Badger{}

// New opens or creates the database directory at path
func New(path string) (*Badger, error) {
	if path == "" {
		return nil, goerr.New("badger path is required")
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create database directory", goerr.V("path", path))
	}

	options := badgerhold.DefaultOptions
	options.Dir = path
	options.ValueDir = path
	options.Logger = nil

	store, err := badgerhold.Open(options)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open badger database", goerr.V("path", path))
	}

	return &Badger{
		store:      store,
		assessment: newAssessmentRepository(store),
	}, nil
}

func (b *Badger) Assessment() interfaces.AssessmentRepository {
	return b.assessment
}

func (b *Badger) Close() error {
	if b.store != nil {
		return b.store.Close()
	}
	return nil
}
