package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aegis/pkg/domain/interfaces"
	"github.com/secmon-lab/aegis/pkg/repository/badger"
	"github.com/secmon-lab/aegis/pkg/repository/firestore"
	"github.com/secmon-lab/aegis/pkg/repository/memory"
	"github.com/secmon-lab/aegis/pkg/repository/sqlite"
	"github.com/secmon-lab/aegis/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Repository backends
const (
	BackendMemory    = "memory"
	BackendBadger    = "badger"
	BackendSQLite    = "sqlite"
	BackendFirestore = "firestore"
)

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "aegis")
	}
	return ".aegis"
}

// Repository holds CLI flags for repository backend configuration
type Repository struct {
	backend          string
	badgerPath       string
	sqlitePath       string
	projectID        string
	databaseID       string
	collectionPrefix string
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Repository backend type (memory, badger, sqlite or firestore)",
			Value:       BackendBadger,
			Sources:     cli.EnvVars("AEGIS_REPOSITORY_BACKEND"),
			Destination: &r.backend,
		},
		&cli.StringFlag{
			Name:        "badger-path",
			Usage:       "Badger database directory",
			Value:       filepath.Join(defaultDataDir(), "badger"),
			Sources:     cli.EnvVars("AEGIS_BADGER_PATH"),
			Destination: &r.badgerPath,
		},
		&cli.StringFlag{
			Name:        "sqlite-path",
			Usage:       "SQLite database file",
			Value:       filepath.Join(defaultDataDir(), "aegis.db"),
			Sources:     cli.EnvVars("AEGIS_SQLITE_PATH"),
			Destination: &r.sqlitePath,
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore Project ID (required when using firestore backend)",
			Sources:     cli.EnvVars("AEGIS_FIRESTORE_PROJECT_ID"),
			Destination: &r.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore Database ID",
			Sources:     cli.EnvVars("AEGIS_FIRESTORE_DATABASE_ID"),
			Destination: &r.databaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection-prefix",
			Usage:       "Prefix for Firestore collection names",
			Sources:     cli.EnvVars("AEGIS_FIRESTORE_COLLECTION_PREFIX"),
			Destination: &r.collectionPrefix,
		},
	}
}

// Backend returns the configured backend type
func (r *Repository) Backend() string {
	return r.backend
}

// LogValue implements slog.LogValuer
func (r Repository) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", r.backend),
		slog.String("badger_path", r.badgerPath),
		slog.String("sqlite_path", r.sqlitePath),
		slog.String("firestore_project_id", r.projectID),
		slog.String("firestore_database_id", r.databaseID),
		slog.String("firestore_collection_prefix", r.collectionPrefix),
	)
}

// Configure initializes and returns a repository based on the configured backend.
// The caller is responsible for calling Close() on the returned repository.
func (r *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	logger := logging.From(ctx)

	switch r.backend {
	case BackendBadger:
		repo, err := badger.New(r.badgerPath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize badger repository")
		}
		logger.Debug("Using badger repository", "path", r.badgerPath)
		return repo, nil

	case BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(r.sqlitePath), 0o755); err != nil {
			return nil, goerr.Wrap(err, "failed to create sqlite directory", goerr.V("path", r.sqlitePath))
		}
		repo, err := sqlite.New(ctx, r.sqlitePath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize sqlite repository")
		}
		logger.Debug("Using sqlite repository", "path", r.sqlitePath)
		return repo, nil

	case BackendFirestore:
		if r.projectID == "" {
			return nil, goerr.New("firestore-project-id is required when using firestore backend")
		}
		var opts []firestore.Option
		if r.collectionPrefix != "" {
			opts = append(opts, firestore.WithCollectionPrefix(r.collectionPrefix))
		}
		repo, err := firestore.New(ctx, r.projectID, r.databaseID, opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize firestore repository")
		}
		logger.Info("Using Firestore repository",
			"project_id", r.projectID,
			"database_id", r.databaseID,
		)
		return repo, nil

	case BackendMemory:
		logger.Info("Using in-memory repository, records are discarded on exit")
		return memory.New(), nil

	default:
		return nil, goerr.New("invalid repository backend", goerr.V("backend", r.backend))
	}
}
