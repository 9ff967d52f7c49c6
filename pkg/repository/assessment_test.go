package repository_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/aegis/pkg/domain/interfaces"
	"github.com/secmon-lab/aegis/pkg/domain/model"
	"github.com/secmon-lab/aegis/pkg/domain/types"
	"github.com/secmon-lab/aegis/pkg/repository/badger"
	"github.com/secmon-lab/aegis/pkg/repository/firestore"
	"github.com/secmon-lab/aegis/pkg/repository/memory"
	"github.com/secmon-lab/aegis/pkg/repository/sqlite"
)

func sampleAssessment(name string) *model.Assessment {
	score := 42.5
	return &model.Assessment{
		Name: name,
		Assets: []model.Asset{
			{ID: "a1", Name: "Lead Engineer", Category: types.CategoryPeople},
			{ID: "a2", Name: "Billing System", Category: types.CategorySystems},
		},
		Dependencies: []model.Dependency{
			{AssetID: "a1", Importance: 9, Replaceability: 8, TimeToReplace: types.TimeToReplaceMonths, Concentration: 7},
			{AssetID: "a2"},
		},
		Contingencies: []model.Contingency{
			{AssetID: "a1", Backup: 3, KnowledgeSharing: 4, Documentation: 2},
		},
		OrganizationProfile: &model.OrganizationProfile{
			Industry: types.IndustryTechnology,
			Size:     types.OrgSizeSmall,
		},
		ResilienceScore: &score,
	}
}

func runAssessmentTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository, errNotFound error) {
	t.Helper()

	// IDs are unique per run so shared backends do not collide
	newID := func() model.RecordID {
		return model.RecordID(fmt.Sprintf("test-%d", time.Now().UnixNano()))
	}

	t.Run("Put then Get returns the same record", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		id := newID()
		rec := model.NewRecord(id, "Q3 review", sampleAssessment("Q3"), time.UnixMilli(1700000000000))
		gotID, err := repo.Assessment().Put(ctx, rec)
		gt.NoError(t, err).Required()
		gt.Value(t, gotID).Equal(id)

		got, err := repo.Assessment().Get(ctx, id)
		gt.NoError(t, err).Required()
		gt.Value(t, got.ID).Equal(id)
		gt.Value(t, got.Name).Equal("Q3 review")
		gt.Value(t, got.Timestamp).Equal(int64(1700000000000))
		gt.Value(t, *got.Data).Equal(*rec.Data)
	})

	t.Run("Put assigns an ID when empty", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		id, err := repo.Assessment().Put(ctx, &model.Record{Name: "auto", Timestamp: 1, Data: sampleAssessment("")})
		gt.NoError(t, err).Required()
		gt.Value(t, id).NotEqual(model.RecordID(""))

		got, err := repo.Assessment().Get(ctx, id)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Name).Equal("auto")
	})

	t.Run("Put replaces an existing record", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		id := newID()
		_, err := repo.Assessment().Put(ctx, &model.Record{ID: id, Name: "first", Timestamp: 1, Data: sampleAssessment("first")})
		gt.NoError(t, err).Required()
		_, err = repo.Assessment().Put(ctx, &model.Record{ID: id, Name: "second", Timestamp: 2, Data: sampleAssessment("second")})
		gt.NoError(t, err).Required()

		got, err := repo.Assessment().Get(ctx, id)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Name).Equal("second")
		gt.Value(t, got.Data.Name).Equal("second")
	})

	t.Run("Get returns ErrNotFound for unknown ID", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Assessment().Get(context.Background(), newID())
		gt.Error(t, err).Is(errNotFound)
	})

	t.Run("List is ordered by timestamp", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		gt.NoError(t, repo.Assessment().Clear(ctx)).Required()

		for i, ts := range []int64{300, 100, 200} {
			_, err := repo.Assessment().Put(ctx, &model.Record{
				ID:        model.RecordID(fmt.Sprintf("r%d", i)),
				Name:      fmt.Sprintf("record %d", i),
				Timestamp: ts,
				Data:      sampleAssessment(""),
			})
			gt.NoError(t, err).Required()
		}

		summaries, err := repo.Assessment().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, summaries).Length(3)
		gt.Value(t, summaries[0].ID).Equal(model.RecordID("r1"))
		gt.Value(t, summaries[1].ID).Equal(model.RecordID("r2"))
		gt.Value(t, summaries[2].ID).Equal(model.RecordID("r0"))
		gt.Value(t, summaries[2].Timestamp).Equal(int64(300))
	})

	t.Run("Delete reports whether the record existed", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		id := newID()
		_, err := repo.Assessment().Put(ctx, &model.Record{ID: id, Name: "gone", Timestamp: 1, Data: sampleAssessment("")})
		gt.NoError(t, err).Required()

		deleted, err := repo.Assessment().Delete(ctx, id)
		gt.NoError(t, err).Required()
		gt.Bool(t, deleted).True()

		deleted, err = repo.Assessment().Delete(ctx, id)
		gt.NoError(t, err).Required()
		gt.Bool(t, deleted).False()

		_, err = repo.Assessment().Get(ctx, id)
		gt.Error(t, err).Is(errNotFound)
	})

	t.Run("Clear removes every record", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for range 3 {
			_, err := repo.Assessment().Put(ctx, &model.Record{Timestamp: 1, Data: sampleAssessment("")})
			gt.NoError(t, err).Required()
		}
		gt.NoError(t, repo.Assessment().Clear(ctx)).Required()

		summaries, err := repo.Assessment().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, summaries).Length(0)
	})
}

func newMemoryRepository(t *testing.T) interfaces.Repository {
	t.Helper()
	return memory.New()
}

func newBadgerRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	repo, err := badger.New(filepath.Join(t.TempDir(), "badger"))
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})
	return repo
}

func newSQLiteRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	repo, err := sqlite.New(context.Background(), filepath.Join(t.TempDir(), "aegis.db"))
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})
	return repo
}

func newFirestoreRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}

	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")
	if databaseID == "" {
		t.Skip("TEST_FIRESTORE_DATABASE_ID not set")
	}

	ctx := context.Background()
	repo, err := firestore.New(ctx, projectID, databaseID,
		firestore.WithCollectionPrefix(fmt.Sprintf("test_%d", time.Now().UnixNano())),
	)
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		gt.NoError(t, repo.Assessment().Clear(ctx))
		gt.NoError(t, repo.Close())
	})
	return repo
}

func TestAssessmentRepository_Memory(t *testing.T) {
	runAssessmentTest(t, newMemoryRepository, memory.ErrNotFound)
}

func TestAssessmentRepository_Badger(t *testing.T) {
	runAssessmentTest(t, newBadgerRepository, badger.ErrNotFound)
}

func TestAssessmentRepository_SQLite(t *testing.T) {
	runAssessmentTest(t, newSQLiteRepository, sqlite.ErrNotFound)
}

func TestAssessmentRepository_Firestore(t *testing.T) {
	runAssessmentTest(t, newFirestoreRepository, firestore.ErrNotFound)
}
