package impl

import (
	"io"
	"log/slog"
	"time"

	"souq/internal/domain/entity"
	mockRepo "souq/internal/mocks/repository"
)

// mockFetcherMutatorPair bundles the two gateway mocks for tests that
// exercise both sides of the backend.
type mockFetcherMutatorPair struct {
	fetcher *mockRepo.MockCatalogFetcher
	mutator *mockRepo.MockCatalogMutator
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testEpoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// makeEntity builds a valid catalog entity with deterministic timestamps.
// The offset staggers CreatedAt so ordering tests have distinct keys.
func makeEntity(id, name string, status entity.Status, offset int) *entity.CatalogEntity {
	created := testEpoch.Add(time.Duration(offset) * time.Minute)

	return &entity.CatalogEntity{
		ID:        id,
		Name:      name,
		Status:    status,
		SortOrder: offset,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func makeChild(id, name string, parentID, parentName string, status entity.Status, offset int) *entity.CatalogEntity {
	e := makeEntity(id, name, status, offset)
	e.ParentID = parentID
	e.ParentName = parentName

	return e
}

func entityIDs(items []*entity.CatalogEntity) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	return ids
}
