package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"souq/internal/domain/entity"
	"souq/internal/usecase"
)

func sampleCollection() []*entity.CatalogEntity {
	return []*entity.CatalogEntity{
		makeEntity("1", "Home Cleaning", entity.StatusActive, 3),
		makeEntity("2", "Plumbing Repair", entity.StatusActive, 1),
		makeChild("3", "Deep Cleaning", "1", "Home Cleaning", entity.StatusActive, 2),
		makeChild("4", "Drain Unblocking", "2", "Plumbing Repair", entity.StatusInactive, 4),
		makeEntity("5", "Gardening", entity.StatusPending, 5),
	}
}

func TestFilterPipeline_Deterministic(t *testing.T) {
	collection := sampleCollection()
	filter := usecase.FilterState{Status: entity.StatusActive.String(), SearchText: "ing"}

	first := filterPipeline(collection, filter, usecase.OrderHierarchy)
	second := filterPipeline(collection, filter, usecase.OrderHierarchy)

	assert.Equal(t, entityIDs(first), entityIDs(second))
}

func TestApplyFacets_RelationshipScoping(t *testing.T) {
	filtered := applyFacets(sampleCollection(), usecase.FilterState{ParentID: "1"})

	require.Len(t, filtered, 1)
	assert.Equal(t, "3", filtered[0].ID)
	for _, item := range filtered {
		assert.Equal(t, "1", item.ParentID)
	}
}

func TestApplyFacets_StatusFacet(t *testing.T) {
	filtered := applyFacets(sampleCollection(), usecase.FilterState{Status: entity.StatusActive.String()})

	assert.ElementsMatch(t, []string{"1", "2", "3"}, entityIDs(filtered))
}

func TestApplyFacets_StatusAllKeepsEverything(t *testing.T) {
	collection := sampleCollection()

	filtered := applyFacets(collection, usecase.FilterState{Status: usecase.StatusFilterAll})

	assert.Len(t, filtered, len(collection))
}

func TestApplyFacets_EmptySearchMatchesEverything(t *testing.T) {
	collection := sampleCollection()

	filtered := applyFacets(collection, usecase.FilterState{SearchText: ""})

	assert.Len(t, filtered, len(collection))
}

func TestApplyFacets_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	filtered := applyFacets(sampleCollection(), usecase.FilterState{SearchText: "CLEAN"})

	assert.ElementsMatch(t, []string{"1", "3"}, entityIDs(filtered))
}

func TestApplyFacets_SearchMatchesParentName(t *testing.T) {
	// "Plumbing" matches entity 2 by name and entity 4 through its parent's name.
	filtered := applyFacets(sampleCollection(), usecase.FilterState{SearchText: "plumbing"})

	assert.ElementsMatch(t, []string{"2", "4"}, entityIDs(filtered))
}

func TestApplyFacets_SearchMatchesLeafFields(t *testing.T) {
	listing := makeEntity("10", "Sofa Shampoo", entity.StatusActive, 1)
	listing.Location = "Downtown Cairo"
	listing.ProviderName = "Sparkle Co"

	byLocation := applyFacets([]*entity.CatalogEntity{listing}, usecase.FilterState{SearchText: "cairo"})
	byProvider := applyFacets([]*entity.CatalogEntity{listing}, usecase.FilterState{SearchText: "sparkle"})

	assert.Len(t, byLocation, 1)
	assert.Len(t, byProvider, 1)
}

func TestApplyFacets_SearchScopedWithinOtherFacets(t *testing.T) {
	// Text search runs after relationship and status narrowing.
	filter := usecase.FilterState{
		ParentID:   "2",
		Status:     entity.StatusInactive.String(),
		SearchText: "drain",
	}

	filtered := applyFacets(sampleCollection(), filter)

	require.Len(t, filtered, 1)
	assert.Equal(t, "4", filtered[0].ID)
}

func TestSortView_HierarchyOrdersBySortOrder(t *testing.T) {
	sorted := sortView(sampleCollection(), usecase.OrderHierarchy)

	assert.Equal(t, []string{"2", "3", "1", "4", "5"}, entityIDs(sorted))
}

func TestSortView_HierarchyBreaksTiesByCreatedAt(t *testing.T) {
	older := makeEntity("a", "Older", entity.StatusActive, 1)
	newer := makeEntity("b", "Newer", entity.StatusActive, 2)
	older.SortOrder = 7
	newer.SortOrder = 7

	sorted := sortView([]*entity.CatalogEntity{newer, older}, usecase.OrderHierarchy)

	assert.Equal(t, []string{"a", "b"}, entityIDs(sorted))
}

func TestSortView_RecencyOrdersNewestFirst(t *testing.T) {
	sorted := sortView(sampleCollection(), usecase.OrderRecency)

	assert.Equal(t, []string{"5", "4", "1", "3", "2"}, entityIDs(sorted))
}
