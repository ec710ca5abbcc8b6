package impl

import (
	"sort"
	"strings"

	"souq/internal/domain/entity"
	"souq/internal/usecase"
)

// applyFacets runs the facet stages of the filter pipeline in their fixed
// order: relationship, then status, then text. Pure function over a snapshot
// of the authoritative collection; cheap enough to re-run on every keystroke.
func applyFacets(items []*entity.CatalogEntity, filter usecase.FilterState) []*entity.CatalogEntity {
	out := make([]*entity.CatalogEntity, 0, len(items))
	needle := strings.ToLower(filter.SearchText)
	status := filter.StatusConstraint()

	for _, item := range items {
		if filter.ParentID != "" && item.ParentID != filter.ParentID {
			continue
		}
		if status != usecase.StatusFilterAll && item.Status.String() != status {
			continue
		}
		if needle != "" && !matchesText(item, needle) {
			continue
		}
		out = append(out, item)
	}

	return out
}

// matchesText reports whether any searchable field of the entity contains the
// lowercased needle. An empty search text never reaches this point.
func matchesText(item *entity.CatalogEntity, needle string) bool {
	for _, field := range item.SearchableText() {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}

	return false
}

// sortView runs the sort stage of the pipeline. The slice is sorted in place
// and returned; sorting is stable so equal keys keep their fetch order.
func sortView(items []*entity.CatalogEntity, policy usecase.OrderPolicy) []*entity.CatalogEntity {
	switch policy {
	case usecase.OrderRecency:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].SortOrder != items[j].SortOrder {
				return items[i].SortOrder < items[j].SortOrder
			}

			return items[i].CreatedAt.Before(items[j].CreatedAt)
		})
	}

	return items
}

// filterPipeline applies all four stages and returns the ordered view.
func filterPipeline(items []*entity.CatalogEntity, filter usecase.FilterState, policy usecase.OrderPolicy) []*entity.CatalogEntity {
	return sortView(applyFacets(items, filter), policy)
}
