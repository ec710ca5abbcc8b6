package impl

import (
	"souq/internal/domain/entity"
	"souq/internal/usecase"
)

// computeStats aggregates status-bucket counts over the authoritative
// collection. Facet state never reaches this function: stats describe
// everything available, not what the user currently sees.
func computeStats(items []*entity.CatalogEntity) usecase.CatalogStats {
	stats := usecase.CatalogStats{
		Total:    len(items),
		ByStatus: make(map[entity.Status]int),
	}

	active := 0
	for _, item := range items {
		stats.ByStatus[item.Status]++
		if item.IsActive() {
			active++
		}
	}

	if stats.Total > 0 {
		stats.PercentActive = float64(active) / float64(stats.Total) * 100
	}

	return stats
}
