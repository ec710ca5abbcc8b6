package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"souq/internal/domain/entity"
)

func TestComputeStats_CountsPerStatus(t *testing.T) {
	stats := computeStats(sampleCollection())

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 3, stats.Count(entity.StatusActive))
	assert.Equal(t, 1, stats.Count(entity.StatusInactive))
	assert.Equal(t, 1, stats.Count(entity.StatusPending))
	assert.Equal(t, 0, stats.Count(entity.StatusRejected))
	assert.InDelta(t, 60.0, stats.PercentActive, 0.001)
}

func TestComputeStats_EmptyCollection(t *testing.T) {
	stats := computeStats(nil)

	assert.Equal(t, 0, stats.Total)
	assert.Zero(t, stats.PercentActive)
	assert.Empty(t, stats.ByStatus)
}
