package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionSet_ToggleAddsAndRemoves(t *testing.T) {
	selection := newSelectionSet()

	selection.toggle("42")
	assert.True(t, selection.contains("42"))
	assert.Equal(t, 1, selection.count())

	selection.toggle("42")
	assert.False(t, selection.contains("42"))
	assert.Equal(t, 0, selection.count())
}

func TestSelectionSet_SelectAllReplaces(t *testing.T) {
	selection := newSelectionSet()
	selection.toggle("stale")

	selection.selectAll([]string{"1", "2", "3"})

	assert.Equal(t, 3, selection.count())
	assert.False(t, selection.contains("stale"))
}

func TestSelectionSet_PruneDropsMissingIDs(t *testing.T) {
	selection := newSelectionSet()
	selection.selectAll([]string{"1", "2", "42"})

	selection.prune(map[string]struct{}{"1": {}, "2": {}})

	assert.Equal(t, []string{"1", "2"}, selection.sorted())
	assert.False(t, selection.contains("42"))
}

func TestSelectionSet_ClearEmpties(t *testing.T) {
	selection := newSelectionSet()
	selection.selectAll([]string{"1", "2"})

	selection.clear()

	assert.Equal(t, 0, selection.count())
	assert.Empty(t, selection.sorted())
}

func TestSelectionSet_SortedIsDeterministic(t *testing.T) {
	selection := newSelectionSet()
	selection.toggle("b")
	selection.toggle("a")
	selection.toggle("c")

	assert.Equal(t, []string{"a", "b", "c"}, selection.sorted())
}
