package usecase

import (
	"github.com/google/uuid"

	"souq/internal/domain/entity"
)

// LifecyclePhase is the load lifecycle state exposed to the presentation layer.
type LifecyclePhase string

const (
	// PhaseIdle is the state before the first load is issued.
	PhaseIdle LifecyclePhase = "idle"
	// PhaseLoadingInitial is an in-flight load with no prior data.
	PhaseLoadingInitial LifecyclePhase = "loading_initial"
	// PhaseLoadingRefresh is an in-flight load over an already-populated browser.
	PhaseLoadingRefresh LifecyclePhase = "loading_refresh"
	// PhaseReady means the authoritative collection reflects the last load.
	PhaseReady LifecyclePhase = "ready"
	// PhaseError means the last load failed. The snapshot still carries the
	// last good collection when one exists.
	PhaseError LifecyclePhase = "error"
)

// OrderPolicy selects the sort stage of the filter pipeline for one kind.
type OrderPolicy string

const (
	// OrderHierarchy sorts by SortOrder ascending, CreatedAt ascending on ties.
	OrderHierarchy OrderPolicy = "hierarchy"
	// OrderRecency sorts by CreatedAt descending, newest first.
	OrderRecency OrderPolicy = "recency"
)

// StatusFilterAll disables the status facet.
const StatusFilterAll = "all"

// FilterState is the transient, presentation-driven facet state.
type FilterState struct {
	ParentID   string `json:"parent_id,omitempty"` // Restrict to children of this entity; empty = no constraint.
	Status     string `json:"status"`              // A status value, or StatusFilterAll.
	SearchText string `json:"search"`              // Case-insensitive substring; empty = no constraint.
}

// StatusConstraint returns the status facet value, treating an unset field as
// StatusFilterAll.
func (f FilterState) StatusConstraint() string {
	if f.Status == "" {
		return StatusFilterAll
	}

	return f.Status
}

// FilterUpdate is a partial facet change; nil fields are left untouched.
type FilterUpdate struct {
	ParentID   *string `json:"parent_id,omitempty"`
	Status     *string `json:"status,omitempty"`
	SearchText *string `json:"search,omitempty"`
}

// CatalogStats describes the whole authoritative collection. It is never
// affected by facet changes; the filtered view is what the user currently
// sees, the stats are what exists.
type CatalogStats struct {
	Total         int                   `json:"total"`
	ByStatus      map[entity.Status]int `json:"by_status"`
	PercentActive float64               `json:"percent_active"`
}

// Count returns the number of entities holding the given status.
func (s CatalogStats) Count(status entity.Status) int {
	return s.ByStatus[status]
}

// SelectionSnapshot is a read-only view of the selection set.
type SelectionSnapshot struct {
	IDs           []string `json:"ids"`
	Count         int      `json:"count"`
	IsAllSelected bool     `json:"is_all_selected"` // Count equals the authoritative collection size.
}

// Selected reports whether the id is in the snapshot.
func (s SelectionSnapshot) Selected(id string) bool {
	for _, candidate := range s.IDs {
		if candidate == id {
			return true
		}
	}

	return false
}

// Snapshot is the read-only tuple emitted to the presentation layer on every
// state change.
type Snapshot struct {
	Phase     LifecyclePhase          `json:"phase"`
	Error     string                  `json:"error,omitempty"` // Message of the last failed load, when Phase is PhaseError.
	Entities  []*entity.CatalogEntity `json:"entities"`        // The filtered, ordered view.
	Stats     CatalogStats            `json:"stats"`
	Selection SelectionSnapshot       `json:"selection"`
	Filter    FilterState             `json:"filter"`
}

// BulkStatus is the terminal state of one bulk dispatch.
type BulkStatus string

const (
	// BulkCompleted means every selected entity was mutated.
	BulkCompleted BulkStatus = "completed"
	// BulkPartiallyFailed means some entities failed and remain selected.
	BulkPartiallyFailed BulkStatus = "partially_failed"
	// BulkFailed means no entity was mutated.
	BulkFailed BulkStatus = "failed"
)

// BulkItemFailure reports one entity the mutation gateway rejected.
type BulkItemFailure struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// BulkReport is the per-item outcome of one bulk dispatch.
type BulkReport struct {
	ID        uuid.UUID         `json:"id"` // Dispatch identifier, for client-side correlation.
	Action    entity.Action     `json:"action"`
	Succeeded []string          `json:"succeeded"`
	Failures  []BulkItemFailure `json:"failures,omitempty"`
	Status    BulkStatus        `json:"status"`
}
