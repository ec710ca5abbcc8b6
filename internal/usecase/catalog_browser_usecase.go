// Package usecase defines the application's use case interfaces and the
// view-ready data they emit.
package usecase

import (
	"context"

	"souq/internal/domain/entity"
)

// CatalogBrowserUsecase is the faceted browser for one catalog kind. It owns
// the authoritative entity collection, the facet state, the selection set,
// and the load lifecycle. All methods are safe for concurrent use.
type CatalogBrowserUsecase interface {
	// Load fetches the authoritative collection through the fetch gateway.
	// Concurrent loads resolve in last-request-wins order: a response to a
	// superseded load is discarded silently and Load returns nil for it.
	Load(ctx context.Context) error

	// UpdateFilter applies a partial facet change and recomputes the filtered
	// view. It never touches the network.
	UpdateFilter(update FilterUpdate)

	// Filter returns the current facet state.
	Filter() FilterState

	// ToggleSelection adds the id to the selection set, or removes it when
	// already present.
	ToggleSelection(id string)

	// SelectAll selects every entity in the authoritative collection,
	// regardless of the current facets.
	SelectAll()

	// ClearSelection empties the selection set.
	ClearSelection()

	// DispatchBulkAction applies the action to every selected entity through
	// the mutation gateway, one call per entity. Entities that succeed leave
	// the selection; entities that fail stay selected so the user can retry.
	// Mutating actions trigger a reload before the report is returned.
	DispatchBulkAction(ctx context.Context, action entity.Action) (*BulkReport, error)

	// Snapshot returns the current view-ready state.
	Snapshot() Snapshot

	// Watch registers an observer invoked after every state change. The
	// observer receives the same snapshot Snapshot would return.
	Watch(fn func(Snapshot))

	// Close tears the browser down. In-flight responses arriving afterwards
	// are dropped and observers never fire again.
	Close()
}

// BrowserRegistry exposes one browser per configured catalog kind.
type BrowserRegistry interface {
	// Browser returns the browser for the kind, if configured.
	Browser(kind string) (CatalogBrowserUsecase, bool)

	// Kinds lists the configured catalog kinds.
	Kinds() []string

	// Close tears down every registered browser.
	Close()
}
