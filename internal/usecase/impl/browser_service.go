// Package impl contains the use case implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"souq/internal/domain/entity"
	"souq/internal/domain/repository"
	"souq/internal/errors"
	"souq/internal/usecase"
)

var (
	// ErrBrowserClosed is returned when an operation reaches a torn-down browser.
	ErrBrowserClosed = errors.New("catalog browser is closed")
	// ErrEmptySelection is returned when a bulk action is dispatched with nothing selected.
	ErrEmptySelection = errors.New("no entities selected")
	// ErrUnknownAction is returned when the action tag is outside the closed set.
	ErrUnknownAction = errors.New("unknown bulk action")
)

// catalogBrowser is the faceted browser engine for one catalog kind. One
// mutex guards the authoritative collection, the facet state, and the
// selection set, so user toggles and post-reload pruning can never interleave
// mid-update. Gateway calls happen outside the lock; a monotonic load
// sequence decides which response owns the state.
type catalogBrowser struct {
	kind    string
	order   usecase.OrderPolicy
	fetcher repository.CatalogFetcher
	mutator repository.CatalogMutator
	logger  *slog.Logger

	mu        sync.Mutex
	phase     usecase.LifecyclePhase
	loadErr   error
	entities  []*entity.CatalogEntity // authoritative collection, last-good on refresh failure
	view      []*entity.CatalogEntity // filtered, ordered view
	stats     usecase.CatalogStats
	filter    usecase.FilterState
	selection selectionSet
	watchers  []func(usecase.Snapshot)
	loadSeq   uint64
	loaded    bool // at least one load succeeded
	closed    bool
}

// NewCatalogBrowser creates a browser for one catalog kind. Browsers are
// built per kind by the registry rather than injected individually.
func NewCatalogBrowser(kind string, order usecase.OrderPolicy, fetcher repository.CatalogFetcher, mutator repository.CatalogMutator, logger *slog.Logger) usecase.CatalogBrowserUsecase {
	return &catalogBrowser{
		kind:      kind,
		order:     order,
		fetcher:   fetcher,
		mutator:   mutator,
		logger:    logger,
		phase:     usecase.PhaseIdle,
		filter:    usecase.FilterState{Status: usecase.StatusFilterAll},
		selection: newSelectionSet(),
		stats:     computeStats(nil),
		view:      []*entity.CatalogEntity{},
	}
}

// Load fetches the full entity set and, if this is still the most recent
// load, replaces the authoritative collection. Stale responses are dropped.
func (b *catalogBrowser) Load(ctx context.Context) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrBrowserClosed
	}

	b.loadSeq++
	seq := b.loadSeq
	if b.loaded {
		b.phase = usecase.PhaseLoadingRefresh
	} else {
		b.phase = usecase.PhaseLoadingInitial
	}
	b.loadErr = nil
	parentScope := b.filter.ParentID
	b.notifyLocked()
	b.mu.Unlock()

	// The browser always requests the complete set and narrows client-side.
	fetched, err := b.fetcher.FetchEntities(ctx, parentScope, true)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed || seq != b.loadSeq {
		// A newer load owns the state now, or the browser was torn down.
		return nil
	}

	if err != nil {
		// Initial failure leaves the view blank; refresh failure keeps the
		// last good collection and stats frozen behind the error.
		b.phase = usecase.PhaseError
		b.loadErr = err
		b.notifyLocked()

		return errors.Wrapf(err, "failed to load %s catalog", b.kind)
	}

	b.entities = b.admit(fetched)
	b.loaded = true
	b.phase = usecase.PhaseReady
	b.loadErr = nil

	valid := make(map[string]struct{}, len(b.entities))
	for _, item := range b.entities {
		valid[item.ID] = struct{}{}
	}
	b.selection.prune(valid)

	b.stats = computeStats(b.entities)
	b.view = filterPipeline(b.entities, b.filter, b.order)
	b.notifyLocked()

	return nil
}

// admit validates fetched records and drops malformed ones with a warning.
// One bad record must not blank the whole screen.
func (b *catalogBrowser) admit(fetched []*entity.CatalogEntity) []*entity.CatalogEntity {
	out := make([]*entity.CatalogEntity, 0, len(fetched))
	for _, item := range fetched {
		if item == nil {
			continue
		}
		if err := item.Validate(); err != nil {
			b.logger.Warn("dropping malformed catalog entity",
				slog.String("kind", b.kind),
				slog.String("id", item.ID),
				slog.String("error", err.Error()),
			)

			continue
		}
		out = append(out, item)
	}

	return out
}

// UpdateFilter applies a partial facet change and re-runs the filter
// pipeline. No network access.
func (b *catalogBrowser) UpdateFilter(update usecase.FilterUpdate) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	if update.ParentID != nil {
		b.filter.ParentID = *update.ParentID
	}
	if update.Status != nil {
		b.filter.Status = *update.Status
	}
	if update.SearchText != nil {
		b.filter.SearchText = *update.SearchText
	}

	b.view = filterPipeline(b.entities, b.filter, b.order)
	b.notifyLocked()
}

// Filter returns the current facet state.
func (b *catalogBrowser) Filter() usecase.FilterState {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.filter
}

// ToggleSelection flips the selection state of one entity id.
func (b *catalogBrowser) ToggleSelection(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	b.selection.toggle(id)
	b.notifyLocked()
}

// SelectAll selects every entity in the authoritative collection. Entities
// hidden by the current facets are selected too.
func (b *catalogBrowser) SelectAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	ids := make([]string, 0, len(b.entities))
	for _, item := range b.entities {
		ids = append(ids, item.ID)
	}
	b.selection.selectAll(ids)
	b.notifyLocked()
}

// ClearSelection empties the selection set.
func (b *catalogBrowser) ClearSelection() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	b.selection.clear()
	b.notifyLocked()
}

// Snapshot returns the current view-ready state.
func (b *catalogBrowser) Snapshot() usecase.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.snapshotLocked()
}

// Watch registers an observer invoked synchronously after every state
// change. Observers must treat the snapshot as read-only and must not call
// back into the browser.
func (b *catalogBrowser) Watch(fn func(usecase.Snapshot)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	b.watchers = append(b.watchers, fn)
}

// Close tears the browser down. Late-arriving responses are dropped and
// observers never fire afterwards.
func (b *catalogBrowser) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	b.watchers = nil
}

func (b *catalogBrowser) snapshotLocked() usecase.Snapshot {
	errMsg := ""
	if b.loadErr != nil {
		errMsg = b.loadErr.Error()
	}

	return usecase.Snapshot{
		Phase:     b.phase,
		Error:     errMsg,
		Entities:  b.view,
		Stats:     b.stats,
		Selection: b.selectionSnapshotLocked(),
		Filter:    b.filter,
	}
}

func (b *catalogBrowser) selectionSnapshotLocked() usecase.SelectionSnapshot {
	ids := b.selection.sorted()

	return usecase.SelectionSnapshot{
		IDs:           ids,
		Count:         len(ids),
		IsAllSelected: len(b.entities) > 0 && len(ids) == len(b.entities),
	}
}

func (b *catalogBrowser) notifyLocked() {
	if len(b.watchers) == 0 {
		return
	}

	snapshot := b.snapshotLocked()
	for _, fn := range b.watchers {
		fn(snapshot)
	}
}
