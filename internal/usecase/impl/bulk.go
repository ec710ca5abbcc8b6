package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"souq/internal/domain/entity"
	"souq/internal/usecase"
)

// DispatchBulkAction applies the action to every selected entity, one
// mutation call per id. Succeeding ids leave the selection; failing ids stay
// selected and are reported individually so the user can retry without
// re-selecting. Delete is irreversible: the caller must have obtained user
// confirmation before invoking this.
func (b *catalogBrowser) DispatchBulkAction(ctx context.Context, action entity.Action) (*usecase.BulkReport, error) {
	if !action.Valid() {
		return nil, ErrUnknownAction
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrBrowserClosed
	}
	ids := b.selection.sorted()
	b.mu.Unlock()

	if len(ids) == 0 {
		return nil, ErrEmptySelection
	}

	report := &usecase.BulkReport{
		ID:        uuid.New(),
		Action:    action,
		Succeeded: []string{},
	}

	for _, id := range ids {
		if err := b.mutator.MutateEntity(ctx, id, action); err != nil {
			report.Failures = append(report.Failures, usecase.BulkItemFailure{
				ID:     id,
				Reason: err.Error(),
			})

			continue
		}
		report.Succeeded = append(report.Succeeded, id)
	}

	switch {
	case len(report.Failures) == 0:
		report.Status = usecase.BulkCompleted
	case len(report.Succeeded) == 0:
		report.Status = usecase.BulkFailed
	default:
		report.Status = usecase.BulkPartiallyFailed
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return report, nil
	}
	for _, id := range report.Succeeded {
		b.selection.remove(id)
	}
	b.notifyLocked()
	b.mu.Unlock()

	if len(report.Failures) > 0 {
		b.logger.Warn("bulk action partially failed",
			slog.String("kind", b.kind),
			slog.String("action", action.String()),
			slog.String("dispatch_id", report.ID.String()),
			slog.Int("failed", len(report.Failures)),
		)
	}

	// Mutation success does not guarantee the mutated shape matches
	// server-side computed fields, so the collection is never patched
	// locally; it is reloaded instead.
	if action.Mutates() && len(report.Succeeded) > 0 {
		if err := b.Load(ctx); err != nil {
			b.logger.Warn("reload after bulk action failed",
				slog.String("kind", b.kind),
				slog.String("error", err.Error()),
			)
		}
	}

	return report, nil
}
