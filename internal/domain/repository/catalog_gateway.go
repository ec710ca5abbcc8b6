// Package repository defines the interfaces for the remote catalog backend.
package repository

import (
	"context"

	"souq/internal/domain/entity"
	"souq/internal/errors"
)

// Domain-specific errors for the remote gateways.
var (
	// ErrEntityNotFound is returned when the backend knows nothing about the entity.
	ErrEntityNotFound = errors.New("catalog entity not found")
	// ErrGatewayUnavailable is returned when the backend cannot be reached.
	ErrGatewayUnavailable = errors.New("catalog gateway unavailable")
	// ErrActionRejected is returned when the backend refuses a mutation.
	ErrActionRejected = errors.New("catalog action rejected")
)

// CatalogFetcher defines the read side of the remote catalog backend.
type CatalogFetcher interface {
	// FetchEntities retrieves the full entity set for one catalog kind.
	// parentID, when non-empty, scopes the fetch to children of that entity.
	// includeInactive asks the backend for the complete set regardless of
	// status; the browser always passes true and narrows client-side.
	FetchEntities(ctx context.Context, parentID string, includeInactive bool) ([]*entity.CatalogEntity, error)
}

// CatalogMutator defines the write side of the remote catalog backend.
type CatalogMutator interface {
	// MutateEntity applies one action to one entity. Callers dispatching a
	// bulk operation invoke this once per selected entity and collect
	// failures individually.
	MutateEntity(ctx context.Context, id string, action entity.Action) error
}
