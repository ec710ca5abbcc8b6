// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"souq/internal/errors"
)

// Validation errors for catalog entities fetched from the gateway.
var (
	// ErrMissingID is returned when an entity has no identifier.
	ErrMissingID = errors.New("entity is missing an id")
	// ErrMissingName is returned when an entity has no display name.
	ErrMissingName = errors.New("entity is missing a name")
	// ErrInvalidStatus is returned when an entity's status is outside the closed set.
	ErrInvalidStatus = errors.New("entity status is not a known status")
	// ErrTimestampOrder is returned when updated_at precedes created_at.
	ErrTimestampOrder = errors.New("entity updated_at precedes created_at")
)

// CatalogEntity represents a catalog node: a category, a subcategory, or a
// service listing. The shape is shared across kinds; leaf-only fields stay at
// their zero value for hierarchical kinds.
type CatalogEntity struct {
	ID          string    `json:"id"`                    // Opaque unique identifier, stable across reloads.
	ParentID    string    `json:"parent_id,omitempty"`   // ID of the containing entity; empty for top-level entities.
	ParentName  string    `json:"parent_name,omitempty"` // Denormalized display name of the parent.
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      Status    `json:"status"`
	SortOrder   int       `json:"sort_order"` // Default display order among siblings; not required unique.
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Leaf-only fields, present on service listings.
	Price        *float64 `json:"price,omitempty"`
	Location     string   `json:"location,omitempty"`
	ProviderName string   `json:"provider_name,omitempty"`
}

// IsActive reports whether the entity is live. Derived from Status so the two
// can never disagree.
func (e *CatalogEntity) IsActive() bool {
	return e.Status == StatusActive
}

// Validate checks the invariants a record must satisfy before it is admitted
// into the authoritative collection. A failing record is dropped, not fatal.
func (e *CatalogEntity) Validate() error {
	if e.ID == "" {
		return ErrMissingID
	}
	if e.Name == "" {
		return ErrMissingName
	}
	if !e.Status.Valid() {
		return errors.Wrapf(ErrInvalidStatus, "status %q", e.Status)
	}
	if !e.CreatedAt.IsZero() && !e.UpdatedAt.IsZero() && e.UpdatedAt.Before(e.CreatedAt) {
		return ErrTimestampOrder
	}

	return nil
}

// SearchableText returns the fields the text facet matches against: name,
// description, the parent's display name, and the leaf display fields.
func (e *CatalogEntity) SearchableText() []string {
	fields := []string{e.Name, e.Description, e.ParentName}
	if e.Location != "" {
		fields = append(fields, e.Location)
	}
	if e.ProviderName != "" {
		fields = append(fields, e.ProviderName)
	}

	return fields
}
