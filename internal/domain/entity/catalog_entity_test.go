package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEntity() *CatalogEntity {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	return &CatalogEntity{
		ID:        "svc-1",
		Name:      "Home Cleaning",
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCatalogEntity_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CatalogEntity)
		wantErr error
	}{
		{name: "valid", mutate: func(*CatalogEntity) {}},
		{name: "missing id", mutate: func(e *CatalogEntity) { e.ID = "" }, wantErr: ErrMissingID},
		{name: "missing name", mutate: func(e *CatalogEntity) { e.Name = "" }, wantErr: ErrMissingName},
		{name: "unknown status", mutate: func(e *CatalogEntity) { e.Status = "archived" }, wantErr: ErrInvalidStatus},
		{
			name:    "updated before created",
			mutate:  func(e *CatalogEntity) { e.UpdatedAt = e.CreatedAt.Add(-time.Hour) },
			wantErr: ErrTimestampOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEntity()
			tt.mutate(e)

			err := e.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCatalogEntity_IsActiveDerivedFromStatus(t *testing.T) {
	e := validEntity()
	assert.True(t, e.IsActive())

	for _, status := range []Status{StatusInactive, StatusPending, StatusRejected} {
		e.Status = status
		assert.False(t, e.IsActive(), "status %s", status)
	}
}

func TestCatalogEntity_SearchableTextIncludesLeafFields(t *testing.T) {
	e := validEntity()
	e.Description = "Weekly apartment cleaning"
	e.ParentName = "Household"

	fields := e.SearchableText()
	require.Contains(t, fields, "Home Cleaning")
	assert.Contains(t, fields, "Weekly apartment cleaning")
	assert.Contains(t, fields, "Household")

	e.Location = "Maadi"
	e.ProviderName = "Sparkle Co"
	fields = e.SearchableText()
	assert.Contains(t, fields, "Maadi")
	assert.Contains(t, fields, "Sparkle Co")
}

func TestStatus_Valid(t *testing.T) {
	for _, status := range AllStatuses {
		assert.True(t, status.Valid(), "status %s", status)
	}
	assert.False(t, Status("archived").Valid())
}

func TestAction_MutatesExcludesExport(t *testing.T) {
	assert.True(t, ActionActivate.Mutates())
	assert.True(t, ActionDeactivate.Mutates())
	assert.True(t, ActionDelete.Mutates())
	assert.False(t, ActionExport.Mutates())
}
