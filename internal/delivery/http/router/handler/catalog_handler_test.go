package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"souq/internal/delivery/http/validator"
	"souq/internal/domain/entity"
	mockRepo "souq/internal/mocks/repository"
	"souq/internal/usecase"
	"souq/internal/usecase/impl"
)

func newTestHandler(t *testing.T, entities []*entity.CatalogEntity) (*CatalogHandler, *mockRepo.MockCatalogMutator) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	fetcher := mockRepo.NewMockCatalogFetcher(t)
	fetcher.EXPECT().
		FetchEntities(mock.Anything, mock.Anything, mock.Anything).
		Return(entities, nil).
		Maybe()
	mutator := mockRepo.NewMockCatalogMutator(t)

	browser := impl.NewCatalogBrowser("categories", usecase.OrderHierarchy, fetcher, mutator, logger)
	require.NoError(t, browser.Load(t.Context()))
	t.Cleanup(browser.Close)

	registry := impl.NewBrowserRegistry(map[string]usecase.CatalogBrowserUsecase{
		"categories": browser,
	})

	handler := &CatalogHandler{
		registry: registry,
		logger:   logger,
	}

	return handler, mutator
}

func newCatalogContext(method, body, kind string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/", reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetParamNames("kind")
	c.SetParamValues(kind)

	return c, rec
}

func sampleEntities() []*entity.CatalogEntity {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	return []*entity.CatalogEntity{
		{ID: "c1", Name: "Electronics", Status: entity.StatusActive, SortOrder: 1, CreatedAt: now, UpdatedAt: now},
		{ID: "c2", Name: "Furniture", Status: entity.StatusInactive, SortOrder: 2, CreatedAt: now, UpdatedAt: now},
	}
}

func TestCatalogHandler_GetSnapshot(t *testing.T) {
	handler, _ := newTestHandler(t, sampleEntities())
	c, rec := newCatalogContext(http.MethodGet, "", "categories")

	err := handler.GetSnapshot(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"phase":"ready"`)
	assert.Contains(t, body, "Electronics")
	assert.Contains(t, body, "Furniture")
}

func TestCatalogHandler_GetSnapshot_UnknownKind(t *testing.T) {
	handler, _ := newTestHandler(t, sampleEntities())
	c, rec := newCatalogContext(http.MethodGet, "", "bogus")

	err := handler.GetSnapshot(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "KIND_NOT_FOUND")
}

func TestCatalogHandler_UpdateFilter_NarrowsView(t *testing.T) {
	handler, _ := newTestHandler(t, sampleEntities())
	c, rec := newCatalogContext(http.MethodPost, `{"status":"active"}`, "categories")

	err := handler.UpdateFilter(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Electronics")
	assert.NotContains(t, body, "Furniture")
	// Stats keep describing the whole collection.
	assert.Contains(t, body, `"total":2`)
}

func TestCatalogHandler_ToggleSelection_RequiresID(t *testing.T) {
	handler, _ := newTestHandler(t, sampleEntities())
	c, rec := newCatalogContext(http.MethodPost, `{}`, "categories")

	err := handler.ToggleSelection(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogHandler_SelectAllThenBulk(t *testing.T) {
	handler, mutator := newTestHandler(t, sampleEntities())

	c, rec := newCatalogContext(http.MethodPost, "", "categories")
	require.NoError(t, handler.SelectAll(c))
	assert.Contains(t, rec.Body.String(), `"is_all_selected":true`)

	mutator.EXPECT().
		MutateEntity(mock.Anything, "c1", entity.ActionActivate).
		Return(nil).
		Once()
	mutator.EXPECT().
		MutateEntity(mock.Anything, "c2", entity.ActionActivate).
		Return(nil).
		Once()

	c, rec = newCatalogContext(http.MethodPost, `{"action":"activate"}`, "categories")
	require.NoError(t, handler.DispatchBulkAction(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"completed"`)
}

func TestCatalogHandler_Bulk_EmptySelection(t *testing.T) {
	handler, _ := newTestHandler(t, sampleEntities())
	c, rec := newCatalogContext(http.MethodPost, `{"action":"activate"}`, "categories")

	err := handler.DispatchBulkAction(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMPTY_SELECTION")
}

func TestCatalogHandler_ClearSelection(t *testing.T) {
	handler, _ := newTestHandler(t, sampleEntities())

	c, _ := newCatalogContext(http.MethodPost, "", "categories")
	require.NoError(t, handler.SelectAll(c))

	c, rec := newCatalogContext(http.MethodDelete, "", "categories")
	require.NoError(t, handler.ClearSelection(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":0`)
}
