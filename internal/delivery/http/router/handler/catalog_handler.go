package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"souq/internal/delivery/http/response"
	"souq/internal/domain/entity"
	"souq/internal/errors"
	"souq/internal/usecase"
	"souq/internal/usecase/impl"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	Registry usecase.BrowserRegistry
	Logger   *slog.Logger
}

// CatalogHandler exposes the per-kind catalog browsers over HTTP.
type CatalogHandler struct {
	registry usecase.BrowserRegistry
	logger   *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		registry: params.Registry,
		logger:   params.Logger,
	}
}

// FilterRequest is a partial facet update; omitted fields keep their value.
type FilterRequest struct {
	ParentID   *string `json:"parent_id,omitempty"`
	Status     *string `json:"status,omitempty"`
	SearchText *string `json:"search,omitempty"`
}

// ToggleSelectionRequest identifies the entity whose selection state flips.
type ToggleSelectionRequest struct {
	ID string `json:"id" validate:"required"`
}

// BulkActionRequest names the action applied to the current selection.
type BulkActionRequest struct {
	Action string `json:"action" validate:"required"`
}

func (h *CatalogHandler) browser(c echo.Context) (usecase.CatalogBrowserUsecase, error) {
	kind := c.Param("kind")
	browser, ok := h.registry.Browser(kind)
	if !ok {
		return nil, response.NotFound(c, "KIND_NOT_FOUND", "No catalog of kind '"+kind+"' is configured")
	}

	return browser, nil
}

// GetSnapshot returns the current view-ready state of one browser.
func (h *CatalogHandler) GetSnapshot(c echo.Context) error {
	browser, err := h.browser(c)
	if browser == nil {
		return err
	}

	return response.Success(c, http.StatusOK, browser.Snapshot(), "Catalog snapshot fetched successfully")
}

// Reload re-runs the load through the fetch gateway. A fetch failure is not
// an HTTP failure: the lifecycle state carries it and the snapshot is
// returned so the client can render the stale view with an error banner.
func (h *CatalogHandler) Reload(c echo.Context) error {
	browser, err := h.browser(c)
	if browser == nil {
		return err
	}

	if err := browser.Load(c.Request().Context()); err != nil {
		if errors.Is(err, impl.ErrBrowserClosed) {
			return response.HandleAppError(c, err)
		}
		h.logger.Warn("catalog reload failed",
			slog.String("kind", c.Param("kind")),
			slog.String("error", err.Error()),
		)
	}

	return response.Success(c, http.StatusOK, browser.Snapshot(), "Catalog reloaded")
}

// UpdateFilter applies a partial facet change. No network access.
func (h *CatalogHandler) UpdateFilter(c echo.Context) error {
	browser, err := h.browser(c)
	if browser == nil {
		return err
	}

	var req FilterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid filter input")
	}

	browser.UpdateFilter(usecase.FilterUpdate{
		ParentID:   req.ParentID,
		Status:     req.Status,
		SearchText: req.SearchText,
	})

	return response.Success(c, http.StatusOK, browser.Snapshot(), "Filter updated")
}

// ToggleSelection flips the selection state of one entity.
func (h *CatalogHandler) ToggleSelection(c echo.Context) error {
	browser, err := h.browser(c)
	if browser == nil {
		return err
	}

	var req ToggleSelectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid selection input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Entity id is required")
	}

	browser.ToggleSelection(req.ID)

	return response.Success(c, http.StatusOK, browser.Snapshot().Selection, "Selection toggled")
}

// SelectAll selects the whole authoritative collection.
func (h *CatalogHandler) SelectAll(c echo.Context) error {
	browser, err := h.browser(c)
	if browser == nil {
		return err
	}

	browser.SelectAll()

	return response.Success(c, http.StatusOK, browser.Snapshot().Selection, "All entities selected")
}

// ClearSelection empties the selection set.
func (h *CatalogHandler) ClearSelection(c echo.Context) error {
	browser, err := h.browser(c)
	if browser == nil {
		return err
	}

	browser.ClearSelection()

	return response.Success(c, http.StatusOK, browser.Snapshot().Selection, "Selection cleared")
}

// DispatchBulkAction applies an action to every selected entity and returns
// the per-item report. Destructive actions are confirmed client-side before
// this endpoint is called.
func (h *CatalogHandler) DispatchBulkAction(c echo.Context) error {
	browser, err := h.browser(c)
	if browser == nil {
		return err
	}

	var req BulkActionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bulk action input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Action is required")
	}

	report, err := browser.DispatchBulkAction(c.Request().Context(), entity.Action(req.Action))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "Bulk action dispatched")
}

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
