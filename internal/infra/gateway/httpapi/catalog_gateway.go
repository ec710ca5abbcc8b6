// Package httpapi implements the catalog gateways against the marketplace
// HTTP API. All serialization lives here; the browser never sees wire shapes.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"souq/config"
	"souq/internal/domain/entity"
	"souq/internal/domain/repository"
	"souq/internal/errors"
)

// Client is a shared HTTP client for the catalog API. Per-kind gateways are
// derived from it.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates the catalog API client from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Catalog.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Catalog.RequestTimeout},
		logger:  logger,
	}
}

// KindGateway returns the fetch/mutation gateway for one catalog kind path.
func (c *Client) KindGateway(kindPath string) *KindGateway {
	return &KindGateway{
		client:   c,
		kindPath: strings.Trim(kindPath, "/"),
	}
}

// KindGateway implements repository.CatalogFetcher and
// repository.CatalogMutator for a single catalog kind.
type KindGateway struct {
	client   *Client
	kindPath string
}

var (
	_ repository.CatalogFetcher = (*KindGateway)(nil)
	_ repository.CatalogMutator = (*KindGateway)(nil)
)

// entityDTO is the wire shape of a catalog entity. Older backend versions
// send is_active alongside status; the two are reconciled during mapping.
type entityDTO struct {
	ID           string    `json:"id"`
	ParentID     string    `json:"parent_id"`
	ParentName   string    `json:"parent_name"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	IsActive     *bool     `json:"is_active"`
	SortOrder    int       `json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Price        *float64  `json:"price"`
	Location     string    `json:"location"`
	ProviderName string    `json:"provider_name"`
}

type listResponse struct {
	Data []entityDTO `json:"data"`
}

// FetchEntities retrieves the entity set for this kind.
func (g *KindGateway) FetchEntities(ctx context.Context, parentID string, includeInactive bool) ([]*entity.CatalogEntity, error) {
	endpoint := fmt.Sprintf("%s/%s", g.client.baseURL, g.kindPath)

	query := url.Values{}
	if parentID != "" {
		query.Set("parent_id", parentID)
	}
	if includeInactive {
		query.Set("include_inactive", "true")
	}
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build fetch request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(repository.ErrGatewayUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(repository.ErrGatewayUnavailable, "fetch %s returned status %d", g.kindPath, resp.StatusCode)
	}

	var payload listResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode fetch response")
	}

	entities := make([]*entity.CatalogEntity, 0, len(payload.Data))
	for _, dto := range payload.Data {
		mapped, err := mapEntity(dto)
		if err != nil {
			g.client.logger.Warn("dropping inconsistent catalog record",
				slog.String("kind", g.kindPath),
				slog.String("id", dto.ID),
				slog.String("error", err.Error()),
			)

			continue
		}
		entities = append(entities, mapped)
	}

	return entities, nil
}

// MutateEntity applies one action to one entity.
func (g *KindGateway) MutateEntity(ctx context.Context, id string, action entity.Action) error {
	endpoint := fmt.Sprintf("%s/%s/%s/%s", g.client.baseURL, g.kindPath, url.PathEscape(id), action.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build mutation request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.http.Do(req)
	if err != nil {
		return errors.Wrap(repository.ErrGatewayUnavailable, err.Error())
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return errors.Wrapf(repository.ErrEntityNotFound, "entity %s", id)
	case resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError:
		return errors.Wrapf(repository.ErrActionRejected, "%s on entity %s returned status %d", action, id, resp.StatusCode)
	default:
		return errors.Wrapf(repository.ErrGatewayUnavailable, "%s on entity %s returned status %d", action, id, resp.StatusCode)
	}
}

// mapEntity converts a wire record to the domain shape. Status is the source
// of truth; a legacy is_active flag may only fill in for a missing status,
// never contradict a present one.
func mapEntity(dto entityDTO) (*entity.CatalogEntity, error) {
	status := entity.Status(dto.Status)
	var err error

	switch {
	case dto.Status == "" && dto.IsActive != nil:
		status = entity.StatusInactive
		if *dto.IsActive {
			status = entity.StatusActive
		}
	case dto.IsActive != nil && *dto.IsActive != (status == entity.StatusActive):
		err = errors.Errorf("is_active %t disagrees with status %q", *dto.IsActive, dto.Status)
	}

	return &entity.CatalogEntity{
		ID:           dto.ID,
		ParentID:     dto.ParentID,
		ParentName:   dto.ParentName,
		Name:         dto.Name,
		Description:  dto.Description,
		Status:       status,
		SortOrder:    dto.SortOrder,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
		Price:        dto.Price,
		Location:     dto.Location,
		ProviderName: dto.ProviderName,
	}, err
}
