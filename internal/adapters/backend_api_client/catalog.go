package backend_api_client

import (
	"context"
	"encoding/json"
	"fmt"

	"catalog-gateway/internal/constants"
	"catalog-gateway/internal/contextkeys"
	"catalog-gateway/internal/core/domain"
	"catalog-gateway/internal/core/port"
)

// ListLandPlots загружает страницу каталога и адаптирует ее в формат
// отображения. Запись, не прошедшая адаптацию (нет id/title), логируется
// и пропускается: одна битая запись не должна ронять весь список.
func (c *Client) ListLandPlots(ctx context.Context, filters domain.FilterParams) (*domain.PaginatedLandPlots, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "BackendApiClient",
		"method":    "ListLandPlots",
	})

	params := buildFilterParams(filters)

	var resp landPlotsResponseDTO
	if err := c.getJSON(ctx, constants.LandPlotsEndpoint, params, constants.ListCacheTTL, &resp); err != nil {
		return nil, err
	}

	results := make([]domain.LandPlot, 0, len(resp.LandPlots))
	for i := range resp.LandPlots {
		plot, err := toDomainLandPlot(&resp.LandPlots[i])
		if err != nil {
			logger.Warn("Skipping land plot that failed adaptation", port.Fields{"error": err.Error()})
			continue
		}
		results = append(results, plot)
	}

	logger.Info("Successfully received and adapted land plots", port.Fields{
		"total":         resp.Total,
		"items_on_page": len(results),
	})

	return &domain.PaginatedLandPlots{
		Count:   resp.Total,
		Results: results,
	}, nil
}

// GetLandPlotBySlug возвращает полную карточку участка.
// 404 от backend — это "участка нет", а не ошибка.
func (c *Client) GetLandPlotBySlug(ctx context.Context, slug string) (*domain.LandPlotDetail, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "BackendApiClient",
		"method":    "GetLandPlotBySlug",
		"slug":      slug,
	})

	var dto landPlotDTO
	endpoint := constants.LandPlotsEndpoint + "/" + slug
	if err := c.getJSON(ctx, endpoint, nil, constants.DetailCacheTTL, &dto); err != nil {
		if IsNotFound(err) {
			logger.Warn("Land plot not found", nil)
			return nil, nil
		}
		return nil, err
	}

	detail, err := toDomainLandPlotDetail(&dto)
	if err != nil {
		logger.Error("Failed to adapt land plot detail", err, nil)
		return nil, fmt.Errorf("failed to adapt land plot %q: %w", slug, err)
	}
	return detail, nil
}

// GetProperty отдает карточку произвольного объекта каталога как есть.
func (c *Client) GetProperty(ctx context.Context, slug string) (json.RawMessage, error) {
	endpoint := constants.PropertiesEndpoint + "/" + slug
	raw, err := c.getRaw(ctx, endpoint, nil, constants.DetailCacheTTL)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return json.RawMessage(raw), nil
}

func (c *Client) ListPropertyTypes(ctx context.Context) ([]domain.PropertyType, error) {
	var items []domain.PropertyType
	if err := c.getList(ctx, constants.PropertyTypesEndpoint, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) ListLandCategories(ctx context.Context) ([]domain.LandCategory, error) {
	var items []domain.LandCategory
	if err := c.getList(ctx, constants.LandCategoriesEndpoint, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) ListLandUseTypes(ctx context.Context) ([]domain.LandUseType, error) {
	var items []domain.LandUseType
	if err := c.getList(ctx, constants.LandUseTypesEndpoint, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) ListFeatures(ctx context.Context) ([]domain.Feature, error) {
	var items []domain.Feature
	if err := c.getList(ctx, constants.FeaturesEndpoint, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// getList — общий путь для справочников: эти endpoint'ы отдают то голый
// массив, то {"results": [...]}, обе формы нормализуются на границе.
func (c *Client) getList(ctx context.Context, endpoint string, out interface{}) error {
	raw, err := c.getRaw(ctx, endpoint, nil, constants.OptionsCacheTTL)
	if err != nil {
		return err
	}

	items, err := listPayload(raw)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(items, out); err != nil {
		return fmt.Errorf("failed to decode list items: %w", err)
	}
	return nil
}
