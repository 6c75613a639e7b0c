package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"catalog-gateway/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalogBackend позволяет подменять отдельные методы в тестах.
type stubCatalogBackend struct {
	listLandPlots      func(domain.FilterParams) (*domain.PaginatedLandPlots, error)
	getLandPlotBySlug  func(string) (*domain.LandPlotDetail, error)
	listPropertyTypes  func() ([]domain.PropertyType, error)
	listLandCategories func() ([]domain.LandCategory, error)
	listLandUseTypes   func() ([]domain.LandUseType, error)
	listFeatures       func() ([]domain.Feature, error)
}

func (s *stubCatalogBackend) ListLandPlots(ctx context.Context, filters domain.FilterParams) (*domain.PaginatedLandPlots, error) {
	return s.listLandPlots(filters)
}

func (s *stubCatalogBackend) GetLandPlotBySlug(ctx context.Context, slug string) (*domain.LandPlotDetail, error) {
	return s.getLandPlotBySlug(slug)
}

func (s *stubCatalogBackend) GetProperty(ctx context.Context, slug string) (json.RawMessage, error) {
	return nil, nil
}

func (s *stubCatalogBackend) ListPropertyTypes(ctx context.Context) ([]domain.PropertyType, error) {
	return s.listPropertyTypes()
}

func (s *stubCatalogBackend) ListLandCategories(ctx context.Context) ([]domain.LandCategory, error) {
	return s.listLandCategories()
}

func (s *stubCatalogBackend) ListLandUseTypes(ctx context.Context) ([]domain.LandUseType, error) {
	return s.listLandUseTypes()
}

func (s *stubCatalogBackend) ListFeatures(ctx context.Context) ([]domain.Feature, error) {
	return s.listFeatures()
}

func TestListLandPlotsPassesFilters(t *testing.T) {
	var gotFilters domain.FilterParams
	backend := &stubCatalogBackend{
		listLandPlots: func(filters domain.FilterParams) (*domain.PaginatedLandPlots, error) {
			gotFilters = filters
			return &domain.PaginatedLandPlots{Count: 1, Results: []domain.LandPlot{{ID: "a1", Title: "Участок"}}}, nil
		},
	}

	uc := NewListLandPlotsUseCase(backend)
	page, err := uc.Execute(context.Background(), domain.FilterParams{Search: "река", Limit: 12})
	require.NoError(t, err)

	assert.Equal(t, "река", gotFilters.Search)
	assert.Equal(t, 12, gotFilters.Limit)
	assert.Equal(t, 1, page.Count)
}

// Каталог не падает из-за недоступного backend: отдается пустая страница.
func TestListLandPlotsErrorFallsBackToEmptyPage(t *testing.T) {
	backend := &stubCatalogBackend{
		listLandPlots: func(domain.FilterParams) (*domain.PaginatedLandPlots, error) {
			return nil, errors.New("backend down")
		},
	}

	uc := NewListLandPlotsUseCase(backend)
	page, err := uc.Execute(context.Background(), domain.FilterParams{})

	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Zero(t, page.Count)
	assert.NotNil(t, page.Results)
	assert.Empty(t, page.Results)
}

func TestGetLandPlotDetailsErrorTreatedAsNotFound(t *testing.T) {
	backend := &stubCatalogBackend{
		getLandPlotBySlug: func(string) (*domain.LandPlotDetail, error) {
			return nil, errors.New("backend down")
		},
	}

	uc := NewGetLandPlotDetailsUseCase(backend)
	detail, err := uc.Execute(context.Background(), "plot-1")

	assert.NoError(t, err)
	assert.Nil(t, detail)
}

func TestGetFilterOptionsPartialFailure(t *testing.T) {
	backend := &stubCatalogBackend{
		listPropertyTypes: func() ([]domain.PropertyType, error) {
			return []domain.PropertyType{{ID: 1, Name: "Участки"}}, nil
		},
		listLandCategories: func() ([]domain.LandCategory, error) {
			return nil, errors.New("backend down")
		},
		listLandUseTypes: func() ([]domain.LandUseType, error) {
			return []domain.LandUseType{{ID: 5, Name: "Жилая застройка"}}, nil
		},
		listFeatures: func() ([]domain.Feature, error) {
			return nil, nil
		},
	}

	uc := NewGetFilterOptionsUseCase(backend)
	options, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.NotNil(t, options)

	assert.Len(t, options.PropertyTypes, 1)
	assert.Len(t, options.LandUseTypes, 1)

	// Упавший и пустой справочники отдаются пустыми срезами, не null
	assert.NotNil(t, options.LandCategories)
	assert.Empty(t, options.LandCategories)
	assert.NotNil(t, options.Features)
	assert.Empty(t, options.Features)
}
