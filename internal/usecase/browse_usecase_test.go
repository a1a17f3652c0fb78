package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lovelyplace-web/internal/domain"
	apperrors "github.com/lovelyplace-web/internal/pkg/errors"
	"github.com/lovelyplace-web/internal/state"
	"github.com/lovelyplace-web/internal/usecase"
	"github.com/lovelyplace-web/internal/usecase/dto"
)

var nilBundle *domain.FilterBundle

func venues(ids ...string) []domain.Venue {
	out := make([]domain.Venue, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Venue{ID: id, Name: "Venue " + id})
	}
	return out
}

func TestBrowseUseCase_Load(t *testing.T) {
	ctx := context.Background()
	gw := new(MockVenueGateway)
	gw.On("ListVenues", ctx, domain.CategoryDrink, nilBundle).Return(venues("1", "2"), nil).Once()

	uc := usecase.NewBrowseUseCase(gw, zap.NewNop())
	store := state.NewStore()

	result, err := uc.Load(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.False(t, result.Loading)
	assert.Len(t, result.QuickFilters, 7)

	// повторное открытие не перезагружает список
	_, err = uc.Load(ctx, store)
	require.NoError(t, err)
	gw.AssertNumberOfCalls(t, "ListVenues", 1)
}

func TestBrowseUseCase_SelectCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("clears filters and active button", func(t *testing.T) {
		gw := new(MockVenueGateway)
		gw.On("ListVenues", ctx, domain.CategoryDrink, mock.Anything).Return(venues("1"), nil)
		gw.On("ListVenues", ctx, domain.CategoryEat, nilBundle).Return(venues("2"), nil).Once()

		uc := usecase.NewBrowseUseCase(gw, zap.NewNop())
		store := state.NewStore()

		_, err := uc.ToggleQuickFilter(ctx, store, 3)
		require.NoError(t, err)
		require.NotNil(t, store.Snapshot().Filters)

		result, err := uc.SelectCategory(ctx, store, "eat")
		require.NoError(t, err)
		assert.Equal(t, domain.CategoryEat, result.Category)
		assert.Nil(t, result.Filters)
		assert.Zero(t, result.ActiveQuickFilterID)
		for _, q := range result.QuickFilters {
			assert.False(t, q.Active)
		}
		gw.AssertExpectations(t)
	})

	t.Run("idempotent", func(t *testing.T) {
		gw := new(MockVenueGateway)
		gw.On("ListVenues", ctx, domain.CategoryFun, nilBundle).Return(venues("1"), nil).Once()

		uc := usecase.NewBrowseUseCase(gw, zap.NewNop())
		store := state.NewStore()

		once, err := uc.SelectCategory(ctx, store, "fun")
		require.NoError(t, err)
		twice, err := uc.SelectCategory(ctx, store, "fun")
		require.NoError(t, err)

		assert.Equal(t, once, twice)
		gw.AssertNumberOfCalls(t, "ListVenues", 1)
	})

	t.Run("unknown category", func(t *testing.T) {
		uc := usecase.NewBrowseUseCase(new(MockVenueGateway), zap.NewNop())

		_, err := uc.SelectCategory(ctx, state.NewStore(), "filter-nearby")
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_CATEGORY", appErr.Code)
	})
}

func TestBrowseUseCase_ToggleQuickFilter(t *testing.T) {
	ctx := context.Background()
	cosy := domain.QuickFilterBundle(domain.Filter{Key: "Décoration", Value: "Instagrammable"})

	gw := new(MockVenueGateway)
	gw.On("ListVenues", ctx, domain.CategoryDrink, cosy).Return(venues("1"), nil).Once()
	gw.On("ListVenues", ctx, domain.CategoryDrink, nilBundle).Return(venues("1", "2"), nil).Once()

	uc := usecase.NewBrowseUseCase(gw, zap.NewNop())
	store := state.NewStore()

	on, err := uc.ToggleQuickFilter(ctx, store, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Décoration:Instagrammable"}, on.Filters.Filters)
	assert.Equal(t, 3, on.ActiveQuickFilterID)
	assert.Equal(t, domain.CategoryDrink, on.Category)

	off, err := uc.ToggleQuickFilter(ctx, store, 3)
	require.NoError(t, err)
	assert.Nil(t, off.Filters)
	assert.Zero(t, off.ActiveQuickFilterID)

	gw.AssertExpectations(t)
}

func TestBrowseUseCase_ToggleQuickFilter_SwitchesDirectly(t *testing.T) {
	ctx := context.Background()

	gw := new(MockVenueGateway)
	gw.On("ListVenues", ctx, domain.CategoryEat, mock.Anything).Return(venues("1"), nil)

	uc := usecase.NewBrowseUseCase(gw, zap.NewNop())
	store := state.NewStore()
	_, err := uc.SelectCategory(ctx, store, "eat")
	require.NoError(t, err)

	_, err = uc.ToggleQuickFilter(ctx, store, 1)
	require.NoError(t, err)
	result, err := uc.ToggleQuickFilter(ctx, store, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, result.ActiveQuickFilterID)
	assert.Equal(t, []string{"Options alimentaires:Cuisine française"}, result.Filters.Filters)

	active := 0
	for _, q := range result.QuickFilters {
		if q.Active {
			active++
		}
	}
	assert.Equal(t, 1, active)
}

func TestBrowseUseCase_ToggleQuickFilter_UnknownID(t *testing.T) {
	gw := new(MockVenueGateway)
	uc := usecase.NewBrowseUseCase(gw, zap.NewNop())

	_, err := uc.ToggleQuickFilter(context.Background(), state.NewStore(), 6)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "QUICK_FILTER_NOT_FOUND", appErr.Code)
	gw.AssertNotCalled(t, "ListVenues", mock.Anything, mock.Anything, mock.Anything)
}

func TestBrowseUseCase_ApplyAdvancedFilter(t *testing.T) {
	ctx := context.Background()

	t.Run("merges over quick filter", func(t *testing.T) {
		gw := new(MockVenueGateway)
		gw.On("ListVenues", ctx, domain.CategoryDrink, mock.Anything).Return(venues("1"), nil)
		gw.On("ListVenues", ctx, domain.CategoryNearby, mock.MatchedBy(func(b *domain.FilterBundle) bool {
			return b != nil &&
				b.Address == "10 rue de Rivoli" &&
				b.MaxDistance == 100 &&
				b.PlaceCategory == domain.PlaceCategoryDrink &&
				len(b.Filters) == 1 && b.Filters[0] == "Ambiance:Branchée"
		})).Return(venues("3"), nil).Once()

		uc := usecase.NewBrowseUseCase(gw, zap.NewNop())
		store := state.NewStore()

		_, err := uc.ToggleQuickFilter(ctx, store, 2)
		require.NoError(t, err)

		result, err := uc.ApplyAdvancedFilter(ctx, store, dto.AdvancedFilterRequest{Address: " 10 rue de Rivoli "})
		require.NoError(t, err)
		assert.Equal(t, domain.CategoryNearby, result.Category)
		assert.Empty(t, result.QuickFilters)
		assert.Equal(t, "10 rue de Rivoli", store.Snapshot().Draft.Address)
		gw.AssertExpectations(t)
	})

	t.Run("empty address is a no-op", func(t *testing.T) {
		gw := new(MockVenueGateway)
		uc := usecase.NewBrowseUseCase(gw, zap.NewNop())
		store := state.NewStore()

		result, err := uc.ApplyAdvancedFilter(ctx, store, dto.AdvancedFilterRequest{Address: "  "})
		require.NoError(t, err)
		assert.Equal(t, domain.CategoryDrink, result.Category)
		gw.AssertNotCalled(t, "ListVenues", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBrowseUseCase_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("query then clear", func(t *testing.T) {
		gw := new(MockVenueGateway)
		gw.On("ListVenues", ctx, domain.CategoryFun, nilBundle).Return(venues("f"), nil).Once()
		gw.On("Search", ctx, "jazz bar").Return(venues("j1", "j2"), nil).Once()
		gw.On("ListVenues", ctx, domain.CategoryDrink, nilBundle).Return(venues("d"), nil).Once()

		uc := usecase.NewBrowseUseCase(gw, zap.NewNop())
		store := state.NewStore()

		_, err := uc.SelectCategory(ctx, store, "fun")
		require.NoError(t, err)

		found, err := uc.Search(ctx, store, dto.SearchRequest{Query: "jazz bar"})
		require.NoError(t, err)
		assert.Equal(t, 2, found.Total)
		assert.Equal(t, "jazz bar", found.SearchQuery)

		cleared, err := uc.Search(ctx, store, dto.SearchRequest{Query: ""})
		require.NoError(t, err)
		assert.Equal(t, domain.CategoryDrink, cleared.Category)
		assert.Equal(t, 1, cleared.Total)
		assert.Empty(t, cleared.SearchQuery)
		gw.AssertExpectations(t)
	})

	t.Run("clearing fetches unfiltered but keeps the bundle in state", func(t *testing.T) {
		bundle := domain.QuickFilterBundle(domain.Filter{Key: "Ambiance", Value: "Branchée"})

		gw := new(MockVenueGateway)
		gw.On("ListVenues", ctx, domain.CategoryDrink, bundle).Return(venues("1"), nil).Once()
		gw.On("ListVenues", ctx, domain.CategoryDrink, nilBundle).Return(venues("1", "2"), nil).Once()

		uc := usecase.NewBrowseUseCase(gw, zap.NewNop())
		store := state.NewStore()

		_, err := uc.ToggleQuickFilter(ctx, store, 2)
		require.NoError(t, err)

		result, err := uc.Search(ctx, store, dto.SearchRequest{})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Total)
		assert.Equal(t, bundle, result.Filters)
		assert.Equal(t, 2, result.ActiveQuickFilterID)
		gw.AssertExpectations(t)
	})

	t.Run("clearing from another category drops its active button", func(t *testing.T) {
		brunch := domain.QuickFilterBundle(domain.Filter{Key: "Options alimentaires", Value: "Brunchs"})
		hotelBar := domain.QuickFilterBundle(domain.Filter{Key: "Type de lieu", Value: "Bar d'hôtel"})

		gw := new(MockVenueGateway)
		gw.On("ListVenues", ctx, domain.CategoryEat, nilBundle).Return(venues("e"), nil).Once()
		gw.On("ListVenues", ctx, domain.CategoryEat, brunch).Return(venues("b"), nil).Once()
		gw.On("Search", ctx, "jazz bar").Return(venues("j"), nil).Once()
		gw.On("ListVenues", ctx, domain.CategoryDrink, nilBundle).Return(venues("d1", "d2"), nil).Once()
		gw.On("ListVenues", ctx, domain.CategoryDrink, hotelBar).Return(venues("h"), nil).Once()

		uc := usecase.NewBrowseUseCase(gw, zap.NewNop())
		store := state.NewStore()

		_, err := uc.SelectCategory(ctx, store, "eat")
		require.NoError(t, err)
		_, err = uc.ToggleQuickFilter(ctx, store, 1)
		require.NoError(t, err)
		_, err = uc.Search(ctx, store, dto.SearchRequest{Query: "jazz bar"})
		require.NoError(t, err)

		cleared, err := uc.Search(ctx, store, dto.SearchRequest{})
		require.NoError(t, err)
		assert.Equal(t, domain.CategoryDrink, cleared.Category)
		assert.Zero(t, cleared.ActiveQuickFilterID)
		for _, q := range cleared.QuickFilters {
			assert.False(t, q.Active, q.Name)
		}

		applied, err := uc.ToggleQuickFilter(ctx, store, 1)
		require.NoError(t, err)
		assert.Equal(t, hotelBar, applied.Filters)
		assert.Equal(t, 1, applied.ActiveQuickFilterID)
		gw.AssertExpectations(t)
	})

	t.Run("invalid query", func(t *testing.T) {
		gw := new(MockVenueGateway)
		gw.On("Search", ctx, "%%").Return(nil, domain.ErrInvalidQuery)

		uc := usecase.NewBrowseUseCase(gw, zap.NewNop())
		store := state.NewStore()

		_, err := uc.Search(ctx, store, dto.SearchRequest{Query: "%%"})
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_QUERY", appErr.Code)
		assert.False(t, store.Snapshot().Loading)
	})
}

func TestBrowseUseCase_FetchFailureClearsLoading(t *testing.T) {
	ctx := context.Background()
	gw := new(MockVenueGateway)
	gw.On("ListVenues", ctx, domain.CategoryEat, nilBundle).
		Return(nil, &domain.GatewayError{Op: "list_venues", StatusCode: 500, Message: "db down"})

	uc := usecase.NewBrowseUseCase(gw, zap.NewNop())
	store := state.NewStore()

	_, err := uc.SelectCategory(ctx, store, "eat")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "BACKEND_ERROR", appErr.Code)
	assert.Contains(t, appErr.Message, "db down")
	assert.False(t, store.Snapshot().Loading)
}

func TestBrowseUseCase_Reset(t *testing.T) {
	ctx := context.Background()
	gw := new(MockVenueGateway)
	gw.On("ListVenues", ctx, mock.Anything, mock.Anything).Return(venues("1"), nil)

	uc := usecase.NewBrowseUseCase(gw, zap.NewNop())
	store := state.NewStore()

	_, err := uc.SelectCategory(ctx, store, "fun")
	require.NoError(t, err)
	_, err = uc.ToggleQuickFilter(ctx, store, 1)
	require.NoError(t, err)
	_, err = uc.ApplyAdvancedFilter(ctx, store, dto.AdvancedFilterRequest{Address: "8 rue Oberkampf"})
	require.NoError(t, err)

	result, err := uc.Reset(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryDrink, result.Category)
	assert.Nil(t, result.Filters)
	assert.Zero(t, result.ActiveQuickFilterID)
	assert.Empty(t, result.NearbyAddress)
	assert.Equal(t, state.DefaultSeason, store.Snapshot().Draft.Season)
}

func TestBrowseUseCase_GenericErrorIsBackendError(t *testing.T) {
	ctx := context.Background()
	gw := new(MockVenueGateway)
	gw.On("ListVenues", ctx, domain.CategoryDrink, nilBundle).Return(nil, errors.New("connection refused"))

	uc := usecase.NewBrowseUseCase(gw, zap.NewNop())
	_, err := uc.Load(ctx, state.NewStore())
	assert.ErrorIs(t, err, apperrors.ErrBackend)
}

func TestBrowseUseCase_StaleResponseDiscarded(t *testing.T) {
	ctx := context.Background()
	release := make(chan struct{})
	started := make(chan struct{})

	gw := new(MockVenueGateway)
	gw.On("ListVenues", ctx, domain.CategoryEat, nilBundle).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(venues("eat-old"), nil).Once()
	gw.On("ListVenues", ctx, domain.CategoryFun, nilBundle).Return(venues("fun-new"), nil).Once()

	uc := usecase.NewBrowseUseCase(gw, zap.NewNop())
	store := state.NewStore()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = uc.SelectCategory(ctx, store, "eat")
	}()

	<-started
	result, err := uc.SelectCategory(ctx, store, "fun")
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "fun-new", result.Items[0].ID)

	close(release)
	<-done

	snap := store.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "fun-new", snap.Items[0].ID)
	assert.Equal(t, domain.CategoryFun, snap.Category)
	assert.False(t, snap.Loading)
}
