package usecase

import (
	"context"
	"strings"

	"github.com/lovelyplace-web/internal/domain"
	"github.com/lovelyplace-web/internal/domain/repository"
	"github.com/lovelyplace-web/internal/pkg/errors"
	"github.com/lovelyplace-web/internal/pkg/metrics"
	"github.com/lovelyplace-web/internal/state"
	"github.com/lovelyplace-web/internal/usecase/dto"
	"go.uber.org/zap"
)

// BrowseUseCase - переходы категории и фильтров главной страницы.
// Каждое изменение категории или набора фильтров дает ровно одну загрузку списка.
type BrowseUseCase struct {
	gateway repository.VenueGateway
	logger  *zap.Logger
}

func NewBrowseUseCase(
	gateway repository.VenueGateway,
	logger *zap.Logger,
) *BrowseUseCase {
	return &BrowseUseCase{
		gateway: gateway,
		logger:  logger,
	}
}

// Load загружает список при первом открытии страницы
func (uc *BrowseUseCase) Load(ctx context.Context, store *state.Store) (*dto.BrowseState, error) {
	snap := store.Snapshot()
	if snap.Loaded || snap.Loading {
		return uc.State(store), nil
	}

	if err := uc.fetch(ctx, store, snap.Category, snap.Filters); err != nil {
		return nil, err
	}
	return uc.State(store), nil
}

// SelectCategory выбирает drink/eat/fun, сбрасывая набор фильтров и активную кнопку.
// Повторный выбор той же категории ничего не загружает.
func (uc *BrowseUseCase) SelectCategory(ctx context.Context, store *state.Store, raw string) (*dto.BrowseState, error) {
	category, err := domain.ParseMainCategory(raw)
	if err != nil {
		return nil, errors.ErrInvalidCategory.WithDetails(map[string]interface{}{"category": raw})
	}

	changed := false
	store.Apply(func(st *state.Snapshot) {
		changed = !st.Loaded || st.Category != category || st.Filters != nil || st.SearchQuery != ""
		st.Category = category
		st.Filters = nil
		st.ActiveQuickFilterID = 0
		st.SearchQuery = ""
	})

	if changed {
		if err := uc.fetch(ctx, store, category, nil); err != nil {
			return nil, err
		}
	}
	return uc.State(store), nil
}

// ToggleQuickFilter включает кнопку, выключает ее при повторном нажатии
// или сразу переключает на другую кнопку той же категории
func (uc *BrowseUseCase) ToggleQuickFilter(ctx context.Context, store *state.Store, id int) (*dto.BrowseState, error) {
	var (
		category domain.Category
		bundle   *domain.FilterBundle
		found    bool
	)
	store.Apply(func(st *state.Snapshot) {
		qf, ok := domain.FindQuickFilter(st.Category, id)
		if !ok {
			return
		}
		found = true
		if st.ActiveQuickFilterID == id {
			st.Filters = nil
			st.ActiveQuickFilterID = 0
		} else {
			st.Filters = domain.QuickFilterBundle(qf.Filter())
			st.ActiveQuickFilterID = id
		}
		st.SearchQuery = ""
		category = st.Category
		bundle = st.Filters.Clone()
	})

	if !found {
		return nil, errors.ErrQuickFilterNotFound.WithDetails(map[string]interface{}{"id": id})
	}

	if err := uc.fetch(ctx, store, category, bundle); err != nil {
		return nil, err
	}
	return uc.State(store), nil
}

// ApplyAdvancedFilter включает поиск рядом с адресом. Адрес добавляется
// поверх текущего набора: уже выбранные фильтры key:value сохраняются.
func (uc *BrowseUseCase) ApplyAdvancedFilter(ctx context.Context, store *state.Store, req dto.AdvancedFilterRequest) (*dto.BrowseState, error) {
	address := strings.TrimSpace(req.Address)
	if address == "" {
		return uc.State(store), nil
	}

	var bundle *domain.FilterBundle
	store.Apply(func(st *state.Snapshot) {
		bundle = st.Filters.WithNearby(address, st.Category.PlaceCategory())
		st.Filters = bundle.Clone()
		st.Category = domain.CategoryNearby
		st.SearchQuery = ""
		st.Draft.Address = address
	})

	if bundle.Filters != nil {
		uc.logger.Debug("Nearby search combined with quick filters",
			zap.Strings("filters", bundle.Filters),
			zap.String("address", address))
	}

	if err := uc.fetch(ctx, store, domain.CategoryNearby, bundle); err != nil {
		return nil, err
	}
	return uc.State(store), nil
}

// Search выполняет текстовый поиск мимо категорий. Пустой запрос возвращает
// категорию drink и загружает список без фильтров; набор фильтров в состоянии
// остается, а активная кнопка другой категории снимается.
func (uc *BrowseUseCase) Search(ctx context.Context, store *state.Store, req dto.SearchRequest) (*dto.BrowseState, error) {
	query := strings.TrimSpace(req.Query)

	if query == "" {
		store.Apply(func(st *state.Snapshot) {
			if st.Category != domain.DefaultCategory {
				st.ActiveQuickFilterID = 0
			}
			st.SearchQuery = ""
			st.Category = domain.DefaultCategory
		})
		if err := uc.fetch(ctx, store, domain.DefaultCategory, nil); err != nil {
			return nil, err
		}
		return uc.State(store), nil
	}

	store.Apply(func(st *state.Snapshot) { st.SearchQuery = query })

	gen := store.BeginFetch()
	defer store.FinishFetch(gen)

	venues, err := uc.gateway.Search(ctx, query)
	if err != nil {
		uc.logger.Error("Search failed", zap.String("query", query), zap.Error(err))
		return nil, mapGatewayError(err)
	}

	uc.commit(store, gen, venues)
	return uc.State(store), nil
}

// Reset - клик по логотипу: категория drink без фильтров
func (uc *BrowseUseCase) Reset(ctx context.Context, store *state.Store) (*dto.BrowseState, error) {
	store.Apply(func(st *state.Snapshot) {
		st.Category = domain.DefaultCategory
		st.Filters = nil
		st.ActiveQuickFilterID = 0
		st.SearchQuery = ""
	})
	store.SetDraft(state.Draft{Season: state.DefaultSeason})

	if err := uc.fetch(ctx, store, domain.DefaultCategory, nil); err != nil {
		return nil, err
	}
	return uc.State(store), nil
}

// State собирает представление главной страницы из состояния сессии
func (uc *BrowseUseCase) State(store *state.Store) *dto.BrowseState {
	snap := store.Snapshot()

	categories := make([]dto.CategoryView, 0, len(domain.MainCategories))
	for _, c := range domain.MainCategories {
		categories = append(categories, dto.CategoryView{
			Category: c,
			Label:    c.Label(),
			Active:   c == snap.Category,
		})
	}

	quick := domain.QuickFilters(snap.Category)
	quickViews := make([]dto.QuickFilterView, 0, len(quick))
	for _, q := range quick {
		quickViews = append(quickViews, dto.QuickFilterView{
			ID:     q.ID,
			Name:   q.Name,
			Filter: q.Filter().String(),
			Active: q.ID == snap.ActiveQuickFilterID,
		})
	}

	cards := make([]dto.VenueCard, 0, len(snap.Items))
	for _, v := range snap.Items {
		cards = append(cards, dto.NewVenueCard(v))
	}

	return &dto.BrowseState{
		Category:            snap.Category,
		Categories:          categories,
		Filters:             snap.Filters,
		ActiveQuickFilterID: snap.ActiveQuickFilterID,
		QuickFilters:        quickViews,
		SearchQuery:         snap.SearchQuery,
		NearbyAddress:       snap.Draft.Address,
		Loading:             snap.Loading,
		AdminLogin:          snap.AdminLogin,
		Items:               cards,
		Total:               len(cards),
	}
}

// fetch загружает список под новым поколением; флаг загрузки снимается
// и при ошибке, устаревший ответ отбрасывается
func (uc *BrowseUseCase) fetch(ctx context.Context, store *state.Store, category domain.Category, bundle *domain.FilterBundle) error {
	gen := store.BeginFetch()
	defer store.FinishFetch(gen)

	venues, err := uc.gateway.ListVenues(ctx, category, bundle)
	if err != nil {
		uc.logger.Error("Failed to fetch venues",
			zap.String("category", string(category)),
			zap.Error(err))
		return mapGatewayError(err)
	}

	uc.commit(store, gen, venues)
	return nil
}

func (uc *BrowseUseCase) commit(store *state.Store, gen uint64, venues []domain.Venue) {
	if !store.CommitItems(gen, venues) {
		metrics.StaleResponsesTotal.Inc()
		uc.logger.Debug("Stale response discarded",
			zap.Uint64("generation", gen),
			zap.Uint64("latest", store.Generation()))
	}
}
