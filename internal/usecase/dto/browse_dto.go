package dto

import "github.com/lovelyplace-web/internal/domain"

// SearchRequest - запрос строки поиска; пустая строка сбрасывает поиск
type SearchRequest struct {
	Query string `json:"query" query:"query" validate:"max=200"`
}

// AdvancedFilterRequest - поиск рядом с адресом; пустой адрес ничего не меняет
type AdvancedFilterRequest struct {
	Address string `json:"address" form:"address" validate:"max=300"`
}

// QuickFilterView - кнопка быстрого фильтра с отметкой активности
type QuickFilterView struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Filter string `json:"filter"`
	Active bool   `json:"active"`
}

// CategoryView - пункт панели категорий
type CategoryView struct {
	Category domain.Category `json:"category"`
	Label    string          `json:"label"`
	Active   bool            `json:"active"`
}

// VenueCard - карточка места в списке
type VenueCard struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Address       string               `json:"address"`
	PostalCode    string               `json:"postalCode"`
	PriceRange    string               `json:"priceRange"`
	PlaceCategory domain.PlaceCategory `json:"placeCategory"`
	Photo         string               `json:"photo,omitempty"`
	Excerpt       string               `json:"excerpt"`
}

// BrowseState - состояние главной страницы
type BrowseState struct {
	Category            domain.Category      `json:"category"`
	Categories          []CategoryView       `json:"categories"`
	Filters             *domain.FilterBundle `json:"filterParams"`
	ActiveQuickFilterID int                  `json:"activeQuickFilterId,omitempty"`
	QuickFilters        []QuickFilterView    `json:"quickFilters"`
	SearchQuery         string               `json:"searchQuery,omitempty"`
	NearbyAddress       string               `json:"nearbyAddress,omitempty"`
	Loading             bool                 `json:"loading"`
	AdminLogin          bool                 `json:"adminLogin"`
	Items               []VenueCard          `json:"items"`
	Total               int                  `json:"total"`
}

// NewVenueCard собирает карточку из места
func NewVenueCard(v domain.Venue) VenueCard {
	return VenueCard{
		ID:            v.ID,
		Name:          v.Name,
		Address:       v.Address,
		PostalCode:    v.PostalCode,
		PriceRange:    v.PriceRange,
		PlaceCategory: v.PlaceCategory,
		Photo:         v.FirstPhoto(),
		Excerpt:       domain.FirstSentence(v.Description),
	}
}
