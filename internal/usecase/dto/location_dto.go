package dto

import "github.com/lovelyplace-web/internal/domain"

// LocationView - страница места со всеми данными для отображения и модалок
type LocationView struct {
	Venue            domain.Venue         `json:"venue"`
	Hours            []domain.DayHours    `json:"hours"`
	Photos           []string             `json:"photoSlots"`
	Tips             []string             `json:"tips"`
	MediaLinks       []string             `json:"mediaLinks"`
	Filters          []domain.Filter      `json:"filters"`
	MalformedFilters []string             `json:"malformedFilters,omitempty"`
	AdminLogin       bool                 `json:"adminLogin"`
	FilterCatalog    []domain.FilterGroup `json:"filterCatalog,omitempty"`
}

// NewLocationView собирает представление места
func NewLocationView(v domain.Venue, admin bool) *LocationView {
	parsed, malformed := v.ParsedFilters()
	view := &LocationView{
		Venue:            v,
		Hours:            v.Hours.List(),
		Photos:           v.PhotoSlots(),
		Tips:             v.Tips.NonEmpty(),
		MediaLinks:       v.MediaPermalinks(),
		Filters:          parsed,
		MalformedFilters: malformed,
		AdminLogin:       admin,
	}
	if admin {
		view.FilterCatalog = domain.FilterCatalog
	}
	return view
}

// AddressRequest - изменение адреса; оба поля обязательны
type AddressRequest struct {
	PostalCode string `json:"postalCode" form:"postalCode" validate:"required,max=10"`
	Address    string `json:"locationAddress" form:"locationAddress" validate:"required,max=300"`
}

// DescriptionRequest - изменение описания
type DescriptionRequest struct {
	Description string `json:"locationDescription" form:"locationDescription" validate:"required"`
}

// KeywordsRequest - добавление или удаление ключевых слов
type KeywordsRequest struct {
	Action   string   `json:"action" form:"action" validate:"required,oneof=add remove"`
	Keywords []string `json:"keywords" form:"keywords" validate:"required,min=1,dive,required"`
}

// FiltersRequest - добавление или удаление фильтров key:value
type FiltersRequest struct {
	Action  string   `json:"action" form:"action" validate:"required,oneof=add remove"`
	Filters []string `json:"filters" form:"filters" validate:"required,min=1,dive,keyvalue"`
}

// DeletePhotoRequest - удаление фото по URL или по номеру слота (0..3)
type DeletePhotoRequest struct {
	PhotoURL string `json:"photoUrl" form:"photoUrl"`
	Slot     *int   `json:"slot" form:"slot" validate:"omitnil,min=0,max=3"`
}
