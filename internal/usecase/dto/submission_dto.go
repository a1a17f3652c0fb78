package dto

import (
	"bytes"
	"encoding/json"

	"github.com/lovelyplace-web/internal/domain"
	"github.com/lovelyplace-web/internal/pkg/errors"
)

// StructuredFieldsMessage - ошибка, когда сложное поле пришло примитивом
const StructuredFieldsMessage = "Les champs mediaLink, hours, filters, et keywords doivent être des objets ou des tableaux."

// SubmissionRequest - новая карточка места
type SubmissionRequest struct {
	Name          string             `json:"locationName" validate:"required"`
	Address       string             `json:"locationAddress" validate:"required"`
	PostalCode    string             `json:"postalCode" validate:"max=10"`
	Description   string             `json:"locationDescription" validate:"required"`
	Tips          []string           `json:"tips"`
	SocialMedia   string             `json:"socialmedia"`
	MediaLinks    []string           `json:"mediaLink" validate:"max=8"`
	Hours         domain.WeeklyHours `json:"hours"`
	PriceRange    string             `json:"priceRange" validate:"required"`
	Keywords      []string           `json:"keywords"`
	Filters       []string           `json:"filters" validate:"dive,keyvalue"`
	PlaceCategory string             `json:"placeCategory" validate:"omitempty,oneof=prendre_un_verre manger_ensemble partager_une_activité"`
	Photos        []domain.Upload    `json:"-"`
}

// ToDomain переводит запрос в доменную модель
func (r *SubmissionRequest) ToDomain() *domain.Submission {
	return &domain.Submission{
		Name:          r.Name,
		Address:       r.Address,
		PostalCode:    r.PostalCode,
		Description:   r.Description,
		Tips:          r.Tips,
		SocialMedia:   r.SocialMedia,
		MediaLinks:    r.MediaLinks,
		Hours:         r.Hours,
		PriceRange:    r.PriceRange,
		Keywords:      r.Keywords,
		Filters:       r.Filters,
		PlaceCategory: domain.PlaceCategory(r.PlaceCategory),
		Photos:        r.Photos,
	}
}

// DecodeStructuredFields разбирает JSON поля multipart запроса (tips, mediaLink,
// hours, keywords, filters). Пустое поле пропускается; примитив вместо
// массива или объекта - ошибка.
func (r *SubmissionRequest) DecodeStructuredFields(get func(field string) string) error {
	targets := []struct {
		field string
		out   interface{}
	}{
		{"tips", &r.Tips},
		{"mediaLink", &r.MediaLinks},
		{"hours", &r.Hours},
		{"keywords", &r.Keywords},
		{"filters", &r.Filters},
	}

	for _, t := range targets {
		raw := bytes.TrimSpace([]byte(get(t.field)))
		if len(raw) == 0 {
			continue
		}
		if raw[0] != '[' && raw[0] != '{' {
			return errors.ErrInvalidRequest.WithMessage(StructuredFieldsMessage)
		}
		if err := json.Unmarshal(raw, t.out); err != nil {
			return errors.ErrInvalidRequest.WithMessage(StructuredFieldsMessage).
				WithDetails(map[string]interface{}{"field": t.field})
		}
	}
	return nil
}

// FormView - справочники для формы создания
type FormView struct {
	Days            []string             `json:"days"`
	PriceRanges     []string             `json:"priceRanges"`
	FilterCatalog   []domain.FilterGroup `json:"filterCatalog"`
	PlaceCategories []PlaceCategoryView  `json:"placeCategories"`
	TipSlots        []int                `json:"-"`
	MediaLinkSlots  []int                `json:"-"`
	PhotoSlots      []int                `json:"-"`
}

// PlaceCategoryView - вариант выбора категории места
type PlaceCategoryView struct {
	Value domain.PlaceCategory `json:"value"`
	Label string               `json:"label"`
}
