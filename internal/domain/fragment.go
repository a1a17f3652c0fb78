package domain

import "fmt"

// EditAction - операция над списком ключевых слов или фильтров
type EditAction string

const (
	EditActionAdd    EditAction = "add"
	EditActionRemove EditAction = "remove"
)

func (a EditAction) Valid() bool {
	return a == EditActionAdd || a == EditActionRemove
}

// Partial update responses. Each carries only the fields the backend changed
// and is merged into the venue held in state.

type AddressFragment struct {
	PostalCode string `json:"postalCode"`
	Address    string `json:"locationAddress"`
}

type DescriptionFragment struct {
	Description string `json:"locationDescription"`
}

type KeywordsFragment struct {
	Keywords []string `json:"keywords"`
}

type FiltersFragment struct {
	Filters []string `json:"filters"`
}

type PhotosFragment struct {
	Photos []string `json:"photos"`
}

func (v Venue) WithAddress(f AddressFragment) Venue {
	out := v.Clone()
	out.Address = f.Address
	out.PostalCode = f.PostalCode
	return out
}

func (v Venue) WithDescription(f DescriptionFragment) Venue {
	out := v.Clone()
	out.Description = f.Description
	return out
}

func (v Venue) WithKeywords(f KeywordsFragment) Venue {
	out := v.Clone()
	out.Keywords = append([]string(nil), f.Keywords...)
	return out
}

func (v Venue) WithFilters(f FiltersFragment) Venue {
	out := v.Clone()
	out.Filters = append([]string(nil), f.Filters...)
	return out
}

// WithPhotos replaces the photo list. A nil list means the backend did not
// return photos and the current ones are kept.
func (v Venue) WithPhotos(f PhotosFragment) Venue {
	out := v.Clone()
	if f.Photos != nil {
		out.Photos = append([]string(nil), f.Photos...)
	}
	return out
}

// Upload - файл, пересылаемый бэкенду в multipart запросе
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Submission - новая карточка места из формы
type Submission struct {
	Name          string
	Address       string
	PostalCode    string
	Description   string
	Tips          []string
	SocialMedia   string
	MediaLinks    []string
	Hours         WeeklyHours
	PriceRange    string
	Keywords      []string
	Filters       []string
	PlaceCategory PlaceCategory
	Photos        []Upload
}

// Validate checks the required fields. It runs before any network call.
func (s *Submission) Validate() error {
	if s.Name == "" || s.Address == "" || s.Description == "" || s.PriceRange == "" {
		return &ValidationError{Field: "required", Message: "Vous devez remplir tous les champs obligatoires."}
	}
	if s.PlaceCategory != "" && !s.PlaceCategory.Valid() {
		return &ValidationError{Field: "placeCategory", Message: fmt.Sprintf("unknown place category %q", s.PlaceCategory)}
	}
	if err := ValidateFilters(s.Filters); err != nil {
		return &ValidationError{Field: "filters", Message: err.Error()}
	}
	return nil
}
