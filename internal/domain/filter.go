package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// NearbyMaxDistance - фиксированный радиус поиска по адресу
const NearbyMaxDistance = 100

const filterSeparator = ":"

var ErrMalformedFilter = errors.New("filter must be formatted as key:value")

// Filter - пара ключ/значение, хранится строкой "key:value"
type Filter struct {
	Key   string
	Value string
}

// NewFilter собирает фильтр и проверяет, что ключ и значение не пустые
func NewFilter(key, value string) (Filter, error) {
	f := Filter{Key: strings.TrimSpace(key), Value: strings.TrimSpace(value)}
	if f.Key == "" || f.Value == "" {
		return Filter{}, ErrMalformedFilter
	}
	return f, nil
}

// ParseFilter splits s on the first colon. Key and value must both be non-empty.
func ParseFilter(s string) (Filter, error) {
	key, value, ok := strings.Cut(s, filterSeparator)
	if !ok || key == "" || value == "" {
		return Filter{}, fmt.Errorf("%w: %q", ErrMalformedFilter, s)
	}
	return Filter{Key: key, Value: value}, nil
}

func (f Filter) String() string {
	return f.Key + filterSeparator + f.Value
}

// ValidateFilters проверяет формат каждой строки фильтра
func ValidateFilters(filters []string) error {
	for _, s := range filters {
		if _, err := ParseFilter(s); err != nil {
			return err
		}
	}
	return nil
}

// FilterBundle описывает активный режим фильтрации, отправляемый бэкенду.
// nil означает "без фильтров". Быстрый фильтр заполняет Filters, поиск рядом
// с адресом заполняет Address/MaxDistance/PlaceCategory; оба набора могут
// сосуществовать (см. DESIGN.md, открытый вопрос 1).
type FilterBundle struct {
	Filters       []string      `json:"filters,omitempty"`
	Address       string        `json:"address,omitempty"`
	MaxDistance   int           `json:"maxDistance,omitempty"`
	PlaceCategory PlaceCategory `json:"placeCategory,omitempty"`
}

// QuickFilterBundle - набор из одного фильтра key:value
func QuickFilterBundle(f Filter) *FilterBundle {
	return &FilterBundle{Filters: []string{f.String()}}
}

// WithNearby merges the address search over the existing bundle, keeping any
// filters already set. The receiver may be nil.
func (b *FilterBundle) WithNearby(address string, place PlaceCategory) *FilterBundle {
	out := b.Clone()
	if out == nil {
		out = &FilterBundle{}
	}
	out.Address = address
	out.MaxDistance = NearbyMaxDistance
	out.PlaceCategory = place
	return out
}

// IsNearby сообщает, включен ли поиск по адресу
func (b *FilterBundle) IsNearby() bool {
	return b != nil && b.Address != ""
}

// Clone возвращает глубокую копию набора
func (b *FilterBundle) Clone() *FilterBundle {
	if b == nil {
		return nil
	}
	out := *b
	if b.Filters != nil {
		out.Filters = append([]string(nil), b.Filters...)
	}
	return &out
}

// Equal сравнивает два набора; nil равен только nil
func (b *FilterBundle) Equal(o *FilterBundle) bool {
	if b == nil || o == nil {
		return b == nil && o == nil
	}
	if b.Address != o.Address || b.MaxDistance != o.MaxDistance || b.PlaceCategory != o.PlaceCategory {
		return false
	}
	if len(b.Filters) != len(o.Filters) {
		return false
	}
	for i := range b.Filters {
		if b.Filters[i] != o.Filters[i] {
			return false
		}
	}
	return true
}

// Query serializes the bundle to backend query parameters. Multiple filters
// are joined with a comma into a single "filters" parameter.
func (b *FilterBundle) Query() url.Values {
	q := url.Values{}
	if b == nil {
		return q
	}
	if len(b.Filters) > 0 {
		q.Set("filters", strings.Join(b.Filters, ","))
	}
	if b.Address != "" {
		q.Set("address", b.Address)
	}
	if b.MaxDistance > 0 {
		q.Set("maxDistance", strconv.Itoa(b.MaxDistance))
	}
	if b.PlaceCategory != "" {
		q.Set("placeCategory", string(b.PlaceCategory))
	}
	return q
}
