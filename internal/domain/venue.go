package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Venue - место каталога (бар, ресторан, активность), как его отдает бэкенд
type Venue struct {
	ID            string        `json:"_id"`
	Name          string        `json:"locationName"`
	Address       string        `json:"locationAddress"`
	PostalCode    string        `json:"postalCode"`
	Description   string        `json:"locationDescription"`
	Tips          Tips          `json:"tips"`
	PriceRange    string        `json:"priceRange"`
	PlaceCategory PlaceCategory `json:"placeCategory"`
	SocialMedia   string        `json:"socialmedia"`
	MediaLinks    []string      `json:"mediaLink"`
	Photos        []string      `json:"photos"`
	Hours         WeeklyHours   `json:"hours"`
	Keywords      []string      `json:"keywords"`
	Filters       []string      `json:"filters"`
}

// Tips - упорядоченный список советов. Бэкенд хранит его строкой с JSON
// массивом внутри, поэтому декодер принимает обе формы.
type Tips []string

func (t *Tips) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = nil
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode tips: %w", err)
		}
		if strings.TrimSpace(s) == "" {
			*t = nil
			return nil
		}
		data = []byte(s)
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("decode tips: %w", err)
	}
	*t = list
	return nil
}

// NonEmpty returns the tips that carry text.
func (t Tips) NonEmpty() []string {
	out := make([]string, 0, len(t))
	for _, tip := range t {
		if strings.TrimSpace(tip) != "" {
			out = append(out, tip)
		}
	}
	return out
}

// FullAddress - адрес с почтовым индексом, как его геокодирует карта
func (v Venue) FullAddress() string {
	return strings.TrimSpace(v.Address + " " + v.PostalCode)
}

// FirstPhoto возвращает первое фото или пустую строку
func (v Venue) FirstPhoto() string {
	if len(v.Photos) == 0 {
		return ""
	}
	return v.Photos[0]
}

// PhotoSlots returns the first PhotoSlots photos, padded with empty strings.
func (v Venue) PhotoSlots() []string {
	out := make([]string, PhotoSlots)
	copy(out, v.Photos)
	return out
}

// PhotoAt возвращает фото слота или false, если слот пуст
func (v Venue) PhotoAt(slot int) (string, bool) {
	if slot < 0 || slot >= PhotoSlots || slot >= len(v.Photos) || v.Photos[slot] == "" {
		return "", false
	}
	return v.Photos[slot], true
}

// MediaPermalinks - непустые ссылки на публикации
func (v Venue) MediaPermalinks() []string {
	out := make([]string, 0, len(v.MediaLinks))
	for _, l := range v.MediaLinks {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

// ParsedFilters splits every stored filter. Malformed entries are returned
// separately so the page can show them raw.
func (v Venue) ParsedFilters() (parsed []Filter, malformed []string) {
	for _, s := range v.Filters {
		f, err := ParseFilter(s)
		if err != nil {
			malformed = append(malformed, s)
			continue
		}
		parsed = append(parsed, f)
	}
	return parsed, malformed
}

// Clone returns a deep copy.
func (v Venue) Clone() Venue {
	out := v
	out.Tips = append(Tips(nil), v.Tips...)
	out.MediaLinks = append([]string(nil), v.MediaLinks...)
	out.Photos = append([]string(nil), v.Photos...)
	out.Keywords = append([]string(nil), v.Keywords...)
	out.Filters = append([]string(nil), v.Filters...)
	return out
}

var firstSentenceRe = regexp.MustCompile(`^.*?[.!?]`)

// FirstSentence возвращает первое предложение текста с многоточием
func FirstSentence(text string) string {
	if m := firstSentenceRe.FindString(text); m != "" {
		return strings.TrimSpace(m) + "..."
	}
	return strings.TrimSpace(text) + "..."
}
