package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/lovelyplace-web/internal/domain"
)

// ListVenues - GET /{category}?filters=...&address=...
func (c *client) ListVenues(ctx context.Context, category domain.Category, filters *domain.FilterBundle) ([]domain.Venue, error) {
	if category == "" {
		return nil, &domain.ValidationError{Field: "category", Message: "category is required"}
	}

	var venues []domain.Venue
	err := c.do(ctx, request{
		op:       "list_venues",
		method:   http.MethodGet,
		path:     "/" + url.PathEscape(string(category)),
		rawQuery: filters.Query().Encode(),
	}, &venues)
	if err != nil {
		return nil, fmt.Errorf("list venues %s: %w", category, err)
	}

	if venues == nil {
		venues = []domain.Venue{}
	}
	return venues, nil
}

// GetVenue - GET /items/{id}
func (c *client) GetVenue(ctx context.Context, id string) (*domain.Venue, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}

	var venue domain.Venue
	err := c.do(ctx, request{
		op:     "get_venue",
		method: http.MethodGet,
		path:   itemPath(id),
	}, &venue)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return nil, fmt.Errorf("get venue %s: %w", id, domain.ErrVenueNotFound)
		}
		return nil, fmt.Errorf("get venue %s: %w", id, err)
	}

	return &venue, nil
}

// encodeQueryComponent кодирует пробел как %20, а не "+"
func encodeQueryComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Search - GET /search?query=. Пустой запрос отклоняется до сетевого вызова.
func (c *client) Search(ctx context.Context, query string) ([]domain.Venue, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &domain.ValidationError{Field: "query", Message: "search query is required"}
	}

	var venues []domain.Venue
	err := c.do(ctx, request{
		op:       "search",
		method:   http.MethodGet,
		path:     "/search",
		rawQuery: "query=" + encodeQueryComponent(query),
	}, &venues)
	if err != nil {
		switch statusOf(err) {
		case http.StatusNotFound:
			return []domain.Venue{}, nil
		case http.StatusBadRequest:
			return nil, fmt.Errorf("search %q: %w", query, domain.ErrInvalidQuery)
		}
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	if venues == nil {
		venues = []domain.Venue{}
	}
	return venues, nil
}
