package backend

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/lovelyplace-web/internal/domain"
	"go.uber.org/zap"
)

// CreateVenue - POST /location, multipart с JSON полями
func (c *client) CreateVenue(ctx context.Context, s *domain.Submission) (*domain.Venue, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	body, contentType, err := submissionForm(s)
	if err != nil {
		return nil, err
	}

	var venue domain.Venue
	err = c.do(ctx, request{
		op:          "create_venue",
		method:      http.MethodPost,
		path:        "/location",
		body:        body,
		contentType: contentType,
	}, &venue)
	if err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}

	c.logger.Info("Venue created", zap.String("id", venue.ID), zap.String("name", s.Name))
	return &venue, nil
}

// UploadPhoto - PUT /items/{id}, один файл в поле photos
func (c *client) UploadPhoto(ctx context.Context, id string, photo domain.Upload) (domain.PhotosFragment, error) {
	if err := requireID(id); err != nil {
		return domain.PhotosFragment{}, err
	}
	if len(photo.Data) == 0 {
		return domain.PhotosFragment{}, &domain.ValidationError{Field: "photos", Message: "photo file is required"}
	}

	body, contentType, err := photoForm(photo)
	if err != nil {
		return domain.PhotosFragment{}, err
	}

	var out domain.PhotosFragment
	err = c.do(ctx, request{
		op:          "upload_photo",
		method:      http.MethodPut,
		path:        itemPath(id),
		body:        body,
		contentType: contentType,
	}, &out)
	if err != nil {
		return domain.PhotosFragment{}, fmt.Errorf("upload photo %s: %w", id, err)
	}
	return out, nil
}

// DeletePhoto - DELETE /items/{id}/photo {photoUrl}
func (c *client) DeletePhoto(ctx context.Context, id, photoURL string) (domain.PhotosFragment, error) {
	if err := requireID(id); err != nil {
		return domain.PhotosFragment{}, err
	}
	if strings.TrimSpace(photoURL) == "" {
		return domain.PhotosFragment{}, &domain.ValidationError{Field: "photoUrl", Message: "photo url is required"}
	}

	body, err := jsonBody(map[string]string{"photoUrl": photoURL})
	if err != nil {
		return domain.PhotosFragment{}, err
	}

	var out domain.PhotosFragment
	err = c.do(ctx, request{
		op:          "delete_photo",
		method:      http.MethodDelete,
		path:        itemPath(id) + "/photo",
		body:        body,
		contentType: "application/json",
	}, &out)
	if err != nil {
		return domain.PhotosFragment{}, fmt.Errorf("delete photo %s: %w", id, err)
	}
	return out, nil
}

// UpdateKeywords - PUT /location/{id}/keywords {action, keywords}
func (c *client) UpdateKeywords(ctx context.Context, id string, action domain.EditAction, keywords []string) (domain.KeywordsFragment, error) {
	if err := requireID(id); err != nil {
		return domain.KeywordsFragment{}, err
	}
	if !action.Valid() {
		return domain.KeywordsFragment{}, &domain.ValidationError{Field: "action", Message: "action must be add or remove"}
	}
	if keywords == nil {
		return domain.KeywordsFragment{}, &domain.ValidationError{Field: "keywords", Message: "keywords must be a list"}
	}

	body, err := jsonBody(struct {
		Action   domain.EditAction `json:"action"`
		Keywords []string          `json:"keywords"`
	}{action, keywords})
	if err != nil {
		return domain.KeywordsFragment{}, err
	}

	var out domain.KeywordsFragment
	err = c.do(ctx, request{
		op:          "update_keywords",
		method:      http.MethodPut,
		path:        locationPath(id, "keywords"),
		body:        body,
		contentType: "application/json",
	}, &out)
	if err != nil {
		return domain.KeywordsFragment{}, fmt.Errorf("update keywords %s: %w", id, err)
	}
	return out, nil
}

// UpdateFilters - PUT /location/{id}/filters {action, filters}; каждый фильтр key:value
func (c *client) UpdateFilters(ctx context.Context, id string, action domain.EditAction, filters []string) (domain.FiltersFragment, error) {
	if err := requireID(id); err != nil {
		return domain.FiltersFragment{}, err
	}
	if !action.Valid() {
		return domain.FiltersFragment{}, &domain.ValidationError{Field: "action", Message: "action must be add or remove"}
	}
	if filters == nil {
		return domain.FiltersFragment{}, &domain.ValidationError{Field: "filters", Message: "filters must be a list"}
	}
	if err := domain.ValidateFilters(filters); err != nil {
		return domain.FiltersFragment{}, &domain.ValidationError{Field: "filters", Message: err.Error()}
	}

	body, err := jsonBody(struct {
		Action  domain.EditAction `json:"action"`
		Filters []string          `json:"filters"`
	}{action, filters})
	if err != nil {
		return domain.FiltersFragment{}, err
	}

	var out domain.FiltersFragment
	err = c.do(ctx, request{
		op:          "update_filters",
		method:      http.MethodPut,
		path:        locationPath(id, "filters"),
		body:        body,
		contentType: "application/json",
	}, &out)
	if err != nil {
		return domain.FiltersFragment{}, fmt.Errorf("update filters %s: %w", id, err)
	}
	return out, nil
}

// UpdateAddress - PUT /location/{id}/address; оба поля обязательны
func (c *client) UpdateAddress(ctx context.Context, id string, f domain.AddressFragment) (domain.AddressFragment, error) {
	if err := requireID(id); err != nil {
		return domain.AddressFragment{}, err
	}
	if strings.TrimSpace(f.PostalCode) == "" || strings.TrimSpace(f.Address) == "" {
		return domain.AddressFragment{}, &domain.ValidationError{Field: "address", Message: "postal code and address are required"}
	}

	body, err := jsonBody(f)
	if err != nil {
		return domain.AddressFragment{}, err
	}

	var out domain.AddressFragment
	err = c.do(ctx, request{
		op:          "update_address",
		method:      http.MethodPut,
		path:        locationPath(id, "address"),
		body:        body,
		contentType: "application/json",
	}, &out)
	if err != nil {
		return domain.AddressFragment{}, fmt.Errorf("update address %s: %w", id, err)
	}
	return out, nil
}

// UpdateDescription - PUT /location/{id}/description
func (c *client) UpdateDescription(ctx context.Context, id, description string) (domain.DescriptionFragment, error) {
	if err := requireID(id); err != nil {
		return domain.DescriptionFragment{}, err
	}
	if strings.TrimSpace(description) == "" {
		return domain.DescriptionFragment{}, &domain.ValidationError{Field: "locationDescription", Message: "description is required"}
	}

	body, err := jsonBody(domain.DescriptionFragment{Description: description})
	if err != nil {
		return domain.DescriptionFragment{}, err
	}

	var out domain.DescriptionFragment
	err = c.do(ctx, request{
		op:          "update_description",
		method:      http.MethodPut,
		path:        locationPath(id, "description"),
		body:        body,
		contentType: "application/json",
	}, &out)
	if err != nil {
		return domain.DescriptionFragment{}, fmt.Errorf("update description %s: %w", id, err)
	}
	return out, nil
}
