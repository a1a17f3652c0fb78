package dto

import "github.com/lovelyplace-web/internal/domain"

// MapRequest - положение пользователя; без координат берется центр по умолчанию
type MapRequest struct {
	Lat *float64 `json:"lat" query:"lat" validate:"omitnil,min=-90,max=90"`
	Lng *float64 `json:"lng" query:"lng" validate:"omitnil,min=-180,max=180"`
}

// Marker - маркер места с расстоянием до пользователя
type Marker struct {
	domain.POI
	DistanceKm float64 `json:"distanceKm"`
}

// MapView - данные карты
type MapView struct {
	Center      domain.LatLng `json:"center"`
	Zoom        int           `json:"zoom"`
	Markers     []Marker      `json:"markers"`
	User        domain.POI    `json:"user"`
	Dropped     int           `json:"dropped"`
	OpenPopupID string        `json:"openPopupId,omitempty"`
}

// Popup - содержимое всплывающего окна маркера
type Popup struct {
	VenueID     string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	Link        string `json:"link"`
	HTML        string `json:"html"`
}
