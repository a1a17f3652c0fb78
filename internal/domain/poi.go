package domain

import "fmt"

// LatLng - географическая координата
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// POI - маркер карты, полученный геокодированием адреса места. Не хранится.
type POI struct {
	Key         string `json:"key"`
	Location    LatLng `json:"location"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	VenueID     string `json:"id"`
}

// UserPOIKey - ключ маркера положения пользователя
const UserPOIKey = "user-location"

// UserPOI строит маркер "Votre position"
func UserPOI(at LatLng) POI {
	return POI{
		Key:         UserPOIKey,
		Location:    at,
		Title:       "Votre position",
		Description: "Vous êtes ici",
		VenueID:     "user",
	}
}

// GeocodeStatus классифицирует исход геокодирования
type GeocodeStatus string

const (
	GeocodeOK        GeocodeStatus = "ok"
	GeocodeNotFound  GeocodeStatus = "not_found"
	GeocodeInvalid   GeocodeStatus = "invalid_address"
	GeocodeTransient GeocodeStatus = "transient"
)

// GeocodeResult is success-with-point or failure-with-reason. Callers that only
// need a point use Point(), which is nil on any failure.
type GeocodeResult struct {
	Status   GeocodeStatus
	Location LatLng
	Err      error
}

func GeocodeSuccess(at LatLng) GeocodeResult {
	return GeocodeResult{Status: GeocodeOK, Location: at}
}

func GeocodeFailure(status GeocodeStatus, err error) GeocodeResult {
	if err == nil {
		err = fmt.Errorf("geocoding failed: %s", status)
	}
	return GeocodeResult{Status: status, Err: err}
}

func (r GeocodeResult) OK() bool {
	return r.Status == GeocodeOK
}

// Retryable reports whether a later attempt might succeed.
func (r GeocodeResult) Retryable() bool {
	return r.Status == GeocodeTransient
}

// Point возвращает координату или nil при неуспехе
func (r GeocodeResult) Point() *LatLng {
	if !r.OK() {
		return nil
	}
	at := r.Location
	return &at
}
