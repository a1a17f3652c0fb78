package errors

import "net/http"

var (
	ErrLocationNotFound = New(
		"LOCATION_NOT_FOUND",
		"Location not found",
		http.StatusNotFound,
	)

	ErrInvalidQuery = New(
		"INVALID_QUERY",
		"Invalid search query",
		http.StatusBadRequest,
	)

	ErrInvalidCategory = New(
		"INVALID_CATEGORY",
		"Unknown category",
		http.StatusBadRequest,
	)

	ErrQuickFilterNotFound = New(
		"QUICK_FILTER_NOT_FOUND",
		"Quick filter not found for the current category",
		http.StatusNotFound,
	)

	ErrValidationFailed = New(
		"VALIDATION_FAILED",
		"Vous devez remplir tous les champs obligatoires.",
		http.StatusUnprocessableEntity,
	)

	ErrBackend = New(
		"BACKEND_ERROR",
		"Backend request failed",
		http.StatusBadGateway,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Admin login required",
		http.StatusUnauthorized,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
