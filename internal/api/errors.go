package api

import (
	"errors"
	"net/http"

	"shop-demo/internal/domain"
	"shop-demo/internal/middleware"
)

// kindStatus pins the status of each error kind. Unlisted kinds fall back
// to the class of the typed error.
var kindStatus = map[error]int{
	domain.ErrMissingCredentials:   http.StatusUnauthorized,
	domain.ErrMalformedCredentials: http.StatusUnauthorized,
	domain.ErrInvalidToken:         http.StatusUnauthorized,
	domain.ErrUnknownCustomer:      http.StatusBadRequest,
	domain.ErrUnknownCartEntry:     http.StatusBadRequest,
	domain.ErrUnknownProduct:       http.StatusBadRequest,
	domain.ErrInvalidQuantity:      http.StatusBadRequest,
	domain.ErrCartEntryNotOwned:    http.StatusForbidden,
	domain.ErrUnknownOrder:         http.StatusNotFound,
	domain.ErrOrderNotOwned:        http.StatusNotFound,
}

// httpStatusFromDomainError maps domain errors to HTTP status codes.
func httpStatusFromDomainError(err error) int {
	if kind := domain.KindOf(err); kind != nil {
		if status, ok := kindStatus[kind]; ok {
			return status
		}
	}

	var unauthorized *domain.UnauthorizedError
	var notFound *domain.NotFoundError
	var accessDenied *domain.AccessDeniedError
	var validation *domain.ValidationError
	var conflict *domain.ConflictError

	switch {
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &accessDenied):
		return http.StatusForbidden
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &conflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeDomainError writes err as a JSON error body. Internal errors get a
// generic message.
func writeDomainError(w http.ResponseWriter, err error) {
	status := httpStatusFromDomainError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	middleware.WriteError(w, status, msg)
}
