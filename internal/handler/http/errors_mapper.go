package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-flight-board/internal/adapter"
	"github.com/MKhiriev/go-flight-board/internal/logger"
	"github.com/MKhiriev/go-flight-board/internal/service"
	"github.com/MKhiriev/go-flight-board/internal/store"
	"github.com/MKhiriev/go-flight-board/internal/utils"
	"github.com/MKhiriev/go-flight-board/internal/validators"
	"github.com/MKhiriev/go-flight-board/models"
)

// Messages sent to callers. They never carry internal error text.
const (
	msgCredentialsRequired   = "Username and password are required"
	msgInvalidJSON           = "Invalid JSON body"
	msgUsernameTaken         = "Username already taken"
	msgInvalidCredentials    = "Invalid credentials"
	msgUnauthorized          = "Invalid or missing token"
	msgInvalidTokenPayload   = "Invalid token payload"
	msgUserNotFound          = "User not found"
	msgIATARequired          = "Query parameter iata is required"
	msgInvalidIATA           = "Query parameter iata must be an airport code"
	msgInvalidFlightType     = "Query parameter type must be arrivals or departures"
	msgInvalidFlightQuery    = "Invalid flight query"
	msgUpstreamNotConfigured = "Flight provider is not configured"
	msgUpstreamUnavailable   = "Flight provider is unavailable"
	msgUpstreamRejected      = "Flight provider rejected the request"
	msgInternalServerError   = "Internal server error"
	msgNotFound              = "Not found"
	msgMethodNotAllowed      = "Method not allowed"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                     http.StatusBadRequest,
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidFlightQuery:      http.StatusBadRequest,
	service.ErrInvalidTokenPayload:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrUpstreamNotConfigured:   http.StatusInternalServerError,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,

	adapter.ErrUpstreamFailed: http.StatusBadGateway,
}

// errorMessages is checked in order; more specific errors come first.
var errorMessages = []struct {
	target  error
	message string
}{
	{ErrInvalidJSON, msgInvalidJSON},
	{service.ErrInvalidDataProvided, msgCredentialsRequired},
	{validators.ErrEmptyAirport, msgIATARequired},
	{validators.ErrInvalidAirport, msgInvalidIATA},
	{validators.ErrInvalidType, msgInvalidFlightType},
	{service.ErrInvalidFlightQuery, msgInvalidFlightQuery},
	{service.ErrInvalidTokenPayload, msgInvalidTokenPayload},
	{service.ErrInvalidCredentials, msgInvalidCredentials},
	{service.ErrTokenIsExpiredOrInvalid, msgUnauthorized},
	{service.ErrUpstreamNotConfigured, msgUpstreamNotConfigured},
	{store.ErrLoginAlreadyExists, msgUsernameTaken},
	{store.ErrNoUserWasFound, msgUserNotFound},
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	var upstreamErr *adapter.UpstreamError
	if errors.As(err, &upstreamErr) {
		switch {
		case upstreamErr.StatusCode == 0:
			return msgUpstreamUnavailable
		case upstreamErr.StatusCode < http.StatusMultipleChoices:
			// error object delivered inside a successful response
			return msgUpstreamRejected
		}
		return fmt.Sprintf("Flight provider responded with status %d", upstreamErr.StatusCode)
	}

	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return msgInternalServerError
}

// writeError logs err with the request logger and answers with the mapped
// status and a safe {message} body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeMessage(w, r, messageFromError(err), status)
}

func writeMessage(w http.ResponseWriter, r *http.Request, message string, status int) {
	if _, err := utils.WriteJSON(w, models.ErrorResponse{Message: message}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, r, msgNotFound, http.StatusNotFound)
}
