package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const bearerScheme = "Bearer"

// ErrInvalidAuthorizationHeader is returned by [ParseBearerToken] when the
// header is empty, uses another scheme or carries no token.
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// WriteJSON marshals data and writes it with the given status code and an
// "application/json" content type. It returns the number of body bytes
// written.
//
// Marshaling happens before anything is written, so a value that cannot be
// encoded results in a plain 500 response and a wrapped error instead of a
// half-written body.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}

// ParseBearerToken extracts the token from an Authorization header value of
// the form "Bearer <token>". The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.Contains(token, " ") {
		return "", ErrInvalidAuthorizationHeader
	}

	return token, nil
}

// SetBearerToken puts token into the Authorization header of w.
func SetBearerToken(w http.ResponseWriter, token string) {
	w.Header().Set("Authorization", bearerScheme+" "+token)
}
