package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-flight-board/internal/service"
	"github.com/MKhiriev/go-flight-board/internal/store"
	"github.com/MKhiriev/go-flight-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Message
}

// ---- register ----

func TestRegister_Success(t *testing.T) {
	var got models.Credentials
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{
		registerFn: func(_ context.Context, c models.Credentials) (models.AuthResult, error) {
			got = c
			return models.AuthResult{
				User:  models.User{UserID: "user-1", Username: c.Username},
				Token: models.Token{SignedString: "signed.jwt.token"},
			}, nil
		},
	}})

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"alice","password":"s3cret"}`))
	rr := serve(h, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, models.Credentials{Username: "alice", Password: "s3cret"}, got)
	assert.Equal(t, "Bearer signed.jwt.token", rr.Header().Get("Authorization"))
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body models.RegisterResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, models.RegisterResponse{Message: "User registered", Token: "signed.jwt.token"}, body)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "invalid JSON",
			body:        `{"username":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid JSON body",
		},
		{
			name:        "missing fields",
			body:        `{"username":"alice"}`,
			serviceErr:  service.ErrInvalidDataProvided,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Username and password are required",
		},
		{
			name:        "empty body",
			body:        ``,
			serviceErr:  service.ErrInvalidDataProvided,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Username and password are required",
		},
		{
			name:        "username taken",
			body:        `{"username":"alice","password":"p"}`,
			serviceErr:  store.ErrLoginAlreadyExists,
			wantStatus:  http.StatusConflict,
			wantMessage: "Username already taken",
		},
		{
			name:        "unexpected fault",
			body:        `{"username":"alice","password":"p"}`,
			serviceErr:  errors.New("disk on fire"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&service.Services{AuthService: &mockAuthService{
				registerFn: func(_ context.Context, _ models.Credentials) (models.AuthResult, error) {
					return models.AuthResult{}, tt.serviceErr
				},
			}})

			rr := serve(h, httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rr))
			assert.Empty(t, rr.Header().Get("Authorization"))
		})
	}
}

// ---- login ----

func TestLogin_Success(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{
		loginFn: func(_ context.Context, c models.Credentials) (models.AuthResult, error) {
			return models.AuthResult{Token: models.Token{SignedString: "fresh.jwt.token"}}, nil
		},
	}})

	rr := serve(h, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"alice","password":"s3cret"}`)))

	require.Equal(t, http.StatusOK, rr.Code)
	var body models.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "fresh.jwt.token", body.Token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.AuthResult, error) {
			return models.AuthResult{}, service.ErrInvalidCredentials
		},
	}})

	rr := serve(h, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"alice","password":"nope"}`)))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid credentials", decodeMessage(t, rr))
}

func TestLogin_MissingFields(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.AuthResult, error) {
			return models.AuthResult{}, service.ErrInvalidDataProvided
		},
	}})

	rr := serve(h, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Username and password are required", decodeMessage(t, rr))
}

// ---- profile ----

func TestProfile(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		profileErr  error
		wantStatus  int
		wantMessage string
	}{
		{name: "profile", path: "/profile", wantStatus: http.StatusOK},
		{name: "me alias", path: "/me", wantStatus: http.StatusOK},
		{name: "user gone", path: "/profile", profileErr: store.ErrNoUserWasFound, wantStatus: http.StatusNotFound, wantMessage: "User not found"},
		{name: "bad claims", path: "/me", profileErr: service.ErrInvalidTokenPayload, wantStatus: http.StatusBadRequest, wantMessage: "Invalid token payload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&service.Services{AuthService: &mockAuthService{
				parseTokenFn: acceptToken,
				profileFn: func(_ context.Context, claims models.Claims) (models.PublicUser, error) {
					if tt.profileErr != nil {
						return models.PublicUser{}, tt.profileErr
					}
					return models.PublicUser{ID: claims.UserID(), Username: claims.Username}, nil
				},
			}})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("Authorization", "Bearer good-token")
			rr := serve(h, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeMessage(t, rr))
				return
			}

			assert.JSONEq(t, `{"user":{"id":"user-1","username":"alice"}}`, rr.Body.String())
		})
	}
}

func TestProfile_WithFlightQueryServesFlights(t *testing.T) {
	var got models.FlightQuery
	h := newTestHandler(&service.Services{
		AuthService: &mockAuthService{parseTokenFn: acceptToken},
		FlightService: &mockFlightService{getFlightsFn: func(_ context.Context, q models.FlightQuery) (models.FlightBoard, error) {
			got = q
			return models.FlightBoard{Airport: "JFK", Type: models.Departures, Flights: []models.NormalizedFlight{}}, nil
		}},
	})

	req := httptest.NewRequest(http.MethodGet, "/profile?iata=JFK&type=departures", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rr := serve(h, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.FlightQuery{Airport: "JFK", Direction: models.Departures}, got)
	assert.JSONEq(t, `{"airport":"JFK","type":"departures","count":0,"flights":[]}`, rr.Body.String())
}

func TestProfile_WithoutClaimsInContext(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{}})

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/profile", nil))
	rr := httptest.NewRecorder()
	h.profile(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
