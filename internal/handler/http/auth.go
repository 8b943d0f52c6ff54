package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-flight-board/internal/logger"
	"github.com/MKhiriev/go-flight-board/internal/utils"
	"github.com/MKhiriev/go-flight-board/models"
)

const msgUserRegistered = "User registered"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	credentials, err := decodeCredentials(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.SetBearerToken(w, result.Token.SignedString)
	if _, err = utils.WriteJSON(w, models.RegisterResponse{
		Message: msgUserRegistered,
		Token:   result.Token.SignedString,
	}, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	credentials, err := decodeCredentials(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("username", credentials.Username).Msg("login attempt")

	result, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.SetBearerToken(w, result.Token.SignedString)
	if _, err = utils.WriteJSON(w, models.LoginResponse{Token: result.Token.SignedString}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

// profile answers GET /profile and GET /me. A request carrying an iata or
// type query parameter is served as a flight board query instead.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if query.Has(iataParam) || query.Has(typeParam) {
		h.flights(w, r)
		return
	}

	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoClaimsInContext)
		return
	}

	user, err := h.services.AuthService.Profile(r.Context(), claims)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.ProfileResponse{User: user}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// decodeCredentials reads {username, password} from the request body. An
// empty body decodes to empty credentials and is rejected by validation.
func decodeCredentials(r *http.Request) (models.Credentials, error) {
	var credentials models.Credentials
	if r.Body == nil {
		return credentials, nil
	}

	err := json.NewDecoder(r.Body).Decode(&credentials)
	if err != nil && !errors.Is(err, io.EOF) {
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return credentials, nil
}
