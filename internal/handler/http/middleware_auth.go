package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-flight-board/internal/logger"
	"github.com/MKhiriev/go-flight-board/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, verifies it
// via AuthService.ParseToken and stores the decoded claims in the request
// context under [utils.ClaimsCtxKey] before delegating to the next handler.
//
// A missing header, a header that is not "Bearer <token>", and a malformed,
// forged or expired token are all answered with the same 401 response. The
// actual reason is only logged.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			writeMessage(w, r, msgUnauthorized, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			writeMessage(w, r, msgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("error occurred during parsing token")
			writeMessage(w, r, msgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.ClaimsCtxKey, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
