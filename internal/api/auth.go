package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/m02xime/fesipopApi/internal/auth"
	"github.com/m02xime/fesipopApi/internal/metrics"
	"github.com/m02xime/fesipopApi/internal/store"
)

type authHandler struct {
	users *store.UserStore
	jwt   *auth.JWTManager
	log   zerolog.Logger
}

// Login verifies credentials and issues a bearer token.
// POST /login
//
// @Summary      Log in
// @Description  Verifies name and password and returns a signed bearer token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  TokenResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /login [post]
func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing name or password", codeValidation)
		return
	}
	if req.Name == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Missing name or password", codeValidation)
		return
	}

	user, err := h.users.GetByName(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Same message as a bad password so the response doesn't reveal
			// which of the two was wrong.
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			writeError(w, http.StatusUnauthorized, "Invalid credentials", codeUnauthorized)
			return
		}
		h.log.Error().Err(err).Msg("login: lookup user")
		writeError(w, http.StatusInternalServerError, "internal error", codeInternal)
		return
	}

	if !auth.VerifyPassword(user.Password, req.Password) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		writeError(w, http.StatusUnauthorized, "Invalid credentials", codeUnauthorized)
		return
	}

	token, err := h.jwt.Generate(user.Name)
	if err != nil {
		h.log.Error().Err(err).Msg("login: sign token")
		writeError(w, http.StatusInternalServerError, "internal error", codeInternal)
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	writeJSON(w, http.StatusOK, TokenResponse{Token: token})
}

// Protected is a diagnostic endpoint confirming a token is accepted.
// GET /protected
//
// @Summary      Token probe
// @Description  Returns a greeting for the identity resolved from the bearer token.
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /protected [get]
func (h *authHandler) Protected(w http.ResponseWriter, r *http.Request) {
	name := auth.IdentityFromContext(r.Context())
	writeJSON(w, http.StatusOK, MessageResponse{Message: fmt.Sprintf("Hello %s!", name)})
}
