package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/constructco-site-backend/auth"
	"github.com/rpupo63/constructco-site-backend/database"
	"github.com/rpupo63/constructco-site-backend/errs"
	"github.com/rpupo63/constructco-site-backend/metrics"
	"github.com/rpupo63/constructco-site-backend/models"
)

type authHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.ProfileRepo
	tokens      *auth.Tokens
	sessions    sessionCookies
}

func newAuthHandler(profileRepo *database.ProfileRepo, tokens *auth.Tokens, sessions sessionCookies) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
		tokens:      tokens,
		sessions:    sessions,
	}
}

type credentialsRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName *string `json:"full_name,omitempty"`
}

type authResponse struct {
	Token   string          `json:"token"`
	Profile *models.Profile `json:"profile"`
}

type sessionResponse struct {
	Profile *models.Profile `json:"profile"`
	IsAdmin bool            `json:"isAdmin"`
}

// signIn checks credentials and returns the matching profile
func (h authHandler) signIn(ctx context.Context, email, password string) (*models.Profile, error) {
	profile, err := h.profileRepo.FindByEmail(ctx, email)
	if err != nil {
		if errs.IsNotFound(err) {
			metrics.RecordAuthAttempt(false)
			return nil, errs.NewInvalidCredentialsError()
		}
		return nil, wrapDatabaseError("find", "profile", err)
	}
	if !auth.CheckPassword(profile.PasswordHash, password) {
		metrics.RecordAuthAttempt(false)
		return nil, errs.NewInvalidCredentialsError()
	}
	metrics.RecordAuthAttempt(true)
	return profile, nil
}

func (h authHandler) issue(w http.ResponseWriter, status int, profile *models.Profile) {
	token, err := h.tokens.Issue(profile)
	if err != nil {
		h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to issue token", err))
		return
	}
	h.sessions.set(w, token)
	h.responder.WriteJSONStatus(w, status, authResponse{Token: token, Profile: profile})
}

// signup registers a new, non-admin profile
// @Summary Sign up
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body credentialsRequest true "Credentials"
// @Success 201 {object} authResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/auth/signup [post]
func (h authHandler) signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := decodeJSON(w, r, "signup", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		}
		if !models.ValidEmail(email) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("email", "is not a valid email address"))
			return
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("password", err.Error()))
			return
		}

		profile := &models.Profile{Email: email, PasswordHash: hash}
		if req.FullName != nil && strings.TrimSpace(*req.FullName) != "" {
			fullName := strings.TrimSpace(*req.FullName)
			profile.FullName = &fullName
		}
		if err := h.profileRepo.Add(r.Context(), profile); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "profile", err))
			return
		}

		h.logger.Info().Str("profileID", profile.ID.String()).Msg("Registered profile")
		h.issue(w, http.StatusCreated, profile)
	}
}

// login exchanges credentials for an access token
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body credentialsRequest true "Credentials"
// @Success 200 {object} authResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/login [post]
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := decodeJSON(w, r, "login", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		profile, err := h.signIn(r.Context(), req.Email, req.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.issue(w, http.StatusOK, profile)
	}
}

// @Summary Log out
// @Tags Auth
// @Router /api/auth/logout [post]
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.sessions.clear(w)
		h.responder.WriteJSON(w, map[string]string{"status": "success"})
	}
}

// session returns the caller's current profile and admin flag
// @Summary Current session
// @Tags Auth
// @Produce json
// @Success 200 {object} sessionResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/session [get]
func (h authHandler) session() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := auth.FromContext(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		profile, err := h.profileRepo.FindByID(r.Context(), identity.ProfileID)
		if err != nil {
			if errs.IsNotFound(err) {
				h.responder.WriteError(w, errs.NewInvalidTokenError())
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("find", "profile", err))
			return
		}
		h.responder.WriteJSON(w, sessionResponse{Profile: profile, IsAdmin: profile.IsAdmin})
	}
}

// setProfileAdmin grants or revokes dashboard access
// @Summary Set admin flag
// @Tags Admin
// @Accept json
// @Param profileID path string true "Profile ID" format(uuid)
// @Router /api/admin/profiles/{profileID}/admin [patch]
func (h authHandler) setProfileAdmin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, err := idParam(r, "profileID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req struct {
			IsAdmin *bool `json:"isAdmin"`
		}
		if err := decodeJSON(w, r, "admin flag", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if req.IsAdmin == nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("isAdmin"))
			return
		}

		identity, _ := auth.FromContext(r.Context())
		if identity.ProfileID == profileID && !*req.IsAdmin {
			h.responder.WriteError(w, errs.NewForbiddenError("admins cannot revoke their own access"))
			return
		}

		if err := h.profileRepo.SetAdmin(r.Context(), profileID, *req.IsAdmin); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "profile", err))
			return
		}

		profile, err := h.profileRepo.FindByID(r.Context(), profileID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "profile", err))
			return
		}
		h.logger.Info().Str("profileID", profileID.String()).Bool("isAdmin", profile.IsAdmin).Msg("Changed admin flag")
		h.responder.WriteJSON(w, profile)
	}
}
