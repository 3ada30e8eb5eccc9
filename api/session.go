package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rpupo63/constructco-site-backend/auth"
	"github.com/rpupo63/constructco-site-backend/database"
	"github.com/rpupo63/constructco-site-backend/models"
)

const sessionCookieName = "session"

// sessionCookies carries the access token for the rendered pages
type sessionCookies struct {
	tokens *auth.Tokens
	secure bool
}

func newSessionCookies(tokens *auth.Tokens, secure bool) sessionCookies {
	return sessionCookies{tokens: tokens, secure: secure}
}

func (s sessionCookies) set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.tokens.Expiry() / time.Second),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s sessionCookies) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// adminProfile returns the profile behind the session cookie when it is a current admin
func (s sessionCookies) adminProfile(ctx context.Context, r *http.Request, profiles *database.ProfileRepo) (*models.Profile, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	identity, err := s.tokens.Validate(cookie.Value)
	if err != nil {
		return nil, false
	}
	profile, err := profiles.FindByID(ctx, identity.ProfileID)
	if err != nil || !profile.IsAdmin {
		return nil, false
	}
	return profile, true
}
