package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rpupo63/constructco-site-backend/auth"
	"github.com/rpupo63/constructco-site-backend/database"
	"github.com/rpupo63/constructco-site-backend/errs"
)

const (
	maxBodySize   = 1 << 20 // 1MB
	featuredLimit = 6

	// rows per section on the dashboard page
	dashboardRecentLimit = 10
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, tokens *auth.Tokens, sessions sessionCookies, router router) *routeHandlers {
	intake := newInquiryIntake(database.ContactInquiryRepo(), router.notifier)
	authHandler := newAuthHandler(database.ProfileRepo(), tokens, sessions)

	return &routeHandlers{
		siteHandler:        newSiteHandler(database, tokens, sessions, intake, authHandler),
		healthHandler:      newHealthHandler(database, router.startupTime),
		authHandler:        authHandler,
		statsHandler:       newStatsHandler(database),
		projectHandler:     newProjectHandler(database.ProjectRepo()),
		testimonialHandler: newTestimonialHandler(database.TestimonialRepo()),
		inquiryHandler:     newInquiryHandler(database.ContactInquiryRepo(), intake),
		uploadHandler:      newUploadHandler(router.imageStore),
	}
}

// decodeJSON reads a size-limited JSON body into dst
func decodeJSON(w http.ResponseWriter, r *http.Request, payloadName string, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errs.NewMaxBodySizeExceededError(maxErr.Limit)
		}
		return errs.NewMalformedPayloadError(payloadName, err)
	}
	return nil
}

// idParam parses a UUID path parameter
func idParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return uuid.Nil, errs.NewMissingRequiredFieldError(name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.NewInvalidFieldError(name, "must be a UUID")
	}
	return id, nil
}

// listOptions builds equality filters from the allowed query parameters plus an optional limit
func listOptions(r *http.Request, filters ...string) (database.ListOptions, error) {
	var opts database.ListOptions
	query := r.URL.Query()
	for _, name := range filters {
		if value := query.Get(name); value != "" {
			opts = opts.Where(name, value)
		}
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return opts, errs.NewInvalidFieldError("limit", "must be a non-negative integer")
		}
		opts.Limit = limit
	}
	return opts, nil
}
