package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/constructco-site-backend/auth"
	"github.com/rpupo63/constructco-site-backend/database"
	"github.com/rpupo63/constructco-site-backend/errs"
	"github.com/rpupo63/constructco-site-backend/models"
	"github.com/rpupo63/constructco-site-backend/web"
)

// siteHandler serves the server-rendered pages
type siteHandler struct {
	logger   zerolog.Logger
	database database.Database
	tokens   *auth.Tokens
	sessions sessionCookies
	intake   inquiryIntake
	auth     authHandler
}

func newSiteHandler(database database.Database, tokens *auth.Tokens, sessions sessionCookies, intake inquiryIntake, authHandler authHandler) siteHandler {
	return siteHandler{
		logger:   log.With().Str("handlerName", "siteHandler").Logger(),
		database: database,
		tokens:   tokens,
		sessions: sessions,
		intake:   intake,
		auth:     authHandler,
	}
}

// home renders the landing page. A failed read leaves its section empty instead of failing the page.
func (h siteHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		data := web.HomeData{Year: time.Now().Year()}

		projects, err := h.database.ProjectRepo().Featured(ctx, featuredLimit)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to load featured projects")
		}
		data.Projects = projects

		testimonials, err := h.database.TestimonialRepo().Featured(ctx, featuredLimit)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to load testimonials")
		}
		data.Testimonials = testimonials

		_, data.ShowDashboard = h.sessions.adminProfile(ctx, r, h.database.ProfileRepo())

		query := r.URL.Query()
		switch {
		case query.Get("sent") == "1":
			data.Notice = web.NoticeSent
		case query.Get("error") == "1":
			data.Notice = web.NoticeFailed
		}

		templ.Handler(web.Home(data)).ServeHTTP(w, r)
	}
}

// submitContactForm stores the landing page's contact form and redirects back to it
func (h siteHandler) submitContactForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
		if err := r.ParseForm(); err != nil {
			h.logger.Warn().Err(err).Msg("Failed to parse contact form")
			http.Redirect(w, r, "/?error=1#contact", http.StatusSeeOther)
			return
		}

		projectType := strings.TrimSpace(r.PostFormValue("projectType"))
		phone := r.PostFormValue("phone")
		inquiry := &models.ContactInquiry{
			Name:        strings.TrimSpace(r.PostFormValue("firstName") + " " + r.PostFormValue("lastName")),
			Email:       r.PostFormValue("email"),
			Phone:       &phone,
			Subject:     strings.TrimSpace(projectType + " Inquiry"),
			Message:     r.PostFormValue("message"),
			ServiceType: projectType,
		}

		if err := h.intake.submit(r.Context(), inquiry, "form"); err != nil {
			h.logger.Warn().Err(err).Msg("Failed to submit contact form")
			http.Redirect(w, r, "/?error=1#contact", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/?sent=1#contact", http.StatusSeeOther)
	}
}

func (h siteHandler) loginPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := h.sessions.adminProfile(r.Context(), r, h.database.ProfileRepo()); ok {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		templ.Handler(web.Login("")).ServeHTTP(w, r)
	}
}

// login signs in from the HTML form and stores the token in the session cookie
func (h siteHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
		if err := r.ParseForm(); err != nil {
			templ.Handler(web.Login("Please fill in your email and password."), templ.WithStatus(http.StatusBadRequest)).ServeHTTP(w, r)
			return
		}

		profile, err := h.auth.signIn(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
		if err != nil {
			status := http.StatusUnauthorized
			message := "Invalid email or password"
			if !errs.IsUnauthorizedCredentials(err) {
				h.logger.Error().Err(err).Msg("Sign in failed")
				status = http.StatusInternalServerError
				message = "Sign in failed. Please try again."
			}
			templ.Handler(web.Login(message), templ.WithStatus(status)).ServeHTTP(w, r)
			return
		}

		token, err := h.tokens.Issue(profile)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to issue token")
			templ.Handler(web.Login("Sign in failed. Please try again."), templ.WithStatus(http.StatusInternalServerError)).ServeHTTP(w, r)
			return
		}
		h.sessions.set(w, token)

		if profile.IsAdmin {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (h siteHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.sessions.clear(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// dashboard renders the totals and the newest rows of each table for a signed-in admin
func (h siteHandler) dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		profile, ok := h.sessions.adminProfile(ctx, r, h.database.ProfileRepo())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		data := web.DashboardData{Email: profile.Email}

		stats, err := h.database.Stats(ctx)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to load dashboard totals")
		}
		data.TotalProjects = stats.TotalProjects
		data.TotalInquiries = stats.TotalInquiries
		data.TotalUsers = stats.TotalUsers
		data.TotalReviews = stats.TotalTestimonials

		recent := database.ListOptions{Limit: dashboardRecentLimit}
		if data.Projects, err = h.database.ProjectRepo().List(ctx, recent); err != nil {
			h.logger.Error().Err(err).Msg("Failed to load projects")
		}
		if data.Inquiries, err = h.database.ContactInquiryRepo().List(ctx, recent); err != nil {
			h.logger.Error().Err(err).Msg("Failed to load contact inquiries")
		}
		if data.Testimonials, err = h.database.TestimonialRepo().List(ctx, recent); err != nil {
			h.logger.Error().Err(err).Msg("Failed to load testimonials")
		}

		templ.Handler(web.Dashboard(data)).ServeHTTP(w, r)
	}
}
