package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rpupo63/constructco-site-backend/metrics"
)

// setupSiteRoutes serves the rendered pages and their static assets
func setupSiteRoutes(r chi.Router, handlers *routeHandlers, staticDir string) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/", handlers.siteHandler.home())
		r.Post("/contact", handlers.siteHandler.submitContactForm())
		r.Get("/login", handlers.siteHandler.loginPage())
		r.Post("/login", handlers.siteHandler.login())
		r.Post("/logout", handlers.siteHandler.logout())
		r.Get("/dashboard", handlers.siteHandler.dashboard())
	})

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
}

// setupPublicRoutes sets up the endpoints anyone may call
func setupPublicRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Get("/health", handlers.healthHandler.health())
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/projects/featured", handlers.projectHandler.getFeaturedProjects())
		r.Get("/testimonials/featured", handlers.testimonialHandler.getFeaturedTestimonials())
		r.Post("/contact-inquiries", handlers.inquiryHandler.submitInquiry())

		r.Post("/auth/signup", handlers.authHandler.signup())
		r.Post("/auth/login", handlers.authHandler.login())
		r.Post("/auth/logout", handlers.authHandler.logout())
		r.With(authMiddleware.authenticate).Get("/auth/session", handlers.authHandler.session())
	})
}

// setupAdminRoutes sets up the dashboard endpoints; every one requires an admin profile
func setupAdminRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)
		r.Use(authMiddleware.requireAdmin)

		r.Get("/stats", handlers.statsHandler.getStats())

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Post("/projects", handlers.projectHandler.createProject())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

		r.Get("/testimonials", handlers.testimonialHandler.getAllTestimonials())
		r.Post("/testimonials", handlers.testimonialHandler.createTestimonial())
		r.Get("/testimonials/{testimonialID}", handlers.testimonialHandler.getTestimonial())
		r.Put("/testimonials/{testimonialID}", handlers.testimonialHandler.updateTestimonial())
		r.Patch("/testimonials/{testimonialID}/active", handlers.testimonialHandler.setTestimonialActive())
		r.Delete("/testimonials/{testimonialID}", handlers.testimonialHandler.deleteTestimonial())

		r.Get("/contact-inquiries", handlers.inquiryHandler.getAllInquiries())
		r.Get("/contact-inquiries/{inquiryID}", handlers.inquiryHandler.getInquiry())
		r.Patch("/contact-inquiries/{inquiryID}/status", handlers.inquiryHandler.setInquiryStatus())
		r.Delete("/contact-inquiries/{inquiryID}", handlers.inquiryHandler.deleteInquiry())

		r.Patch("/profiles/{profileID}/admin", handlers.authHandler.setProfileAdmin())

		r.Post("/uploads", handlers.uploadHandler.uploadImage())
	})
}
