package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/constructco-site-backend/auth"
	"github.com/rpupo63/constructco-site-backend/config"
	"github.com/rpupo63/constructco-site-backend/database"
	"github.com/rpupo63/constructco-site-backend/metrics"
	"github.com/rpupo63/constructco-site-backend/services"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(database database.Database, tokens *auth.Tokens, opts ...func(*router)) (Server, error) {
	if tokens == nil {
		return Server{}, fmt.Errorf("token issuer is required")
	}
	c := config.New()

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	startupTime := time.Now()

	opts = append([]func(*router){withConfig(c), withStartupTime(startupTime)}, opts...)
	router := newRouter(database, tokens, opts...)

	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 30)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 60)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 120)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
	notifier    services.Notifier
	imageStore  services.ImageStore
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

// WithNotifier sets where new contact inquiries are announced
func WithNotifier(n services.Notifier) func(*router) {
	return func(r *router) {
		r.notifier = n
	}
}

// WithImageStore enables project image uploads
func WithImageStore(s services.ImageStore) func(*router) {
	return func(r *router) {
		r.imageStore = s
	}
}

func newRouter(database database.Database, tokens *auth.Tokens, opts ...func(*router)) *chi.Mux {
	router := router{startupTime: time.Now()}
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(chimiddleware.RequestID)
	chiRouter.Use(chimiddleware.RealIP)
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(metrics.PrometheusMiddleware)

	acceptedOrigins := config.GetStrings(router.config, "ACCEPTED_ORIGINS", []string{"*"})
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: !containsWildcard(acceptedOrigins),
		MaxAge:           300,
	}))

	sessions := newSessionCookies(tokens, config.GetBool(router.config, "COOKIE_SECURE", false))
	handlers := initializeHandlers(database, tokens, sessions, router)
	authMiddleware := newAuthMiddleware(tokens, database.ProfileRepo())

	setupSiteRoutes(chiRouter, handlers, config.GetString(router.config, "STATIC_DIR", "./static"))
	setupPublicRoutes(chiRouter, handlers, authMiddleware)
	setupAdminRoutes(chiRouter, handlers, authMiddleware)

	return chiRouter
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
