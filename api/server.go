package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/sergiorueda9090/camilo/config"
	"github.com/sergiorueda9090/camilo/database"
	"github.com/sergiorueda9090/camilo/services"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(db database.Database) (Server, error) {
	c := config.New()

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port)

	startupTime := time.Now()

	router := newRouter(db, withConfig(c), withStartupTime(startupTime))

	readTimeout := config.GetDuration(c, "READ_TIMEOUT_SECONDS", 60*time.Second)
	writeTimeout := config.GetDuration(c, "WRITE_TIMEOUT_SECONDS", 60*time.Second)
	idleTimeout := config.GetDuration(c, "IDLE_TIMEOUT_SECONDS", 120*time.Second)

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

func newRouter(db database.Database, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	acceptedOrigins := strings.Split(config.GetString(router.config, "ACCEPTED_ORIGINS", "*"), ",")
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	gate := services.ParseModerationGate(config.GetString(router.config, "MODERATION_GATE", ""))
	engagement := services.NewEngagement(db, gate, services.NewEchoStore(), services.NewMailer(router.config))

	handlers := initializeHandlers(db, engagement)
	auth := newAdminAuth(config.GetString(router.config, "ADMIN_TOKEN_SECRET", ""))

	setupRoutes(chiRouter, handlers, auth)

	return chiRouter
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
