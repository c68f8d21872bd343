package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"wedding-site/internal/auth"
	"wedding-site/internal/config"
	"wedding-site/internal/database"
	"wedding-site/internal/db"
	"wedding-site/internal/handlers"
	"wedding-site/internal/health"
	h "wedding-site/internal/http"
	"wedding-site/internal/middleware"
	"wedding-site/internal/repositories"
	"wedding-site/internal/services"
	"wedding-site/internal/web"
	"wedding-site/internal/ws"
	"wedding-site/migrations"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	pretty := flag.Bool("pretty", false, "Human-readable log output")
	flag.Parse()

	if *pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load .env before viper reads the environment; ignore a missing file
	_ = godotenv.Load()

	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if cfg.Auth.PasswordHash == "" {
		log.Fatal().Msg("auth.password_hash is not configured")
	}
	if cfg.Auth.JWTSecret == "" {
		log.Fatal().Msg("auth.jwt_secret is not configured")
	}

	pool := db.Connect(cfg)
	defer pool.Close()

	migrator := database.NewMigrator(pool, migrations.FS)
	if err := migrator.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Migrations failed")
	}

	jwtManager := auth.NewJWTManager(cfg)

	// Repositories
	guestRepo := repositories.NewGuestRepository(pool)
	rsvpRepo := repositories.NewRSVPRepository(pool)
	songRepo := repositories.NewSongRequestRepository(pool)
	memoryRepo := repositories.NewMemoryRepository(pool)

	// Services
	authService := services.NewAuthService(cfg.Auth.PasswordHash, jwtManager)
	guestService := services.NewGuestService(guestRepo)
	rsvpService := services.NewRSVPService(rsvpRepo, guestRepo)
	songService := services.NewSongRequestService(songRepo, guestRepo)
	memoryService := services.NewMemoryService(memoryRepo, guestRepo)

	// Live memory feed
	hub := ws.NewHub(originChecker(cfg.CORS.AllowedOrigins))

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	guestHandler := handlers.NewGuestHandler(guestService)
	rsvpHandler := handlers.NewRSVPHandler(rsvpService)
	songHandler := handlers.NewSongRequestHandler(songService)
	memoryHandler := handlers.NewMemoryHandler(memoryService, hub)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))

	sessionMiddleware := middleware.NewSessionMiddleware(jwtManager)
	corsMiddleware := middleware.NewCORS(cfg)

	site, err := web.NewServer(cfg, authService, guestService, rsvpService, songService, memoryService, hub)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize page server")
	}
	defer site.Close()

	router := h.NewRouter(
		authHandler,
		guestHandler,
		rsvpHandler,
		songHandler,
		memoryHandler,
		healthHandler,
		sessionMiddleware,
		site,
	)

	handler := corsMiddleware(
		middleware.SecurityHeaders(
			middleware.GzipCompression(
				middleware.Metrics(router),
			),
		),
	)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("Server running")
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

// originChecker allows websocket upgrades from same-origin requests and
// any configured CORS origin
func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if origin == "http://"+r.Host || origin == "https://"+r.Host {
			return true
		}
		for _, a := range allowed {
			if a == "*" || a == origin {
				return true
			}
		}
		return false
	}
}
