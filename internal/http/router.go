package http

import (
	"net/http"

	"wedding-site/internal/handlers"
	"wedding-site/internal/middleware"
	"wedding-site/internal/web"
	"wedding-site/static"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the JSON API, the guest-facing pages, static assets
// and the operational endpoints into one handler tree.
func NewRouter(
	authHandler *handlers.AuthHandler,
	guestHandler *handlers.GuestHandler,
	rsvpHandler *handlers.RSVPHandler,
	songHandler *handlers.SongRequestHandler,
	memoryHandler *handlers.MemoryHandler,
	healthHandler *handlers.HealthHandler,
	sessionMiddleware *middleware.SessionMiddleware,
	site *web.Server,
) *mux.Router {
	r := mux.NewRouter()

	// JSON API, trailing slashes per the original Django-style paths
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.CSRFProtect)

	api.HandleFunc("/csrf_cookie/", authHandler.CSRFCookie).Methods(http.MethodGet)
	api.Handle("/enter_password/",
		middleware.PasswordRateLimiter.Middleware(http.HandlerFunc(authHandler.EnterPassword)),
	).Methods(http.MethodPost)
	api.HandleFunc("/auth_status/", authHandler.AuthStatus).Methods(http.MethodGet)
	api.HandleFunc("/memories/live/", memoryHandler.LiveFeed).Methods(http.MethodGet)

	// Everything below needs a session token; this is what turns a stale
	// login into the 401/403 the batch submitter aborts on.
	protected := api.NewRoute().Subrouter()
	protected.Use(sessionMiddleware.RequireSession)
	protected.HandleFunc("/guests/", guestHandler.CreateGuest).Methods(http.MethodPost)
	protected.HandleFunc("/guests/", guestHandler.ListGuests).Methods(http.MethodGet)
	protected.HandleFunc("/rsvp/", rsvpHandler.CreateRSVP).Methods(http.MethodPost)
	protected.HandleFunc("/songrequests/", songHandler.CreateSongRequest).Methods(http.MethodPost)
	protected.HandleFunc("/songrequests/", songHandler.ListSongRequests).Methods(http.MethodGet)
	protected.HandleFunc("/memories/", memoryHandler.CreateMemory).Methods(http.MethodPost)
	protected.HandleFunc("/memories/all/", memoryHandler.ListMemories).Methods(http.MethodGet)

	// Operational endpoints
	r.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Embedded static assets
	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))),
	)

	// Guest-facing pages
	site.Register(r)

	return r
}
