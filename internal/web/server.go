package web

import (
	"html/template"
	"net/http"

	"wedding-site/internal/carousel"
	"wedding-site/internal/config"
	"wedding-site/internal/services"
	"wedding-site/internal/ws"
	"wedding-site/templates"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// Server renders the guest-facing pages. Handlers call the services
// directly; the JSON API under /api serves browser scripts and the CLI.
type Server struct {
	tmpl *template.Template

	auth     *services.AuthService
	guests   *services.GuestService
	rsvps    *services.RSVPService
	songs    *services.SongRequestService
	memories *services.MemoryService
	hub      *ws.Hub

	// belt is the site-wide memories conveyor: every visitor sees the
	// same featured memory, advanced by one shared rotator.
	belt    *carousel.Carousel
	rotator *carousel.Rotator

	wedding config.WeddingConfig
	secure  bool
}

func NewServer(
	cfg *config.Config,
	auth *services.AuthService,
	guests *services.GuestService,
	rsvps *services.RSVPService,
	songs *services.SongRequestService,
	memories *services.MemoryService,
	hub *ws.Hub,
) (*Server, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).ParseFS(templates.FS, "*.html")
	if err != nil {
		return nil, err
	}

	belt := carousel.New(0)
	return &Server{
		tmpl:     tmpl,
		auth:     auth,
		guests:   guests,
		rsvps:    rsvps,
		songs:    songs,
		memories: memories,
		hub:      hub,
		belt:     belt,
		rotator:  carousel.NewRotator(belt, carousel.DefaultInterval),
		wedding:  cfg.Wedding,
	}, nil
}

// Close stops the conveyor rotator
func (s *Server) Close() {
	s.rotator.Stop()
}

// Register mounts the page routes. The guard ordering mirrors the
// original route tree: password gate first, then registration, then the
// gated content pages.
func (s *Server) Register(r *mux.Router) {
	r.HandleFunc("/", s.passwordPage).Methods(http.MethodGet)
	r.Handle("/", s.csrfForms(http.HandlerFunc(s.passwordSubmit))).Methods(http.MethodPost)

	authed := r.NewRoute().Subrouter()
	authed.Use(s.requireAuthenticated)
	authed.HandleFunc("/register", s.registerPage).Methods(http.MethodGet)
	authed.Handle("/register", s.csrfForms(http.HandlerFunc(s.registerSubmit))).Methods(http.MethodPost)

	gated := authed.NewRoute().Subrouter()
	gated.Use(s.requireRegistered)
	gated.HandleFunc("/home", s.homePage).Methods(http.MethodGet)
	gated.HandleFunc("/rsvp", s.rsvpPage).Methods(http.MethodGet)
	gated.Handle("/rsvp", s.csrfForms(http.HandlerFunc(s.rsvpSubmit))).Methods(http.MethodPost)
	gated.HandleFunc("/song-selection", s.songPage).Methods(http.MethodGet)
	gated.Handle("/song-selection", s.csrfForms(http.HandlerFunc(s.songSubmit))).Methods(http.MethodPost)
	gated.HandleFunc("/memories", s.memoriesPage).Methods(http.MethodGet)
	gated.Handle("/memories", s.csrfForms(http.HandlerFunc(s.memoriesSubmit))).Methods(http.MethodPost)
	gated.Handle("/memories/nav", s.csrfForms(http.HandlerFunc(s.memoriesNav))).Methods(http.MethodPost)
	gated.HandleFunc("/guests/search", s.guestSearch).Methods(http.MethodGet)

	// Static info pages from the original site
	gated.HandleFunc("/accommodation", s.infoPage("accommodation.html", "Accommodation"))
	gated.HandleFunc("/attire", s.infoPage("attire.html", "Attire"))
	gated.HandleFunc("/gifts", s.infoPage("gifts.html", "Gift Registry"))
	gated.HandleFunc("/faq", s.infoPage("faq.html", "FAQ"))
}

func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("Template render failed")
	}
}
