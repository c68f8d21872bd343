package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"wedding-site/internal/client"
	"wedding-site/internal/middleware"
	"wedding-site/internal/models"
	"wedding-site/internal/registration"
	"wedding-site/internal/roster"
	"wedding-site/internal/services"

	"github.com/rs/zerolog/log"
)

// pageData is passed to every template; pages fill the fields they use
type pageData struct {
	Title     string
	CSRFToken string
	Error     string
	Success   string

	CoupleNames string

	Guests   []models.GuestSummary
	Drafts   []registration.Draft
	Memories []models.Memory
	Featured *models.Memory

	DietaryChoices map[string]string
	WeddingChoices map[string]string
}

func (s *Server) newPageData(w http.ResponseWriter, r *http.Request, title string) pageData {
	return pageData{
		Title:       title,
		CSRFToken:   s.pageCSRFToken(w, r),
		CoupleNames: s.wedding.CoupleNames,
	}
}

// --- password gate ---

func (s *Server) passwordPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, "password.html", s.newPageData(w, r, "Enter Password"))
}

func (s *Server) passwordSubmit(w http.ResponseWriter, r *http.Request) {
	data := s.newPageData(w, r, "Enter Password")

	ok, token, err := s.auth.CheckPassword(r.PostFormValue("password"))
	if err != nil {
		log.Error().Err(err).Msg("Password check failed")
		data.Error = "An error occurred. Please try again."
		s.render(w, "password.html", data)
		return
	}

	if !ok {
		// No session state changes on a wrong passphrase
		data.Error = "Incorrect password. Please try again."
		s.render(w, "password.html", data)
		return
	}

	s.setFlag(w, authenticatedCookie)
	s.setSessionCookie(w, token)
	http.Redirect(w, r, "/register", http.StatusSeeOther)
}

// --- guest registration ---

func (s *Server) registerPage(w http.ResponseWriter, r *http.Request) {
	data := s.newPageData(w, r, "Guest Registration")
	data.Drafts = registration.NewForm().Drafts
	data.DietaryChoices = models.DietaryLabels
	s.render(w, "register.html", data)
}

func (s *Server) registerSubmit(w http.ResponseWriter, r *http.Request) {
	form := formFromRequest(r)

	creator := &serviceGuestCreator{
		auth:   s.auth,
		guests: s.guests,
		token:  sessionToken(r),
	}
	submitter := registration.NewSubmitter(creator, log.Logger)
	result := submitter.Submit(r.Context(), form)

	if result.AuthFailure {
		s.clearSession(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if result.Complete() {
		s.setFlag(w, registeredCookie)
		// register_success.html meta-refreshes to /home after a short
		// pause so guests see the confirmation
		s.render(w, "register_success.html", s.newPageData(w, r, "Registered"))
		return
	}

	data := s.newPageData(w, r, "Guest Registration")
	data.Drafts = form.Drafts
	data.DietaryChoices = models.DietaryLabels
	data.Error = "Some guests could not be registered. Please fix the highlighted fields and submit again."
	s.render(w, "register.html", data)
}

// formFromRequest rebuilds the draft list from the repeated form fields
func formFromRequest(r *http.Request) *registration.Form {
	names := r.PostForm["name"]

	form := registration.NewForm()
	for i := 1; i < len(names); i++ {
		form.Append()
	}

	fields := map[string][]string{
		registration.FieldName:     names,
		registration.FieldEmail:    r.PostForm["email"],
		registration.FieldPhone:    r.PostForm["phone"],
		registration.FieldDietary:  r.PostForm["dietary_restrictions"],
		registration.FieldSpecific: r.PostForm["specific_dietary_restrictions"],
	}
	for field, values := range fields {
		for i, value := range values {
			form.SetField(i, field, value)
		}
	}

	return form
}

func sessionToken(r *http.Request) string {
	if c, err := r.Cookie(middleware.SessionCookieName); err == nil {
		return c.Value
	}
	return ""
}

// serviceGuestCreator adapts the in-process guest service to the batch
// submitter's API-shaped interface, translating service errors into the
// client error taxonomy so the submitter's policy applies unchanged.
type serviceGuestCreator struct {
	auth   *services.AuthService
	guests *services.GuestService
	token  string
}

func (c *serviceGuestCreator) CreateGuest(ctx context.Context, req *models.CreateGuestRequest) (*models.Guest, error) {
	if c.token == "" || !c.auth.ValidateToken(c.token) {
		return nil, &client.AuthError{StatusCode: http.StatusForbidden}
	}

	guest, err := c.guests.RegisterGuest(ctx, req)
	if err == nil {
		return guest, nil
	}

	var ve *services.ValidationError
	if errors.As(err, &ve) {
		fields := client.FieldErrors{}
		for field, msgs := range ve.Fields {
			fields[field] = client.FieldErrorList(msgs)
		}
		return nil, &client.ValidationError{Fields: fields}
	}

	return nil, err
}

// --- gated content pages ---

func (s *Server) homePage(w http.ResponseWriter, r *http.Request) {
	s.render(w, "home.html", s.newPageData(w, r, "Welcome"))
}

func (s *Server) rsvpPage(w http.ResponseWriter, r *http.Request) {
	data := s.newPageData(w, r, "RSVP")
	data.WeddingChoices = models.WeddingLabels
	s.loadRoster(r.Context(), &data)
	s.render(w, "rsvp.html", data)
}

func (s *Server) rsvpSubmit(w http.ResponseWriter, r *http.Request) {
	data := s.newPageData(w, r, "RSVP")
	data.WeddingChoices = models.WeddingLabels
	s.loadRoster(r.Context(), &data)

	guestID, _ := strconv.Atoi(r.PostFormValue("guest_id"))
	if guestID == 0 {
		data.Error = "Please select a guest before submitting."
		s.render(w, "rsvp.html", data)
		return
	}

	_, err := s.rsvps.SubmitRSVP(r.Context(), &models.CreateRSVPRequest{
		GuestID:          guestID,
		WeddingSelection: r.PostFormValue("wedding_selection"),
		IsAttending:      r.PostFormValue("is_attending") == "on",
		AdditionalNotes:  r.PostFormValue("additional_notes"),
	})
	if err != nil {
		data.Error = "Failed to submit RSVP. Please try again."
		s.render(w, "rsvp.html", data)
		return
	}

	data.Success = "RSVP submitted successfully!"
	s.render(w, "rsvp.html", data)
}

func (s *Server) songPage(w http.ResponseWriter, r *http.Request) {
	data := s.newPageData(w, r, "Request a Song")
	s.loadRoster(r.Context(), &data)
	s.render(w, "songs.html", data)
}

func (s *Server) songSubmit(w http.ResponseWriter, r *http.Request) {
	data := s.newPageData(w, r, "Request a Song")
	s.loadRoster(r.Context(), &data)

	guestID, _ := strconv.Atoi(r.PostFormValue("guest_id"))
	if guestID == 0 {
		data.Error = "Please select a guest before submitting."
		s.render(w, "songs.html", data)
		return
	}

	_, err := s.songs.SubmitRequest(r.Context(), &models.CreateSongRequestRequest{
		GuestID:   guestID,
		SongTitle: r.PostFormValue("song_title"),
		Artist:    r.PostFormValue("artist"),
	})
	if err != nil {
		data.Error = "Failed to submit song request. Please try again."
		s.render(w, "songs.html", data)
		return
	}

	data.Success = "Song request submitted successfully!"
	s.render(w, "songs.html", data)
}

func (s *Server) memoriesPage(w http.ResponseWriter, r *http.Request) {
	data := s.newPageData(w, r, "Share Memories")
	s.loadRoster(r.Context(), &data)

	memories, err := s.memories.ListMemories(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to load memories")
		data.Error = "Failed to load memories. Please try again later."
		s.render(w, "memories.html", data)
		return
	}

	data.Memories = memories
	s.belt.SetLength(len(memories))
	if idx, ok := s.belt.Index(); ok {
		data.Featured = &memories[idx]
	}

	s.render(w, "memories.html", data)
}

func (s *Server) memoriesSubmit(w http.ResponseWriter, r *http.Request) {
	guestID, _ := strconv.Atoi(r.PostFormValue("guest_id"))

	memory, err := s.memories.ShareMemory(r.Context(), &models.CreateMemoryRequest{
		GuestID:    guestID,
		MemoryText: r.PostFormValue("memory_text"),
	})
	if err != nil {
		data := s.newPageData(w, r, "Share Memories")
		s.loadRoster(r.Context(), &data)
		data.Error = "Failed to share memory. Please try again."

		var ve *services.ValidationError
		if errors.As(err, &ve) {
			fields := client.FieldErrors{}
			for field, msgs := range ve.Fields {
				fields[field] = client.FieldErrorList(msgs)
			}
			for _, field := range []string{"memory_text", "guest_id"} {
				if msg := fields.Display(field); msg != "" {
					data.Error = msg
					break
				}
			}
		}

		s.render(w, "memories.html", data)
		return
	}

	if s.hub != nil {
		s.hub.Broadcast(memory)
	}

	http.Redirect(w, r, "/memories", http.StatusSeeOther)
}

// memoriesNav is the manual Next/Previous control for the conveyor
func (s *Server) memoriesNav(w http.ResponseWriter, r *http.Request) {
	switch r.PostFormValue("dir") {
	case "prev":
		s.belt.Prev()
	default:
		s.belt.Next()
	}
	http.Redirect(w, r, "/memories", http.StatusSeeOther)
}

// guestSearch backs the search-as-you-type picker: filters the roster
// by case-insensitive substring and returns the matches as JSON
func (s *Server) guestSearch(w http.ResponseWriter, r *http.Request) {
	guests, err := s.guests.ListGuests(r.Context())
	if err != nil {
		http.Error(w, "failed to load guest list", http.StatusInternalServerError)
		return
	}

	matches := roster.Filter(guests, strings.TrimSpace(r.URL.Query().Get("q")))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(matches)
}

func (s *Server) infoPage(tmplName, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.render(w, tmplName, s.newPageData(w, r, title))
	}
}

// loadRoster fills the guest list, downgrading a fetch failure to an
// explicit message instead of a silently empty picker
func (s *Server) loadRoster(ctx context.Context, data *pageData) {
	guests, err := s.guests.ListGuests(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load guest roster")
		data.Error = "Failed to load guest list. Please try again later."
		return
	}
	data.Guests = guests
}
