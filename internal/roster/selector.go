// Package roster implements the search-as-you-type guest picker used to
// fill guest_id references on the RSVP, song request and memory forms.
// The state machine is pure so every transition is testable without a
// browser.
package roster

import (
	"strings"

	"wedding-site/internal/models"
)

// Selector picks one guest out of a fetched roster by substring search.
// Zero selected id means "nothing selected".
type Selector struct {
	guests   []models.GuestSummary
	query    string
	selected int
	open     bool
}

func NewSelector(guests []models.GuestSummary) *Selector {
	return &Selector{guests: guests}
}

// Input registers a keystroke's resulting text. The dropdown opens as
// soon as the text is non-empty and stays open until an explicit select
// or dismiss. Typing always clears a prior selection so the visible
// text can never silently diverge from the chosen id.
func (s *Selector) Input(text string) {
	s.query = text
	s.open = text != ""
	s.selected = 0
}

// Select picks a guest by id: the visible text becomes the guest's name
// and the dropdown closes. Unknown ids are ignored.
func (s *Selector) Select(id int) bool {
	for _, g := range s.guests {
		if g.ID == id {
			s.selected = id
			s.query = g.Name
			s.open = false
			return true
		}
	}
	return false
}

// Dismiss closes the dropdown without changing the selection
// (outside-click)
func (s *Selector) Dismiss() {
	s.open = false
}

// Focus reopens the dropdown when there is text to filter on
func (s *Selector) Focus() {
	if s.query != "" {
		s.open = true
	}
}

// SetRoster replaces the guest list after a refetch. A selection whose
// guest disappeared is cleared rather than kept dangling.
func (s *Selector) SetRoster(guests []models.GuestSummary) {
	s.guests = guests
	if s.selected == 0 {
		return
	}
	for _, g := range guests {
		if g.ID == s.selected {
			return
		}
	}
	s.selected = 0
}

// Matches returns the guests whose name contains the query,
// case-insensitively. With an empty query the whole roster matches.
func (s *Selector) Matches() []models.GuestSummary {
	return Filter(s.guests, s.query)
}

// NoMatches reports that the open dropdown has nothing to show, so the
// UI renders an explicit "no matching guests" row instead of an empty
// box
func (s *Selector) NoMatches() bool {
	return s.open && len(s.Matches()) == 0
}

func (s *Selector) Query() string   { return s.query }
func (s *Selector) SelectedID() int { return s.selected }
func (s *Selector) Open() bool      { return s.open }

// Filter is the shared case-insensitive substring match, also used by
// the server-side search partial
func Filter(guests []models.GuestSummary, query string) []models.GuestSummary {
	if query == "" {
		out := make([]models.GuestSummary, len(guests))
		copy(out, guests)
		return out
	}

	needle := strings.ToLower(query)
	out := []models.GuestSummary{}
	for _, g := range guests {
		if strings.Contains(strings.ToLower(g.Name), needle) {
			out = append(out, g)
		}
	}
	return out
}
