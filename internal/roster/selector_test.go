package roster

import (
	"testing"

	"wedding-site/internal/models"
)

func testRoster() []models.GuestSummary {
	return []models.GuestSummary{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
		{ID: 3, Name: "Alan"},
	}
}

func TestFilterSubstringCaseInsensitive(t *testing.T) {
	matches := Filter(testRoster(), "al")
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Name != "Alice" || matches[1].Name != "Alan" {
		t.Fatalf("expected [Alice Alan], got %v", matches)
	}

	if got := Filter(testRoster(), "ALAN"); len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("case-insensitive match failed: %v", got)
	}
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	if got := Filter(testRoster(), ""); len(got) != 3 {
		t.Fatalf("expected full roster, got %v", got)
	}
}

func TestInputOpensAndClearsSelection(t *testing.T) {
	s := NewSelector(testRoster())

	if !s.Select(2) {
		t.Fatal("selecting a known id must succeed")
	}
	if s.Query() != "Bob" || s.Open() {
		t.Fatalf("selection should fill the text and close: query=%q open=%v", s.Query(), s.Open())
	}

	s.Input("Bo")
	if s.SelectedID() != 0 {
		t.Fatal("typing must clear the previous selection")
	}
	if !s.Open() {
		t.Fatal("typing non-empty text must open the dropdown")
	}

	s.Input("")
	if s.Open() {
		t.Fatal("clearing the text must close the dropdown")
	}
}

func TestSelectUnknownIDIgnored(t *testing.T) {
	s := NewSelector(testRoster())
	s.Input("x")
	if s.Select(99) {
		t.Fatal("unknown id must be rejected")
	}
	if !s.Open() {
		t.Fatal("a rejected select must not change dropdown state")
	}
}

func TestDismissAndFocus(t *testing.T) {
	s := NewSelector(testRoster())
	s.Input("al")

	s.Dismiss()
	if s.Open() {
		t.Fatal("dismiss must close the dropdown")
	}

	s.Focus()
	if !s.Open() {
		t.Fatal("focusing with text present must reopen the dropdown")
	}

	s.Input("")
	s.Focus()
	if s.Open() {
		t.Fatal("focusing with no text must keep the dropdown closed")
	}
}

func TestNoMatches(t *testing.T) {
	s := NewSelector(testRoster())
	s.Input("zzz")
	if !s.NoMatches() {
		t.Fatal("expected the no-matches state")
	}

	s.Dismiss()
	if s.NoMatches() {
		t.Fatal("a closed dropdown reports no no-matches state")
	}
}

func TestSetRosterClearsVanishedSelection(t *testing.T) {
	s := NewSelector(testRoster())
	s.Select(2)

	s.SetRoster([]models.GuestSummary{{ID: 1, Name: "Alice"}})
	if s.SelectedID() != 0 {
		t.Fatal("a selection whose guest disappeared must be cleared")
	}

	s.Select(1)
	s.SetRoster(testRoster())
	if s.SelectedID() != 1 {
		t.Fatal("a still-present selection must survive a roster refresh")
	}
}

func TestAnchorUnderInput(t *testing.T) {
	pos := Anchor(
		Rect{Top: 100, Left: 40, Width: 220, Height: 32},
		Offset{X: 5, Y: 300},
	)

	if pos.Top != 432 {
		t.Fatalf("expected top 432, got %v", pos.Top)
	}
	if pos.Left != 45 {
		t.Fatalf("expected left 45, got %v", pos.Left)
	}
	if pos.Width != 220 {
		t.Fatalf("expected width 220, got %v", pos.Width)
	}
}
