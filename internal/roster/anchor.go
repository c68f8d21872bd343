package roster

// Rect is an element's bounding box in viewport coordinates
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Offset is the document scroll position
type Offset struct {
	X float64
	Y float64
}

// Position places the dropdown overlay in document coordinates
type Position struct {
	Top   float64
	Left  float64
	Width float64
}

// Anchor computes where the dropdown overlay belongs: directly under
// the input's bounding box, corrected for scroll so the overlay stays
// attached wherever the input sits in the document.
func Anchor(input Rect, scroll Offset) Position {
	return Position{
		Top:   input.Top + input.Height + scroll.Y,
		Left:  input.Left + scroll.X,
		Width: input.Width,
	}
}
