package slider

// Slide is one captioned image in the fixed carousel sequence.
type Slide struct {
	Ordinal int
	Source  string
	Caption string
}

// NewSlides assigns ordinals in order. Existing ordinals are overwritten.
func NewSlides(slides []Slide) []Slide {
	out := make([]Slide, len(slides))
	for i, s := range slides {
		s.Ordinal = i
		out[i] = s
	}
	return out
}
