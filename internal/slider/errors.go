package slider

import "errors"

var (
	// ErrNoSlides is returned when an engine is built over an empty sequence.
	ErrNoSlides = errors.New("slider: no slides")
	// ErrNoActiveSlide reports a surface without exactly one active slide.
	ErrNoActiveSlide = errors.New("slider: no unique active slide")
	// ErrNoSelection reports a thumbnail strip with nothing selected.
	ErrNoSelection = errors.New("slider: no selected thumbnail")
	// ErrOutOfRange reports an ordinal outside [0, N-1].
	ErrOutOfRange = errors.New("slider: ordinal out of range")
)
