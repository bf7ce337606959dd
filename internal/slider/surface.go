package slider

// Surface is the visual tree the engine projects onto. Ordinals index the
// slide sequence. Implementations are only called from the engine's thread.
type Surface interface {
	// ActiveSlide returns the ordinal of the slide marked active.
	ActiveSlide() (int, error)
	// AddClass adds markers to the slide at ordinal.
	AddClass(ordinal int, classes ...string)
	// RemoveClass removes markers from the slide at ordinal.
	RemoveClass(ordinal int, classes ...string)
	// Activate marks ordinal active, adds classes to it, and clears the
	// active marker from every other slide.
	Activate(ordinal int, classes ...string)
	// SetControlTitle sets the display title of a named control.
	SetControlTitle(control, title string)
}

// Control names shared by the router and the host.
const (
	ControlPrevious  = "prev"
	ControlNext      = "next"
	ControlRandom    = "random"
	ControlPlayPause = "play-pause"
)
