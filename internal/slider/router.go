package slider

// Key codes understood by RouteKey.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeySpace      = "Space"
)

// Routed describes how the host should treat a routed key.
type Routed struct {
	// OK is true when the key maps to a command.
	OK bool
	// PreventDefault asks the host to suppress its own handling of the key.
	PreventDefault bool
}

// RouteKey maps a key code to a command.
func RouteKey(code string) (Command, Routed) {
	switch code {
	case KeyArrowRight:
		return Next(), Routed{OK: true}
	case KeyArrowLeft:
		return Previous(), Routed{OK: true}
	case KeySpace:
		return TogglePlay(), Routed{OK: true, PreventDefault: true}
	default:
		return Command{}, Routed{}
	}
}

// Target is the element a click landed on, as resolved by the host.
type Target interface {
	// Control returns the control name when the target is a control.
	Control() (string, bool)
	// ThumbnailOrdinal returns the ordinal when the target is a thumbnail
	// image.
	ThumbnailOrdinal() (int, bool)
}

// RouteClick maps a click target to a command. Thumbnail clicks only route
// when they point at a slide other than current.
func RouteClick(target Target, current int) (Command, bool) {
	if target == nil {
		return Command{}, false
	}
	if name, ok := target.Control(); ok {
		switch name {
		case ControlPrevious:
			return Previous(), true
		case ControlNext:
			return Next(), true
		case ControlRandom:
			return Random(), true
		case ControlPlayPause:
			return TogglePlay(), true
		}
		return Command{}, false
	}
	if ordinal, ok := target.ThumbnailOrdinal(); ok && ordinal != current {
		return JumpTo(ordinal), true
	}
	return Command{}, false
}
