package slider

// Effect names a transient entrance or exit treatment. The engine treats
// effects as opaque markers; the host decides how to draw them.
type Effect string

const (
	FadeInLeftBig   Effect = "fadeInLeftBig"
	FadeOutRightBig Effect = "fadeOutRightBig"
	FadeInRightBig  Effect = "fadeInRightBig"
	FadeOutLeftBig  Effect = "fadeOutLeftBig"
	ZoomIn          Effect = "zoomIn"
	ZoomOut         Effect = "zoomOut"
)

// ClassActive marks the slide currently on display.
const ClassActive = "active"

// EffectPair is the outgoing/incoming effect combination for one transition.
type EffectPair struct {
	Out Effect
	In  Effect
}

var (
	nextEffects     = EffectPair{Out: FadeOutRightBig, In: FadeInLeftBig}
	previousEffects = EffectPair{Out: FadeOutLeftBig, In: FadeInRightBig}
	zoomEffects     = EffectPair{Out: ZoomOut, In: ZoomIn}
)

// Effects returns the pair a command kind animates with. TogglePlay has none.
func Effects(kind Kind) (EffectPair, bool) {
	switch kind {
	case KindNext:
		return nextEffects, true
	case KindPrevious:
		return previousEffects, true
	case KindRandom, KindJumpTo:
		return zoomEffects, true
	default:
		return EffectPair{}, false
	}
}

// IsOutgoing reports whether e is an exit effect.
func (e Effect) IsOutgoing() bool {
	switch e {
	case FadeOutRightBig, FadeOutLeftBig, ZoomOut:
		return true
	}
	return false
}

// IsIncoming reports whether e is an entrance effect.
func (e Effect) IsIncoming() bool {
	switch e {
	case FadeInLeftBig, FadeInRightBig, ZoomIn:
		return true
	}
	return false
}

// AllEffects lists every effect the engine can emit.
func AllEffects() []Effect {
	return []Effect{FadeInLeftBig, FadeOutRightBig, FadeInRightBig, FadeOutLeftBig, ZoomIn, ZoomOut}
}
