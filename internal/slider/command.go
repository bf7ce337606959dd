package slider

import "fmt"

// Kind identifies a slider command.
type Kind int

const (
	KindNext Kind = iota
	KindPrevious
	KindRandom
	KindJumpTo
	KindTogglePlay
)

func (k Kind) String() string {
	switch k {
	case KindNext:
		return "next"
	case KindPrevious:
		return "previous"
	case KindRandom:
		return "random"
	case KindJumpTo:
		return "jump"
	case KindTogglePlay:
		return "toggle-play"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Command is one input to Engine.Apply. Target is only read for KindJumpTo.
type Command struct {
	Kind   Kind
	Target int
}

// Next advances one slide.
func Next() Command { return Command{Kind: KindNext} }

// Previous goes back one slide.
func Previous() Command { return Command{Kind: KindPrevious} }

// Random shows a random slide other than the current one.
func Random() Command { return Command{Kind: KindRandom} }

// JumpTo shows the slide at ordinal target.
func JumpTo(target int) Command { return Command{Kind: KindJumpTo, Target: target} }

// TogglePlay starts or stops autoplay.
func TogglePlay() Command { return Command{Kind: KindTogglePlay} }

func (c Command) String() string {
	if c.Kind == KindJumpTo {
		return fmt.Sprintf("jump(%d)", c.Target)
	}
	return c.Kind.String()
}
