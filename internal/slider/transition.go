package slider

import "fmt"

// Stage is the progress of one transition's staged projection.
type Stage int

const (
	StageIdle Stage = iota
	StageOutgoing
	StageSwapped
	StageSettled
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageOutgoing:
		return "outgoing"
	case StageSwapped:
		return "swapped"
	case StageSettled:
		return "settled"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Transition describes one index change and the visual work it requires.
// From, To, and Effects are fixed when the command is applied.
type Transition struct {
	ID      uint64
	Command Command
	From    int
	To      int
	Effects EffectPair
	Stage   Stage
}

func (t Transition) String() string {
	return fmt.Sprintf("#%d %s %d->%d [%s/%s] %s", t.ID, t.Command, t.From, t.To, t.Effects.Out, t.Effects.In, t.Stage)
}
