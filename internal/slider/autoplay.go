package slider

import (
	"fmt"
	"log"
	"time"

	"github.com/five82/carousel/internal/schedule"
)

// PlayState is the autoplay state and the only source for the play/pause
// affordance.
type PlayState int

const (
	Stopped PlayState = iota
	Running
)

func (p PlayState) String() string {
	switch p {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("play(%d)", int(p))
	}
}

// Affordance labels for the play/pause control.
const (
	IconPlay   = "play"
	IconPause  = "pause"
	TitlePlay  = "Start slideshow"
	TitlePause = "Stop slideshow"
)

// Affordance is what the play/pause control offers in the current state.
type Affordance struct {
	Icon  string
	Title string
}

// Autoplay issues Next at a fixed interval while Running. Stopping discards
// the interval window; starting again begins a fresh one.
type Autoplay struct {
	state    *State
	sched    schedule.Scheduler
	surface  Surface
	interval time.Duration
	tick     func()
	play     PlayState
}

func newAutoplay(state *State, sched schedule.Scheduler, surface Surface, interval time.Duration, tick func()) *Autoplay {
	return &Autoplay{
		state:    state,
		sched:    sched,
		surface:  surface,
		interval: interval,
		tick:     tick,
	}
}

// Start moves Stopped to Running. It reports whether anything changed.
func (a *Autoplay) Start() bool {
	if a.play == Running {
		return false
	}
	a.state.timer = a.sched.Every(a.interval, a.tick)
	a.play = Running
	a.surface.SetControlTitle(ControlPlayPause, a.Affordance().Title)
	log.Printf("slider: autoplay started every %s", a.interval)
	return true
}

// Stop moves Running to Stopped, cancelling the timer.
func (a *Autoplay) Stop() bool {
	if a.play == Stopped {
		return false
	}
	if a.state.timer != nil {
		a.state.timer.Cancel()
		a.state.timer = nil
	}
	a.play = Stopped
	a.surface.SetControlTitle(ControlPlayPause, a.Affordance().Title)
	log.Printf("slider: autoplay stopped")
	return true
}

// Toggle flips the state and returns the new one.
func (a *Autoplay) Toggle() PlayState {
	if a.play == Running {
		a.Stop()
	} else {
		a.Start()
	}
	return a.play
}

// State returns the current play state.
func (a *Autoplay) State() PlayState {
	return a.play
}

// Interval returns the autoplay cadence.
func (a *Autoplay) Interval() time.Duration {
	return a.interval
}

// HasTimer reports whether a timer handle is held.
func (a *Autoplay) HasTimer() bool {
	return a.state.timer != nil
}

// Affordance derives the control's icon and title from the state.
func (a *Autoplay) Affordance() Affordance {
	if a.play == Running {
		return Affordance{Icon: IconPause, Title: TitlePause}
	}
	return Affordance{Icon: IconPlay, Title: TitlePlay}
}
