package slider

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/five82/carousel/internal/schedule"
)

// Default timings.
const (
	DefaultSwapDelay   = 500 * time.Millisecond
	DefaultSettleDelay = 1000 * time.Millisecond
	DefaultInterval    = 3000 * time.Millisecond
)

// Options tune an Engine. Zero values use the defaults.
type Options struct {
	// SwapDelay is D1: outgoing effect start to slide swap.
	SwapDelay time.Duration
	// SettleDelay is D2: swap to removal of the incoming effect.
	SettleDelay time.Duration
	// Interval is the autoplay cadence.
	Interval time.Duration
	Picker   Picker
	// Observer sees every stage change of every transition.
	Observer func(Transition)
}

// Engine is the transition engine. It is not safe for concurrent use; all
// calls, including scheduler callbacks, must happen on one thread.
type Engine struct {
	slides  []Slide
	thumbs  *Thumbnails
	state   State
	surface Surface
	sched   schedule.Scheduler
	picker  Picker

	swapDelay   time.Duration
	settleDelay time.Duration
	observer    func(Transition)
	autoplay    *Autoplay

	seq      uint64
	inFlight int
	err      error
}

// NewEngine builds the engine, the thumbnail strip, and the autoplay
// controller, and marks slide 0 active on the surface.
func NewEngine(slides []Slide, surface Surface, sched schedule.Scheduler, opts Options) (*Engine, error) {
	if len(slides) == 0 {
		return nil, ErrNoSlides
	}
	if surface == nil {
		return nil, errors.New("slider: surface is nil")
	}
	if sched == nil {
		return nil, errors.New("slider: scheduler is nil")
	}

	e := &Engine{
		slides:      NewSlides(slides),
		surface:     surface,
		sched:       sched,
		picker:      opts.Picker,
		swapDelay:   opts.SwapDelay,
		settleDelay: opts.SettleDelay,
		observer:    opts.Observer,
	}
	if e.picker == nil {
		e.picker = NewRandomPicker(nil)
	}
	if e.swapDelay <= 0 {
		e.swapDelay = DefaultSwapDelay
	}
	if e.settleDelay <= 0 {
		e.settleDelay = DefaultSettleDelay
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	e.thumbs = BuildThumbnails(e.slides)
	e.autoplay = newAutoplay(&e.state, sched, surface, interval, e.autoplayTick)

	surface.Activate(0)
	surface.SetControlTitle(ControlPlayPause, e.autoplay.Affordance().Title)
	return e, nil
}

// Apply runs one command. The returned bool is false when the command did
// not change the index (JumpTo the current slide, Random with one slide,
// TogglePlay). A non-nil error from a broken invariant is also kept in Err
// and every later Apply returns it.
func (e *Engine) Apply(cmd Command) (Transition, bool, error) {
	if e.err != nil {
		return Transition{}, false, e.err
	}

	n := len(e.slides)
	from := e.state.Index
	var to int

	switch cmd.Kind {
	case KindTogglePlay:
		e.autoplay.Toggle()
		return Transition{}, false, nil
	case KindNext:
		to = (from + 1) % n
	case KindPrevious:
		to = (from - 1 + n) % n
	case KindRandom:
		r, ok := e.picker.Pick(n, from)
		if !ok {
			return Transition{}, false, nil
		}
		to = r
	case KindJumpTo:
		if cmd.Target < 0 || cmd.Target >= n {
			return Transition{}, false, fmt.Errorf("apply %s: %w", cmd, ErrOutOfRange)
		}
		if cmd.Target == from {
			return Transition{}, false, nil
		}
		to = cmd.Target
	default:
		return Transition{}, false, fmt.Errorf("apply %s: unknown command", cmd)
	}

	if _, err := e.surface.ActiveSlide(); err != nil {
		return Transition{}, false, e.fail(fmt.Errorf("apply %s: %w: %w", cmd, ErrNoActiveSlide, err))
	}

	pair, _ := Effects(cmd.Kind)
	e.state.Index = to
	e.state.AnimationOut = pair.Out
	e.state.AnimationIn = pair.In

	e.seq++
	t := &Transition{ID: e.seq, Command: cmd, From: from, To: to, Effects: pair}
	if err := e.project(t); err != nil {
		return *t, true, e.fail(fmt.Errorf("apply %s: %w", cmd, err))
	}
	log.Printf("slider: %s", t)
	return *t, true, nil
}

// project starts the staged visual swap. The closures only read the values
// captured here.
func (e *Engine) project(t *Transition) error {
	from, to := t.From, t.To
	out, in := string(t.Effects.Out), string(t.Effects.In)

	e.surface.AddClass(from, out)
	e.advance(t, StageOutgoing)
	e.inFlight++

	e.sched.After(e.swapDelay, func() {
		e.surface.RemoveClass(from, ClassActive, out)
		e.surface.Activate(to, in)
		e.advance(t, StageSwapped)
	})
	e.sched.After(e.swapDelay+e.settleDelay, func() {
		e.surface.RemoveClass(to, in)
		e.inFlight--
		e.advance(t, StageSettled)
	})

	return e.thumbs.Resync(to)
}

func (e *Engine) advance(t *Transition, stage Stage) {
	t.Stage = stage
	if e.observer != nil {
		e.observer(*t)
	}
}

func (e *Engine) autoplayTick() {
	if _, _, err := e.Apply(Next()); err != nil {
		log.Printf("slider: autoplay tick: %v", err)
	}
}

func (e *Engine) fail(err error) error {
	if e.err == nil {
		e.err = err
		log.Printf("slider: %v", err)
	}
	return err
}

// Err returns the first invariant violation, if any.
func (e *Engine) Err() error {
	return e.err
}

// Index returns the current slide ordinal.
func (e *Engine) Index() int {
	return e.state.Index
}

// Len returns the number of slides.
func (e *Engine) Len() int {
	return len(e.slides)
}

// Slide returns the slide at ordinal i.
func (e *Engine) Slide(i int) (Slide, bool) {
	if i < 0 || i >= len(e.slides) {
		return Slide{}, false
	}
	return e.slides[i], true
}

// Slides returns a copy of the sequence.
func (e *Engine) Slides() []Slide {
	out := make([]Slide, len(e.slides))
	copy(out, e.slides)
	return out
}

// Thumbnails returns a copy of the thumbnail strip.
func (e *Engine) Thumbnails() []Thumbnail {
	return e.thumbs.Items()
}

// SelectedThumbnail returns the selected thumbnail ordinal.
func (e *Engine) SelectedThumbnail() (int, error) {
	return e.thumbs.Selected()
}

// Autoplay returns the autoplay controller.
func (e *Engine) Autoplay() *Autoplay {
	return e.autoplay
}

// InFlight is the number of transitions that have not settled.
func (e *Engine) InFlight() int {
	return e.inFlight
}

// Snapshot copies the state for rendering.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Index:        e.state.Index,
		Total:        len(e.slides),
		AnimationIn:  e.state.AnimationIn,
		AnimationOut: e.state.AnimationOut,
		Play:         e.autoplay.State(),
		InFlight:     e.inFlight,
	}
}
