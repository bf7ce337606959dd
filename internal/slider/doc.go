// Package slider implements the carousel state machine.
//
// # Overview
//
// An Engine owns the authoritative State (current index, effect pair for the
// next transition, autoplay handle) for a fixed, ordered sequence of slides.
// Every input is expressed as a Command and funnelled through Engine.Apply,
// which computes the next index, picks the effect pair associated with the
// command, and projects the result onto a Surface and the thumbnail strip.
//
// # Commands
//
//	Command   Index update                     Out              In
//	Next      (i+1) mod N                      fadeOutRightBig  fadeInLeftBig
//	Previous  (i-1+N) mod N                    fadeOutLeftBig   fadeInRightBig
//	Random    uniform over [0,N-1] \ {i}       zoomOut          zoomIn
//	JumpTo    target, only when target != i    zoomOut          zoomIn
//
// TogglePlay flips the Autoplay controller between Stopped and Running.
//
// # Projection
//
// Each transition is a small stage machine driven by a schedule.Scheduler:
//
//	Idle ──> OutgoingPlaying ──(SwapDelay)──> Swapped ──(SettleDelay)──> Settled
//
// OutgoingPlaying marks the old slide with the outgoing effect and resyncs the
// thumbnail strip. Swapped activates the new slide with the incoming effect
// and strips active+outgoing from the old slide. Settled clears the incoming
// effect. Both delayed steps are measured from the moment the command was
// applied, and both capture the ordinals and effects they act on when the
// command is applied. A superseded transition therefore finishes against the
// slides it was issued for, never against whatever the state holds when its
// timer fires. In-flight steps are not cancelled.
//
// # Invariants
//
//   - State.Index is always in [0, N-1].
//   - Exactly one thumbnail is selected and its ordinal equals State.Index.
//   - At most one autoplay timer exists.
//   - The Surface has exactly one active slide after every step.
//
// Violations are programmer errors and surface as the sentinel errors in
// errors.go; callers treat them as fatal.
package slider
