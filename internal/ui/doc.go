// Package ui provides the terminal front end for the carousel.
//
// # Architecture Overview
//
// The UI hosts a slider.Engine inside a Bubble Tea program. It plays the part
// of the rendering environment the engine talks to: a scene.Tree holds the
// slide classes and control titles, and a tick-driven scheduler delivers every
// delayed step as a message, so transitions, autoplay ticks, and input all run
// on the one Update loop.
//
// # Package Structure
//
//   - app.go: Model, Update/View, key and mouse handling, and Run
//   - scheduler.go: schedule.Scheduler on top of tea.Tick
//   - layout.go: screen geometry and mouse hit testing
//   - header.go: status bar and footer help line
//   - frame.go: the visible slide with its preview and caption
//   - strip.go: controls row and thumbnail strip
//   - help.go: help overlay
//   - theme.go, style_helpers.go: palettes and Lipgloss helpers
//
// # Screen Layout
//
// Top to bottom: header, slide frame, controls (prev, next, random,
// play-pause), thumbnail strip, footer. The strip is windowed around the
// selected thumbnail and can be hidden. Layout is computed from the terminal
// size alone, so a click is resolved against the same rectangles that were
// drawn.
//
// # Effects
//
// The engine only adds and removes effect classes. The frame renders them as
// a border color per effect, faint while an outgoing effect plays, and the
// header names the effect on the visible slide.
//
// # Event Flow
//
//  1. Run builds the scene, scheduler, and engine, then starts the program
//  2. Keys are mapped to router key codes or to direct commands
//  3. Left clicks are hit-tested and routed with slider.RouteClick
//  4. timerMsg runs the scheduled step it names
//  5. After every message, queued timers are handed to Bubble Tea; an engine
//     invariant violation quits the program with that error
//
// # Key Bindings
//
//   - →/l, ←/h: Next, previous slide
//   - space: Play/pause
//   - r: Random slide
//   - g/G, 1-9: First, last, numbered slide
//   - t: Toggle thumbnails
//   - T: Cycle theme
//   - ?: Help
//   - q or Ctrl+C: Quit
package ui
