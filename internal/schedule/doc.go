// Package schedule defines the timer capability the slider engine runs on.
//
// The engine never touches wall-clock time directly. It asks a Scheduler to
// run a callback once after a delay (the staged swap and settle steps of a
// transition) or repeatedly at an interval (autoplay). Callbacks are expected
// to run to completion on the same logical thread that issues commands, so a
// Scheduler implementation must never invoke a callback concurrently with
// another callback or with a command handler.
//
// Two implementations exist in this module:
//
//   - Manual (this package): a fake clock advanced explicitly by tests.
//   - The Bubble Tea scheduler in internal/ui, which turns every scheduled
//     callback into a tea.Tick message so it runs inside Model.Update.
package schedule
