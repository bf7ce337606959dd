// Package app is the composition root for the carousel.
//
// # Overview
//
// Run loads the configuration, applies command-line overrides, resolves the
// slide sequence, redirects logging, and hands everything to the Bubble Tea
// UI, which blocks until the user quits.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()     Read ~/.config/carousel/config.toml
//	       ├─────> overrides         --slides dir, --interval, --autoplay, --log-file
//	       ├─────> Validate()        Reject empty or non-positive settings
//	       ├─────> catalog.Resolve() Explicit slides or a scanned directory
//	       ├─────> tea.LogToFile()   Or discard, so logs never hit the screen
//	       ├─────> prefs.Load()      Theme and thumbnail preferences
//	       └─────> ui.Run()          Start TUI (blocks)
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Malformed config file or invalid override
//   - No slides configured, or a slide directory without images
//   - Log file that cannot be opened
//   - An engine invariant violation during the session
//
// Recoverable errors (logged):
//   - Unreadable preferences (defaults are used)
//   - Images that cannot be decoded (a placeholder is drawn)
//
// Prepare runs the same loading steps without starting the UI; the slides
// subcommand uses it to print the resolved sequence.
package app
