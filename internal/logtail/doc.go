// Package logtail reads and formats the carousel log file for the log
// subcommand.
//
// # Reading
//
// Read keeps a ring buffer of the last maxLines lines, so a long session log
// is scanned once with O(maxLines) memory. Lines come back oldest first. A
// missing file returns no lines and no error, since logging is off unless a
// log file is configured.
//
// # Format
//
// Lines are written by the standard logger with the "carousel" prefix:
//
//	carousel 2026/10/16 09:12:44 slider: #3 next 0->1 [fadeOutRightBig/fadeInLeftBig] outgoing
//	carousel 2026/10/16 09:12:45 ui: #3 next 0->1 [fadeOutRightBig/fadeInLeftBig] swapped
//
// Parse splits a line into timestamp, component, and message. Filter keeps
// one component, for example only slider transitions.
//
// # Colorization
//
// ColorizeLine renders timestamps dim and components in a fixed color
// (slider green, ui blue, preview yellow). Invariant violations are shown in
// red. Lines that do not parse are returned unchanged.
package logtail
