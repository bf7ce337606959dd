// Package config loads the carousel's TOML or YAML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/carousel/config.toml (default)
//  3. If the config file doesn't exist, fall back to built-in defaults
//  4. If the file exists but timing fields are zero, use defaults
//
// Files ending in .yaml or .yml are decoded as YAML with the same keys;
// anything else is TOML.
//
// # Environment
//
// ApplyEnv layers these over the file before command-line flags:
//
//   - CAROUSEL_SLIDE_DIR
//   - CAROUSEL_AUTOPLAY_INTERVAL_MS
//   - CAROUSEL_AUTOPLAY
//   - CAROUSEL_LOG_FILE
//   - CAROUSEL_SEED
//
// # Default Values
//
//   - Autoplay interval: 3000ms
//   - Swap delay (outgoing effect to slide swap): 500ms
//   - Settle delay (swap to end of incoming effect): 1000ms
//   - Autoplay on start: false
//   - Log file: none (log output is discarded)
//
// # TOML Format
//
//	slide_dir = "~/Pictures/holiday"
//	autoplay = true
//	autoplay_interval_ms = 3000
//	swap_delay_ms = 500
//	settle_delay_ms = 1000
//	log_file = "~/.local/state/carousel/carousel.log"
//	seed = 0
//
//	[[slides]]
//	src = "img/aube.jpg"
//	caption = "Sunrise over the bay"
//
// Explicit [[slides]] entries take precedence over slide_dir. Relative paths
// resolve against the directory holding the config file, so a config can
// travel with its images.
//
// # Error Handling
//
//   - Missing file: defaults, no error
//   - Unreadable file: "open config" / "read config" errors
//   - Malformed file, negative durations, or empty slide src: "parse config"
//   - Unparseable or non-positive environment values: "parse env"
//   - Validate rejects a config with no slide source or non-positive timings
package config
