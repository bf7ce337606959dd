package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// envOverrides holds the CAROUSEL_* variables. Unset variables leave the
// file values alone.
type envOverrides struct {
	SlideDir           string  `env:"CAROUSEL_SLIDE_DIR"`
	AutoplayIntervalMS *int    `env:"CAROUSEL_AUTOPLAY_INTERVAL_MS"`
	Autoplay           *bool   `env:"CAROUSEL_AUTOPLAY"`
	LogFile            string  `env:"CAROUSEL_LOG_FILE"`
	Seed               *uint64 `env:"CAROUSEL_SEED"`
}

// ApplyEnv layers CAROUSEL_* environment variables over the loaded values.
// Command-line flags are applied after this and win.
func (c *Config) ApplyEnv() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if o.SlideDir != "" {
		if err := c.SetSlideDir(o.SlideDir); err != nil {
			return err
		}
	}
	if o.AutoplayIntervalMS != nil {
		if *o.AutoplayIntervalMS <= 0 {
			return fmt.Errorf("parse env: CAROUSEL_AUTOPLAY_INTERVAL_MS must be positive, got %d", *o.AutoplayIntervalMS)
		}
		c.AutoplayInterval = time.Duration(*o.AutoplayIntervalMS) * time.Millisecond
	}
	if o.Autoplay != nil {
		c.Autoplay = *o.Autoplay
	}
	if o.LogFile != "" {
		if err := c.SetLogFile(o.LogFile); err != nil {
			return err
		}
	}
	if o.Seed != nil {
		c.Seed = *o.Seed
	}
	return nil
}
