package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/carousel/internal/catalog"
	"github.com/five82/carousel/internal/config"
	"github.com/five82/carousel/internal/prefs"
	"github.com/five82/carousel/internal/slider"
	"github.com/five82/carousel/internal/ui"
)

// Options configure the carousel application. Zero values leave the config
// file's settings alone.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/carousel/prefs.toml
	SlideDir   string // replaces configured slides when set
	IntervalMS int    // autoplay interval override in milliseconds
	Autoplay   bool   // start playing regardless of config
	LogFile    string
}

// Session is a validated configuration with its resolved slides.
type Session struct {
	Config config.Config
	Slides []slider.Slide
}

// Prepare loads the config, layers the environment and then command-line
// overrides over it, and resolves the slide sequence.
func Prepare(opts Options) (Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return Session{}, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return Session{}, err
	}

	if opts.SlideDir != "" {
		if err := cfg.SetSlideDir(opts.SlideDir); err != nil {
			return Session{}, err
		}
	}
	if opts.IntervalMS < 0 {
		return Session{}, fmt.Errorf("interval must not be negative, got %dms", opts.IntervalMS)
	}
	if opts.IntervalMS > 0 {
		cfg.AutoplayInterval = time.Duration(opts.IntervalMS) * time.Millisecond
	}
	if opts.Autoplay {
		cfg.Autoplay = true
	}
	if opts.LogFile != "" {
		if err := cfg.SetLogFile(opts.LogFile); err != nil {
			return Session{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return Session{}, fmt.Errorf("invalid config: %w", err)
	}

	slides, err := catalog.Resolve(cfg)
	if err != nil {
		return Session{}, fmt.Errorf("resolve slides: %w", err)
	}
	return Session{Config: cfg, Slides: slides}, nil
}

// Run boots the carousel TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	session, err := Prepare(opts)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(session.Config.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	if session.Config.Path == "" {
		log.Printf("no config file found, using defaults")
	}
	log.Printf("starting carousel with %d slides", len(session.Slides))

	userPrefs := prefs.Load(opts.PrefsPath)

	uiOpts := ui.Options{
		Context:        ctx,
		Slides:         session.Slides,
		Config:         &session.Config,
		ThemeName:      userPrefs.Theme,
		PrefsPath:      opts.PrefsPath,
		HideThumbnails: userPrefs.HideThumbnails,
	}
	return ui.Run(uiOpts)
}

// setupLogging sends the standard logger to path, or discards it so nothing
// is written over the alternate screen.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "carousel")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}
