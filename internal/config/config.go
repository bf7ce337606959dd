package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/five82/carousel/internal/slider"
)

// Slide is one explicitly configured image.
type Slide struct {
	Src     string
	Caption string
}

// Config captures the carousel settings.
type Config struct {
	// Path is the file the values came from; empty when defaults were used.
	Path string

	Slides   []Slide
	SlideDir string

	AutoplayInterval time.Duration
	SwapDelay        time.Duration
	SettleDelay      time.Duration
	Autoplay         bool

	LogFile string
	Seed    uint64
}

const defaultConfigPath = "~/.config/carousel/config.toml"

// fileConfig mirrors the on-disk layout. TOML is the default format; files
// ending in .yaml or .yml are read as YAML with the same keys.
type fileConfig struct {
	SlideDir           string      `toml:"slide_dir" yaml:"slide_dir"`
	Slides             []fileSlide `toml:"slides" yaml:"slides"`
	AutoplayIntervalMS int         `toml:"autoplay_interval_ms" yaml:"autoplay_interval_ms"`
	SwapDelayMS        int         `toml:"swap_delay_ms" yaml:"swap_delay_ms"`
	SettleDelayMS      int         `toml:"settle_delay_ms" yaml:"settle_delay_ms"`
	Autoplay           bool        `toml:"autoplay" yaml:"autoplay"`
	LogFile            string      `toml:"log_file" yaml:"log_file"`
	Seed               uint64      `toml:"seed" yaml:"seed"`
}

type fileSlide struct {
	Src     string `toml:"src" yaml:"src"`
	Caption string `toml:"caption" yaml:"caption"`
}

func decode(path string, data []byte, raw *fileConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, raw)
	default:
		return toml.Unmarshal(data, raw)
	}
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		AutoplayInterval: slider.DefaultInterval,
		SwapDelay:        slider.DefaultSwapDelay,
		SettleDelay:      slider.DefaultSettleDelay,
	}
}

// Load locates and parses the carousel config, falling back to defaults when
// the file is missing. Relative paths inside the file resolve against the
// file's directory.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := decode(resolved, bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Path = resolved
	base := filepath.Dir(resolved)

	for _, s := range raw.Slides {
		src := strings.TrimSpace(s.Src)
		if src == "" {
			return Config{}, fmt.Errorf("parse config: slide with empty src")
		}
		cfg.Slides = append(cfg.Slides, Slide{
			Src:     resolveAgainst(base, src),
			Caption: strings.TrimSpace(s.Caption),
		})
	}
	if dir := strings.TrimSpace(raw.SlideDir); dir != "" {
		cfg.SlideDir = resolveAgainst(base, dir)
	}

	if cfg.AutoplayInterval, err = millis("autoplay_interval_ms", raw.AutoplayIntervalMS, cfg.AutoplayInterval); err != nil {
		return Config{}, err
	}
	if cfg.SwapDelay, err = millis("swap_delay_ms", raw.SwapDelayMS, cfg.SwapDelay); err != nil {
		return Config{}, err
	}
	if cfg.SettleDelay, err = millis("settle_delay_ms", raw.SettleDelayMS, cfg.SettleDelay); err != nil {
		return Config{}, err
	}

	cfg.Autoplay = raw.Autoplay
	cfg.Seed = raw.Seed
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = resolveAgainst(base, logFile)
	}

	return cfg, nil
}

// Validate reports settings the engine cannot run with.
func (c Config) Validate() error {
	if len(c.Slides) == 0 && strings.TrimSpace(c.SlideDir) == "" {
		return fmt.Errorf("no slides configured: set slides or slide_dir")
	}
	if c.AutoplayInterval <= 0 {
		return fmt.Errorf("autoplay interval must be positive, got %s", c.AutoplayInterval)
	}
	if c.SwapDelay <= 0 || c.SettleDelay <= 0 {
		return fmt.Errorf("transition delays must be positive, got %s/%s", c.SwapDelay, c.SettleDelay)
	}
	return nil
}

// SetSlideDir overrides the slide directory, expanding ~.
func (c *Config) SetSlideDir(dir string) error {
	expanded, err := expandPath(dir)
	if err != nil {
		return fmt.Errorf("slide dir: %w", err)
	}
	c.SlideDir = expanded
	c.Slides = nil
	return nil
}

// SetLogFile overrides the log destination, expanding ~.
func (c *Config) SetLogFile(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	c.LogFile = expanded
	return nil
}

func millis(key string, value int, fallback time.Duration) (time.Duration, error) {
	switch {
	case value < 0:
		return 0, fmt.Errorf("parse config: %s must not be negative", key)
	case value == 0:
		return fallback, nil
	default:
		return time.Duration(value) * time.Millisecond, nil
	}
}

func resolveAgainst(base, path string) string {
	if strings.HasPrefix(path, "~") || filepath.IsAbs(path) {
		return mustExpand(path)
	}
	return filepath.Join(base, path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
