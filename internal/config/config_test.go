package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/carousel/internal/slider"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("Load (-want +got):\n%s", diff)
	}
	if cfg.AutoplayInterval != slider.DefaultInterval {
		t.Fatalf("AutoplayInterval = %v, want %v", cfg.AutoplayInterval, slider.DefaultInterval)
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Path != "" {
		t.Fatalf("Path = %q, want empty when defaults are used", cfg.Path)
	}
}

func TestLoad_ParsesSlidesAndTimings(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`
slide_dir = "  ~/Pictures  "
autoplay = true
autoplay_interval_ms = 4500
swap_delay_ms = 250
settle_delay_ms = 750
log_file = "logs/carousel.log"
seed = 99

[[slides]]
src = "img/aube.jpg"
caption = "  Sunrise  "

[[slides]]
src = "/abs/nuit.png"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	want := Config{
		Path: path,
		Slides: []Slide{
			{Src: filepath.Join(dir, "img/aube.jpg"), Caption: "Sunrise"},
			{Src: "/abs/nuit.png"},
		},
		SlideDir:         filepath.Join(home, "Pictures"),
		AutoplayInterval: 4500 * time.Millisecond,
		SwapDelay:        250 * time.Millisecond,
		SettleDelay:      750 * time.Millisecond,
		Autoplay:         true,
		LogFile:          filepath.Join(dir, "logs/carousel.log"),
		Seed:             99,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("Load (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
}

func TestLoad_ZeroTimingsUseDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`slide_dir = "."`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SwapDelay != slider.DefaultSwapDelay || cfg.SettleDelay != slider.DefaultSettleDelay {
		t.Fatalf("delays = %v/%v, want defaults", cfg.SwapDelay, cfg.SettleDelay)
	}
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"invalid toml", `slide_dir = [`, "parse config"},
		{"negative interval", `autoplay_interval_ms = -1`, "autoplay_interval_ms"},
		{"negative swap", `swap_delay_ms = -5`, "swap_delay_ms"},
		{"empty src", "[[slides]]\nsrc = \"  \"", "empty src"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatalf("Load returned nil error, want %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %q, want it to mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "no slides") {
		t.Fatalf("Validate on empty config = %v, want no slides error", err)
	}

	cfg.Slides = []Slide{{Src: "a.png"}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}

	cfg.SettleDelay = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("Validate with zero settle delay returned nil")
	}
}

func TestSetSlideDir_ExpandsAndClearsExplicitSlides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Default()
	cfg.Slides = []Slide{{Src: "a.png"}}
	if err := cfg.SetSlideDir("~/shots"); err != nil {
		t.Fatalf("SetSlideDir returned error: %v", err)
	}
	if cfg.SlideDir != filepath.Join(home, "shots") {
		t.Fatalf("SlideDir = %q, want %q", cfg.SlideDir, filepath.Join(home, "shots"))
	}
	if cfg.Slides != nil {
		t.Fatalf("Slides = %v, want nil after override", cfg.Slides)
	}
	if err := cfg.SetSlideDir("  "); err == nil {
		t.Fatalf("SetSlideDir(blank) returned nil error")
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `slides:
  - src: a.png
    caption: First
autoplay_interval_ms: 1500
autoplay: true
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := []Slide{{Src: filepath.Join(dir, "a.png"), Caption: "First"}}
	if diff := cmp.Diff(want, cfg.Slides); diff != "" {
		t.Fatalf("Slides (-want +got):\n%s", diff)
	}
	if cfg.AutoplayInterval != 1500*time.Millisecond || !cfg.Autoplay {
		t.Fatalf("interval/autoplay = %v/%v, want 1.5s/true", cfg.AutoplayInterval, cfg.Autoplay)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("slides: [\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %v, want parse config error", err)
	}
}

func TestApplyEnv_OverridesFileValues(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CAROUSEL_SLIDE_DIR", dir)
	t.Setenv("CAROUSEL_AUTOPLAY_INTERVAL_MS", "750")
	t.Setenv("CAROUSEL_AUTOPLAY", "true")
	t.Setenv("CAROUSEL_SEED", "42")

	cfg := Default()
	cfg.Slides = []Slide{{Src: "/tmp/x.png"}}
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv returned error: %v", err)
	}
	if cfg.SlideDir != dir || cfg.Slides != nil {
		t.Fatalf("SlideDir/Slides = %q/%v, want %q/nil", cfg.SlideDir, cfg.Slides, dir)
	}
	if cfg.AutoplayInterval != 750*time.Millisecond {
		t.Fatalf("AutoplayInterval = %v, want 750ms", cfg.AutoplayInterval)
	}
	if !cfg.Autoplay || cfg.Seed != 42 {
		t.Fatalf("Autoplay/Seed = %v/%d, want true/42", cfg.Autoplay, cfg.Seed)
	}
}

func TestApplyEnv_UnsetLeavesValues(t *testing.T) {
	cfg := Default()
	cfg.Autoplay = true
	cfg.Seed = 7
	want := cfg
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv returned error: %v", err)
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("ApplyEnv changed config (-want +got):\n%s", diff)
	}
}

func TestApplyEnv_Rejects(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"zero interval", "CAROUSEL_AUTOPLAY_INTERVAL_MS", "0"},
		{"bad interval", "CAROUSEL_AUTOPLAY_INTERVAL_MS", "soon"},
		{"bad bool", "CAROUSEL_AUTOPLAY", "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			cfg := Default()
			if err := cfg.ApplyEnv(); err == nil || !strings.Contains(err.Error(), "parse env") {
				t.Fatalf("ApplyEnv error = %v, want parse env error", err)
			}
		})
	}
}
