package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/carousel/internal/config"
	"github.com/five82/carousel/internal/slider"
)

func TestCaptionFromName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"golden_gate-bridge.jpg", "Golden Gate Bridge"},
		{"/photos/aube.PNG", "Aube"},
		{"  spaced__out--name.gif", "Spaced Out Name"},
		{".jpg", ""},
	}
	for _, tc := range cases {
		if got := CaptionFromName(tc.in); got != tc.want {
			t.Fatalf("CaptionFromName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestScan_FiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b_two.png", "A_one.JPG", "notes.txt", ".hidden.png", "c-three.gif"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	got, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	want := []slider.Slide{
		{Ordinal: 0, Source: filepath.Join(dir, "A_one.JPG"), Caption: "A One"},
		{Ordinal: 1, Source: filepath.Join(dir, "b_two.png"), Caption: "B Two"},
		{Ordinal: 2, Source: filepath.Join(dir, "c-three.gif"), Caption: "C Three"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Scan (-want +got):\n%s", diff)
	}
}

func TestScan_EmptyDirectory(t *testing.T) {
	_, err := Scan(t.TempDir())
	if !errors.Is(err, slider.ErrNoSlides) {
		t.Fatalf("Scan(empty) err = %v, want ErrNoSlides", err)
	}
	if _, err := Scan(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("Scan(missing) returned nil error")
	}
}

func TestResolve_ExplicitSlidesWin(t *testing.T) {
	cfg := config.Default()
	cfg.SlideDir = t.TempDir()
	cfg.Slides = []config.Slide{
		{Src: "/img/night_sky.png"},
		{Src: "/img/b.jpg", Caption: "Custom"},
	}

	got, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	want := []slider.Slide{
		{Ordinal: 0, Source: "/img/night_sky.png", Caption: "Night Sky"},
		{Ordinal: 1, Source: "/img/b.jpg", Caption: "Custom"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Resolve (-want +got):\n%s", diff)
	}
}

func TestResolve_NoSource(t *testing.T) {
	if _, err := Resolve(config.Default()); !errors.Is(err, slider.ErrNoSlides) {
		t.Fatalf("Resolve(default) err = %v, want ErrNoSlides", err)
	}
}
