package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p := Load("")
	if p != Defaults() {
		t.Fatalf("Load = %+v, want %+v", p, Defaults())
	}
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "carousel")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	content := "theme = \"Slate\"\nhide_thumbnails = true\n"
	if err := os.WriteFile(filepath.Join(prefsDir, "prefs.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load("")
	if p.Theme != "Slate" || !p.HideThumbnails {
		t.Fatalf("Load = %+v, want Slate with thumbnails hidden", p)
	}
}

func TestLoad_GracefulDegradation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Prefs
	}{
		{"invalid toml", "theme = [", Defaults()},
		{"blank theme", "theme = \"  \"\nhide_thumbnails = true\n", Prefs{Theme: defaultTheme, HideThumbnails: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prefs.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			if got := Load(path); got != tt.want {
				t.Fatalf("Load = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSave_RoundTripCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "prefs.toml")
	want := Prefs{Theme: "Kanagawa", HideThumbnails: true}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if got := Load(path); got != want {
		t.Fatalf("Load after Save = %+v, want %+v", got, want)
	}
}

func TestDefaultPath(t *testing.T) {
	if DefaultPath() != "~/.config/carousel/prefs.toml" {
		t.Fatalf("DefaultPath = %q", DefaultPath())
	}
}
