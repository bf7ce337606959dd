package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/carousel/internal/slider"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Nightfox" || names[1] != "Kanagawa" || names[2] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Nightfox Kanagawa Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	cases := []struct {
		current string
		want    string
	}{
		{"Nightfox", "Kanagawa"},
		{"Kanagawa", "Slate"},
		{"Slate", "Nightfox"},
		{"Unknown", "Nightfox"},
	}
	for _, tc := range cases {
		if got := NextTheme(tc.current); got != tc.want {
			t.Fatalf("NextTheme(%s) = %q, want %q", tc.current, got, tc.want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q, want %q", name, got, name)
		}
	}
	if got := GetTheme("Unknown").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox (fallback)", got)
	}
}

func TestThemesColorEveryEffect(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, effect := range slider.AllEffects() {
			if th.EffectColors[effect] == "" {
				t.Fatalf("%s has no color for %s", name, effect)
			}
		}
	}
}

func TestFrameStyle(t *testing.T) {
	th := GetTheme("Nightfox")
	styles := th.Styles()

	if got := styles.FrameStyle("", true).GetBorderTopForeground(); got != lipgloss.Color(th.BorderFocus) {
		t.Fatalf("active frame border = %v, want %s", got, th.BorderFocus)
	}
	if got := styles.FrameStyle("", false).GetBorderTopForeground(); got != lipgloss.Color(th.Border) {
		t.Fatalf("idle frame border = %v, want %s", got, th.Border)
	}
	zoom := styles.FrameStyle(slider.ZoomIn, true)
	if got := zoom.GetBorderTopForeground(); got != lipgloss.Color(th.EffectColors[slider.ZoomIn]) {
		t.Fatalf("zoomIn frame border = %v, want %s", got, th.EffectColors[slider.ZoomIn])
	}
	if zoom.GetFaint() {
		t.Fatalf("incoming effect frame should not be faint")
	}
	if !styles.FrameStyle(slider.FadeOutRightBig, true).GetFaint() {
		t.Fatalf("outgoing effect frame should be faint")
	}
}
