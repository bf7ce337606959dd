// Package catalog turns configured slide sources into the ordered slide
// sequence the engine runs over.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/five82/carousel/internal/config"
	"github.com/five82/carousel/internal/slider"
)

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// IsImage reports whether name has a supported image extension.
func IsImage(name string) bool {
	return imageExts[strings.ToLower(filepath.Ext(name))]
}

// Resolve builds the slide sequence. Explicit slides win over the slide
// directory. Missing captions are derived from file names.
func Resolve(cfg config.Config) ([]slider.Slide, error) {
	if len(cfg.Slides) > 0 {
		slides := make([]slider.Slide, 0, len(cfg.Slides))
		for _, s := range cfg.Slides {
			caption := s.Caption
			if caption == "" {
				caption = CaptionFromName(s.Src)
			}
			slides = append(slides, slider.Slide{Source: s.Src, Caption: caption})
		}
		return slider.NewSlides(slides), nil
	}
	if strings.TrimSpace(cfg.SlideDir) == "" {
		return nil, slider.ErrNoSlides
	}
	return Scan(cfg.SlideDir)
}

// Scan lists the images directly inside dir, sorted by file name.
func Scan(dir string) ([]slider.Slide, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan slides: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") || !IsImage(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("scan slides in %s: %w", dir, slider.ErrNoSlides)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	slides := make([]slider.Slide, len(names))
	for i, name := range names {
		slides[i] = slider.Slide{
			Ordinal: i,
			Source:  filepath.Join(dir, name),
			Caption: CaptionFromName(name),
		}
	}
	return slides, nil
}

// CaptionFromName turns "golden_gate-bridge.jpg" into "Golden Gate Bridge".
func CaptionFromName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(base)
	base = strings.Join(strings.Fields(base), " ")
	if base == "" {
		return ""
	}
	return cases.Title(language.Und).String(base)
}
