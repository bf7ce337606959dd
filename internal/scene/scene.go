// Package scene is the in-memory visual tree the carousel projects onto:
// one marker set per slide plus display titles for named controls. The UI
// renders from it; the slider engine writes to it through slider.Surface.
package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ClassActive marks the slide on display.
const ClassActive = "active"

var (
	// ErrNotFound is returned when a query matches nothing.
	ErrNotFound = errors.New("scene: element not found")
	// ErrAmbiguous is returned when a single-element query matches several.
	ErrAmbiguous = errors.New("scene: query matched more than one element")
)

// Tree holds slide markers and control titles. It is not safe for
// concurrent use.
type Tree struct {
	slides []map[string]struct{}
	titles map[string]string
}

// New returns a tree with n unmarked slides.
func New(n int) *Tree {
	slides := make([]map[string]struct{}, n)
	for i := range slides {
		slides[i] = make(map[string]struct{})
	}
	return &Tree{slides: slides, titles: make(map[string]string)}
}

// Len returns the number of slides.
func (t *Tree) Len() int {
	return len(t.slides)
}

// ActiveSlide returns the only slide marked active.
func (t *Tree) ActiveSlide() (int, error) {
	matches := t.WithClass(ClassActive)
	switch len(matches) {
	case 0:
		return -1, fmt.Errorf("active slide: %w", ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return matches[0], fmt.Errorf("active slide %v: %w", matches, ErrAmbiguous)
	}
}

// AddClass adds classes to the slide at ordinal. Unknown ordinals are ignored.
func (t *Tree) AddClass(ordinal int, classes ...string) {
	set, ok := t.slide(ordinal)
	if !ok {
		return
	}
	for _, c := range classes {
		if c != "" {
			set[c] = struct{}{}
		}
	}
}

// RemoveClass removes classes from the slide at ordinal.
func (t *Tree) RemoveClass(ordinal int, classes ...string) {
	set, ok := t.slide(ordinal)
	if !ok {
		return
	}
	for _, c := range classes {
		delete(set, c)
	}
}

// Activate marks ordinal active with extra classes and clears the active
// marker everywhere else.
func (t *Tree) Activate(ordinal int, classes ...string) {
	if _, ok := t.slide(ordinal); !ok {
		return
	}
	for i, set := range t.slides {
		if i != ordinal {
			delete(set, ClassActive)
		}
	}
	t.AddClass(ordinal, append([]string{ClassActive}, classes...)...)
}

// HasClass reports whether the slide at ordinal carries class.
func (t *Tree) HasClass(ordinal int, class string) bool {
	set, ok := t.slide(ordinal)
	if !ok {
		return false
	}
	_, has := set[class]
	return has
}

// Classes returns the sorted markers of the slide at ordinal.
func (t *Tree) Classes(ordinal int) []string {
	set, ok := t.slide(ordinal)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// WithClass returns the ordinals carrying class, ascending.
func (t *Tree) WithClass(class string) []int {
	var out []int
	for i, set := range t.slides {
		if _, ok := set[class]; ok {
			out = append(out, i)
		}
	}
	return out
}

// SetControlTitle sets a control's display title.
func (t *Tree) SetControlTitle(control, title string) {
	t.titles[control] = title
}

// ControlTitle returns a control's display title.
func (t *Tree) ControlTitle(control string) string {
	return t.titles[control]
}

func (t *Tree) slide(ordinal int) (map[string]struct{}, bool) {
	if ordinal < 0 || ordinal >= len(t.slides) {
		return nil, false
	}
	return t.slides[ordinal], true
}
