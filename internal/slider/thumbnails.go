package slider

import "fmt"

// Thumbnail mirrors one slide in the selectable strip.
type Thumbnail struct {
	Ordinal  int
	Source   string
	Caption  string
	Selected bool
}

// Thumbnails is the strip projected from the slide sequence. Exactly one
// entry is selected at any time.
type Thumbnails struct {
	items    []Thumbnail
	selected int
}

// BuildThumbnails creates one thumbnail per slide in ordinal order, copying
// source and caption, with ordinal 0 selected.
func BuildThumbnails(slides []Slide) *Thumbnails {
	items := make([]Thumbnail, len(slides))
	for i, s := range slides {
		items[i] = Thumbnail{
			Ordinal:  i,
			Source:   s.Source,
			Caption:  s.Caption,
			Selected: i == 0,
		}
	}
	selected := 0
	if len(items) == 0 {
		selected = -1
	}
	return &Thumbnails{items: items, selected: selected}
}

// Resync moves the selection to index.
func (t *Thumbnails) Resync(index int) error {
	if index < 0 || index >= len(t.items) {
		return fmt.Errorf("resync thumbnail %d of %d: %w", index, len(t.items), ErrOutOfRange)
	}
	current, err := t.Selected()
	if err != nil {
		return fmt.Errorf("resync thumbnail %d: %w", index, err)
	}
	t.items[current].Selected = false
	t.items[index].Selected = true
	t.selected = index
	return nil
}

// Selected returns the ordinal of the selected thumbnail.
func (t *Thumbnails) Selected() (int, error) {
	if t.selected < 0 || t.selected >= len(t.items) || !t.items[t.selected].Selected {
		return -1, ErrNoSelection
	}
	return t.selected, nil
}

// Len returns the number of thumbnails.
func (t *Thumbnails) Len() int {
	return len(t.items)
}

// Items returns a copy of the strip.
func (t *Thumbnails) Items() []Thumbnail {
	out := make([]Thumbnail, len(t.items))
	copy(out, t.items)
	return out
}

// CountSelected is used by invariant checks.
func (t *Thumbnails) CountSelected() int {
	n := 0
	for _, item := range t.items {
		if item.Selected {
			n++
		}
	}
	return n
}
