package ui

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/carousel/internal/slider"
)

// Terminal size thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact labels are used.
	LayoutCompactWidth = 80

	// LayoutMinFrameHeight is the smallest slide frame worth drawing.
	LayoutMinFrameHeight = 4
)

// Thumbnail strip geometry.
const (
	// ThumbWidth is the cell width of one thumbnail, gap included.
	ThumbWidth = 18

	thumbGap = 1
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// controlBox is one clickable control in the controls row.
type controlBox struct {
	name  string
	label string
	box   rect
}

// thumbBox is one visible thumbnail in the strip.
type thumbBox struct {
	ordinal int
	box     rect
}

// layout is the screen geometry for one frame. It is computed from sizes
// only, so rendering and mouse hit testing always agree.
type layout struct {
	width, height int

	header   rect
	frame    rect
	controls []controlBox
	thumbs   []thumbBox
	footer   rect
}

// controlLabel returns the text shown on a control.
func controlLabel(name string, play slider.Affordance, compact bool) string {
	switch name {
	case slider.ControlPrevious:
		return ternary(compact, "‹", "‹ Prev")
	case slider.ControlNext:
		return ternary(compact, "›", "Next ›")
	case slider.ControlRandom:
		return ternary(compact, "Rnd", "Random")
	case slider.ControlPlayPause:
		icon := "▶"
		if play.Icon == slider.IconPause {
			icon = "❚❚"
		}
		if compact {
			return icon
		}
		return icon + " " + play.Title
	default:
		return name
	}
}

var controlOrder = []string{
	slider.ControlPrevious,
	slider.ControlNext,
	slider.ControlRandom,
	slider.ControlPlayPause,
}

// computeLayout stacks header, frame, controls, thumbnails, and footer from
// the top and bottom of the screen. The strip is windowed so the selected
// thumbnail is always visible.
func computeLayout(width, height, count, selected int, showThumbs bool, play slider.Affordance) layout {
	l := layout{width: width, height: height}
	if width <= 0 || height <= 0 {
		return l
	}

	l.header = rect{x: 0, y: 0, w: width, h: 1}
	bottom := height
	if height > 1 {
		bottom--
		l.footer = rect{x: 0, y: bottom, w: width, h: 1}
	}

	if showThumbs && count > 0 && bottom-1 > 1 {
		bottom--
		l.thumbs = layoutThumbs(width, bottom, count, selected)
	}

	if bottom-1 > 1 {
		bottom--
		l.controls = layoutControls(width, bottom, play)
	}

	if bottom > 1 {
		l.frame = rect{x: 0, y: 1, w: width, h: bottom - 1}
	}
	return l
}

func layoutControls(width, row int, play slider.Affordance) []controlBox {
	compact := width < LayoutCompactWidth
	boxes := make([]controlBox, 0, len(controlOrder))
	x := 1
	for _, name := range controlOrder {
		label := controlLabel(name, play, compact)
		w := ansi.StringWidth(label) + 2 // Control style pads one cell each side
		if x+w > width {
			break
		}
		boxes = append(boxes, controlBox{name: name, label: label, box: rect{x: x, y: row, w: w, h: 1}})
		x += w + 1
	}
	return boxes
}

func layoutThumbs(width, row, count, selected int) []thumbBox {
	visible := width / ThumbWidth
	if visible < 1 {
		visible = 1
	}
	if visible > count {
		visible = count
	}
	start := selected - visible/2
	if start > count-visible {
		start = count - visible
	}
	if start < 0 {
		start = 0
	}

	boxes := make([]thumbBox, 0, visible)
	for i := 0; i < visible; i++ {
		w := ThumbWidth - thumbGap
		if w > width {
			w = width
		}
		boxes = append(boxes, thumbBox{
			ordinal: start + i,
			box:     rect{x: i * ThumbWidth, y: row, w: w, h: 1},
		})
	}
	return boxes
}

// hit is the element under a mouse position. It implements slider.Target.
type hit struct {
	control string
	ordinal int
	thumb   bool
}

var _ slider.Target = hit{}

func (h hit) Control() (string, bool) {
	return h.control, h.control != ""
}

func (h hit) ThumbnailOrdinal() (int, bool) {
	return h.ordinal, h.thumb
}

// hitTest resolves a cell to a control or thumbnail.
func (l layout) hitTest(x, y int) (hit, bool) {
	for _, c := range l.controls {
		if c.box.contains(x, y) {
			return hit{control: c.name}, true
		}
	}
	for _, t := range l.thumbs {
		if t.box.contains(x, y) {
			return hit{ordinal: t.ordinal, thumb: true}, true
		}
	}
	return hit{}, false
}
