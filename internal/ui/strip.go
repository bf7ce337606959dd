package ui

import (
	"fmt"
	"strings"

	"github.com/five82/carousel/internal/slider"
)

// playAffordance returns the play/pause control state. The title is read
// back from the scene so the button shows what the engine last set.
func (m Model) playAffordance() slider.Affordance {
	a := m.engine.Autoplay().Affordance()
	if title := m.tree.ControlTitle(slider.ControlPlayPause); title != "" {
		a.Title = title
	}
	return a
}

// renderControls draws the controls row laid out by computeLayout.
func (m Model) renderControls(l layout) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Background)

	var b strings.Builder
	x := 0
	for _, c := range l.controls {
		b.WriteString(bg.Spaces(c.box.x - x))
		style := styles.Control
		if c.name == slider.ControlPlayPause && m.engine.Autoplay().State() == slider.Running {
			style = styles.Selected.Padding(0, 1)
		}
		b.WriteString(style.Render(c.label))
		x = c.box.x + c.box.w
	}
	return bg.FillLine(b.String(), l.width)
}

// renderThumbnails draws the visible window of the thumbnail strip.
func (m Model) renderThumbnails(l layout) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Background)
	items := m.engine.Thumbnails()

	var b strings.Builder
	x := 0
	for _, t := range l.thumbs {
		if t.ordinal < 0 || t.ordinal >= len(items) {
			continue
		}
		item := items[t.ordinal]
		b.WriteString(bg.Spaces(t.box.x - x))

		inner := t.box.w - 2
		label := fmt.Sprintf("%d %s", item.Ordinal+1, item.Caption)
		text := " " + padRight(truncate(label, inner), inner) + " "

		style := styles.SurfaceAlt
		if item.Selected {
			style = styles.Selected.Bold(true)
		}
		b.WriteString(style.Render(text))
		x = t.box.x + t.box.w
	}
	return bg.FillLine(b.String(), l.width)
}
