package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/carousel/internal/slider"
)

// renderHeader renders the status bar: position, play state, and the effect
// currently applied to the visible slide.
func (m Model) renderHeader(width int) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	compact := width < LayoutCompactWidth

	snap := m.engine.Snapshot()
	shown := m.displayedSlide()

	var parts []string
	parts = append(parts, bg.Render("carousel", styles.Logo))
	parts = append(parts,
		bg.Render(fmt.Sprintf("%d/%d", shown+1, snap.Total), styles.Text.Bold(true)))

	if snap.Play == slider.Running {
		label := "● Playing"
		if !compact {
			label += " every " + m.engine.Autoplay().Interval().String()
		}
		parts = append(parts, bg.Render(label, styles.SuccessText))
	} else {
		parts = append(parts, bg.Render("■ Paused", styles.MutedText))
	}

	if effect := m.slideEffect(shown); effect != "" {
		effectStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.EffectColors[effect]))
		parts = append(parts, bg.Render(string(effect), effectStyle))
	}

	if !compact {
		if s, ok := m.engine.Slide(shown); ok && s.Caption != "" {
			parts = append(parts, bg.Render(truncate(s.Caption, width/3), styles.MutedText))
		}
	}

	content := bg.Space() + bg.Join(parts, "  ")
	return bg.FillLine(content, width)
}

// renderFooter renders the short key help.
func (m Model) renderFooter(width int) string {
	bg := NewBgStyle(m.theme.Surface)
	h := m.help
	h.Width = width - 2
	return bg.FillLine(bg.Space()+h.View(m.keys), width)
}

// displayedSlide is the slide carrying the active marker. While a swap is
// pending that is still the outgoing slide, not State.Index.
func (m Model) displayedSlide() int {
	if ordinal, err := m.tree.ActiveSlide(); err == nil {
		return ordinal
	}
	return m.engine.Index()
}

// slideEffect returns the effect class on a slide, if any.
func (m Model) slideEffect(ordinal int) slider.Effect {
	for _, effect := range slider.AllEffects() {
		if m.tree.HasClass(ordinal, string(effect)) {
			return effect
		}
	}
	return ""
}
