package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderFrame draws the visible slide: the image preview, or a placeholder
// card when it cannot be decoded, with the caption underneath. The border
// carries the effect currently applied to the slide.
func (m Model) renderFrame(r rect) string {
	if r.h <= 0 || r.w <= 0 {
		return ""
	}
	styles := m.theme.Styles()
	shown := m.displayedSlide()
	slide, _ := m.engine.Slide(shown)

	if r.h < LayoutMinFrameHeight || r.w < 4 {
		line := padRight(truncate(slide.Caption, r.w), r.w)
		return lipgloss.NewStyle().Height(r.h).Render(styles.Text.Render(line))
	}

	innerW, innerH := r.w-2, r.h-2
	imageH := innerH - 1

	frame := styles.FrameStyle(m.slideEffect(shown), true)
	body, err := m.previews.Render(slide.Source, innerW, imageH)
	if err != nil {
		frame = styles.PlaceholderStyle()
		body = m.placeholder(slide.Source, innerW)
	}
	body = lipgloss.Place(innerW, imageH, lipgloss.Center, lipgloss.Center, body)

	caption := styles.Text.Bold(true).Render(truncate(slide.Caption, innerW))
	caption = lipgloss.PlaceHorizontal(innerW, lipgloss.Center, caption)

	return frame.
		Width(innerW).
		Height(innerH).
		MaxHeight(r.h).
		Render(body + "\n" + caption)
}

func (m Model) placeholder(source string, width int) string {
	styles := m.theme.Styles()
	lines := []string{
		styles.FaintText.Render("no preview"),
		styles.MutedText.Render(truncateMiddle(source, width)),
	}
	return strings.Join(lines, "\n")
}
