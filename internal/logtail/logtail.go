package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one parsed log line.
type Entry struct {
	Timestamp string
	Component string
	Message   string
}

// Standard logger layout: optional prefix, date and time, optional
// "component: " tag, message.
var linePattern = regexp.MustCompile(`^(?:\S+ )?(\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}) (?:([a-z]+): )?(.*)$`)

// Parse splits a log line. Lines that do not match keep everything in
// Message.
func Parse(line string) Entry {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return Entry{Message: line}
	}
	return Entry{Timestamp: m[1], Component: m[2], Message: m[3]}
}

// Filter keeps lines logged by component. An empty component keeps all.
func Filter(lines []string, component string) []string {
	if component == "" {
		return lines
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if Parse(line).Component == component {
			out = append(out, line)
		}
	}
	return out
}

var (
	timestampStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	defaultStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#87AFFF"))

	componentStyles = map[string]lipgloss.Style{
		"slider":  lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")).Bold(true),
		"ui":      lipgloss.NewStyle().Foreground(lipgloss.Color("#87AFFF")).Bold(true),
		"preview": lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
	}
)

// ColorizeLine styles the timestamp and component of a log line. Messages
// reporting a broken invariant are shown in red.
func ColorizeLine(line string) string {
	if strings.TrimSpace(line) == "" {
		return line
	}
	e := Parse(line)
	if e.Timestamp == "" {
		return line
	}

	var b strings.Builder
	b.WriteString(timestampStyle.Render(e.Timestamp))
	b.WriteString(" ")
	if e.Component != "" {
		style, ok := componentStyles[e.Component]
		if !ok {
			style = defaultStyle
		}
		b.WriteString(style.Render(e.Component))
		b.WriteString(" ")
	}
	if strings.Contains(e.Message, "no unique active slide") {
		b.WriteString(errorStyle.Render(e.Message))
	} else {
		b.WriteString(e.Message)
	}
	return b.String()
}

// ColorizeLines applies ColorizeLine to each line.
func ColorizeLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = ColorizeLine(line)
	}
	return out
}
