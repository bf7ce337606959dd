// Package preview draws images in the terminal using upper half-block cells:
// each cell shows two vertically stacked pixels, the top one as foreground
// and the bottom one as background.
package preview

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const halfBlock = "▀"

// Cache keeps decoded images and rendered frames keyed by size. It is used
// from the UI thread only.
type Cache struct {
	images  map[string]decoded
	frames  map[frameKey]string
	decodes int
}

type decoded struct {
	img image.Image
	err error
}

type frameKey struct {
	path          string
	width, height int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		images: make(map[string]decoded),
		frames: make(map[frameKey]string),
	}
}

// Render returns path drawn into at most width columns and height rows.
// Decode failures are remembered so a missing file is only read once.
func (c *Cache) Render(path string, width, height int) (string, error) {
	if width <= 0 || height <= 0 {
		return "", nil
	}
	key := frameKey{path: path, width: width, height: height}
	if frame, ok := c.frames[key]; ok {
		return frame, nil
	}

	d, ok := c.images[path]
	if !ok {
		d.img, d.err = decodeFile(path)
		c.decodes++
		c.images[path] = d
		if d.err != nil {
			log.Printf("preview: %v", d.err)
		}
	}
	if d.err != nil {
		return "", d.err
	}

	frame := Render(d.img, width, height)
	c.frames[key] = frame
	return frame, nil
}

func decodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

// Render scales img to fit width x height cells, keeping its aspect ratio.
func Render(img image.Image, width, height int) string {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 || width <= 0 || height <= 0 {
		return ""
	}

	cols, rows := Fit(srcW, srcH, width, height)

	var b strings.Builder
	for y := 0; y < rows; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < cols; x++ {
			sx := bounds.Min.X + x*srcW/cols
			top := img.At(sx, bounds.Min.Y+(2*y)*srcH/(2*rows))
			bottom := img.At(sx, bounds.Min.Y+(2*y+1)*srcH/(2*rows))
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(hex(top))).
				Background(lipgloss.Color(hex(bottom))).
				Render(halfBlock))
		}
	}
	return b.String()
}

// Fit returns the cell dimensions for a srcW x srcH image inside a width x
// height cell box. Cells are treated as one pixel wide and two pixels tall.
func Fit(srcW, srcH, width, height int) (cols, rows int) {
	pixH := height * 2
	cols, pixRows := width, width*srcH/srcW
	if pixRows > pixH {
		pixRows = pixH
		cols = pixH * srcW / srcH
	}
	rows = (pixRows + 1) / 2
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

func hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
