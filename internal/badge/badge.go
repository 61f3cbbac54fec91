// Package badge renders the daily SVG badges. Rendering is a pure function:
// the same title, lines, accent, and date always produce byte-identical
// output, which keeps the committed badges diff-stable.
package badge

import (
	"fmt"
	"strings"
)

// Canvas geometry. Width is fixed; height grows with the body line count.
const (
	Width      = 480
	baseHeight = 92
	lineHeight = 20
	textLeft   = 20
	titleY     = 36
	bodyTop    = 64
)

const (
	// DefaultAccent is used for the joke badge and any unmapped category.
	DefaultAccent = "#8b5cf6"

	background = "#0d1117"
	titleColor = "#e6edf3"
	bodyColor  = "#9198a1"
)

// categoryAccents maps a headline category to its badge accent color.
var categoryAccents = map[string]string{
	"technology":    "#2f81f7",
	"business":      "#d29922",
	"science":       "#3fb950",
	"health":        "#ff7b72",
	"sports":        "#f778ba",
	"entertainment": "#a371f7",
	"general":       "#79c0ff",
}

// Theme returns the accent color for a category, or DefaultAccent when the
// category has no mapping.
func Theme(category string) string {
	if c, ok := categoryAccents[strings.ToLower(category)]; ok {
		return c
	}
	return DefaultAccent
}

// escaper rewrites exactly the three characters reserved by the markup.
// Unescaped user text would corrupt the document structure.
var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Render produces the complete SVG document for one badge. Title and body
// lines are escaped; accent and date are caller-controlled constants.
func Render(title string, lines []string, accent, date string) string {
	height := baseHeight + lineHeight*len(lines)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`, Width, height)
	b.WriteString("\n")
	fmt.Fprintf(&b, `  <rect width="%d" height="%d" rx="10" fill="%s"/>`, Width, height, background)
	b.WriteString("\n")
	fmt.Fprintf(&b, `  <rect width="6" height="%d" rx="3" fill="%s"/>`, height, accent)
	b.WriteString("\n")
	fmt.Fprintf(&b, `  <text x="%d" y="%d" font-family="Segoe UI, Ubuntu, sans-serif" font-size="18" font-weight="bold" fill="%s">%s</text>`,
		textLeft, titleY, titleColor, escaper.Replace(title))
	b.WriteString("\n")
	for i, line := range lines {
		fmt.Fprintf(&b, `  <text x="%d" y="%d" font-family="Segoe UI, Ubuntu, sans-serif" font-size="14" fill="%s">%s</text>`,
			textLeft, bodyTop+i*lineHeight, bodyColor, escaper.Replace(line))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, `  <text x="%d" y="%d" font-family="Segoe UI, Ubuntu, sans-serif" font-size="12" fill="%s">%s</text>`,
		Width-100, height-14, accent, escaper.Replace(date))
	b.WriteString("\n</svg>\n")
	return b.String()
}
