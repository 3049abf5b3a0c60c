package worker

import (
	"fmt"
	"html"
	"strings"

	"github.com/hexbolt/taskboard-backend/internal/domain"
)

const (
	coverWidth  = 320
	coverHeight = 180
)

// RenderCoverSVG renders a cover spec to a small standalone SVG. The
// output is deterministic: the same spec always yields the same bytes,
// so redelivered render events are idempotent.
func RenderCoverSVG(spec *domain.CoverSpec) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		coverWidth, coverHeight, coverWidth, coverHeight)

	// Vertical bands, one per palette color.
	palette := spec.Palette
	if len(palette) == 0 {
		palette = []string{"#30363d"}
	}
	bandWidth := coverWidth / len(palette)
	for i, color := range palette {
		fmt.Fprintf(&b, `<rect x="%d" y="0" width="%d" height="%d" fill="%s"/>`,
			i*bandWidth, bandWidth, coverHeight, html.EscapeString(color))
	}

	if spec.Emoji != "" {
		fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="48" text-anchor="middle">%s</text>`,
			coverWidth/2, coverHeight/2, html.EscapeString(spec.Emoji))
	}
	fmt.Fprintf(&b, `<text x="%d" y="%d" font-size="16" text-anchor="middle" fill="#ffffff">%s</text>`,
		coverWidth/2, coverHeight-16, html.EscapeString(spec.Caption))

	b.WriteString(`</svg>`)
	return b.String()
}
