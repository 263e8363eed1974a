// Package plotter provides SVG visualization for generated trees.
// It is a host-side consumer of the tree's visitor API: edges are
// realized as line segments in an orthographic X/Y projection, with no
// geometry or mesh generation in the core.
package plotter

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/Sayama3/L-System/tree"
)

// SVGPlotter renders trees to SVG with customizable styling.
type SVGPlotter struct {
	Width       float64
	Height      float64
	Margin      float64
	Title       string
	StrokeColor string
	StrokeWidth float64
	RootColor   string
}

// NewSVGPlotter creates an SVG plotter with the given dimensions.
func NewSVGPlotter(width, height float64) *SVGPlotter {
	return &SVGPlotter{
		Width:       width,
		Height:      height,
		Margin:      20,
		StrokeColor: "#3a7d44",
		StrokeWidth: 1.5,
		RootColor:   "#7a4419",
	}
}

// SetTitle sets the plot title.
func (p *SVGPlotter) SetTitle(t string) *SVGPlotter {
	p.Title = t
	return p
}

// Render generates the SVG string for the tree.
// The tree's X/Y coordinates are auto-scaled to the viewport; Z is
// dropped (orthographic front projection).
func (p *SVGPlotter) Render(t *tree.Tree) string {
	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := math.Inf(1), math.Inf(-1)

	bound := func(x, y float64) {
		if x < xmin {
			xmin = x
		}
		if x > xmax {
			xmax = x
		}
		if y < ymin {
			ymin = y
		}
		if y > ymax {
			ymax = y
		}
	}
	bound(0, 0) // root
	t.Traverse(func(parent, child tree.Node) {
		bound(float64(child.Position.X), float64(child.Position.Y))
	})

	xrange := xmax - xmin
	if xrange == 0 {
		xrange = 1
	}
	yrange := ymax - ymin
	if yrange == 0 {
		yrange = 1
	}

	// Uniform scale preserving aspect ratio, Y flipped so growth
	// points up on screen.
	scale := math.Min((p.Width-2*p.Margin)/xrange, (p.Height-2*p.Margin)/yrange)
	sx := func(x float64) float64 {
		return p.Margin + (x-xmin)*scale + (p.Width-2*p.Margin-xrange*scale)/2
	}
	sy := func(y float64) float64 {
		return p.Height - p.Margin - (y-ymin)*scale - (p.Height-2*p.Margin-yrange*scale)/2
	}

	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`,
		int(p.Width), int(p.Height)))
	sb.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="#f8f9fa" rx="8"/>`,
		int(p.Width), int(p.Height)))

	if p.Title != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%f" y="16" text-anchor="middle" font-family="Arial, sans-serif" font-size="13" font-weight="bold">%s</text>`,
			p.Width/2, escape(p.Title)))
	}

	t.Traverse(func(parent, child tree.Node) {
		sb.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f" stroke-linecap="round"/>`,
			sx(float64(parent.Position.X)), sy(float64(parent.Position.Y)),
			sx(float64(child.Position.X)), sy(float64(child.Position.Y)),
			p.StrokeColor, p.StrokeWidth))
	})

	// Root marker
	sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="3" fill="%s"/>`,
		sx(0), sy(0), p.RootColor))

	sb.WriteString(`</svg>`)
	return sb.String()
}

// SaveSVG renders a tree and writes it to a file.
func SaveSVG(t *tree.Tree, filename string, width, height float64, title string) error {
	p := NewSVGPlotter(width, height)
	if title != "" {
		p.SetTitle(title)
	}
	svg := p.Render(t)
	return os.WriteFile(filename, []byte(svg), 0644)
}

// escape performs minimal escaping for SVG/XML text content.
func escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
