// Package mapimage renders raid spawn-point coordinates onto a flat map
// overlay. It is an optional collaborator — nothing in the core pipeline
// calls it, and a headless snapshot never needs it — kept for callers that
// want a visual sense of where a snapshot's raids sit.
//
// Rendering goes through SVG first and is rasterized with oksvg/rasterx,
// the same two-stage approach the teacher's map renderer uses, so curves
// and labels anti-alias instead of coming out jagged.
package mapimage

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Point is one plotted location: a raid's world coordinate, its star
// tier (for coloring), and an optional label drawn beside the marker.
type Point struct {
	X, Y  float64
	Stars uint8
	Label string
}

// Options controls the rendered overlay's size and content.
type Options struct {
	Width, Height int
	Padding       int
	ShowLabels    bool
}

// DefaultOptions returns the overlay's default size.
func DefaultOptions() *Options {
	return &Options{Width: 800, Height: 800, Padding: 24, ShowLabels: true}
}

// starColors indexes by (stars-1); a stars value outside 1..7 falls back
// to starColors[0].
var starColors = [7]color.RGBA{
	{160, 160, 160, 255}, // 1 star
	{120, 200, 120, 255}, // 2
	{80, 160, 230, 255},  // 3
	{200, 140, 230, 255}, // 4
	{230, 190, 60, 255},  // 5
	{230, 80, 80, 255},   // 6 / black
	{20, 20, 20, 255},    // 7, reserved
}

func colorForStars(stars uint8) color.RGBA {
	idx := int(stars) - 1
	if idx < 0 || idx >= len(starColors) {
		return starColors[0]
	}
	return starColors[idx]
}

// BuildSVG renders points into an SVG document string.
func BuildSVG(points []Point, opts *Options) string {
	if opts == nil {
		opts = DefaultOptions()
	}
	b := newSVGBuilder(opts.Width, opts.Height)

	if len(points) == 0 {
		return b.String()
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	padding := float64(opts.Padding)
	availW := float64(opts.Width) - 2*padding
	availH := float64(opts.Height) - 2*padding
	scale := math.Min(availW/rangeX, availH/rangeY)
	offX := padding + (availW-rangeX*scale)/2
	offY := padding + (availH-rangeY*scale)/2

	transform := func(x, y float64) (float64, float64) {
		return offX + (x-minX)*scale, offY + (maxY-y)*scale
	}

	// Sort by stars so higher tiers draw on top of lower ones when markers
	// overlap.
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Stars < sorted[j].Stars })

	for _, p := range sorted {
		px, py := transform(p.X, p.Y)
		col := colorForStars(p.Stars)
		b.circle(px, py, 5, col)
		if opts.ShowLabels && p.Label != "" {
			b.text(px+7, py+3, p.Label, col)
		}
	}

	return b.String()
}

// RenderPNG rasterizes the SVG overlay to an RGBA image.
func RenderPNG(points []Point, opts *Options) (*image.RGBA, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	svg := BuildSVG(points, opts)

	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("mapimage: parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(opts.Width), float64(opts.Height))

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{255, 255, 255, 255}), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(opts.Width, opts.Height, img, img.Bounds())
	raster := rasterx.NewDasher(opts.Width, opts.Height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

// WritePNG renders and encodes the overlay as a PNG.
func WritePNG(w io.Writer, points []Point, opts *Options) error {
	img, err := RenderPNG(points, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// RenderPNGBytes is WritePNG into a byte slice.
func RenderPNGBytes(points []Point, opts *Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, points, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// svgBuilder is a minimal fluent SVG writer, scaled down to what the
// overlay needs: circles and small text labels.
type svgBuilder struct {
	width, height int
	elements      []string
}

func newSVGBuilder(width, height int) *svgBuilder {
	return &svgBuilder{width: width, height: height, elements: make([]string, 0, 64)}
}

func (b *svgBuilder) circle(cx, cy, r float64, col color.RGBA) *svgBuilder {
	b.elements = append(b.elements, fmt.Sprintf(
		`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="rgb(%d,%d,%d)" stroke="black" stroke-width="0.5"/>`,
		cx, cy, r, col.R, col.G, col.B))
	return b
}

func (b *svgBuilder) text(x, y float64, s string, col color.RGBA) *svgBuilder {
	b.elements = append(b.elements, fmt.Sprintf(
		`<text x="%.1f" y="%.1f" font-size="10" fill="rgb(%d,%d,%d)">%s</text>`,
		x, y, col.R, col.G, col.B, escapeXML(s)))
	return b
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

func (b *svgBuilder) String() string {
	var s strings.Builder
	fmt.Fprintf(&s, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		b.width, b.height, b.width, b.height)
	fmt.Fprintf(&s, `<rect x="0" y="0" width="%d" height="%d" fill="white"/>`, b.width, b.height)
	for _, e := range b.elements {
		s.WriteString(e)
	}
	s.WriteString(`</svg>`)
	return s.String()
}
