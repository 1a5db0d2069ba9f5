// Package render rasterizes a layout into the well-schematic PNG.
//
// The page is three columns: stratigraphy, pressure profile, and the well
// structure itself. The renderer only walks the primitive list; all geometry
// decisions live in pkg/layout.
package render

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"

	"github.com/petrolog/wellsketch/pkg/errors"
	"github.com/petrolog/wellsketch/pkg/layout"
)

const (
	defaultWidth  = 1400
	defaultHeight = 1000

	pageMargin   = 50.0
	headerHeight = 70.0
	columnGap    = 24.0
	stratWidth   = 260.0
	pressWidth   = 260.0

	legendRowHeight = 22.0
	legendSwatch    = 14.0
	legendWidth     = 230.0
)

type Option func(*renderer)

type renderer struct {
	width  int
	height int
}

// WithSize overrides the page size in pixels.
func WithSize(w, h int) Option {
	return func(r *renderer) { r.width, r.height = w, h }
}

// PNG draws the layout and returns the encoded image.
func PNG(l *layout.Layout, opts ...Option) ([]byte, error) {
	r := renderer{width: defaultWidth, height: defaultHeight}
	for _, opt := range opts {
		opt(&r)
	}

	dc := gg.NewContext(r.width, r.height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	p := newPage(float64(r.width), float64(r.height), l)
	p.drawFrame(dc, l)
	for _, prim := range l.Primitives {
		p.drawPrimitive(dc, prim)
	}
	p.drawLegend(dc, l.Legend)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeExport, err, "encode schematic png")
	}
	return buf.Bytes(), nil
}

// column maps one coordinate space onto a horizontal page span.
type column struct {
	x0, width        float64 // pixels
	worldX0, worldW  float64 // source coordinate range
}

func (c column) x(v float64) float64 {
	return c.x0 + (v-c.worldX0)/c.worldW*c.width
}

// scale converts a world length into pixels.
func (c column) scale(v float64) float64 { return v / c.worldW * c.width }

// page holds the resolved column geometry for one render.
type page struct {
	cols   [3]column
	y0     float64
	yScale float64
}

func newPage(w, h float64, l *layout.Layout) *page {
	structX := pageMargin + stratWidth + columnGap + pressWidth + columnGap
	structW := w - structX - pageMargin

	offset := l.MaxOffset
	if offset <= 0 {
		offset = 1
	}
	depth := l.TotalDepth
	if depth <= 0 {
		depth = 1
	}

	p := &page{
		y0:     pageMargin + headerHeight,
		yScale: (h - pageMargin*2 - headerHeight) / depth,
	}
	p.cols[layout.ColumnStratigraphy] = column{x0: pageMargin, width: stratWidth, worldX0: 0, worldW: 1}
	p.cols[layout.ColumnPressure] = column{x0: pageMargin + stratWidth + columnGap, width: pressWidth, worldX0: 0, worldW: 1}
	p.cols[layout.ColumnStructure] = column{x0: structX, width: structW, worldX0: -offset, worldW: 2 * offset}
	return p
}

func (p *page) y(depth float64) float64 { return p.y0 + depth*p.yScale }

// ===== page chrome =====

func (p *page) drawFrame(dc *gg.Context, l *layout.Layout) {
	dc.SetRGB(0, 0, 0)

	title := l.WellName
	if title == "" {
		title = "well schematic"
	}
	w := float64(dc.Width())
	dc.DrawStringAnchored(fmt.Sprintf("%s (TD %gm)", title, l.TotalDepth), w/2, pageMargin/2+8, 0.5, 0.5)

	headers := [3]string{"Stratigraphy", "Pressure (g/cm3)", "Well structure"}
	for i, c := range p.cols {
		dc.DrawStringAnchored(headers[i], c.x0+c.width/2, p.y0-headerHeight/2, 0.5, 0.5)
		dc.SetLineWidth(1)
		dc.DrawRectangle(c.x0, p.y0, c.width, p.y(l.TotalDepth)-p.y0)
		dc.Stroke()
	}
}

// ===== primitives =====

func (p *page) drawPrimitive(dc *gg.Context, prim layout.Primitive) {
	c := p.cols[prim.Column]
	switch {
	case prim.Polygon != nil:
		p.drawPolygon(dc, c, prim.Polygon)
	case prim.Polyline != nil:
		p.drawPolyline(dc, c, prim.Polyline)
	case prim.Band != nil:
		p.drawBand(dc, c, prim.Band)
	case prim.Marker != nil:
		p.drawMarker(dc, c, prim.Marker)
	case prim.Label != nil:
		p.drawLabel(dc, c, prim.Label)
	}
}

func (p *page) drawPolygon(dc *gg.Context, c column, poly *layout.Polygon) {
	p.tracePath(dc, c, poly.Points)
	dc.ClosePath()
	if poly.Fill != "" {
		dc.SetHexColor(poly.Fill)
		dc.FillPreserve()
	}
	if poly.Stroke != "" {
		dc.SetHexColor(poly.Stroke)
		dc.SetLineWidth(1)
		dc.Stroke()
	} else {
		dc.ClearPath()
	}
}

func (p *page) drawPolyline(dc *gg.Context, c column, line *layout.Polyline) {
	p.tracePath(dc, c, line.Points)
	dc.SetHexColor(line.Color)
	dc.SetLineWidth(line.Width)
	if line.Dashed {
		dc.SetDash(8, 5)
	}
	dc.Stroke()
	dc.SetDash()
}

func (p *page) drawBand(dc *gg.Context, c column, b *layout.Band) {
	dc.SetHexColor(b.Color)
	dc.SetLineWidth(b.Width)
	if b.Dashed {
		dc.SetDash(6, 4)
	}
	p.tracePath(dc, c, b.Left)
	dc.Stroke()
	p.tracePath(dc, c, b.Right)
	dc.Stroke()
	dc.SetDash()
}

func (p *page) drawMarker(dc *gg.Context, c column, m *layout.Marker) {
	x, y := c.x(m.At.X), p.y(m.At.Y)
	size := c.scale(m.Size)
	dc.SetHexColor(m.Color)

	switch m.Style {
	case layout.MarkerDot:
		dc.DrawCircle(x, y, size/2)
		dc.Fill()
	case layout.MarkerCross:
		dc.SetLineWidth(1.5)
		dc.DrawLine(x-size/2, y-size/2, x+size/2, y+size/2)
		dc.DrawLine(x-size/2, y+size/2, x+size/2, y-size/2)
		dc.Stroke()
	case layout.MarkerSquare:
		dc.DrawRectangle(x-size/2, y-size/2, size, size)
		dc.Fill()
	}
}

func (p *page) drawLabel(dc *gg.Context, c column, l *layout.Label) {
	var ax float64
	switch l.Align {
	case layout.AlignCenter:
		ax = 0.5
	case layout.AlignRight:
		ax = 1
	}
	dc.SetHexColor(l.Color)
	dc.DrawStringAnchored(l.Text, c.x(l.At.X), p.y(l.At.Y), ax, 0.5)
}

func (p *page) tracePath(dc *gg.Context, c column, pts []layout.XY) {
	for i, pt := range pts {
		if i == 0 {
			dc.MoveTo(c.x(pt.X), p.y(pt.Y))
		} else {
			dc.LineTo(c.x(pt.X), p.y(pt.Y))
		}
	}
}

// ===== legend =====

func (p *page) drawLegend(dc *gg.Context, entries []layout.LegendEntry) {
	if len(entries) == 0 {
		return
	}
	c := p.cols[layout.ColumnStructure]
	x := c.x0 + c.width - legendWidth - 10
	y := p.y0 + 10
	h := float64(len(entries))*legendRowHeight + 12

	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(x, y, legendWidth, h)
	dc.FillPreserve()
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.Stroke()

	for i, e := range entries {
		ry := y + 6 + float64(i)*legendRowHeight
		dc.SetHexColor(e.Color)
		dc.DrawRectangle(x+8, ry+(legendRowHeight-legendSwatch)/2, legendSwatch, legendSwatch)
		dc.Fill()
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(e.Text, x+8+legendSwatch+8, ry+legendRowHeight/2, 0, 0.5)
	}
}
