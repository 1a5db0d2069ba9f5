package layout

import (
	"fmt"
	"math"

	"github.com/petrolog/wellsketch/pkg/errors"
	"github.com/petrolog/wellsketch/pkg/trajectory"
	"github.com/petrolog/wellsketch/pkg/well"
)

// Build projects the well onto its trajectory and returns the full primitive
// set. It fails with a LAYOUT_OUT_OF_RANGE error when an interval lies
// outside the trajectory's covered measured-depth span; the validator should
// have rejected such input already, so hitting this indicates a defect
// upstream rather than a recoverable condition.
func Build(w *well.Well, path *trajectory.Path, opts Options) (*Layout, error) {
	if opts.DiameterScale == 0 {
		opts = DefaultOptions()
	}

	b := &builder{well: w, path: path, opts: opts}
	b.stratigraphyColumn()
	b.pressureColumn()
	if err := b.structureColumn(); err != nil {
		return nil, err
	}
	b.legend()

	maxHalf := 0.0
	for _, h := range w.Holes {
		if hw := h.Diameter * opts.DiameterScale / 2; hw > maxHalf {
			maxHalf = hw
		}
	}
	return &Layout{
		WellName:   w.Name,
		TotalDepth: w.TotalDepth,
		MaxOffset:  path.MaxHorizontal() + maxHalf,
		Primitives: b.prims,
		Legend:     b.entries,
	}, nil
}

type builder struct {
	well *well.Well
	path *trajectory.Path
	opts Options

	prims   []Primitive
	entries []LegendEntry
}

func (b *builder) add(p Primitive) { b.prims = append(b.prims, p) }

// ===== stratigraphy column =====

func (b *builder) stratigraphyColumn() {
	colors := layerColors(len(b.well.Stratigraphy))
	for i, l := range b.well.Stratigraphy {
		b.add(Primitive{Kind: KindStratigraphy, Column: ColumnStratigraphy, Polygon: &Polygon{
			Points: rect(0, l.Top, 1, l.Bottom),
			Fill:   colors[i],
			Stroke: "#000000",
		}})
		mid := (l.Top + l.Bottom) / 2
		b.add(Primitive{Kind: KindLabel, Column: ColumnStratigraphy, Label: &Label{
			At: XY{X: 0.5, Y: mid}, Text: l.Name, Align: AlignCenter, Color: "#000000", Bold: true,
		}})
		b.add(Primitive{Kind: KindLabel, Column: ColumnStratigraphy, Label: &Label{
			At: XY{X: 0.97, Y: l.Bottom}, Text: fmt.Sprintf("%gm", l.Bottom), Align: AlignRight, Color: "#000000",
		}})
	}
}

// ===== pressure column =====

func (b *builder) pressureColumn() {
	toX := b.densityScale()
	for _, s := range b.well.Pressure {
		poreX := toX(s.PorePressure)
		minX, maxX := toX(s.WindowMin), toX(s.WindowMax)

		// Admissible mud window as a filled swath, pore pressure as a bold
		// red trace inside it.
		b.add(Primitive{Kind: KindPressure, Column: ColumnPressure, Polygon: &Polygon{
			Points: rect(minX, s.Top, maxX, s.Bottom),
			Fill:   "#ADD8E6",
		}})
		b.add(Primitive{Kind: KindPressure, Column: ColumnPressure, Polyline: &Polyline{
			Points: []XY{{X: poreX, Y: s.Top}, {X: poreX, Y: s.Bottom}},
			Color:  "#FF0000",
			Width:  2,
		}})

		mid := (s.Top + s.Bottom) / 2
		b.add(Primitive{Kind: KindLabel, Column: ColumnPressure, Label: &Label{
			At: XY{X: poreX - 0.03, Y: mid}, Text: fmt.Sprintf("%.2f", s.PorePressure),
			Align: AlignRight, Color: "#FF0000", Bold: true,
		}})
		b.add(Primitive{Kind: KindLabel, Column: ColumnPressure, Label: &Label{
			At: XY{X: maxX + 0.03, Y: mid}, Text: fmt.Sprintf("%.2f-%.2f", s.WindowMin, s.WindowMax),
			Align: AlignLeft, Color: "#000000",
		}})
	}
}

// densityScale maps g/cm3 values onto the normalized [0.15, 0.85] band of
// the pressure column.
func (b *builder) densityScale() func(float64) float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range b.well.Pressure {
		for _, v := range [3]float64{s.PorePressure, s.WindowMin, s.WindowMax} {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	span := hi - lo
	return func(v float64) float64 {
		if !(span > 0) {
			return 0.5
		}
		return 0.15 + 0.7*(v-lo)/span
	}
}

// ===== structure column =====

func (b *builder) structureColumn() error {
	// Dashed red centerline over the full span.
	line := make([]XY, len(b.path.Points))
	for i, p := range b.path.Points {
		line[i] = XY{X: p.Horizontal, Y: p.Vertical}
	}
	b.add(Primitive{Kind: KindCenterline, Column: ColumnStructure, Polyline: &Polyline{
		Points: line, Color: "#FF0000", Width: 2, Dashed: true,
	}})

	for i, h := range b.well.Holes {
		band, err := b.offsetBand(h.Top, h.Bottom, h.Diameter, "#808080", 1, false)
		if err != nil {
			return fmt.Errorf("hole section %d: %w", i, err)
		}
		b.add(Primitive{Kind: KindHole, Column: ColumnStructure, Band: band})
	}

	if err := b.pilotBand(); err != nil {
		return err
	}

	colors := casingColors(len(b.well.Casings))
	for i, c := range b.well.Casings {
		band, err := b.offsetBand(c.Top, c.Bottom, c.OuterDiameter, colors[i], 1.5, false)
		if err != nil {
			return fmt.Errorf("casing section %d: %w", i, err)
		}
		b.add(Primitive{Kind: KindCasing, Column: ColumnStructure, Band: band})
		b.casingShoes(c, colors[i])
		if c.Hung() {
			b.hangerMarkers(c, colors[i])
		}
	}

	b.deviationMarkers()
	return nil
}

// offsetBand samples the centerline over [top, bottom] and offsets it
// perpendicular to the local tangent by half the scaled diameter.
func (b *builder) offsetBand(top, bottom, diameter float64, color string, width float64, dashed bool) (*Band, error) {
	half := diameter * b.opts.DiameterScale / 2
	band := &Band{Color: color, Width: width, Dashed: dashed}

	for _, md := range b.mdSteps(top, bottom) {
		s, ok := b.path.Sample(md)
		if !ok {
			return nil, errors.New(errors.ErrCodeLayout,
				"interval [%g, %g] exceeds trajectory coverage at %gm", top, bottom, md)
		}
		// Perpendicular to the downhole tangent, pointing toward +X.
		nx, ny := s.DirV, -s.DirH
		band.Left = append(band.Left, XY{X: s.Horizontal - nx*half, Y: s.Vertical - ny*half})
		band.Right = append(band.Right, XY{X: s.Horizontal + nx*half, Y: s.Vertical + ny*half})
	}
	return band, nil
}

// mdSteps returns the sampling depths for a band, step-spaced with both
// endpoints always included.
func (b *builder) mdSteps(top, bottom float64) []float64 {
	steps := []float64{top}
	for md := top + b.opts.StepMD; md < bottom; md += b.opts.StepMD {
		steps = append(steps, md)
	}
	return append(steps, bottom)
}

func (b *builder) pilotBand() error {
	p := b.well.PilotHole
	if p == nil || !p.Display {
		return nil
	}
	color, width := "#808080", 1.0
	if p.Highlight {
		color, width = "#000000", 1.2
	}

	// The pilot hole is the abandoned straight continuation: a dashed
	// vertical pair at the wellhead axis, independent of the centerline.
	half := p.Diameter * b.opts.DiameterScale / 2
	if p.Bottom > b.well.TotalDepth {
		return errors.New(errors.ErrCodeLayout,
			"pilot hole bottom %gm exceeds trajectory coverage", p.Bottom)
	}
	b.add(Primitive{Kind: KindPilot, Column: ColumnStructure, Band: &Band{
		Left:   []XY{{X: -half, Y: p.Top}, {X: -half, Y: p.Bottom}},
		Right:  []XY{{X: half, Y: p.Top}, {X: half, Y: p.Bottom}},
		Color:  color,
		Width:  width,
		Dashed: true,
	}})
	return nil
}

// casingShoes emits the two small triangles at the casing bottom, pointing
// outward from the band edges along the local normal.
func (b *builder) casingShoes(c well.CasingSection, color string) {
	s, ok := b.path.Sample(c.Bottom)
	if !ok {
		return
	}
	half := c.OuterDiameter * b.opts.DiameterScale / 2
	size := b.opts.MarkerSize
	nx, ny := s.DirV, -s.DirH

	for _, side := range [2]float64{-1, 1} {
		ex, ey := s.Horizontal+side*nx*half, s.Vertical+side*ny*half
		b.add(Primitive{Kind: KindCasing, Column: ColumnStructure, Polygon: &Polygon{
			Points: []XY{
				{X: ex, Y: ey},
				{X: ex + side*nx*size, Y: ey + side*ny*size},
				{X: ex - s.DirH*size, Y: ey - s.DirV*size},
			},
			Fill:   color,
			Stroke: color,
		}})
	}
}

// hangerMarkers emits a square at each band edge where a liner hangs off
// the previous string.
func (b *builder) hangerMarkers(c well.CasingSection, color string) {
	s, ok := b.path.Sample(c.Top)
	if !ok {
		return
	}
	half := c.OuterDiameter * b.opts.DiameterScale / 2
	nx, ny := s.DirV, -s.DirH
	for _, side := range [2]float64{-1, 1} {
		b.add(Primitive{Kind: KindHanger, Column: ColumnStructure, Marker: &Marker{
			At:    XY{X: s.Horizontal + side*nx*half, Y: s.Vertical + side*ny*half},
			Style: MarkerSquare,
			Color: color,
			Size:  b.opts.MarkerSize,
		}})
	}
}

// deviationMarkers emits the kickoff and target-point annotations.
func (b *builder) deviationMarkers() {
	d := b.well.Deviation
	if d == nil {
		return
	}
	size := b.opts.MarkerSize

	// Side-tracked wells mark the real kickoff with an orange dot crossed
	// in black; plain conversions get a blue dot at the nominal kickoff.
	if b.well.SideTracked() {
		at := XY{X: 0, Y: d.RealKickoff}
		b.add(Primitive{Kind: KindKickoff, Column: ColumnStructure, Marker: &Marker{
			At: at, Style: MarkerDot, Color: "#FFA500", Size: size * 0.7,
		}})
		b.add(Primitive{Kind: KindKickoff, Column: ColumnStructure, Marker: &Marker{
			At: at, Style: MarkerCross, Color: "#000000", Size: size,
		}})
	} else {
		b.add(Primitive{Kind: KindKickoff, Column: ColumnStructure, Marker: &Marker{
			At: XY{X: 0, Y: d.Kickoff}, Style: MarkerDot, Color: "#0000FF", Size: size * 0.7,
		}})
	}
	b.add(Primitive{Kind: KindLabel, Column: ColumnStructure, Label: &Label{
		At: XY{X: -size, Y: d.RealKickoff}, Text: fmt.Sprintf("KOP %gm", d.RealKickoff),
		Align: AlignRight, Color: "#000000", Bold: true,
	}})

	if a, ok := b.path.At(d.TargetA); ok {
		b.targetMarker(a, "A", d.TargetA)
	}
	if d.TargetB > d.TargetA {
		if bp, ok := b.path.At(d.TargetB); ok {
			b.targetMarker(bp, "B", d.TargetB)
		}
	}
}

func (b *builder) targetMarker(p trajectory.Point, name string, md float64) {
	size := b.opts.MarkerSize
	b.add(Primitive{Kind: KindTarget, Column: ColumnStructure, Marker: &Marker{
		At: XY{X: p.Horizontal, Y: p.Vertical}, Style: MarkerDot, Color: "#FF0000", Size: size,
	}})
	b.add(Primitive{Kind: KindLabel, Column: ColumnStructure, Label: &Label{
		At:    XY{X: p.Horizontal + size, Y: p.Vertical},
		Text:  fmt.Sprintf("%s %gm", name, md),
		Align: AlignLeft, Color: "#000000", Bold: true,
	}})
}

// ===== legend =====

// legend assembles the legend entries. Each of the four toggles gates
// exactly one semantic kind; a toggle with no matching content simply
// contributes nothing.
func (b *builder) legend() {
	cfg := b.well.Legend
	if cfg.Hole {
		for _, h := range b.well.Holes {
			b.entries = append(b.entries, LegendEntry{
				Kind: KindHole, Text: holeText(h), Color: "#808080",
			})
		}
	}
	if cfg.Casing {
		colors := casingColors(len(b.well.Casings))
		for i, c := range b.well.Casings {
			b.entries = append(b.entries, LegendEntry{
				Kind: KindCasing, Text: casingText(c), Color: colors[i],
			})
		}
	}
	if cfg.Kickoff && b.well.Deviation != nil {
		color := "#0000FF"
		if b.well.SideTracked() {
			color = "#FFA500"
		}
		b.entries = append(b.entries, LegendEntry{Kind: KindKickoff, Text: "Kickoff point", Color: color})
	}
	if cfg.TargetPoints && b.well.Deviation != nil {
		b.entries = append(b.entries, LegendEntry{Kind: KindTarget, Text: "Target points", Color: "#FF0000"})
	}
}

func holeText(h well.HoleSection) string {
	if h.Note != "" {
		return fmt.Sprintf("Hole %s (%gmm)", h.Note, h.Diameter)
	}
	return fmt.Sprintf("Hole %gmm", h.Diameter)
}

func casingText(c well.CasingSection) string {
	if c.Note != "" {
		return fmt.Sprintf("Casing %s (%gmm)", c.Note, c.OuterDiameter)
	}
	return fmt.Sprintf("Casing %gmm", c.OuterDiameter)
}

// rect builds a closed axis-aligned rectangle.
func rect(x0, y0, x1, y1 float64) []XY {
	return []XY{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}
