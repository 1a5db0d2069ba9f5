// Package layout projects the validated well collections onto the computed
// trajectory and produces drawable primitives.
//
// The engine is pure geometry: it emits bands, polygons, markers and labels
// in well coordinates (meters, depth growing downward) grouped into three
// columns, and leaves rasterization entirely to the renderer. Identical
// input always yields bit-identical primitive coordinates.
package layout

// Kind tags a primitive with its semantic role.
type Kind string

const (
	KindStratigraphy Kind = "stratigraphy"
	KindPressure     Kind = "pressure"
	KindHole         Kind = "hole"
	KindCasing       Kind = "casing"
	KindPilot        Kind = "pilot"
	KindCenterline   Kind = "centerline"
	KindKickoff      Kind = "kickoff"
	KindTarget       Kind = "target"
	KindHanger       Kind = "hanger"
	KindLabel        Kind = "label"
)

// Column selects which page column a primitive belongs to. Stratigraphy and
// pressure swaths use a normalized X in [0, 1]; the structure column uses
// horizontal displacement in meters.
type Column int

const (
	ColumnStratigraphy Column = iota
	ColumnPressure
	ColumnStructure
)

// XY is a point in column coordinates. Y is depth in meters, positive down.
type XY struct {
	X float64
	Y float64
}

// Band is a pair of polylines flanking the centerline, used for hole walls,
// casing strings and the pilot-hole guide line.
type Band struct {
	Left   []XY
	Right  []XY
	Color  string
	Width  float64 // stroke width hint
	Dashed bool
}

// Polygon is a closed filled shape (stratigraphy layer, mud window swath,
// casing shoe triangle).
type Polygon struct {
	Points []XY
	Fill   string
	Stroke string
}

// Polyline is an open stroked path (pore pressure trace, centerline).
type Polyline struct {
	Points []XY
	Color  string
	Width  float64
	Dashed bool
}

// MarkerStyle selects the glyph drawn at a marker position.
type MarkerStyle string

const (
	MarkerDot    MarkerStyle = "dot"
	MarkerCross  MarkerStyle = "cross"
	MarkerSquare MarkerStyle = "square"
)

// Marker is an annotated point glyph.
type Marker struct {
	At    XY
	Style MarkerStyle
	Color string
	Size  float64 // meters in column coordinates
}

// Align selects horizontal text anchoring.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Label is a text annotation anchored at a point.
type Label struct {
	At    XY
	Text  string
	Color string
	Align Align
	Bold  bool
}

// Primitive is one drawable shape tagged with its semantic kind and target
// column. Exactly one of the shape fields is non-nil.
type Primitive struct {
	Kind   Kind
	Column Column

	Band     *Band
	Polygon  *Polygon
	Polyline *Polyline
	Marker   *Marker
	Label    *Label
}

// LegendEntry is one swatch in the rendered legend box.
type LegendEntry struct {
	Kind  Kind
	Text  string
	Color string
}

// Layout is the complete primitive set for one well, ready for rendering.
type Layout struct {
	WellName   string
	TotalDepth float64
	MaxOffset  float64 // widest horizontal extent of the structure column

	Primitives []Primitive
	Legend     []LegendEntry
}

// Options tune the cosmetic projection of physical sizes onto the schematic.
// Diameters are hugely exaggerated relative to depth or the wellbore would
// be a hairline at basin scale.
type Options struct {
	// DiameterScale converts millimeters of diameter into meters of band
	// width in the structure column.
	DiameterScale float64
	// StepMD is the centerline sampling interval for offset bands.
	StepMD float64
	// MarkerSize is the glyph size for hangers and shoes, in meters.
	MarkerSize float64
}

// DefaultOptions returns the projection settings used by the CLI and the
// tool service.
func DefaultOptions() Options {
	return Options{
		DiameterScale: 0.15,
		StepMD:        25,
		MarkerSize:    18,
	}
}
