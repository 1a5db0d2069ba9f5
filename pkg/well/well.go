// Package well defines the typed well-data model and its validator.
//
// A Well aggregate owns every depth-indexed collection of the document:
// stratigraphy layers, pressure segments, hole sections, casing sections and
// the optional pilot-hole guide line. Parsing produces the typed model;
// Validate enforces the ordering and continuity invariants across all
// collections and reports every violation at once.
//
// The model deliberately separates the three well kinds (straight, deviated,
// horizontal) at the type level: DeviationParameters is nil exactly when the
// well is straight, so downstream engines never re-check field presence.
package well

// Type identifies the well profile.
type Type string

// Well profile kinds. The deviation angle selects the kind deterministically:
// 0 degrees is always straight, 90 always horizontal, anything strictly
// between is deviated.
const (
	TypeStraight   Type = "straight well"
	TypeDeviated   Type = "deviated well"
	TypeHorizontal Type = "horizontal well"
)

// Valid reports whether t is one of the known well types.
func (t Type) Valid() bool {
	switch t {
	case TypeStraight, TypeDeviated, TypeHorizontal:
		return true
	}
	return false
}

// Well is the validated aggregate for one well document. It exclusively owns
// all interval collections; engines borrow it read-only.
type Well struct {
	Name       string
	Type       Type
	TotalDepth float64 // meters, measured depth at well bottom

	Stratigraphy []StratigraphyLayer
	Pressure     []PressureSegment
	Holes        []HoleSection
	Casings      []CasingSection
	PilotHole    *PilotHoleGuideLine

	// Deviation is nil if and only if Type == TypeStraight.
	Deviation *DeviationParameters

	Legend LegendConfig
}

// SideTracked reports whether the well performs a side-track out of a pilot
// hole (as opposed to a plain straight-to-deviated conversion).
func (w *Well) SideTracked() bool {
	return w.PilotHole != nil && w.PilotHole.SideTracking
}

// StratigraphyLayer is one geological layer, bounded by measured depths.
type StratigraphyLayer struct {
	Name   string
	Top    float64 // meters
	Bottom float64 // meters
}

// PressureSegment carries pore pressure and the admissible mud-density window
// over a depth interval. Segments partition the well coarser than (or equal
// to) the stratigraphy.
type PressureSegment struct {
	Top          float64 // meters
	Bottom       float64 // meters
	PorePressure float64 // g/cm^3
	WindowMin    float64 // g/cm^3, lower bound of the mud window
	WindowMax    float64 // g/cm^3, upper bound of the mud window
}

// HoleSection is one drilled interval with its bit diameter.
type HoleSection struct {
	Top      float64 // meters
	Bottom   float64 // meters
	Diameter float64 // millimeters
	Note     string  // display note (e.g. bit size in inches)
}

// CasingSection is one casing string with its outer diameter. A casing whose
// top is below surface hangs from a liner hanger; the layout engine
// synthesizes the hanger marker.
type CasingSection struct {
	Top           float64 // meters
	Bottom        float64 // meters
	OuterDiameter float64 // millimeters
	Note          string
}

// Hung reports whether the casing top sits below surface, requiring a hanger.
func (c CasingSection) Hung() bool { return c.Top > 0 }

// PilotHoleGuideLine describes the abandoned pilot hole drawn as an auxiliary
// dashed branch next to the main trajectory. Present only for deviated or
// horizontal wells performing a side-track or a straight-to-deviated
// conversion.
type PilotHoleGuideLine struct {
	Top          float64 // meters
	Bottom       float64 // meters
	Diameter     float64 // millimeters
	Display      bool    // draw the guide line at all
	Highlight    bool    // draw bold instead of faint
	SideTracking bool    // true: side-track; false: straight-to-deviated conversion
}

// DeviationParameters holds the sparse control data the trajectory engine
// derives the centerline from.
type DeviationParameters struct {
	Angle        float64 // degrees, 0 < Angle <= 90
	Kickoff      float64 // meters, nominal kickoff measured depth
	RealKickoff  float64 // meters, actual kickoff after a side-track (display value)
	TargetA      float64 // meters, target A measured depth
	TargetAVert  float64 // meters, target A vertical depth
	TargetB      float64 // meters, target B measured depth
	DistanceAB   float64 // meters, along-hole distance from A to B
}

// LegendConfig is a set of four independent display toggles. Each toggle
// controls exactly one semantic kind; toggles never interact and are not
// validated against content.
type LegendConfig struct {
	Casing       bool
	Hole         bool
	Kickoff      bool
	TargetPoints bool
}

// DefaultLegend returns the legend configuration with every toggle enabled,
// used when the document omits legendConfig entirely.
func DefaultLegend() LegendConfig {
	return LegendConfig{Casing: true, Hole: true, Kickoff: true, TargetPoints: true}
}
