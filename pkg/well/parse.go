package well

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/petrolog/wellsketch/pkg/errors"
)

// Document mirrors the raw JSON shape of one well-data payload. Optional
// numerics are pointers so absence is distinguishable from zero.
type Document struct {
	WellName   string   `json:"wellName"`
	WellType   string   `json:"wellType"`
	TotalDepth *float64 `json:"totalDepth_m"`

	DeviationAngle *float64 `json:"deviationAngle_deg"`
	Kickoff        *float64 `json:"kickoffPoint_m"`
	RealKickoff    *float64 `json:"REAL_kickoffPoint_m"`
	TargetA        *float64 `json:"targetPointA_m"`
	TargetAVert    *float64 `json:"targetPointA_verticalDepth_m"`
	TargetB        *float64 `json:"targetPointB_m"`
	DistanceAB     *float64 `json:"DistanceAB_m"`

	Stratigraphy []layerDoc   `json:"stratigraphy"`
	Pressure     []segmentDoc `json:"drillingFluidAndPressure"`

	WellboreStructure struct {
		HoleSections   []holeDoc  `json:"holeSections"`
		CasingSections []caseDoc  `json:"casingSections"`
		PilotHole      *pilotDoc  `json:"pilotHoleGuideLine"`
	} `json:"wellboreStructure"`

	Legend *legendDoc `json:"legendConfig"`
}

type layerDoc struct {
	Name   string  `json:"name"`
	Top    float64 `json:"topDepth_m"`
	Bottom float64 `json:"bottomDepth_m"`
}

type segmentDoc struct {
	Top          float64 `json:"topDepth_m"`
	Bottom       float64 `json:"bottomDepth_m"`
	PorePressure float64 `json:"porePressure_gcm3"`
	Window       struct {
		Min float64 `json:"min_gcm3"`
		Max float64 `json:"max_gcm3"`
	} `json:"pressureWindow"`
}

type holeDoc struct {
	Top      float64 `json:"topDepth_m"`
	Bottom   float64 `json:"bottomDepth_m"`
	Diameter float64 `json:"diameter_mm"`
	Note     string  `json:"note"`
}

type caseDoc struct {
	Top           float64 `json:"topDepth_m"`
	Bottom        float64 `json:"bottomDepth_m"`
	OuterDiameter float64 `json:"outerDiameter_mm"`
	Note          string  `json:"note"`
}

type pilotDoc struct {
	Top          *float64 `json:"topDepth_m"`
	Bottom       *float64 `json:"bottomDepth_m"`
	Diameter     float64  `json:"diameter_mm"`
	Display      bool     `json:"display"`
	Highlight    bool     `json:"highlight"`
	SideTracking bool     `json:"side_tracking"`
}

type legendDoc struct {
	Casing       *bool `json:"casingLegend"`
	Hole         *bool `json:"holeLegend"`
	Kickoff      *bool `json:"kickoffLegend"`
	TargetPoints *bool `json:"targetPointsLegend"`
}

// Parse decodes a raw JSON well document into a validated Well aggregate.
// Decoding failures surface as INVALID_INPUT; structural violations surface
// as a ValidationError listing every problem. No partial Well is returned.
func Parse(data []byte) (*Well, error) {
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode well document")
	}
	return FromDocument(&doc)
}

// FromDocument converts an already-decoded Document into a validated Well.
func FromDocument(doc *Document) (*Well, error) {
	w := &Well{
		Name:   strings.TrimSpace(doc.WellName),
		Legend: legendFromDoc(doc.Legend),
	}

	if doc.TotalDepth != nil {
		w.TotalDepth = *doc.TotalDepth
	}

	// Empty or missing wellType means a straight well, matching how sparse
	// field documents are authored in practice.
	typ := strings.ToLower(strings.TrimSpace(doc.WellType))
	if typ == "" {
		typ = string(TypeStraight)
	}
	w.Type = Type(typ)

	for _, l := range doc.Stratigraphy {
		w.Stratigraphy = append(w.Stratigraphy, StratigraphyLayer(l))
	}
	for _, s := range doc.Pressure {
		w.Pressure = append(w.Pressure, PressureSegment{
			Top:          s.Top,
			Bottom:       s.Bottom,
			PorePressure: s.PorePressure,
			WindowMin:    s.Window.Min,
			WindowMax:    s.Window.Max,
		})
	}
	for _, h := range doc.WellboreStructure.HoleSections {
		w.Holes = append(w.Holes, HoleSection(h))
	}
	for _, c := range doc.WellboreStructure.CasingSections {
		w.Casings = append(w.Casings, CasingSection(c))
	}

	if p := doc.WellboreStructure.PilotHole; p != nil {
		pilot := &PilotHoleGuideLine{
			Diameter:     p.Diameter,
			Display:      p.Display,
			Highlight:    p.Highlight,
			SideTracking: p.SideTracking,
		}
		// Missing bounds fall back to the kickoff depth and total depth, the
		// span the pilot hole occupied before being abandoned.
		if p.Top != nil {
			pilot.Top = *p.Top
		} else if doc.Kickoff != nil {
			pilot.Top = *doc.Kickoff
		}
		if p.Bottom != nil {
			pilot.Bottom = *p.Bottom
		} else {
			pilot.Bottom = w.TotalDepth
		}
		w.PilotHole = pilot
	}

	// Deviation parameters on a straight well are not silently dropped: they
	// are assembled anyway so validation can report the inconsistency. An
	// explicit angle of 0 counts as absent.
	if w.Type != TypeStraight || hasDeviationFields(doc) {
		w.Deviation = deviationFromDoc(doc)
	}

	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// hasDeviationFields reports whether the document authors any deviation
// control value.
func hasDeviationFields(doc *Document) bool {
	return doc.DeviationAngle != nil && *doc.DeviationAngle != 0 ||
		doc.Kickoff != nil ||
		doc.RealKickoff != nil ||
		doc.TargetA != nil ||
		doc.TargetAVert != nil ||
		doc.TargetB != nil ||
		doc.DistanceAB != nil
}

// deviationFromDoc assembles DeviationParameters from the optional top-level
// fields. The nominal kickoff falls back to the real kickoff when absent
// (side-track documents often author only the real value).
func deviationFromDoc(doc *Document) *DeviationParameters {
	d := &DeviationParameters{}
	if doc.DeviationAngle != nil {
		d.Angle = *doc.DeviationAngle
	}
	switch {
	case doc.Kickoff != nil:
		d.Kickoff = *doc.Kickoff
	case doc.RealKickoff != nil:
		d.Kickoff = *doc.RealKickoff
	}
	if doc.RealKickoff != nil {
		d.RealKickoff = *doc.RealKickoff
	} else {
		d.RealKickoff = d.Kickoff
	}
	if doc.TargetA != nil {
		d.TargetA = *doc.TargetA
	}
	if doc.TargetAVert != nil {
		d.TargetAVert = *doc.TargetAVert
	}
	if doc.TargetB != nil {
		d.TargetB = *doc.TargetB
	}
	if doc.DistanceAB != nil {
		d.DistanceAB = *doc.DistanceAB
	}
	return d
}

func legendFromDoc(l *legendDoc) LegendConfig {
	cfg := DefaultLegend()
	if l == nil {
		return cfg
	}
	if l.Casing != nil {
		cfg.Casing = *l.Casing
	}
	if l.Hole != nil {
		cfg.Hole = *l.Hole
	}
	if l.Kickoff != nil {
		cfg.Kickoff = *l.Kickoff
	}
	if l.TargetPoints != nil {
		cfg.TargetPoints = *l.TargetPoints
	}
	return cfg
}
