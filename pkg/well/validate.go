package well

import (
	"github.com/petrolog/wellsketch/pkg/errors"
)

// Validate checks every structural invariant of the aggregate and returns a
// *errors.ValidationError enumerating all violations, or nil when the well is
// consistent. Validation is pure: it never mutates the well and has no side
// effects.
func (w *Well) Validate() error {
	var v errors.ValidationError

	if w.Name == "" {
		v.Addf("wellName: must not be empty")
	}
	if w.TotalDepth <= 0 {
		v.Addf("totalDepth_m: must be positive, got %g", w.TotalDepth)
	}
	if !w.Type.Valid() {
		v.Addf("wellType: unknown type %q", string(w.Type))
	}

	w.validateTypeConsistency(&v)
	w.validateStratigraphy(&v)
	w.validatePressure(&v)
	w.validateHoles(&v)
	w.validateCasings(&v)
	w.validatePilotHole(&v)
	w.validateDeviation(&v)

	return v.OrNil()
}

// validateTypeConsistency enforces the angle-to-type mapping: angle 0 (no
// deviation block) is straight, angle 90 is horizontal, strictly between is
// deviated. The boundaries are exact, never tolerance-based.
func (w *Well) validateTypeConsistency(v *errors.ValidationError) {
	if w.Deviation == nil {
		if w.Type != TypeStraight && w.Type.Valid() {
			v.Addf("wellType: %q requires deviation parameters", string(w.Type))
		}
		return
	}

	if w.Type == TypeStraight {
		v.Addf("wellType: straight well must not carry deviation parameters")
		return
	}

	angle := w.Deviation.Angle
	switch {
	case angle <= 0 || angle > 90:
		v.Addf("deviationAngle_deg: must be in (0, 90], got %g", angle)
	case angle == 90:
		if w.Type != TypeHorizontal {
			v.Addf("wellType: deviation angle 90 requires %q, got %q", string(TypeHorizontal), string(w.Type))
		}
	default:
		if w.Type != TypeDeviated {
			v.Addf("wellType: deviation angle %g requires %q, got %q", angle, string(TypeDeviated), string(w.Type))
		}
	}
}

func (w *Well) validateStratigraphy(v *errors.ValidationError) {
	if len(w.Stratigraphy) == 0 {
		v.Addf("stratigraphy: must not be empty")
		return
	}
	for i, l := range w.Stratigraphy {
		if l.Top >= l.Bottom {
			v.Addf("stratigraphy[%d] %q: top %g must be above bottom %g", i, l.Name, l.Top, l.Bottom)
		}
		if i > 0 && w.Stratigraphy[i-1].Bottom != l.Top {
			v.Addf("stratigraphy: gap or overlap between %q (bottom %g) and %q (top %g)",
				w.Stratigraphy[i-1].Name, w.Stratigraphy[i-1].Bottom, l.Name, l.Top)
		}
	}
	if first := w.Stratigraphy[0]; first.Top != 0 {
		v.Addf("stratigraphy: first layer must start at surface, got top %g", first.Top)
	}
	if last := w.Stratigraphy[len(w.Stratigraphy)-1]; w.TotalDepth > 0 && last.Bottom != w.TotalDepth {
		v.Addf("stratigraphy: last layer bottom %g must equal totalDepth_m %g", last.Bottom, w.TotalDepth)
	}
}

func (w *Well) validatePressure(v *errors.ValidationError) {
	for i, s := range w.Pressure {
		if s.Top >= s.Bottom {
			v.Addf("drillingFluidAndPressure[%d]: top %g must be above bottom %g", i, s.Top, s.Bottom)
		}
		if i > 0 && w.Pressure[i-1].Bottom != s.Top {
			v.Addf("drillingFluidAndPressure: gap or overlap at %g/%g", w.Pressure[i-1].Bottom, s.Top)
		}
		if s.WindowMin < s.PorePressure {
			v.Addf("drillingFluidAndPressure[%d]: window min %g below pore pressure %g", i, s.WindowMin, s.PorePressure)
		}
		if s.WindowMax < s.WindowMin {
			v.Addf("drillingFluidAndPressure[%d]: window max %g below window min %g", i, s.WindowMax, s.WindowMin)
		}
	}
	// Pressure is a coarser partition than (or equal to) the stratigraphy.
	if len(w.Pressure) > len(w.Stratigraphy) && len(w.Stratigraphy) > 0 {
		v.Addf("drillingFluidAndPressure: %d segments exceed %d stratigraphy layers",
			len(w.Pressure), len(w.Stratigraphy))
	}
}

func (w *Well) validateHoles(v *errors.ValidationError) {
	if len(w.Holes) == 0 {
		v.Addf("holeSections: must not be empty")
		return
	}
	for i, h := range w.Holes {
		if h.Top >= h.Bottom {
			v.Addf("holeSections[%d]: top %g must be above bottom %g", i, h.Top, h.Bottom)
		}
		if h.Diameter <= 0 {
			v.Addf("holeSections[%d]: diameter %gmm must be positive", i, h.Diameter)
		}
		if i > 0 {
			if w.Holes[i-1].Bottom != h.Top {
				v.Addf("holeSections: gap or overlap at %g/%g", w.Holes[i-1].Bottom, h.Top)
			}
			if h.Diameter > w.Holes[i-1].Diameter {
				v.Addf("holeSections[%d]: diameter %gmm increases over previous %gmm", i, h.Diameter, w.Holes[i-1].Diameter)
			}
		}
	}
	if first := w.Holes[0]; first.Top != 0 {
		v.Addf("holeSections: first section must start at surface, got top %g", first.Top)
	}
	if last := w.Holes[len(w.Holes)-1]; w.TotalDepth > 0 && last.Bottom != w.TotalDepth {
		v.Addf("holeSections: last section bottom %g must equal totalDepth_m %g", last.Bottom, w.TotalDepth)
	}
}

func (w *Well) validateCasings(v *errors.ValidationError) {
	for i, c := range w.Casings {
		if c.Top >= c.Bottom {
			v.Addf("casingSections[%d]: top %g must be above bottom %g", i, c.Top, c.Bottom)
		}
		if c.OuterDiameter <= 0 {
			v.Addf("casingSections[%d]: outer diameter %gmm must be positive", i, c.OuterDiameter)
		}
		if i > 0 {
			if c.Top < w.Casings[i-1].Top {
				v.Addf("casingSections[%d]: not sorted by top depth", i)
			}
			if c.OuterDiameter > w.Casings[i-1].OuterDiameter {
				v.Addf("casingSections[%d]: outer diameter %gmm increases over previous %gmm",
					i, c.OuterDiameter, w.Casings[i-1].OuterDiameter)
			}
		}
		// The casing shoe must land inside a drilled hole section.
		if len(w.Holes) > 0 && !w.shoeInsideHole(c.Bottom) {
			v.Addf("casingSections[%d]: bottom %g outside every hole section", i, c.Bottom)
		}
	}
}

// shoeInsideHole reports whether depth lies within some hole section, i.e.
// the casing bottom does not exceed the bottom of the section containing it.
func (w *Well) shoeInsideHole(depth float64) bool {
	for _, h := range w.Holes {
		if depth > h.Top && depth <= h.Bottom {
			return true
		}
	}
	return false
}

func (w *Well) validatePilotHole(v *errors.ValidationError) {
	p := w.PilotHole
	if p == nil {
		return
	}
	if w.Type == TypeStraight {
		v.Addf("pilotHoleGuideLine: not allowed for a straight well")
		return
	}
	if p.Top >= p.Bottom {
		v.Addf("pilotHoleGuideLine: top %g must be above bottom %g", p.Top, p.Bottom)
	}
	if p.Diameter <= 0 {
		v.Addf("pilotHoleGuideLine: diameter %gmm must be positive", p.Diameter)
	}
	// The pilot hole is an auxiliary branch near the kickoff; its span must
	// stay within [kickoff, target A] or the drawing would detach from the
	// trajectory it annotates.
	if d := w.Deviation; d != nil {
		if p.Top < d.Kickoff {
			v.Addf("pilotHoleGuideLine: top %g above kickoff point %g", p.Top, d.Kickoff)
		}
		if p.Bottom > d.TargetA {
			v.Addf("pilotHoleGuideLine: bottom %g below target A depth %g", p.Bottom, d.TargetA)
		}
	}
}

func (w *Well) validateDeviation(v *errors.ValidationError) {
	d := w.Deviation
	if d == nil {
		return
	}
	if d.Kickoff <= 0 || d.Kickoff >= w.TotalDepth {
		v.Addf("kickoffPoint_m: %g must lie strictly inside (0, totalDepth_m)", d.Kickoff)
	}
	if d.RealKickoff <= 0 || d.RealKickoff > d.Kickoff {
		v.Addf("REAL_kickoffPoint_m: %g must lie in (0, kickoffPoint_m]", d.RealKickoff)
	}
	if d.TargetA <= d.Kickoff {
		v.Addf("targetPointA_m: %g must be below kickoff point %g", d.TargetA, d.Kickoff)
	}
	if d.TargetA > w.TotalDepth {
		v.Addf("targetPointA_m: %g exceeds totalDepth_m %g", d.TargetA, w.TotalDepth)
	}
	if d.TargetAVert <= d.Kickoff || d.TargetAVert > d.TargetA {
		v.Addf("targetPointA_verticalDepth_m: %g must lie in (kickoffPoint_m, targetPointA_m]", d.TargetAVert)
	}
	if d.TargetB < d.TargetA {
		v.Addf("targetPointB_m: %g must not be above target A %g", d.TargetB, d.TargetA)
	}
	if d.TargetB > w.TotalDepth {
		v.Addf("targetPointB_m: %g exceeds totalDepth_m %g", d.TargetB, w.TotalDepth)
	}
	if d.DistanceAB < 0 {
		v.Addf("DistanceAB_m: %g must not be negative", d.DistanceAB)
	}
	// Along the tangent segment measured depth advances by exactly the A-B
	// distance, so the two ways of stating it must agree.
	if diff := (d.TargetB - d.TargetA) - d.DistanceAB; diff > 0.01 || diff < -0.01 {
		v.Addf("DistanceAB_m: %g inconsistent with targetPointB_m - targetPointA_m = %g",
			d.DistanceAB, d.TargetB-d.TargetA)
	}
}
