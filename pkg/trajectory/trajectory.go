// Package trajectory derives the 2D wellbore centerline from the sparse
// deviation parameters of a well.
//
// The centerline is an ordered polyline in the (horizontal displacement,
// vertical depth) plane, parameterized by measured depth. A straight well is
// a single vertical segment. A deviated or horizontal well is three pieces:
// a vertical segment down to the kickoff point (the real kickoff after a
// side-track), a constant-curvature build arc ending exactly at target A,
// and a straight hold segment at the deviation angle through target B down
// to total depth.
package trajectory

import (
	"math"

	"github.com/petrolog/wellsketch/pkg/errors"
	"github.com/petrolog/wellsketch/pkg/well"
)

// arcSteps is the number of segments the build arc is sampled into. High
// enough that chord error is invisible at render scale.
const arcSteps = 64

// arcTolerance bounds the relative mismatch between the arc length implied
// by the build radius and the measured-depth interval kickoff..targetA.
const arcTolerance = 0.01

// Point is one centerline sample. Horizontal is the lateral displacement
// from the wellhead, Vertical the true vertical depth, both in meters.
type Point struct {
	MD         float64
	Horizontal float64
	Vertical   float64
}

// Sample is a centerline point together with the local unit tangent,
// pointing downhole.
type Sample struct {
	Point
	DirH float64
	DirV float64
}

// Path is a computed centerline. Points are strictly increasing in MD and
// span [0, totalDepth].
type Path struct {
	Points []Point
}

// ComputeCenterline builds the centerline for a validated well. It returns a
// GEOMETRY_INFEASIBLE error when no circular build arc can connect the
// kickoff point to target A within tolerance.
func ComputeCenterline(w *well.Well) (*Path, error) {
	if w.Deviation == nil {
		return &Path{Points: []Point{
			{MD: 0, Horizontal: 0, Vertical: 0},
			{MD: w.TotalDepth, Horizontal: 0, Vertical: w.TotalDepth},
		}}, nil
	}
	return computeDeviated(w)
}

func computeDeviated(w *well.Well) (*Path, error) {
	d := w.Deviation
	theta := d.Angle * math.Pi / 180

	// The hole stays vertical down to the real kickoff. After a side-track
	// it sits above the nominal kickoff and the build starts there; for a
	// plain conversion the two coincide.
	kick := d.RealKickoff
	if kick <= 0 {
		kick = d.Kickoff
	}

	// Build radius from the vertical-depth constraint: over the arc the
	// vertical gain is R*sin(theta), and it must reach target A's TVD.
	drop := d.TargetAVert - kick
	sin := math.Sin(theta)
	if sin <= 0 || drop <= 0 {
		return nil, errors.New(errors.ErrCodeGeometry,
			"no build arc from kickoff %gm to vertical depth %gm at %g degrees",
			kick, d.TargetAVert, d.Angle)
	}
	radius := drop / sin

	// The same arc must also consume the measured-depth interval from the
	// kickoff to target A. A single circular arc cannot satisfy both
	// constraints independently, so the MD interval has to agree with the
	// implied arc length within tolerance.
	arcLen := radius * theta
	mdLen := d.TargetA - kick
	if diff := math.Abs(arcLen-mdLen) / mdLen; diff > arcTolerance {
		return nil, errors.New(errors.ErrCodeGeometry,
			"build arc length %.1fm incompatible with measured interval %.1fm (radius %.1fm, %g degrees)",
			arcLen, mdLen, radius, d.Angle)
	}

	pts := make([]Point, 0, arcSteps+4)
	pts = append(pts,
		Point{MD: 0, Horizontal: 0, Vertical: 0},
		Point{MD: kick, Horizontal: 0, Vertical: kick},
	)

	// Arc samples, skipping phi=0 (coincides with the kickoff point). MD is
	// rescaled linearly onto [kickoff, targetA] so the arc ends exactly at
	// target A in both coordinates.
	for i := 1; i <= arcSteps; i++ {
		phi := theta * float64(i) / arcSteps
		pts = append(pts, Point{
			MD:         kick + mdLen*float64(i)/arcSteps,
			Horizontal: radius * (1 - math.Cos(phi)),
			Vertical:   kick + radius*math.Sin(phi),
		})
	}

	// Hold segment at the deviation angle from A through B to total depth.
	a := pts[len(pts)-1]
	dirH, dirV := math.Sin(theta), math.Cos(theta)
	if d.TargetB > d.TargetA {
		run := d.TargetB - d.TargetA
		pts = append(pts, Point{
			MD:         d.TargetB,
			Horizontal: a.Horizontal + run*dirH,
			Vertical:   a.Vertical + run*dirV,
		})
	}
	if w.TotalDepth > pts[len(pts)-1].MD {
		last := pts[len(pts)-1]
		run := w.TotalDepth - last.MD
		pts = append(pts, Point{
			MD:         w.TotalDepth,
			Horizontal: last.Horizontal + run*dirH,
			Vertical:   last.Vertical + run*dirV,
		})
	}

	return &Path{Points: pts}, nil
}

// Bottom returns the final centerline point.
func (p *Path) Bottom() Point {
	return p.Points[len(p.Points)-1]
}

// MaxHorizontal returns the largest lateral displacement along the path.
func (p *Path) MaxHorizontal() float64 {
	return p.Bottom().Horizontal
}

// MaxVertical returns the deepest true vertical depth along the path.
func (p *Path) MaxVertical() float64 {
	return p.Bottom().Vertical
}

// At interpolates the centerline at a measured depth. The second return is
// false when md lies outside [0, totalDepth].
func (p *Path) At(md float64) (Point, bool) {
	s, ok := p.Sample(md)
	return s.Point, ok
}

// Sample interpolates position and unit tangent at a measured depth.
func (p *Path) Sample(md float64) (Sample, bool) {
	pts := p.Points
	if len(pts) < 2 || md < pts[0].MD || md > pts[len(pts)-1].MD {
		return Sample{}, false
	}

	// Find the segment [i, i+1] containing md.
	lo, hi := 0, len(pts)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if pts[mid].MD <= md {
			lo = mid
		} else {
			hi = mid
		}
	}

	a, b := pts[lo], pts[hi]
	span := b.MD - a.MD
	t := 0.0
	if span > 0 {
		t = (md - a.MD) / span
	}
	dh, dv := b.Horizontal-a.Horizontal, b.Vertical-a.Vertical
	norm := math.Hypot(dh, dv)
	if norm == 0 {
		norm = 1
	}
	return Sample{
		Point: Point{
			MD:         md,
			Horizontal: a.Horizontal + t*dh,
			Vertical:   a.Vertical + t*dv,
		},
		DirH: dh / norm,
		DirV: dv / norm,
	}, true
}
