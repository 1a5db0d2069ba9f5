package trajectory

import (
	"math"
	"testing"

	"github.com/petrolog/wellsketch/pkg/errors"
	"github.com/petrolog/wellsketch/pkg/well"
)

func almost(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func deviatedWell() *well.Well {
	return &well.Well{
		Name:       "W-207H",
		Type:       well.TypeDeviated,
		TotalDepth: 2700,
		Deviation: &well.DeviationParameters{
			Angle:       45,
			Kickoff:     2000,
			RealKickoff: 2000,
			TargetA:     2500,
			TargetAVert: 2450,
			TargetB:     2700,
			DistanceAB:  200,
		},
	}
}

func TestStraightCenterline(t *testing.T) {
	p, err := ComputeCenterline(&well.Well{Type: well.TypeStraight, TotalDepth: 1200})
	if err != nil {
		t.Fatalf("ComputeCenterline: %v", err)
	}
	if len(p.Points) != 2 {
		t.Fatalf("straight well should be a single segment, got %d points", len(p.Points))
	}
	if p.MaxHorizontal() != 0 {
		t.Errorf("straight well displacement = %g, want 0", p.MaxHorizontal())
	}
	if b := p.Bottom(); b.MD != 1200 || b.Vertical != 1200 {
		t.Errorf("bottom = %+v", b)
	}

	mid, ok := p.At(600)
	if !ok || mid.Horizontal != 0 || mid.Vertical != 600 {
		t.Errorf("At(600) = %+v, %v", mid, ok)
	}
}

func TestDeviatedCenterline(t *testing.T) {
	p, err := ComputeCenterline(deviatedWell())
	if err != nil {
		t.Fatalf("ComputeCenterline: %v", err)
	}

	// MD strictly increasing over the full span.
	for i := 1; i < len(p.Points); i++ {
		if p.Points[i].MD <= p.Points[i-1].MD {
			t.Fatalf("MD not strictly increasing at index %d: %g then %g",
				i, p.Points[i-1].MD, p.Points[i].MD)
		}
	}
	if first, last := p.Points[0], p.Bottom(); first.MD != 0 || last.MD != 2700 {
		t.Errorf("MD span = [%g, %g], want [0, 2700]", first.MD, last.MD)
	}

	// Vertical down to the kickoff point.
	ko, ok := p.At(2000)
	if !ok || ko.Horizontal != 0 || ko.Vertical != 2000 {
		t.Errorf("kickoff sample = %+v", ko)
	}

	// The build arc ends exactly at target A: radius 450/sin45 = 636.40m,
	// lateral reach R*(1-cos45) = 186.40m, vertical depth 2450m.
	a, ok := p.At(2500)
	if !ok {
		t.Fatal("target A outside path")
	}
	if !almost(a.Vertical, 2450, 1e-6) {
		t.Errorf("target A vertical = %g, want 2450", a.Vertical)
	}
	if !almost(a.Horizontal, 186.396, 0.01) {
		t.Errorf("target A horizontal = %g, want 186.396", a.Horizontal)
	}

	// Hold segment at 45 degrees: B is 200m downhole of A.
	b := p.Bottom()
	run := 200 / math.Sqrt2
	if !almost(b.Horizontal, a.Horizontal+run, 1e-6) || !almost(b.Vertical, a.Vertical+run, 1e-6) {
		t.Errorf("target B = %+v, want A + 200m at 45 degrees", b)
	}

	// Displacement never decreases.
	for i := 1; i < len(p.Points); i++ {
		if p.Points[i].Horizontal < p.Points[i-1].Horizontal {
			t.Fatalf("displacement decreases at index %d", i)
		}
	}
}

func TestSideTrackCenterlineBuildsFromRealKickoff(t *testing.T) {
	// After a side-track the hole leaves vertical at the real kickoff,
	// 200m above the nominal one. Radius (2250-1800)/sin45 = 636.40m,
	// arc length 499.8m over the 500m interval real kickoff..target A.
	w := &well.Well{
		Name:       "W-209H-ST",
		Type:       well.TypeDeviated,
		TotalDepth: 2700,
		Deviation: &well.DeviationParameters{
			Angle:       45,
			Kickoff:     2000,
			RealKickoff: 1800,
			TargetA:     2300,
			TargetAVert: 2250,
			TargetB:     2500,
			DistanceAB:  200,
		},
	}
	p, err := ComputeCenterline(w)
	if err != nil {
		t.Fatalf("ComputeCenterline: %v", err)
	}

	// Vertical exactly down to the real kickoff.
	ko, ok := p.At(1800)
	if !ok || ko.Horizontal != 0 || ko.Vertical != 1800 {
		t.Errorf("real kickoff sample = %+v", ko)
	}

	// 100m below the real kickoff the build is already turning: the hole
	// has left vertical even though the nominal kickoff is still 100m away.
	s, ok := p.At(1900)
	if !ok {
		t.Fatal("1900m outside path")
	}
	if s.Horizontal <= 0 {
		t.Errorf("At(1900) horizontal = %g, want > 0 (build starts at real kickoff)", s.Horizontal)
	}
	if s.Vertical >= 1900 {
		t.Errorf("At(1900) vertical = %g, want < 1900 on the arc", s.Vertical)
	}

	// The arc still ends exactly at target A.
	a, ok := p.At(2300)
	if !ok {
		t.Fatal("target A outside path")
	}
	if !almost(a.Vertical, 2250, 1e-6) {
		t.Errorf("target A vertical = %g, want 2250", a.Vertical)
	}
	if !almost(a.Horizontal, 186.396, 0.01) {
		t.Errorf("target A horizontal = %g, want 186.396", a.Horizontal)
	}
}

func TestDeviatedCenterlineExtendsToTotalDepth(t *testing.T) {
	w := deviatedWell()
	w.TotalDepth = 3000
	w.Deviation.TargetB = 2700

	p, err := ComputeCenterline(w)
	if err != nil {
		t.Fatalf("ComputeCenterline: %v", err)
	}
	b := p.Bottom()
	if b.MD != 3000 {
		t.Fatalf("bottom MD = %g, want 3000", b.MD)
	}
	// The extension holds the deviation angle.
	prev := p.Points[len(p.Points)-2]
	dh, dv := b.Horizontal-prev.Horizontal, b.Vertical-prev.Vertical
	if !almost(dh, dv, 1e-6) {
		t.Errorf("extension direction (%g, %g) not at 45 degrees", dh, dv)
	}
}

func TestHorizontalCenterline(t *testing.T) {
	// Radius 500m, quarter-circle arc length 785.40m.
	w := &well.Well{
		Type:       well.TypeHorizontal,
		TotalDepth: 2200,
		Deviation: &well.DeviationParameters{
			Angle:       90,
			Kickoff:     1000,
			RealKickoff: 1000,
			TargetA:     1785,
			TargetAVert: 1500,
			TargetB:     2085,
			DistanceAB:  300,
		},
	}
	p, err := ComputeCenterline(w)
	if err != nil {
		t.Fatalf("ComputeCenterline: %v", err)
	}

	a, _ := p.At(1785)
	if !almost(a.Vertical, 1500, 1e-6) {
		t.Errorf("target A vertical = %g, want 1500", a.Vertical)
	}
	// Past target A the lateral runs at constant vertical depth.
	b := p.Bottom()
	if !almost(b.Vertical, 1500, 1e-6) {
		t.Errorf("lateral vertical = %g, want constant 1500", b.Vertical)
	}
	if b.Horizontal <= a.Horizontal {
		t.Error("lateral should extend displacement past target A")
	}
}

func TestInfeasibleArc(t *testing.T) {
	w := deviatedWell()
	// 700m of measured depth cannot fit a 45 degree arc that only drops
	// 450m vertically (arc length would be 499.8m).
	w.Deviation.TargetA = 2700
	w.Deviation.TargetB = 2700
	w.Deviation.DistanceAB = 0

	_, err := ComputeCenterline(w)
	if !errors.Is(err, errors.ErrCodeGeometry) {
		t.Fatalf("err = %v, want GEOMETRY_INFEASIBLE", err)
	}
}

func TestSampleTangent(t *testing.T) {
	p, err := ComputeCenterline(deviatedWell())
	if err != nil {
		t.Fatalf("ComputeCenterline: %v", err)
	}

	// Vertical section: tangent points straight down.
	s, ok := p.Sample(1000)
	if !ok || !almost(s.DirH, 0, 1e-9) || !almost(s.DirV, 1, 1e-9) {
		t.Errorf("tangent at 1000m = (%g, %g), want (0, 1)", s.DirH, s.DirV)
	}

	// Hold section: tangent at the deviation angle.
	s, ok = p.Sample(2600)
	if !ok || !almost(s.DirH, math.Sqrt2/2, 1e-6) || !almost(s.DirV, math.Sqrt2/2, 1e-6) {
		t.Errorf("tangent at 2600m = (%g, %g), want 45 degrees", s.DirH, s.DirV)
	}

	if _, ok := p.Sample(2701); ok {
		t.Error("sampling past total depth should fail")
	}
	if _, ok := p.Sample(-1); ok {
		t.Error("sampling above surface should fail")
	}
}
