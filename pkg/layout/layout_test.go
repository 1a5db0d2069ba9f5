package layout

import (
	"reflect"
	"testing"

	"github.com/petrolog/wellsketch/pkg/errors"
	"github.com/petrolog/wellsketch/pkg/trajectory"
	"github.com/petrolog/wellsketch/pkg/well"
)

func straightWell() *well.Well {
	return &well.Well{
		Name:       "W-101",
		Type:       well.TypeStraight,
		TotalDepth: 1200,
		Stratigraphy: []well.StratigraphyLayer{
			{Name: "Quaternary", Top: 0, Bottom: 45},
			{Name: "Minghuazhen", Top: 45, Bottom: 1195},
			{Name: "Guantao", Top: 1195, Bottom: 1200},
		},
		Pressure: []well.PressureSegment{
			{Top: 0, Bottom: 1200, PorePressure: 1.02, WindowMin: 1.05, WindowMax: 1.25},
		},
		Holes: []well.HoleSection{
			{Top: 0, Bottom: 500, Diameter: 445, Note: `17-1/2"`},
			{Top: 500, Bottom: 1200, Diameter: 311, Note: `12-1/4"`},
		},
		Casings: []well.CasingSection{
			{Top: 0, Bottom: 498, OuterDiameter: 340, Note: `13-3/8"`},
			{Top: 500, Bottom: 1198, OuterDiameter: 245, Note: `9-5/8"`},
		},
		Legend: well.DefaultLegend(),
	}
}

func mustPath(t *testing.T, w *well.Well) *trajectory.Path {
	t.Helper()
	p, err := trajectory.ComputeCenterline(w)
	if err != nil {
		t.Fatalf("ComputeCenterline: %v", err)
	}
	return p
}

func kinds(l *Layout, k Kind) []Primitive {
	var out []Primitive
	for _, p := range l.Primitives {
		if p.Kind == k {
			out = append(out, p)
		}
	}
	return out
}

func TestBuildStraightWell(t *testing.T) {
	w := straightWell()
	l, err := Build(w, mustPath(t, w), DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := kinds(l, KindStratigraphy); len(got) != 3 {
		t.Errorf("stratigraphy polygons = %d, want 3", len(got))
	}
	if got := kinds(l, KindHole); len(got) != 2 {
		t.Errorf("hole bands = %d, want 2", len(got))
	}
	if got := kinds(l, KindKickoff); len(got) != 0 {
		t.Errorf("straight well emitted %d kickoff markers", len(got))
	}
	if got := kinds(l, KindTarget); len(got) != 0 {
		t.Errorf("straight well emitted %d target markers", len(got))
	}

	// The centerline of a straight well never leaves the axis, so every
	// hole band is symmetric about X = 0.
	for _, p := range kinds(l, KindHole) {
		b := p.Band
		for i := range b.Left {
			if b.Left[i].X != -b.Right[i].X {
				t.Fatalf("band not symmetric at index %d: %g vs %g", i, b.Left[i].X, b.Right[i].X)
			}
		}
	}
}

func TestBuildEmitsOneHangerPerHungCasing(t *testing.T) {
	w := straightWell()
	l, err := Build(w, mustPath(t, w), DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// Only the 9-5/8" liner hangs (top 500m); a hanger is a square on each
	// band edge.
	hangers := kinds(l, KindHanger)
	if len(hangers) != 2 {
		t.Fatalf("hanger markers = %d, want 2 (one casing, both edges)", len(hangers))
	}
	for _, h := range hangers {
		if h.Marker.At.Y != 500 {
			t.Errorf("hanger at depth %g, want 500", h.Marker.At.Y)
		}
		if h.Marker.Style != MarkerSquare {
			t.Errorf("hanger style = %q", h.Marker.Style)
		}
	}
}

func TestBuildDeviatedWellMarkers(t *testing.T) {
	w := &well.Well{
		Name:       "W-207H",
		Type:       well.TypeDeviated,
		TotalDepth: 2700,
		Stratigraphy: []well.StratigraphyLayer{
			{Name: "Upper", Top: 0, Bottom: 1800},
			{Name: "Lower", Top: 1800, Bottom: 2700},
		},
		Pressure: []well.PressureSegment{
			{Top: 0, Bottom: 2700, PorePressure: 1.05, WindowMin: 1.10, WindowMax: 1.40},
		},
		Holes: []well.HoleSection{
			{Top: 0, Bottom: 2700, Diameter: 311},
		},
		Deviation: &well.DeviationParameters{
			Angle: 45, Kickoff: 2000, RealKickoff: 2000,
			TargetA: 2500, TargetAVert: 2450, TargetB: 2700, DistanceAB: 200,
		},
		Legend: well.DefaultLegend(),
	}

	l, err := Build(w, mustPath(t, w), DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	ko := kinds(l, KindKickoff)
	if len(ko) != 1 {
		t.Fatalf("kickoff markers = %d, want 1 blue dot", len(ko))
	}
	if ko[0].Marker.Color != "#0000FF" || ko[0].Marker.At.Y != 2000 {
		t.Errorf("kickoff marker = %+v", *ko[0].Marker)
	}

	targets := kinds(l, KindTarget)
	if len(targets) != 2 {
		t.Fatalf("target markers = %d, want A and B", len(targets))
	}
	if targets[0].Marker.At.Y >= targets[1].Marker.At.Y {
		t.Error("target A should be above target B")
	}

	// Side-tracking swaps the kickoff glyph for an orange dot plus cross.
	w.PilotHole = &well.PilotHoleGuideLine{
		Top: 2000, Bottom: 2400, Diameter: 216, Display: true, SideTracking: true,
	}
	l, err = Build(w, mustPath(t, w), DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	ko = kinds(l, KindKickoff)
	if len(ko) != 2 {
		t.Fatalf("side-track kickoff markers = %d, want dot + cross", len(ko))
	}
	if ko[0].Marker.Color != "#FFA500" || ko[1].Marker.Style != MarkerCross {
		t.Errorf("side-track markers = %+v, %+v", *ko[0].Marker, *ko[1].Marker)
	}
	if got := kinds(l, KindPilot); len(got) != 1 || !got[0].Band.Dashed {
		t.Errorf("pilot band = %+v", got)
	}
}

func TestBuildLegendToggles(t *testing.T) {
	w := straightWell()
	w.Legend = well.LegendConfig{Casing: true, Hole: false, Kickoff: true, TargetPoints: true}

	l, err := Build(w, mustPath(t, w), DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, e := range l.Legend {
		if e.Kind == KindHole {
			t.Errorf("hole legend disabled but entry %q emitted", e.Text)
		}
	}
	var casings int
	for _, e := range l.Legend {
		if e.Kind == KindCasing {
			casings++
		}
	}
	if casings != 2 {
		t.Errorf("casing legend entries = %d, want 2", casings)
	}
	// Kickoff and target toggles are on, but a straight well has no such
	// content: empty entries, not an error.
	for _, e := range l.Legend {
		if e.Kind == KindKickoff || e.Kind == KindTarget {
			t.Errorf("straight well emitted %q legend entry", e.Kind)
		}
	}
}

func TestBuildRejectsUncoveredInterval(t *testing.T) {
	w := straightWell()
	path := mustPath(t, w)
	w.Casings[1].Bottom = 1500 // beyond total depth

	_, err := Build(w, path, DefaultOptions())
	if !errors.Is(err, errors.ErrCodeLayout) {
		t.Fatalf("err = %v, want LAYOUT_OUT_OF_RANGE", err)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	w := straightWell()
	path := mustPath(t, w)

	a, err := Build(w, path, DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b, err := Build(w, path, DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("identical input must produce bit-identical layouts")
	}
}
