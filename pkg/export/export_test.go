package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/petrolog/wellsketch/pkg/well"
)

func sampleWell() *well.Well {
	return &well.Well{
		Name:       "W-207H",
		Type:       well.TypeDeviated,
		TotalDepth: 2700,
		Stratigraphy: []well.StratigraphyLayer{
			{Name: "Upper", Top: 0, Bottom: 1800},
			{Name: "Lower", Top: 1800, Bottom: 2700},
		},
		Pressure: []well.PressureSegment{
			{Top: 0, Bottom: 2700, PorePressure: 1.05, WindowMin: 1.1, WindowMax: 1.4},
		},
		Holes: []well.HoleSection{
			{Top: 0, Bottom: 2700, Diameter: 311, Note: `12-1/4"`},
		},
		Casings: []well.CasingSection{
			{Top: 0, Bottom: 2690, OuterDiameter: 245, Note: `9-5/8"`},
		},
		Deviation: &well.DeviationParameters{
			Angle: 45, Kickoff: 2000, RealKickoff: 2000,
			TargetA: 2500, TargetAVert: 2450, TargetB: 2700, DistanceAB: 200,
		},
		Legend: well.DefaultLegend(),
	}
}

func TestWriteStratigraphy(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteStratigraphy(sampleWell(), &buf); err != nil {
		t.Fatalf("WriteStratigraphy: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("rows = %d, want header + 2 layers", len(records))
	}
	if records[0][0] != "name" || records[1][0] != "Upper" || records[2][2] != "2700" {
		t.Errorf("unexpected rows: %v", records)
	}
}

func TestWriteDeviationStraightWell(t *testing.T) {
	var buf bytes.Buffer
	w := sampleWell()
	w.Deviation = nil
	if err := WriteDeviation(w, &buf); err != nil {
		t.Fatalf("WriteDeviation: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("straight well should yield header only, got %d rows", len(records))
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	files := []string{"stratigraphy.csv", "well_structure_plot.png"}
	if err := WriteReport(sampleWell(), files, &buf); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	md := buf.String()
	for _, want := range []string{
		"# Well schematic report: W-207H",
		"| Well type | deviated well |",
		"| Total depth | 2700m |",
		"| Target A / B | 2500m / 2700m |",
		"- `well_structure_plot.png`",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	files, err := WriteAll(sampleWell(), dir)
	if err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	want := []string{StratigraphyCSV, PressureCSV, DeviationCSV, HoleCSV, CasingCSV, ReportMD}
	if len(files) != len(want) {
		t.Fatalf("files = %v", files)
	}
	for i, name := range want {
		if files[i] != name {
			t.Errorf("files[%d] = %q, want %q", i, files[i], name)
		}
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}
