// Package export writes the tabular companions of the schematic: one CSV
// per well collection and a Markdown run report.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/petrolog/wellsketch/pkg/errors"
	"github.com/petrolog/wellsketch/pkg/well"
)

// File names mirror the artifact set consumers already script against.
const (
	StratigraphyCSV = "stratigraphy.csv"
	PressureCSV     = "drilling_fluid_pressure.csv"
	DeviationCSV    = "deviationData.csv"
	HoleCSV         = "hole_sections.csv"
	CasingCSV       = "casing_sections.csv"
	ReportMD        = "report.md"
)

// WriteStratigraphy emits one row per geological layer.
func WriteStratigraphy(w *well.Well, out io.Writer) error {
	rows := [][]string{{"name", "top_depth_m", "bottom_depth_m"}}
	for _, l := range w.Stratigraphy {
		rows = append(rows, []string{l.Name, ftoa(l.Top), ftoa(l.Bottom)})
	}
	return writeCSV(out, rows)
}

// WritePressure emits one row per pressure segment.
func WritePressure(w *well.Well, out io.Writer) error {
	rows := [][]string{{"top_depth_m", "bottom_depth_m", "pore_pressure_gcm3", "window_min_gcm3", "window_max_gcm3"}}
	for _, s := range w.Pressure {
		rows = append(rows, []string{
			ftoa(s.Top), ftoa(s.Bottom), ftoa(s.PorePressure), ftoa(s.WindowMin), ftoa(s.WindowMax),
		})
	}
	return writeCSV(out, rows)
}

// WriteDeviation emits the deviation control points as key/value rows so a
// straight well still yields a valid, header-only file.
func WriteDeviation(w *well.Well, out io.Writer) error {
	rows := [][]string{{"parameter", "value"}}
	if d := w.Deviation; d != nil {
		rows = append(rows,
			[]string{"deviation_angle_deg", ftoa(d.Angle)},
			[]string{"kickoff_point_m", ftoa(d.Kickoff)},
			[]string{"real_kickoff_point_m", ftoa(d.RealKickoff)},
			[]string{"target_point_a_m", ftoa(d.TargetA)},
			[]string{"target_point_a_vertical_depth_m", ftoa(d.TargetAVert)},
			[]string{"target_point_b_m", ftoa(d.TargetB)},
			[]string{"distance_ab_m", ftoa(d.DistanceAB)},
		)
	}
	return writeCSV(out, rows)
}

// WriteHoleSections emits one row per drilled interval.
func WriteHoleSections(w *well.Well, out io.Writer) error {
	rows := [][]string{{"top_depth_m", "bottom_depth_m", "diameter_mm", "note"}}
	for _, h := range w.Holes {
		rows = append(rows, []string{ftoa(h.Top), ftoa(h.Bottom), ftoa(h.Diameter), h.Note})
	}
	return writeCSV(out, rows)
}

// WriteCasingSections emits one row per casing string.
func WriteCasingSections(w *well.Well, out io.Writer) error {
	rows := [][]string{{"top_depth_m", "bottom_depth_m", "outer_diameter_mm", "note"}}
	for _, c := range w.Casings {
		rows = append(rows, []string{ftoa(c.Top), ftoa(c.Bottom), ftoa(c.OuterDiameter), c.Note})
	}
	return writeCSV(out, rows)
}

// WriteReport emits the Markdown run report: well summary plus the list of
// files the invocation produced.
func WriteReport(w *well.Well, files []string, out io.Writer) error {
	fmt.Fprintf(out, "# Well schematic report: %s\n\n", w.Name)
	fmt.Fprintf(out, "| Field | Value |\n|---|---|\n")
	fmt.Fprintf(out, "| Well type | %s |\n", w.Type)
	fmt.Fprintf(out, "| Total depth | %gm |\n", w.TotalDepth)
	fmt.Fprintf(out, "| Stratigraphy layers | %d |\n", len(w.Stratigraphy))
	fmt.Fprintf(out, "| Pressure segments | %d |\n", len(w.Pressure))
	fmt.Fprintf(out, "| Hole sections | %d |\n", len(w.Holes))
	fmt.Fprintf(out, "| Casing strings | %d |\n", len(w.Casings))
	if d := w.Deviation; d != nil {
		fmt.Fprintf(out, "| Deviation angle | %g deg |\n", d.Angle)
		fmt.Fprintf(out, "| Kickoff point | %gm |\n", d.Kickoff)
		fmt.Fprintf(out, "| Target A / B | %gm / %gm |\n", d.TargetA, d.TargetB)
	}
	if w.SideTracked() {
		fmt.Fprintf(out, "| Side-tracked | yes |\n")
	}

	fmt.Fprintf(out, "\n## Generated files\n\n")
	for _, f := range files {
		fmt.Fprintf(out, "- `%s`\n", f)
	}
	return nil
}

// WriteAll writes every CSV and the report into dir and returns the file
// names written, report last.
func WriteAll(w *well.Well, dir string) ([]string, error) {
	writers := []struct {
		name string
		fn   func(*well.Well, io.Writer) error
	}{
		{StratigraphyCSV, WriteStratigraphy},
		{PressureCSV, WritePressure},
		{DeviationCSV, WriteDeviation},
		{HoleCSV, WriteHoleSections},
		{CasingCSV, WriteCasingSections},
	}

	var files []string
	for _, wr := range writers {
		if err := exportFile(filepath.Join(dir, wr.name), func(f io.Writer) error {
			return wr.fn(w, f)
		}); err != nil {
			return files, err
		}
		files = append(files, wr.name)
	}

	if err := exportFile(filepath.Join(dir, ReportMD), func(f io.Writer) error {
		return WriteReport(w, append(files, "well_structure_plot.png"), f)
	}); err != nil {
		return files, err
	}
	return append(files, ReportMD), nil
}

func exportFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeExport, err, "create %s", filepath.Base(path))
	}
	defer f.Close()
	if err := write(f); err != nil {
		return errors.Wrap(errors.ErrCodeExport, err, "write %s", filepath.Base(path))
	}
	return nil
}

func writeCSV(out io.Writer, rows [][]string) error {
	cw := csv.NewWriter(out)
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
