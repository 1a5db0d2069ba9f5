package pipeline

import (
	"os"
	"path/filepath"

	"github.com/petrolog/wellsketch/pkg/errors"
	"github.com/petrolog/wellsketch/pkg/export"
)

// WriteArtifacts writes the schematic PNG, the per-collection CSVs and the
// run report into dir, returning the file names written. Files already
// written stay on disk when a later writer fails, so callers can archive
// partial output for diagnosis.
func WriteArtifacts(res *Result, dir string) ([]string, error) {
	pngPath := filepath.Join(dir, PNGName)
	if err := os.WriteFile(pngPath, res.PNG, 0o644); err != nil {
		return nil, errors.Wrap(errors.ErrCodeExport, err, "write %s", PNGName)
	}
	files := []string{PNGName}

	tabular, err := export.WriteAll(res.Well, dir)
	files = append(files, tabular...)
	if err != nil {
		return files, err
	}
	return files, nil
}
