package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/petrolog/wellsketch/pkg/archive"
	"github.com/petrolog/wellsketch/pkg/pipeline"
)

const straightDoc = `{
  "wellName": "W-101",
  "wellType": "straight well",
  "totalDepth_m": 1200,
  "stratigraphy": [
    {"name": "Quaternary", "topDepth_m": 0, "bottomDepth_m": 1200}
  ],
  "drillingFluidAndPressure": [
    {"topDepth_m": 0, "bottomDepth_m": 1200, "porePressure_gcm3": 1.02,
     "pressureWindow": {"min_gcm3": 1.05, "max_gcm3": 1.25}}
  ],
  "wellboreStructure": {
    "holeSections": [
      {"topDepth_m": 0, "bottomDepth_m": 1200, "diameter_mm": 311}
    ]
  }
}`

func testServer(t *testing.T) *Server {
	t.Helper()
	arch, err := archive.NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return New(pipeline.NewRunner(nil, nil, nil), arch, nil)
}

func TestHealthz(t *testing.T) {
	srv := testServer(t)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestPlotWellStructure(t *testing.T) {
	srv := testServer(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/tools/plot-well-structure", strings.NewReader(straightDoc))
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp toolResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success {
		t.Fatalf("success = false: %+v", resp.Error)
	}
	if resp.WellInfo == nil || resp.WellInfo.WellName != "W-101" || resp.WellInfo.TotalDepth != 1200 {
		t.Errorf("well_info = %+v", resp.WellInfo)
	}
	if resp.ArchiveFolder == "" {
		t.Fatal("missing archive_folder")
	}
	if _, err := os.Stat(resp.ImagePath); err != nil {
		t.Errorf("image_path not on disk: %v", err)
	}
	if _, err := os.Stat(resp.ArchiveFolder + "/report.md"); err != nil {
		t.Errorf("report not archived: %v", err)
	}
}

func TestPlotRejectsInvalidWell(t *testing.T) {
	srv := testServer(t)
	bad := strings.Replace(straightDoc, `"min_gcm3": 1.05`, `"min_gcm3": 1.00`, 1)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/tools/plot-well-structure", strings.NewReader(bad))
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp toolResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success {
		t.Error("success must be false")
	}
	if resp.Error == nil || resp.Error.Code != "VALIDATION_FAILED" {
		t.Fatalf("error = %+v", resp.Error)
	}
	if len(resp.Error.Violations) == 0 {
		t.Error("validation failures must list every violation")
	}
}

func TestPlotRejectsMalformedJSON(t *testing.T) {
	srv := testServer(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/tools/plot-well-structure", strings.NewReader(`{`))
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp toolResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != "INVALID_INPUT" {
		t.Errorf("error = %+v", resp.Error)
	}
}
