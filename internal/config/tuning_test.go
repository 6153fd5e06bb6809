package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMapTuning(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "map.json")

	testJSON := `{
  "initial_width_m": 20.0,
  "cell_size_m": 0.25,
  "update_radius_m": 2.0
}`
	if err := os.WriteFile(configPath, []byte(testJSON), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	tuning, err := LoadMapTuning(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if tuning.InitialWidthMeters == nil || *tuning.InitialWidthMeters != 20.0 {
		t.Errorf("Expected InitialWidthMeters 20.0, got %v", tuning.InitialWidthMeters)
	}
	if tuning.CellSizeMeters == nil || *tuning.CellSizeMeters != 0.25 {
		t.Errorf("Expected CellSizeMeters 0.25, got %v", tuning.CellSizeMeters)
	}
	if tuning.InitialHeightMeters != nil {
		t.Errorf("Expected InitialHeightMeters nil for partial config, got %v", *tuning.InitialHeightMeters)
	}
}

func TestLoadMapTuningRejectsNonJSON(t *testing.T) {
	if _, err := LoadMapTuning("tuning.yaml"); err == nil {
		t.Error("Expected error for non-.json extension, got nil")
	}
}

func TestLoadMapTuningMissingFile(t *testing.T) {
	if _, err := LoadMapTuning(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestParamsOverlay(t *testing.T) {
	width := 40.0
	radius := 6.0
	tuning := &MapTuning{
		InitialWidthMeters: &width,
		UpdateRadiusMeters: &radius,
	}

	p := tuning.Params()
	if p.InitialWidthMeters != 40.0 {
		t.Errorf("InitialWidthMeters = %v, want 40.0", p.InitialWidthMeters)
	}
	if p.UpdateRadiusMeters != 6.0 {
		t.Errorf("UpdateRadiusMeters = %v, want 6.0", p.UpdateRadiusMeters)
	}
	// Untouched fields keep defaults.
	if p.CellSizeMeters != 0.5 {
		t.Errorf("CellSizeMeters = %v, want default 0.5", p.CellSizeMeters)
	}
	if p.SteepSlopeSentinel != 1000.0 {
		t.Errorf("SteepSlopeSentinel = %v, want default 1000.0", p.SteepSlopeSentinel)
	}

	// A nil tuning yields pure defaults.
	var nilTuning *MapTuning
	defaults := nilTuning.Params()
	if defaults.InitialWidthMeters != 10.0 || defaults.CellSizeMeters != 0.5 {
		t.Errorf("nil tuning Params() = %+v, want defaults", defaults)
	}
}
