// Package config loads map tuning parameters from JSON files. Fields are
// pointer-typed so partial configs are safe: anything omitted keeps its
// default when overlaid onto sdf.DefaultParams.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/sdfmap/sdf"
)

// MapTuning is the JSON schema for map construction parameters.
type MapTuning struct {
	InitialWidthMeters  *float64 `json:"initial_width_m,omitempty"`
	InitialHeightMeters *float64 `json:"initial_height_m,omitempty"`
	CellSizeMeters      *float64 `json:"cell_size_m,omitempty"`
	UpdateRadiusMeters  *float64 `json:"update_radius_m,omitempty"`
	SteepSlopeSentinel  *float64 `json:"steep_slope_sentinel,omitempty"`
}

// LoadMapTuning loads a MapTuning from a JSON file. The path must carry a
// .json extension and the file must be under the size cap; fields omitted
// from the file stay nil so defaults apply.
func LoadMapTuning(path string) (*MapTuning, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var tuning MapTuning
	if err := json.Unmarshal(data, &tuning); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &tuning, nil
}

// Params overlays the tuning onto sdf.DefaultParams and returns the
// result. Nil fields keep their defaults. The caller still validates via
// sdf.New.
func (t *MapTuning) Params() sdf.Params {
	p := sdf.DefaultParams()
	if t == nil {
		return p
	}
	if t.InitialWidthMeters != nil {
		p.InitialWidthMeters = *t.InitialWidthMeters
	}
	if t.InitialHeightMeters != nil {
		p.InitialHeightMeters = *t.InitialHeightMeters
	}
	if t.CellSizeMeters != nil {
		p.CellSizeMeters = *t.CellSizeMeters
	}
	if t.UpdateRadiusMeters != nil {
		p.UpdateRadiusMeters = *t.UpdateRadiusMeters
	}
	if t.SteepSlopeSentinel != nil {
		p.SteepSlopeSentinel = *t.SteepSlopeSentinel
	}
	return p
}
