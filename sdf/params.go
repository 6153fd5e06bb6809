package sdf

import "fmt"

// Params configures a Map at construction. CellSizeMeters and
// UpdateRadiusMeters are fixed for the lifetime of the map.
type Params struct {
	// InitialWidthMeters and InitialHeightMeters set the starting spatial
	// extent of the grid. The grid grows on demand beyond this extent; the
	// initial size only avoids early reallocation.
	InitialWidthMeters  float64
	InitialHeightMeters float64

	// CellSizeMeters is the edge length of a single map cell (the
	// discretization). Typical value: 0.5m.
	CellSizeMeters float64

	// UpdateRadiusMeters bounds how far from an observed surface point grid
	// vertices may be updated. Typical value: 3.0m.
	UpdateRadiusMeters float64

	// SteepSlopeSentinel is the finite slope substituted for vertical or
	// near-vertical lines in slope computations (line fits, the
	// pose-to-vertex ray, perpendicular bounds). Default: 1000.
	SteepSlopeSentinel float64
}

// DefaultParams returns parameters for a 10x10m map at 0.5m resolution with
// a 3m update radius.
func DefaultParams() Params {
	return Params{
		InitialWidthMeters:  10.0,
		InitialHeightMeters: 10.0,
		CellSizeMeters:      0.5,
		UpdateRadiusMeters:  3.0,
		SteepSlopeSentinel:  1000.0,
	}
}

// Validate reports the first invalid parameter, if any.
func (p Params) Validate() error {
	if p.InitialWidthMeters <= 0 || p.InitialHeightMeters <= 0 {
		return fmt.Errorf("initial extent must be positive, got %.3fx%.3f",
			p.InitialWidthMeters, p.InitialHeightMeters)
	}
	if p.CellSizeMeters <= 0 {
		return fmt.Errorf("cell size must be positive, got %.3f", p.CellSizeMeters)
	}
	if p.UpdateRadiusMeters < p.CellSizeMeters {
		return fmt.Errorf("update radius %.3f smaller than one cell (%.3f)",
			p.UpdateRadiusMeters, p.CellSizeMeters)
	}
	if p.SteepSlopeSentinel <= 0 {
		return fmt.Errorf("steep slope sentinel must be positive, got %.3f",
			p.SteepSlopeSentinel)
	}
	return nil
}
