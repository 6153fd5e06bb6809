// Package sdf maintains a 2D signed-distance-field map of an environment,
// incrementally updated from laser range scans and robot pose estimates.
//
// The map is the frontend of a SLAM pipeline: each grid vertex stores a
// signed distance to the nearest inferred obstacle surface (negative inside
// an obstacle) together with an update priority, a confidence proxy counting
// grid layers between the vertex and the observation that produced it
// (lower is more trustworthy). Scan integration follows the method of
//
//	Fossel, Tuyls & Sturm (2015). 2D-SDF-SLAM: A signed distance function
//	based SLAM frontend for laser scanners. IROS 2015, 1949-1955.
//
// Consumers (scan matchers, pose optimisers) read the field back through
// Query, which returns an interpolated distance magnitude and a unit
// gradient at any continuous map point.
//
// A Map assumes a single-threaded mapping loop: one writer applying one
// scan at a time, with reads never overlapping a write. Callers that need
// concurrency must serialise whole Update and Query calls externally, since
// both may grow the grid.
package sdf
