package sdf

import (
	"math"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"
)

// Map is a 2D signed-distance field over a growable vertex grid. It is
// exclusively owned by its creator: one Update integrates one scan before
// returning, and Query must not run concurrently with Update.
type Map struct {
	params Params
	id     string // instance ID used in diagnostic log lines
	g      *grid
	stats  Stats
}

// Stats counts work done by a map instance, in the spirit of the tuning
// counters on the sensor pipeline filters.
type Stats struct {
	ScansIntegrated  int64
	UpdatesApplied   int64 // strictly better priority, overwrote
	UpdatesAveraged  int64 // equal priority, averaged in place
	UpdatesDiscarded int64 // worse priority, dropped
	GrowthEvents     int64 // grid reallocations from out-of-bounds touches
}

// New constructs an empty map covering the initial extent with a zero
// offset. Every vertex starts at the default distance with the
// never-updated priority.
func New(params Params) (*Map, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	w := int(params.InitialWidthMeters / params.CellSizeMeters)
	h := int(params.InitialHeightMeters / params.CellSizeMeters)
	return &Map{
		params: params,
		id:     uuid.NewString(),
		g:      newGrid(w, h),
	}, nil
}

// ID returns the map's instance identifier.
func (m *Map) ID() string { return m.id }

// Params returns the construction parameters.
func (m *Map) Params() Params { return m.params }

// Stats returns a snapshot of the map's work counters.
func (m *Map) Stats() Stats { return m.stats }

// Bounds returns the current logical vertex extent as half-open ranges
// [minX, maxX) x [minY, maxY). The bounds only ever widen.
func (m *Map) Bounds() (minX, minY, maxX, maxY int) {
	return -m.g.ox, -m.g.oy, m.g.w - m.g.ox, m.g.h - m.g.oy
}

// Update integrates one laser scan into the field. Scan points are in the
// sensor's local frame in metres; pose transforms them into the global
// frame. For each group of points sharing a map cell the method fits a
// local surface line, selects the nearby vertices that line may influence,
// computes a signed distance and priority per vertex, and applies the
// priority-gated writes.
func (m *Map) Update(scan []r2.Vec, pose Pose) {
	global := make([]r2.Vec, len(scan))
	for i, p := range scan {
		global[i] = pose.Apply(p)
	}

	for _, group := range m.groupPointsByCell(global) {
		slope, intercept := m.fitSurfaceLine(global, group, pose)
		vertices := m.updateVertices(slope, group[0])
		distances, priorities := m.distanceAndPriority(vertices, slope, intercept, pose, group[0])
		for i, v := range vertices {
			m.applyVertexUpdate(v, distances[i], priorities[i])
		}
	}
	m.stats.ScansIntegrated++
}

// applyVertexUpdate resolves one candidate write against the stored state.
// Strictly better (lower) priority wins outright; equal priority averages
// the distances; worse priority is discarded. A vertex priority therefore
// never increases.
func (m *Map) applyVertexUpdate(v vertexIndex, distance, priority float64) {
	stored := m.Priority(v.x, v.y)
	switch {
	case priority < stored:
		m.g.setValue(v.x, v.y, distance)
		m.g.setPriority(v.x, v.y, priority)
		m.stats.UpdatesApplied++
	case priority == stored:
		m.g.setValue(v.x, v.y, (distance+m.g.value(v.x, v.y))/2)
		m.stats.UpdatesAveraged++
	default:
		m.stats.UpdatesDiscarded++
	}
}

// vertexIndex is a logical grid vertex coordinate.
type vertexIndex struct {
	x, y int
}

// Grow expands the grid so the logical vertex (cx, cy) is addressable.
// Reads and writes do this implicitly; Grow exists for callers that want
// to pre-allocate before a burst of updates.
func (m *Map) Grow(cx, cy int) {
	if m.g.ensure(cx, cy) {
		m.stats.GrowthEvents++
	}
}

// Value returns the stored signed distance (metres) at a vertex, growing
// the grid if the vertex is outside current bounds.
func (m *Map) Value(cx, cy int) float64 {
	m.Grow(cx, cy)
	return m.g.value(cx, cy)
}

// SetValue stores a signed distance (metres) at a vertex, growing the grid
// if needed.
func (m *Map) SetValue(cx, cy int, v float64) {
	m.Grow(cx, cy)
	m.g.setValue(cx, cy, v)
}

// Priority returns the stored update priority at a vertex, growing the
// grid if needed.
func (m *Map) Priority(cx, cy int) float64 {
	m.Grow(cx, cy)
	return m.g.priority(cx, cy)
}

// SetPriority stores an update priority at a vertex, growing the grid if
// needed.
func (m *Map) SetPriority(cx, cy int, v float64) {
	m.Grow(cx, cy)
	m.g.setPriority(cx, cy, v)
}

// PointToCell converts a global-frame point (metres) to continuous cell
// coordinates.
func (m *Map) PointToCell(p r2.Vec) r2.Vec {
	return r2.Scale(1/m.params.CellSizeMeters, p)
}

// CellToPoint converts continuous cell coordinates back to a global-frame
// point (metres). It is the inverse of PointToCell.
func (m *Map) CellToPoint(c r2.Vec) r2.Vec {
	return r2.Scale(m.params.CellSizeMeters, c)
}

// cellBounds returns the four grid vertex coordinates bounding the cell
// containing the given global-frame point.
func (m *Map) cellBounds(p r2.Vec) (xMin, xMax, yMin, yMax float64) {
	c := m.PointToCell(p)
	xMin = math.Floor(c.X)
	xMax = xMin + 1
	yMin = math.Floor(c.Y)
	yMax = yMin + 1
	return xMin, xMax, yMin, yMax
}
