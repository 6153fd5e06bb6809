package sdf

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// distanceAndPriority computes, for each selected vertex, the signed
// distance (metres) from the vertex to the fitted surface line and the
// update priority for that write. Outputs parallel the input vertex order.
//
// Distance magnitude is the closed-form perpendicular distance in cell
// units, scaled back to metres. The sign comes from a ray test: cast a ray
// from the robot through the vertex and intersect it with the fitted line.
// If the line is nearer to the robot than the vertex, the vertex lies
// beyond the inferred surface and the distance is negative.
//
// Priority is the number of vertex layers between the vertex and the
// bounding box of the anchor's cell (Chebyshev over per-axis nearest
// bounds). Zero means the vertex bounds the observed cell itself.
func (m *Map) distanceAndPriority(vertices []vertexIndex, slope, intercept float64, pose Pose, anchor r2.Vec) (distances, priorities []float64) {
	disc := m.params.CellSizeMeters
	robot := m.PointToCell(pose.Position())
	xMin, xMax, yMin, yMax := m.cellBounds(anchor)

	distances = make([]float64, 0, len(vertices))
	priorities = make([]float64, 0, len(vertices))

	for _, v := range vertices {
		vx := float64(v.x)
		vy := float64(v.y)

		// Perpendicular distance from the vertex to the fitted line, via
		// the intercept of the parallel line through the vertex.
		b1 := vy - slope*vx
		yDiff := (intercept - b1) * (1 - slope*slope/(slope*slope+1))
		xDiff := (b1 - intercept) * (slope / (slope*slope + 1))
		dist := math.Hypot(yDiff, xDiff)

		// Ray from the robot through the vertex, in cell coordinates.
		rayDX := vx - robot.X
		rayDY := vy - robot.Y
		vertexDist := math.Hypot(rayDX, rayDY)

		raySlope := m.params.SteepSlopeSentinel
		if rayDX != 0 {
			raySlope = rayDY / rayDX
		}
		if rayDX < 0 {
			raySlope = -raySlope
		}
		rayIntercept := robot.Y - raySlope*robot.X

		// Where the ray meets the fitted line. A parallel ray never
		// reaches the surface, so the vertex keeps a positive sign.
		if denom := slope - raySlope; denom != 0 {
			ix := (rayIntercept - intercept) / denom
			iy := raySlope*ix + rayIntercept
			lineDist := math.Hypot(robot.X-ix, robot.Y-iy)
			if lineDist < vertexDist {
				dist = -dist
			}
		}
		distances = append(distances, dist*disc)

		p := math.Max(
			math.Min(math.Abs(xMin-vx), math.Abs(xMax-vx)),
			math.Min(math.Abs(yMin-vy), math.Abs(yMax-vy)),
		)
		priorities = append(priorities, p)
	}
	return distances, priorities
}
