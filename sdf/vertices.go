package sdf

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// updateVertices selects the grid vertices eligible for update from one
// cell group, per section III.A of Fossel et al. Candidates are vertices
// strictly inside the update radius of the cell centre that also lie
// between two bounding lines perpendicular to the fitted surface line,
// drawn through opposite corners of the cell. The corner pairing depends
// on the sign of the perpendicular slope so the band always brackets the
// cell along the fitted line's normal.
func (m *Map) updateVertices(slope float64, anchor r2.Vec) []vertexIndex {
	xMin, xMax, yMin, yMax := m.cellBounds(anchor)
	xc := (xMax + xMin) / 2
	yc := (yMax + yMin) / 2

	perp := slopeOrSentinel(-1, slope, m.params.SteepSlopeSentinel)
	var bLower, bUpper float64
	if perp < 0 {
		bLower = yMin - perp*xMin
		bUpper = yMax - perp*xMax
	} else {
		bLower = yMin - perp*xMax
		bUpper = yMax - perp*xMin
	}

	kCells := int(m.params.UpdateRadiusMeters / m.params.CellSizeMeters)
	xFrom := int(math.Floor(xc - float64(kCells)))
	xTo := int(math.Ceil(xc + float64(kCells)))
	yFrom := int(math.Floor(yc - float64(kCells)))
	yTo := int(math.Ceil(yc + float64(kCells)))

	var selected []vertexIndex
	for x := xFrom; x < xTo; x++ {
		for y := yFrom; y < yTo; y++ {
			if math.Hypot(float64(x)-xc, float64(y)-yc) >= float64(kCells) {
				continue
			}
			px := perp * float64(x)
			if px+bUpper < float64(y) || px+bLower > float64(y) {
				continue
			}
			selected = append(selected, vertexIndex{x: x, y: y})
		}
	}
	return selected
}
