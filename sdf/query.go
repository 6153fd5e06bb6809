package sdf

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/banshee-data/sdfmap/internal/monitoring"
)

// Query returns the interpolated field magnitude and a unit gradient at a
// global-frame point (metres). Touching a point outside current bounds
// grows the grid, the same as any other access.
//
// The value is the bilinear interpolation of the four corner distances of
// the containing cell, returned as a magnitude. The gradient is a finite
// difference of the corner values unless the corner signs show exactly two
// sign changes around the cell cycle. That topology means the zero
// level-set crosses the cell on two separate edges; the gradient is then
// taken toward the perpendicular foot of the query point on the segment
// between the two edge zero-crossings. A degenerate crossing segment
// yields a zero gradient and a diagnostic, never a failure.
func (m *Map) Query(p r2.Vec) (value float64, gradient r2.Vec) {
	c := m.PointToCell(p)
	xMin, _, yMin, _ := m.cellBounds(p)
	tx := c.X - xMin
	ty := c.Y - yMin

	// Corner vertices in cyclic order, counter-clockwise from the cell's
	// lower-left.
	ix, iy := int(xMin), int(yMin)
	corners := [4]vertexIndex{
		{ix, iy},
		{ix + 1, iy},
		{ix + 1, iy + 1},
		{ix, iy + 1},
	}
	var mv [4]float64
	for i, v := range corners {
		mv[i] = m.Value(v.x, v.y)
	}

	signChanges, negCount := cornerSigns(mv)

	value = ty*(mv[2]*tx+mv[3]*(1-tx)) + (1-ty)*(mv[1]*tx+mv[0]*(1-tx))
	sign := 0.0
	if value > 0 {
		sign = 1
	} else if value < 0 {
		sign = -1
	}
	value = math.Abs(value)
	if math.IsNaN(value) {
		monitoring.Logf("sdfmap %s: NaN interpolated at cell (%.3f,%.3f), corners %v", m.id, c.X, c.Y, mv)
		return value, r2.Vec{}
	}

	if signChanges != 2 {
		gradient = r2.Scale(sign, r2.Vec{
			X: ty*(mv[3]-mv[2]) + (1-ty)*(mv[1]-mv[0]),
			Y: tx*(mv[1]-mv[2]) + (1-tx)*(mv[0]-mv[3]),
		})
	} else {
		gradient = m.crossingGradient(corners, mv, negCount, c)
	}

	if n := r2.Norm(gradient); n > 0 {
		gradient = r2.Scale(1/n, gradient)
	}
	return value, gradient
}

// cornerSigns counts sign changes walking the corners cyclically, and the
// number of negative corners. Exact zero counts as positive.
func cornerSigns(mv [4]float64) (signChanges, negCount int) {
	for i := 0; i < 4; i++ {
		cur := positiveSign(mv[i])
		last := positiveSign(mv[(i+3)%4])
		if cur < 0 {
			negCount++
		}
		if cur != last {
			signChanges++
		}
	}
	return signChanges, negCount
}

func positiveSign(v float64) int {
	if v < 0 {
		return -1
	}
	return 1
}

// crossingGradient handles the ambiguous two-sign-change topology. Each
// positive corner is paired with an adjacent negative corner; the zero
// crossing on each paired edge is found by linear interpolation, and the
// two crossings define the local zero level-set segment. The gradient
// points from the query position to the perpendicular foot on that
// segment's supporting line, found by solving the 2x2 system pairing the
// "on the line" and "perpendicular step" constraints.
func (m *Map) crossingGradient(corners [4]vertexIndex, mv [4]float64, negCount int, query r2.Vec) r2.Vec {
	type edgePair struct {
		plus, minus int
	}
	var pairs [2]edgePair

	switch negCount {
	case 2:
		negIdx, posIdx := 0, 0
		for i := 0; i < 4; i++ {
			if mv[i] < 0 {
				pairs[negIdx].minus = i
				negIdx++
			} else {
				pairs[posIdx].plus = i
				posIdx++
			}
		}
		// Paired corners must be cyclically adjacent; swap the negative
		// assignments if the first pair straddles the cell diagonal.
		if d := pairs[0].plus - pairs[0].minus; d != 1 && d != -1 {
			pairs[0].minus, pairs[1].minus = pairs[1].minus, pairs[0].minus
		}
	case 1:
		for i := 0; i < 4; i++ {
			if mv[i] < 0 {
				pairs[0].minus = i
				pairs[1].minus = i
				pairs[0].plus = (i + 1) % 4
				pairs[1].plus = (i + 3) % 4
			}
		}
	default: // three negatives: the lone non-negative corner anchors both pairs
		for i := 0; i < 4; i++ {
			if mv[i] >= 0 {
				pairs[0].plus = i
				pairs[1].plus = i
				pairs[0].minus = (i + 1) % 4
				pairs[1].minus = (i + 3) % 4
			}
		}
	}

	var crossing [2]r2.Vec
	for k, pr := range pairs {
		plus := r2.Vec{X: float64(corners[pr.plus].x), Y: float64(corners[pr.plus].y)}
		minus := r2.Vec{X: float64(corners[pr.minus].x), Y: float64(corners[pr.minus].y)}
		t := mv[pr.plus] / (mv[pr.plus] - mv[pr.minus])
		crossing[k] = r2.Add(plus, r2.Scale(t, r2.Sub(minus, plus)))
	}

	dx := crossing[1].X - crossing[0].X
	dy := crossing[1].Y - crossing[0].Y
	a := mat.NewDense(2, 2, []float64{
		dx, dy,
		-dy, dx,
	})
	rhs := mat.NewVecDense(2, []float64{
		query.X*dx + query.Y*dy,
		crossing[0].Y*dx - crossing[0].X*dy,
	})

	var foot mat.VecDense
	if err := foot.SolveVec(a, rhs); err != nil {
		monitoring.Logf("sdfmap %s: singular zero-crossing system at (%.3f,%.3f), crossings %v: %v",
			m.id, query.X, query.Y, crossing, err)
		return r2.Vec{}
	}
	return r2.Vec{X: foot.AtVec(0) - query.X, Y: foot.AtVec(1) - query.Y}
}
