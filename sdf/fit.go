package sdf

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/sdfmap/internal/monitoring"
)

// fitSurfaceLine fits a local surface line to the points of one cell
// group. The returned slope is dimensionless; the intercept is in cell
// units, so the line equation applies directly in grid coordinates.
//
// A lone point first borrows a second fit point from the rest of the scan:
// the first neighbour within two cell widths on both axes whose x and y
// both differ. The borrowed point shapes the fit but is not retained as
// group membership. If no neighbour exists, the line is taken
// perpendicular to the ray from the robot to the point. Two or more points
// get an orthogonal (total least squares) regression.
func (m *Map) fitSurfaceLine(fullScan, group []r2.Vec, pose Pose) (slope, intercept float64) {
	disc := m.params.CellSizeMeters

	if len(group) == 1 {
		p := group[0]
		if n, ok := m.borrowNeighbor(fullScan, p); ok {
			slope = slopeOrSentinel(n.Y-p.Y, n.X-p.X, m.params.SteepSlopeSentinel)
		} else {
			// No neighbour: line perpendicular to the robot-to-point ray.
			rp := pose.Position()
			slope = slopeOrSentinel(-(p.X - rp.X), p.Y-rp.Y, m.params.SteepSlopeSentinel)
		}
		intercept = (p.Y - slope*p.X) / disc
		return slope, intercept
	}

	slope, b := m.orthogonalFit(group)
	return slope, b / disc
}

// borrowNeighbor finds the first scan point within two cell widths of p on
// both axes that shares neither coordinate with p.
func (m *Map) borrowNeighbor(fullScan []r2.Vec, p r2.Vec) (r2.Vec, bool) {
	reach := m.params.CellSizeMeters * 2
	for _, n := range fullScan {
		if math.Abs(n.X-p.X) < reach && math.Abs(n.Y-p.Y) < reach &&
			n.X != p.X && n.Y != p.Y {
			return n, true
		}
	}
	return r2.Vec{}, false
}

// orthogonalFit computes a total-least-squares line through the points:
// the line along the principal axis of the 2x2 covariance of the point
// cloud, through its centroid. This minimises perpendicular rather than
// vertical residuals. The intercept is returned in metres.
func (m *Map) orthogonalFit(points []r2.Vec) (slope, intercept float64) {
	n := len(points)
	obs := mat.NewDense(n, 2, nil)
	var meanX, meanY float64
	for i, p := range points {
		obs.Set(i, 0, p.X)
		obs.Set(i, 1, p.Y)
		meanX += p.X
		meanY += p.Y
	}
	meanX /= float64(n)
	meanY /= float64(n)

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, obs, nil)

	var eig mat.EigenSym
	if !eig.Factorize(&cov, true) {
		monitoring.Logf("sdfmap %s: eigendecomposition failed for %d-point fit", m.id, n)
		slope = m.params.SteepSlopeSentinel
		return slope, meanY - slope*meanX
	}

	// Eigenvalues come back ascending; the principal axis is the last
	// column of the eigenvector matrix.
	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	slope = slopeOrSentinel(vecs.At(1, 1), vecs.At(0, 1), m.params.SteepSlopeSentinel)
	return slope, meanY - slope*meanX
}
