package sdf

import "gonum.org/v1/gonum/spatial/r2"

// groupPointsByCell partitions global-frame scan points into groups whose
// members occupy the same map cell (share the same four bounding
// vertices). Single pass with a claimed marker per point: each unclaimed
// point anchors a new group and claims every later point falling in its
// cell. Quadratic in the scan length, which is small per call. Group order
// and within-group order follow scan order, anchor first.
func (m *Map) groupPointsByCell(points []r2.Vec) [][]r2.Vec {
	var groups [][]r2.Vec
	claimed := make([]bool, len(points))

	for i, anchor := range points {
		if claimed[i] {
			continue
		}
		claimed[i] = true
		group := []r2.Vec{anchor}

		xMin, xMax, yMin, yMax := m.cellBounds(anchor)
		for j := i + 1; j < len(points); j++ {
			if claimed[j] {
				continue
			}
			c := m.PointToCell(points[j])
			if c.X >= xMin && c.X < xMax && c.Y >= yMin && c.Y < yMax {
				group = append(group, points[j])
				claimed[j] = true
			}
		}
		groups = append(groups, group)
	}
	return groups
}
