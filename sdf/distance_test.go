package sdf

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/banshee-data/sdfmap/internal/testutil"
)

func TestDistanceAndPrioritySigns(t *testing.T) {
	m, err := New(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}

	// Surface line through (2,2)m perpendicular to the ray from an origin
	// pose: slope -1, intercept 8 in cell units (y = -x + 8 in cells).
	anchor := r2.Vec{X: 2.0, Y: 2.0}
	pose := IdentityPose()
	vertices := []vertexIndex{{4, 4}, {3, 3}, {5, 5}, {2, 3}}

	distances, priorities := m.distanceAndPriority(vertices, -1.0, 8.0, pose, anchor)
	if len(distances) != len(vertices) || len(priorities) != len(vertices) {
		t.Fatalf("got %d distances, %d priorities for %d vertices",
			len(distances), len(priorities), len(vertices))
	}

	// (4,4) lies on the line.
	testutil.AssertInDelta(t, distances[0], 0, 1e-9)

	// (3,3) is on the robot side: positive, sqrt(2) cells scaled to metres.
	testutil.AssertInDelta(t, distances[1], math.Sqrt2*0.5, 1e-9)

	// (5,5) is beyond the surface: same magnitude, negative.
	testutil.AssertInDelta(t, distances[2], -math.Sqrt2*0.5, 1e-9)

	// Priorities count vertex layers from the anchor cell's bounding box
	// [4,5]x[4,5] outward.
	wantPriorities := []float64{0, 1, 0, 2}
	for i, want := range wantPriorities {
		if priorities[i] != want {
			t.Errorf("priority[%d] (vertex %v) = %v, want %v", i, vertices[i], priorities[i], want)
		}
	}
}

func TestDistancePriorityLayers(t *testing.T) {
	m, err := New(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	anchor := r2.Vec{X: 2.0, Y: 2.0} // bounding box [4,5]x[4,5]

	tests := []struct {
		vertex vertexIndex
		want   float64
	}{
		{vertexIndex{4, 4}, 0},
		{vertexIndex{5, 5}, 0},
		{vertexIndex{3, 3}, 1},
		{vertexIndex{6, 6}, 1},
		{vertexIndex{2, 4}, 2},
		{vertexIndex{7, 8}, 3},
	}
	for _, tt := range tests {
		_, priorities := m.distanceAndPriority([]vertexIndex{tt.vertex}, -1.0, 8.0, IdentityPose(), anchor)
		if priorities[0] != tt.want {
			t.Errorf("priority(%v) = %v, want %v", tt.vertex, priorities[0], tt.want)
		}
	}
}

func TestDistanceParallelRayStaysPositive(t *testing.T) {
	m, err := New(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}

	// Vertex chosen so the robot-to-vertex ray is parallel to the fitted
	// line (both slope 1): no intersection, so the sign test keeps the
	// distance positive.
	anchor := r2.Vec{X: 1.0, Y: 1.5}
	distances, _ := m.distanceAndPriority([]vertexIndex{{3, 3}}, 1.0, 1.0, IdentityPose(), anchor)
	if distances[0] <= 0 {
		t.Errorf("distance = %v, want positive for a ray parallel to the surface line", distances[0])
	}
}

func TestApplyVertexUpdateGating(t *testing.T) {
	tests := []struct {
		name          string
		storedDist    float64
		storedPrio    float64
		updateDist    float64
		updatePrio    float64
		wantDist      float64
		wantPrio      float64
		wantApplied   int64
		wantAveraged  int64
		wantDiscarded int64
	}{
		{
			name:       "better priority overwrites",
			storedDist: 1.0, storedPrio: 3,
			updateDist: -0.5, updatePrio: 1,
			wantDist: -0.5, wantPrio: 1,
			wantApplied: 1,
		},
		{
			name:       "equal priority averages",
			storedDist: 1.0, storedPrio: 2,
			updateDist: 0.5, updatePrio: 2,
			wantDist: 0.75, wantPrio: 2,
			wantAveraged: 1,
		},
		{
			name:       "worse priority discarded",
			storedDist: 1.0, storedPrio: 1,
			updateDist: -9.0, updatePrio: 4,
			wantDist: 1.0, wantPrio: 1,
			wantDiscarded: 1,
		},
		{
			name:       "fresh vertex always accepts",
			storedDist: defaultDistance, storedPrio: neverUpdatedPriority,
			updateDist: 0.2, updatePrio: 5,
			wantDist: 0.2, wantPrio: 5,
			wantApplied: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(DefaultParams())
			if err != nil {
				t.Fatal(err)
			}
			v := vertexIndex{6, 6}
			m.SetValue(v.x, v.y, tt.storedDist)
			m.SetPriority(v.x, v.y, tt.storedPrio)

			m.applyVertexUpdate(v, tt.updateDist, tt.updatePrio)

			if got := m.Value(v.x, v.y); got != tt.wantDist {
				t.Errorf("value = %v, want %v", got, tt.wantDist)
			}
			if got := m.Priority(v.x, v.y); got != tt.wantPrio {
				t.Errorf("priority = %v, want %v", got, tt.wantPrio)
			}
			s := m.Stats()
			if s.UpdatesApplied != tt.wantApplied || s.UpdatesAveraged != tt.wantAveraged || s.UpdatesDiscarded != tt.wantDiscarded {
				t.Errorf("stats = %+v, want applied=%d averaged=%d discarded=%d",
					s, tt.wantApplied, tt.wantAveraged, tt.wantDiscarded)
			}
		})
	}
}
