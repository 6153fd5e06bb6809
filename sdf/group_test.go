package sdf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestGroupPointsByCell(t *testing.T) {
	m, err := New(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}

	// With 0.5m cells: a, b and d share cell (1,1); c sits alone in (2,0).
	a := r2.Vec{X: 0.6, Y: 0.6}
	b := r2.Vec{X: 0.7, Y: 0.9}
	c := r2.Vec{X: 1.3, Y: 0.2}
	d := r2.Vec{X: 0.8, Y: 0.8}

	tests := []struct {
		name   string
		points []r2.Vec
		want   [][]r2.Vec
	}{
		{
			name:   "empty scan",
			points: nil,
			want:   nil,
		},
		{
			name:   "single point",
			points: []r2.Vec{a},
			want:   [][]r2.Vec{{a}},
		},
		{
			name:   "shared cell claims later points",
			points: []r2.Vec{a, c, b, d},
			want:   [][]r2.Vec{{a, b, d}, {c}},
		},
		{
			name:   "group order follows scan order",
			points: []r2.Vec{c, a, d, b},
			want:   [][]r2.Vec{{c}, {a, d, b}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.groupPointsByCell(tt.points)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("groupPointsByCell mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGroupAnchorIsFirstMember(t *testing.T) {
	m, err := New(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	points := []r2.Vec{
		{X: 0.8, Y: 0.8},
		{X: 0.6, Y: 0.6},
	}
	groups := m.groupPointsByCell(points)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0][0] != points[0] {
		t.Errorf("anchor = %v, want first scan point %v", groups[0][0], points[0])
	}
}
