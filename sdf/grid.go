package sdf

// Grid storage defaults. A vertex that has never been written holds a small
// positive distance (so untouched space reads as "just outside a surface")
// and the never-updated priority, which any real observation beats.
const (
	defaultDistance      = 0.1
	neverUpdatedPriority = 100.0
)

// grid is the resizable backing store for the map: two parallel dense
// arrays of signed distance and update priority, indexed by logical vertex
// coordinate plus an offset. Growth only ever adds rows or columns at an
// edge and bumps the offsets; logical coordinates handed out to callers
// stay valid for the life of the grid.
type grid struct {
	w, h   int // physical extent in vertices along x and y
	ox, oy int // logical-to-physical offsets
	dist   []float64
	prio   []float64
}

func newGrid(w, h int) *grid {
	g := &grid{
		w:    w,
		h:    h,
		dist: make([]float64, w*h),
		prio: make([]float64, w*h),
	}
	for i := range g.dist {
		g.dist[i] = defaultDistance
		g.prio[i] = neverUpdatedPriority
	}
	return g
}

// index maps a physical coordinate to a flat array index (x-major).
func (g *grid) index(px, py int) int {
	return px*g.h + py
}

// ensure grows the grid so the logical vertex (cx, cy) is addressable,
// returning whether any growth happened. Growth amounts follow the map's
// expansion rule: one extra layer beyond the touched coordinate on the low
// side, exactly up to it on the high side.
func (g *grid) ensure(cx, cy int) bool {
	var xFront, xBack, yFront, yBack int
	if p := cx + g.ox; p < 0 {
		xFront = -p + 1
	} else if p >= g.w {
		xBack = p - g.w + 1
	}
	if p := cy + g.oy; p < 0 {
		yFront = -p + 1
	} else if p >= g.h {
		yBack = p - g.h + 1
	}
	if xFront == 0 && xBack == 0 && yFront == 0 && yBack == 0 {
		return false
	}
	g.resize(xFront, xBack, yFront, yBack)
	return true
}

// resize reallocates physical storage with the requested extra layers on
// each edge, copying existing values and shifting the offsets. Only ox and
// oy change; every logical coordinate keeps its value.
func (g *grid) resize(xFront, xBack, yFront, yBack int) {
	nw := g.w + xFront + xBack
	nh := g.h + yFront + yBack
	nd := make([]float64, nw*nh)
	np := make([]float64, nw*nh)
	for i := range nd {
		nd[i] = defaultDistance
		np[i] = neverUpdatedPriority
	}
	for x := 0; x < g.w; x++ {
		src := x * g.h
		dst := (x+xFront)*nh + yFront
		copy(nd[dst:dst+g.h], g.dist[src:src+g.h])
		copy(np[dst:dst+g.h], g.prio[src:src+g.h])
	}
	g.w, g.h = nw, nh
	g.ox += xFront
	g.oy += yFront
	g.dist, g.prio = nd, np
}

func (g *grid) value(cx, cy int) float64 {
	return g.dist[g.index(cx+g.ox, cy+g.oy)]
}

func (g *grid) setValue(cx, cy int, v float64) {
	g.dist[g.index(cx+g.ox, cy+g.oy)] = v
}

func (g *grid) priority(cx, cy int) float64 {
	return g.prio[g.index(cx+g.ox, cy+g.oy)]
}

func (g *grid) setPriority(cx, cy int, v float64) {
	g.prio[g.index(cx+g.ox, cy+g.oy)] = v
}
