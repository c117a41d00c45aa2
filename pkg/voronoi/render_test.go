package voronoi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type segmentRecorder struct {
	moves, lines int
	last         Vertex
	lengths      []float64
}

func (r *segmentRecorder) MoveTo(x, y float64) {
	r.moves++
	r.last = Vertex{x, y}
}

func (r *segmentRecorder) LineTo(x, y float64) {
	r.lines++
	r.lengths = append(r.lengths, math.Hypot(x-r.last.X, y-r.last.Y))
	r.last = Vertex{x, y}
}

func (r *segmentRecorder) ClosePath() {}

func TestEdgesFan(t *testing.T) {
	v := New(fanDelaunay(t), nil)
	edges := v.Edges()
	assert.Len(t, edges, 4)
	for _, e := range edges {
		// соседние вершины ромба
		assert.InDelta(t, math.Sqrt2/2, math.Hypot(e.Va.X-e.Vb.X, e.Va.Y-e.Vb.Y), 1e-12)
	}
}

func TestRenderSquare(t *testing.T) {
	v := New(squareDelaunay(t), nil)

	r := &segmentRecorder{}
	v.Render(r)
	// одно ребро между совпадающими центрами
	assert.Equal(t, 1, r.moves)
	assert.InDelta(t, 0, r.lengths[0], 1e-12)

	r = &segmentRecorder{}
	v.RenderRays(r, 10)
	assert.Equal(t, 4, r.moves)
	assert.Equal(t, 4, r.lines)
	for _, l := range r.lengths {
		assert.InDelta(t, 10, l, 1e-9)
	}
}

func TestRayEdgesSkipZero(t *testing.T) {
	v := New(fanDelaunay(t), nil)
	assert.Empty(t, v.RayEdges(10))
}
