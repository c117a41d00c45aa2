package voronoi

import (
	"math"
	"testing"

	"github.com/0x0FACED/go-dual/internal/sites"
	"github.com/0x0FACED/go-dual/internal/triangulate"
	"github.com/0x0FACED/go-dual/pkg/delaunay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// squareDelaunay - квадрат из двух треугольников, все сайты на оболочке
func squareDelaunay(t *testing.T) *delaunay.Delaunay {
	t.Helper()
	d, err := delaunay.FromTriangles(
		[]float64{0, 0, 1, 0, 1, 1, 0, 1},
		[]int{0, 2, 1, 0, 3, 2},
	)
	require.NoError(t, err)
	return d
}

// fanDelaunay - квадрат и его центр (сайт 4), веер из четырех треугольников
func fanDelaunay(t *testing.T) *delaunay.Delaunay {
	t.Helper()
	d, err := delaunay.FromTriangles(
		[]float64{0, 0, 1, 0, 1, 1, 0, 1, 0.5, 0.5},
		[]int{4, 0, 3, 4, 3, 2, 4, 2, 1, 4, 1, 0},
	)
	require.NoError(t, err)
	return d
}

// gridDelaunay - сетка со сдвигом строк, треугольники без вырождений
func gridDelaunay(t *testing.T, n int) *delaunay.Delaunay {
	t.Helper()
	d, err := triangulate.Triangulate(sites.Flatten(sites.Grid(n, 960, 500)))
	require.NoError(t, err)
	return d
}

func degree(d *delaunay.Delaunay, site int) int {
	n := 0
	for _, s := range d.Triangles {
		if s == site {
			n++
		}
	}
	return n
}

func hullSites(d *delaunay.Delaunay) map[int]bool {
	on := make(map[int]bool, len(d.Hull))
	for _, s := range d.Hull.Sites(d.Triangles) {
		on[s] = true
	}
	return on
}

// assertDiagramInvariants проверяет все то, что построение не проверяет само
func assertDiagramInvariants(t *testing.T, v *Diagram) {
	t.Helper()
	d := v.Delaunay

	for e, opp := range d.Halfedges {
		if opp != delaunay.NoHalfedge {
			assert.Equal(t, e, d.Halfedges[opp], "opposite of %d", opp)
		}
	}

	assert.Len(t, v.Circumcenters, 2*d.TriangleCount())
	assert.Len(t, v.Cells, d.SiteCount())

	onHull := hullSites(d)
	v0, vn := 0, 0
	for i := range v.Cells {
		c := v.Cell(i)
		assert.Equal(t, i, c.Site)

		seen := make(map[int]bool, len(c.Triangles))
		for _, tri := range c.Triangles {
			assert.False(t, seen[tri], "site %d visits triangle %d twice", i, tri)
			seen[tri] = true
		}
		assert.Len(t, c.Triangles, degree(d, i), "site %d", i)

		if onHull[i] {
			assert.False(t, c.Closed(), "hull site %d", i)
			assert.NotNil(t, c.V0, "hull site %d", i)
			assert.NotNil(t, c.Vn, "hull site %d", i)
		} else if !c.Empty() {
			assert.True(t, c.Closed(), "interior site %d", i)
			assert.Nil(t, c.V0, "interior site %d", i)
			assert.Nil(t, c.Vn, "interior site %d", i)
		}
		if c.V0 != nil {
			v0++
		}
		if c.Vn != nil {
			vn++
		}
	}
	assert.Equal(t, len(d.Hull), v0)
	assert.Equal(t, len(d.Hull), vn)

	// открытый циркулятор начинается треугольником луча V0 и кончается
	// треугольником луча Vn
	d.Hull.Walk(func(from, to *delaunay.HullNode) {
		tri := delaunay.TriangleOfEdge(from.Edge)
		first := v.Cell(d.Triangles[to.Edge]).Triangles
		last := v.Cell(d.Triangles[from.Edge]).Triangles
		require.NotEmpty(t, first)
		require.NotEmpty(t, last)
		assert.Equal(t, tri, first[0])
		assert.Equal(t, tri, last[len(last)-1])
	})
}

func assertEquidistant(t *testing.T, cx, cy float64, xy ...float64) {
	t.Helper()
	r := make([]float64, 0, 3)
	for i := 0; i < len(xy); i += 2 {
		r = append(r, math.Hypot(cx-xy[i], cy-xy[i+1]))
	}
	scale := math.Max(r[0], math.Max(r[1], r[2]))
	assert.InDelta(t, 0, (r[0]-r[1])/scale, 1e-9)
	assert.InDelta(t, 0, (r[0]-r[2])/scale, 1e-9)
}
