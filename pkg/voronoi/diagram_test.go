package voronoi

import (
	"sync"
	"testing"

	"github.com/0x0FACED/go-dual/pkg/delaunay"
	"github.com/0x0FACED/go-dual/pkg/logger"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagramSquare(t *testing.T) {
	v := New(squareDelaunay(t), nil)
	assertDiagramInvariants(t, v)

	closed := 0
	for i := range v.Cells {
		if v.Cell(i).Closed() {
			closed++
		}
		assert.True(t, v.Cell(i).Boundary())
	}
	assert.Zero(t, closed)
	assert.Len(t, v.Rays(), 4)
	assert.Equal(t, DefaultBoundingBox, v.BBox)
}

func TestDiagramFan(t *testing.T) {
	v := New(fanDelaunay(t), nil)
	assertDiagramInvariants(t, v)

	centre := v.Cell(4)
	require.True(t, centre.Closed())
	assert.False(t, centre.Boundary())
	assert.Equal(t, []int{0, 3, 2, 1}, centre.Triangles)

	quad := v.CellVertices(4)
	want := []Vertex{{0, 0.5}, {0.5, 0}, {1, 0.5}, {0.5, 1}}
	require.Len(t, quad, len(want))
	for i := range want {
		assert.InDelta(t, want[i].X, quad[i].X, 1e-12)
		assert.InDelta(t, want[i].Y, quad[i].Y, 1e-12)
	}

	// выпуклый: все повороты в одну сторону
	sign := 0.0
	for i := range quad {
		a, b, c := quad[i], quad[(i+1)%len(quad)], quad[(i+2)%len(quad)]
		cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
		require.NotZero(t, cross)
		if sign == 0 {
			sign = cross
		}
		assert.Equal(t, sign > 0, cross > 0, "turn at %d", i)
	}

	// центры лежат ровно на ребрах оболочки, лучи нулевые
	for _, r := range v.Rays() {
		assert.InDelta(t, 0, r.X, 1e-12)
		assert.InDelta(t, 0, r.Y, 1e-12)
	}
}

func TestDiagramGrid(t *testing.T) {
	for _, n := range []int{4, 9, 40, 101} {
		v := New(gridDelaunay(t, n), nil)
		assertDiagramInvariants(t, v)
	}
}

func TestDiagramEmpty(t *testing.T) {
	v := New(delaunay.New(nil, nil, nil, nil), nil)
	assert.Empty(t, v.Cells)
	assert.Empty(t, v.Circumcenters)
	assert.Empty(t, v.Rays())
	assert.Empty(t, v.Edges())
}

func TestDiagramIsolatedSites(t *testing.T) {
	// два сайта без треугольников: ячейки есть, но пустые
	v := New(delaunay.New([]float64{1, 2, 3, 4}, nil, nil, nil), nil)
	require.Len(t, v.Cells, 2)
	for i := range v.Cells {
		assert.True(t, v.Cell(i).Empty())
		assert.False(t, v.Cell(i).Boundary())
		assert.Empty(t, v.CellVertices(i))
	}
}

func TestDiagramDegenerateTriangle(t *testing.T) {
	d, err := delaunay.FromTriangles([]float64{0, 0, 1, 0, 2, 0}, []int{0, 2, 1})
	require.NoError(t, err)

	v := New(d, nil)
	require.Len(t, v.Circumcenters, 2)
	assert.False(t, v.Circumcenter(0).IsFinite())
	assert.Len(t, v.Rays(), 3)
}

func TestDiagramDeterministic(t *testing.T) {
	d := gridDelaunay(t, 50)
	bbox := NewBoundingBox(0, 960, 0, 500)

	a := CreateDiagram(d, bbox, nil)
	b := CreateDiagram(d, bbox, nil)

	assert.Empty(t, cmp.Diff(a.Circumcenters, b.Circumcenters))
	assert.Empty(t, cmp.Diff(a.Rays(), b.Rays()))
	for i := range a.Cells {
		assert.Empty(t, cmp.Diff(a.Cell(i).Triangles, b.Cell(i).Triangles), "site %d", i)
	}
}

func TestDiagramDoesNotMutateInput(t *testing.T) {
	d := gridDelaunay(t, 20)
	points := append([]float64(nil), d.Points...)
	triangles := append([]int(nil), d.Triangles...)
	halfedges := append([]int(nil), d.Halfedges...)
	hull := append(delaunay.Hull(nil), d.Hull...)

	New(d, nil)

	assert.Equal(t, points, d.Points)
	assert.Equal(t, triangles, d.Triangles)
	assert.Equal(t, halfedges, d.Halfedges)
	assert.Equal(t, hull, d.Hull)
}

func TestDiagramConcurrent(t *testing.T) {
	d := gridDelaunay(t, 80)
	want := New(d, nil)

	var wg sync.WaitGroup
	results := make([]*Diagram, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = New(d, nil)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Empty(t, cmp.Diff(want.Circumcenters, got.Circumcenters))
		assert.Empty(t, cmp.Diff(want.Rays(), got.Rays()))
		// у каждого построения свои буферы
		assert.NotSame(t, &want.Circumcenters[0], &got.Circumcenters[0])
	}
}

func TestDiagramLogs(t *testing.T) {
	log := logger.New()
	CreateDiagram(fanDelaunay(t), DefaultBoundingBox, log)

	raw := log.Raw()
	assert.Contains(t, raw, "[v] Построение диаграммы запущено")
	assert.Contains(t, raw, "[v] Диаграмма готова!")
	assert.NotEmpty(t, log.Logs)
}
