package voronoi

import (
	"math"

	"github.com/0x0FACED/go-dual/pkg/delaunay"
)

// Edge - конечное ребро Вороного между центрами двух соседних треугольников
type Edge struct {
	Va, Vb Vertex
}

// Edges - все конечные ребра, каждое по одному разу
func (v *Diagram) Edges() []Edge {
	halfedges := v.Delaunay.Halfedges
	edges := make([]Edge, 0, len(halfedges)/2)
	for i, j := range halfedges {
		if j < i {
			continue
		}
		edges = append(edges, Edge{
			Va: v.Circumcenter(delaunay.TriangleOfEdge(i)),
			Vb: v.Circumcenter(delaunay.TriangleOfEdge(j)),
		})
	}
	return edges
}

// Render рисует конечные ребра диаграммы
func (v *Diagram) Render(ctx delaunay.Context) {
	for _, e := range v.Edges() {
		ctx.MoveTo(e.Va.X, e.Va.Y)
		ctx.LineTo(e.Vb.X, e.Vb.Y)
	}
}

// RayEdges - лучи оболочки как отрезки длины length от своих вершин.
// Нулевые лучи (центр ровно на ребре оболочки) пропускаются.
func (v *Diagram) RayEdges(length float64) []Edge {
	d := v.Delaunay
	edges := make([]Edge, 0, len(v.rays))
	k := 0
	d.Hull.Walk(func(from, _ *delaunay.HullNode) {
		ray := v.rays[k]
		k++
		norm := math.Hypot(ray.X, ray.Y)
		if norm == 0 {
			return
		}
		c := v.Circumcenter(delaunay.TriangleOfEdge(from.Edge))
		edges = append(edges, Edge{
			Va: c,
			Vb: Vertex{c.X + ray.X/norm*length, c.Y + ray.Y/norm*length},
		})
	})
	return edges
}

// RenderRays рисует лучи оболочки отрезками длины length
func (v *Diagram) RenderRays(ctx delaunay.Context, length float64) {
	for _, e := range v.RayEdges(length) {
		ctx.MoveTo(e.Va.X, e.Va.Y)
		ctx.LineTo(e.Vb.X, e.Vb.Y)
	}
}
