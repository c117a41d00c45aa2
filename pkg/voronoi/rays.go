package voronoi

import "github.com/0x0FACED/go-dual/pkg/delaunay"

// hullRays обходит оболочку один раз и вешает лучи на граничные ячейки.
//
// Для ребра оболочки (site1 -> site2) луч идет из центра описанной
// окружности треугольника ⌊i/3⌋ через середину ребра. Если центр лежит левее
// ребра (снаружи при принятой ориентации треугольников), вектор
// разворачивается, так что он всегда смотрит наружу. Один и тот же вектор
// становится Vn для site1 и V0 для site2.
func hullRays(d *delaunay.Delaunay, centers []float64, cells []Cell) []Vertex {
	rays := make([]Vertex, 0, len(d.Hull))

	d.Hull.Walk(func(from, to *delaunay.HullNode) {
		x1, y1 := from.X, from.Y
		x2, y2 := to.X, to.Y
		t := delaunay.TriangleOfEdge(from.Edge)
		cx, cy := centers[2*t], centers[2*t+1]

		dx := (x1+x2)/2 - cx
		dy := (y1+y2)/2 - cy

		k := 1.0
		if (x2-x1)*(cy-y1)-(y2-y1)*(cx-x1) > 0 {
			k = -1
		}

		rays = append(rays, Vertex{k * dx, k * dy})
		ray := &rays[len(rays)-1]
		cells[d.Triangles[from.Edge]].Vn = ray
		cells[d.Triangles[to.Edge]].V0 = ray
	})

	return rays
}
