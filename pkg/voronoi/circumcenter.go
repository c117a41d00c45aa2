package voronoi

// Circumcenter возвращает центр описанной окружности треугольника.
// Решение 2x2 системы через пересечение серединных перпендикуляров.
// Проверки на вырожденность нет: для коллинеарных точек ab == 0
// и координаты получаются Inf или NaN.
func Circumcenter(x1, y1, x2, y2, x3, y3 float64) (float64, float64) {
	a2 := x1 - x2
	a3 := x1 - x3
	b2 := y1 - y2
	b3 := y1 - y3
	d1 := x1*x1 + y1*y1
	d2 := d1 - x2*x2 - y2*y2
	d3 := d1 - x3*x3 - y3*y3
	ab := (a3*b2 - a2*b3) * 2
	return (b2*d3 - b3*d2) / ab, (a3*d2 - a2*d3) / ab
}

// circumcenters - по одной вершине Вороного на треугольник, x и y подряд
func circumcenters(points []float64, triangles []int) []float64 {
	centers := make([]float64, len(triangles)/3*2)
	for i, j := 0, 0; i < len(triangles); i, j = i+3, j+2 {
		p1, p2, p3 := 2*triangles[i], 2*triangles[i+1], 2*triangles[i+2]
		centers[j], centers[j+1] = Circumcenter(
			points[p1], points[p1+1],
			points[p2], points[p2+1],
			points[p3], points[p3+1],
		)
	}
	return centers
}
