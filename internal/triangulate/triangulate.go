// Package triangulate is a small Bowyer-Watson Delaunay triangulator used to
// feed the demo binaries. It is quadratic and meant for a few thousand sites at
// most; the dual construction itself accepts any triangulation in the
// delaunay.Delaunay layout.
package triangulate

import (
	"math"

	"github.com/0x0FACED/go-dual/pkg/delaunay"
	"github.com/pkg/errors"
)

type triangle struct {
	a, b, c int
	// circumcircle center and squared radius
	cx, cy, r2 float64
}

type edge struct {
	a, b int
}

func (e edge) isEq(o edge) bool {
	return e.a == o.a && e.b == o.b || e.a == o.b && e.b == o.a
}

type triangulator struct {
	points []float64
}

func (t *triangulator) newTriangle(a, b, c int) triangle {
	ax, ay := t.points[2*a], t.points[2*a+1]
	bx, by := t.points[2*b], t.points[2*b+1]
	cx, cy := t.points[2*c], t.points[2*c+1]

	// keep the orientation the dual construction expects: negative signed area
	if (bx-ax)*(cy-ay)-(by-ay)*(cx-ax) > 0 {
		b, c = c, b
		bx, by, cx, cy = cx, cy, bx, by
	}

	tri := triangle{a: a, b: b, c: c}
	dx1, dy1 := bx-ax, by-ay
	dx2, dy2 := cx-ax, cy-ay
	m := dx1*dx1 + dy1*dy1
	u := dx2*dx2 + dy2*dy2
	s := 1 / (2 * (dx1*dy2 - dy1*dx2))
	tri.cx = ax + (dy2*m-dy1*u)*s
	tri.cy = ay + (dx1*u-dx2*m)*s
	tri.r2 = (ax-tri.cx)*(ax-tri.cx) + (ay-tri.cy)*(ay-tri.cy)
	return tri
}

func (t *triangulator) inCircle(tri triangle, x, y float64) bool {
	dx, dy := tri.cx-x, tri.cy-y
	return dx*dx+dy*dy < tri.r2*(1-1e-12)
}

// Triangulate computes the Delaunay triangulation of interleaved points.
// Duplicate points are kept as sites but belong to no triangle. Fewer than
// three distinct points give an empty triangulation.
func Triangulate(points []float64) (*delaunay.Delaunay, error) {
	if len(points)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates: %d", len(points))
	}
	n := len(points) / 2
	if n < 3 {
		return delaunay.New(points, nil, nil, nil), nil
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := 0; i < n; i++ {
		x, y := points[2*i], points[2*i+1]
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return nil, errors.Errorf("site %d has non-finite coordinates (%v, %v)", i, x, y)
		}
		minX, minY = math.Min(minX, x), math.Min(minY, y)
		maxX, maxY = math.Max(maxX, x), math.Max(maxY, y)
	}

	// super triangle far enough away that it never touches the real hull
	span := math.Max(maxX-minX, maxY-minY)
	if span == 0 {
		span = 1
	}
	midX, midY := (minX+maxX)/2, (minY+maxY)/2
	big := span * 1e4
	work := make([]float64, 0, len(points)+6)
	work = append(work, points...)
	work = append(work,
		midX-2*big, midY-big,
		midX, midY+2*big,
		midX+2*big, midY-big,
	)

	t := &triangulator{points: work}
	tris := []triangle{t.newTriangle(n, n+1, n+2)}

	seen := make(map[[2]float64]struct{}, n)
	for i := 0; i < n; i++ {
		x, y := points[2*i], points[2*i+1]
		key := [2]float64{x, y}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		var polygon []edge
		kept := tris[:0:0]
		for _, tri := range tris {
			if !t.inCircle(tri, x, y) {
				kept = append(kept, tri)
				continue
			}
			for _, e := range [3]edge{{tri.a, tri.b}, {tri.b, tri.c}, {tri.c, tri.a}} {
				polygon = toggleEdge(polygon, e)
			}
		}
		for _, e := range polygon {
			kept = append(kept, t.newTriangle(e.a, e.b, i))
		}
		tris = kept
	}

	if len(seen) < 3 {
		return delaunay.New(points, nil, nil, nil), nil
	}

	triangles := make([]int, 0, 3*len(tris))
	for _, tri := range tris {
		if tri.a >= n || tri.b >= n || tri.c >= n {
			continue
		}
		triangles = append(triangles, tri.a, tri.b, tri.c)
	}
	if len(triangles) == 0 {
		return nil, errors.New("all sites are collinear")
	}

	d, err := delaunay.FromTriangles(points, triangles)
	if err != nil {
		return nil, errors.Wrap(err, "link triangles")
	}
	return d, nil
}

// toggleEdge adds e to the cavity boundary, or removes it when the opposite
// triangle was already removed too.
func toggleEdge(polygon []edge, e edge) []edge {
	for j, p := range polygon {
		if p.isEq(e) {
			return append(polygon[:j], polygon[j+1:]...)
		}
	}
	return append(polygon, e)
}
