package delaunay

// NoHalfedge marks a half-edge without an opposite, i.e. an edge on the hull.
const NoHalfedge = -1

// Delaunay is an immutable planar triangulation in the flat layout used by
// Delaunator: interleaved coordinates, triangles with a stride of 3 and one
// opposite half-edge per triangle corner.
//
// Half-edge e starts at site Triangles[e] and ends at
// Triangles[NextHalfedge(e)]. Triangles are expected to have negative signed
// area in raw coordinates (clockwise with y up, counter-clockwise on a y-down
// screen); the hull ray orientation in package voronoi relies on it.
type Delaunay struct {
	Points    []float64
	Triangles []int
	Halfedges []int
	Hull      Hull
}

// New wraps already computed triangulation arrays. Nothing is copied or
// validated.
func New(points []float64, triangles, halfedges []int, hull Hull) *Delaunay {
	return &Delaunay{
		Points:    points,
		Triangles: triangles,
		Halfedges: halfedges,
		Hull:      hull,
	}
}

func (d *Delaunay) SiteCount() int {
	return len(d.Points) / 2
}

func (d *Delaunay) TriangleCount() int {
	return len(d.Triangles) / 3
}

// Point returns coordinates of site i.
func (d *Delaunay) Point(i int) (float64, float64) {
	return d.Points[2*i], d.Points[2*i+1]
}

// TriangleOfEdge returns the triangle that owns half-edge e.
func TriangleOfEdge(e int) int {
	return e / 3
}

// NextHalfedge returns the next half-edge of the same triangle.
func NextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

// PrevHalfedge returns the previous half-edge of the same triangle.
func PrevHalfedge(e int) int {
	if e%3 == 0 {
		return e + 2
	}
	return e - 1
}
