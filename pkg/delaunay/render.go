package delaunay

// Context is the drawing surface used by the render helpers. *gg.Context
// satisfies it.
type Context interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

// Segment is a line segment between two points.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Edges returns every undirected interior edge once.
func (d *Delaunay) Edges() []Segment {
	segments := make([]Segment, 0, len(d.Halfedges)/2)
	for i, j := range d.Halfedges {
		if j < i {
			continue
		}
		x1, y1 := d.Point(d.Triangles[i])
		x2, y2 := d.Point(d.Triangles[j])
		segments = append(segments, Segment{x1, y1, x2, y2})
	}
	return segments
}

// HullSegments returns the hull outline in traversal order.
func (d *Delaunay) HullSegments() []Segment {
	segments := make([]Segment, 0, len(d.Hull))
	d.Hull.Walk(func(from, to *HullNode) {
		segments = append(segments, Segment{from.X, from.Y, to.X, to.Y})
	})
	return segments
}

// Render draws the triangulation wireframe: interior edges followed by the
// hull.
func (d *Delaunay) Render(ctx Context) {
	for _, s := range d.Edges() {
		ctx.MoveTo(s.X1, s.Y1)
		ctx.LineTo(s.X2, s.Y2)
	}
	d.RenderHull(ctx)
}

// RenderTriangle draws triangle t as a closed path.
func (d *Delaunay) RenderTriangle(t int, ctx Context) {
	i := 3 * t
	ctx.MoveTo(d.Point(d.Triangles[i]))
	ctx.LineTo(d.Point(d.Triangles[i+1]))
	ctx.LineTo(d.Point(d.Triangles[i+2]))
	ctx.ClosePath()
}

func (d *Delaunay) RenderHull(ctx Context) {
	for _, s := range d.HullSegments() {
		ctx.MoveTo(s.X1, s.Y1)
		ctx.LineTo(s.X2, s.Y2)
	}
}
