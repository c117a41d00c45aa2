package delaunay

import (
	"github.com/pkg/errors"
)

type directedEdge struct {
	from, to int
}

// FromTriangles derives the opposite half-edges and the hull for a
// triangulation given only as points and triangles. Triangles must already
// follow the orientation documented on Delaunay.
func FromTriangles(points []float64, triangles []int) (*Delaunay, error) {
	if len(points)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates: %d", len(points))
	}
	if len(triangles)%3 != 0 {
		return nil, errors.Errorf("triangle indices are not a multiple of 3: %d", len(triangles))
	}

	n := len(points) / 2
	halfedges := make([]int, len(triangles))
	edges := make(map[directedEdge]int, len(triangles))

	for e := range triangles {
		halfedges[e] = NoHalfedge

		from, to := triangles[e], triangles[NextHalfedge(e)]
		if from < 0 || from >= n {
			return nil, errors.Errorf("half-edge %d references site %d out of range [0, %d)", e, from, n)
		}

		key := directedEdge{from, to}
		if prev, ok := edges[key]; ok {
			return nil, errors.Errorf("directed edge %d->%d appears twice (half-edges %d and %d)", from, to, prev, e)
		}
		edges[key] = e
	}

	for key, e := range edges {
		if opp, ok := edges[directedEdge{key.to, key.from}]; ok {
			halfedges[e] = opp
		}
	}

	hull, err := buildHull(points, triangles, halfedges)
	if err != nil {
		return nil, errors.Wrap(err, "build hull")
	}

	return New(points, triangles, halfedges, hull), nil
}

// buildHull chains unpaired half-edges into a closed cycle and lays the nodes
// out in traversal order, so node k is followed by node k+1.
func buildHull(points []float64, triangles, halfedges []int) (Hull, error) {
	outgoing := make(map[int]int)
	first := NoHalfedge
	for e, opp := range halfedges {
		if opp != NoHalfedge {
			continue
		}
		site := triangles[e]
		if _, ok := outgoing[site]; ok {
			return nil, errors.Errorf("site %d has more than one outgoing hull edge", site)
		}
		outgoing[site] = e
		if first == NoHalfedge {
			first = e
		}
	}

	if first == NoHalfedge {
		return nil, nil
	}

	hull := make(Hull, 0, len(outgoing))
	e := first
	for {
		site := triangles[e]
		hull = append(hull, HullNode{
			X:    points[2*site],
			Y:    points[2*site+1],
			Edge: e,
			Next: len(hull) + 1,
		})

		next, ok := outgoing[triangles[NextHalfedge(e)]]
		if !ok {
			return nil, errors.Errorf("hull is open after site %d", site)
		}
		e = next
		if e == first {
			break
		}
		if len(hull) == len(outgoing) {
			return nil, errors.New("hull does not close into a single cycle")
		}
	}

	if len(hull) != len(outgoing) {
		return nil, errors.Errorf("hull visits %d of %d boundary sites", len(hull), len(outgoing))
	}

	hull[len(hull)-1].Next = 0
	return hull, nil
}
