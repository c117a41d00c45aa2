package delaunay

// HullNode is one boundary site. Edge is the outgoing hull half-edge
// (Triangles[Edge] is the site of this node) and Next is the index of the
// following node in the Hull slice.
type HullNode struct {
	X, Y float64
	Edge int
	Next int
}

// Hull is a closed circular sequence of boundary sites. Walking Next from any
// node returns to it after len(Hull) steps.
type Hull []HullNode

// Walk calls fn for every hull edge, starting at node 0 and stopping once the
// traversal is back at node 0.
func (h Hull) Walk(fn func(from, to *HullNode)) {
	if len(h) == 0 {
		return
	}
	i := 0
	for {
		next := h[i].Next
		fn(&h[i], &h[next])
		i = next
		if i == 0 {
			return
		}
	}
}

// Sites returns boundary site ids in traversal order.
func (h Hull) Sites(triangles []int) []int {
	sites := make([]int, 0, len(h))
	h.Walk(func(from, _ *HullNode) {
		sites = append(sites, triangles[from.Edge])
	})
	return sites
}
