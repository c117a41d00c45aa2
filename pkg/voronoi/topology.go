package voronoi

import "github.com/0x0FACED/go-dual/pkg/delaunay"

// topology хранит циркуляторы всех сайтов в одном плоском буфере:
// треугольники сайта i лежат в flat[offsets[i]:offsets[i+1]].
type topology struct {
	flat    []int
	offsets []int
	closed  []bool
}

func (t *topology) triangles(site int) []int {
	lo, hi := t.offsets[site], t.offsets[site+1]
	return t.flat[lo:hi:hi]
}

// buildTopology связывает треугольники вокруг каждого сайта.
//
// Один проход по полуребрам: для полуребра e с сайтом s = triangles[e]
// следующее полуребро, выходящее из s, это next(halfedges[e]) в соседнем
// треугольнике (переход ⌊e/3⌋ -> ⌊halfedges[e]/3⌋). Для граничного ребра
// перехода нет. Стартом сайта становится полуребро, у которого входящее в s
// ребро того же треугольника граничное; если такого нет - первое увиденное.
// Геометрия не используется, только индексы.
func buildTopology(siteCount int, triangles, halfedges []int) *topology {
	succ := make([]int, len(halfedges))
	start := make([]int, siteCount)
	for i := range start {
		start[i] = delaunay.NoHalfedge
	}

	for e, opp := range halfedges {
		s := triangles[e]
		if opp == delaunay.NoHalfedge {
			succ[e] = delaunay.NoHalfedge
		} else {
			succ[e] = delaunay.NextHalfedge(opp)
		}
		if start[s] == delaunay.NoHalfedge || halfedges[delaunay.PrevHalfedge(e)] == delaunay.NoHalfedge {
			start[s] = e
		}
	}

	// Сжимаем в плоский буфер. Каждое полуребро дает ровно один треугольник
	// ровно одному сайту, так что емкости len(triangles) хватает; обход
	// ограничен ей же, чтобы битые пары не зациклили его.
	t := &topology{
		flat:    make([]int, 0, len(triangles)),
		offsets: make([]int, siteCount+1),
		closed:  make([]bool, siteCount),
	}
	for s := 0; s < siteCount; s++ {
		t.offsets[s] = len(t.flat)
		e0 := start[s]
		if e0 == delaunay.NoHalfedge {
			continue
		}
		e := e0
		for len(t.flat) < cap(t.flat) {
			t.flat = append(t.flat, delaunay.TriangleOfEdge(e))
			e = succ[e]
			if e == e0 {
				t.closed[s] = true
				break
			}
			if e == delaunay.NoHalfedge {
				break
			}
		}
	}
	t.offsets[siteCount] = len(t.flat)

	return t
}
