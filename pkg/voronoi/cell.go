package voronoi

// Cell - ячейка одного сайта.
// Triangles - треугольники вокруг сайта по порядку, их центры описанных
// окружностей и есть вершины многоугольника. У внутреннего сайта список
// замкнут (за последним снова идет первый), у граничного открыт, а концы
// продолжаются лучами V0 (перед первой вершиной) и Vn (после последней).
// Ссылки на диаграмму нет: вершины достаются через Diagram.CellVertices.
type Cell struct {
	Site      int
	Triangles []int
	V0        *Vertex
	Vn        *Vertex

	closed bool
}

// Closed - циркулятор вернулся в начало (внутренний сайт)
func (c *Cell) Closed() bool {
	return c.closed
}

// Boundary - у ячейки есть лучи, то есть она неограничена
func (c *Cell) Boundary() bool {
	return c.V0 != nil || c.Vn != nil
}

// Empty - сайт не попал ни в один треугольник (дубликат или их слишком мало)
func (c *Cell) Empty() bool {
	return len(c.Triangles) == 0
}
