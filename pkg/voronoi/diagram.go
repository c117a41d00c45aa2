package voronoi

import (
	"github.com/0x0FACED/go-dual/pkg/delaunay"
	"github.com/0x0FACED/go-dual/pkg/logger"
	"go.uber.org/zap"
)

// Diagram - диаграмма Вороного, двойственная триангуляции.
// Триангуляция не копируется и не меняется, диаграмма только читает ее.
type Diagram struct {
	Delaunay *delaunay.Delaunay
	// ячейки по индексу сайта
	Cells []Cell
	// центры описанных окружностей, x и y подряд, по одному на треугольник
	Circumcenters []float64
	BBox          BoundingBox
	// лучи по ребрам оболочки, на них указывают V0 и Vn ячеек
	rays []Vertex
}

// New строит диаграмму с прямоугольником по умолчанию
func New(d *delaunay.Delaunay, logger *logger.ZapLogger) *Diagram {
	return CreateDiagram(d, DefaultBoundingBox, logger)
}

// Основная функция - база.
// Центры и топология считаются независимо, потом по оболочке вешаются лучи.
// Все буферы выделяются заново на каждый вызов, так что параллельные
// построения по одной триангуляции безопасны.
func CreateDiagram(d *delaunay.Delaunay, bbox BoundingBox, log *logger.ZapLogger) *Diagram {
	if log == nil {
		log = logger.Nop()
	}

	siteCount := d.SiteCount()
	log.Info("[v] Построение диаграммы запущено",
		zap.Int("sites", siteCount),
		zap.Int("triangles", d.TriangleCount()),
		zap.Int("hull", len(d.Hull)),
	)

	v := &Diagram{
		Delaunay: d,
		Cells:    make([]Cell, siteCount),
		BBox:     bbox,
	}

	v.Circumcenters = circumcenters(d.Points, d.Triangles)
	log.Debug("[v] Центры описанных окружностей посчитаны", zap.Int("count", len(v.Circumcenters)/2))

	topo := buildTopology(siteCount, d.Triangles, d.Halfedges)
	closed := 0
	for i := range v.Cells {
		v.Cells[i] = Cell{
			Site:      i,
			Triangles: topo.triangles(i),
			closed:    topo.closed[i],
		}
		if topo.closed[i] {
			closed++
		}
	}
	log.Debug("[v] Топология ячеек собрана", zap.Int("closed", closed), zap.Int("open", siteCount-closed))

	v.rays = hullRays(d, v.Circumcenters, v.Cells)
	log.Debug("[v] Лучи граничных ячеек посчитаны", zap.Int("rays", len(v.rays)))

	log.Info("[v] Диаграмма готова!")
	return v
}

// Cell возвращает ячейку сайта i
func (v *Diagram) Cell(i int) *Cell {
	return &v.Cells[i]
}

// Circumcenter - вершина Вороного треугольника t
func (v *Diagram) Circumcenter(t int) Vertex {
	return Vertex{v.Circumcenters[2*t], v.Circumcenters[2*t+1]}
}

// CellVertices - вершины многоугольника ячейки в порядке циркулятора
func (v *Diagram) CellVertices(i int) []Vertex {
	tris := v.Cells[i].Triangles
	vertices := make([]Vertex, len(tris))
	for k, t := range tris {
		vertices[k] = v.Circumcenter(t)
	}
	return vertices
}

// Rays - лучи в порядке обхода оболочки
func (v *Diagram) Rays() []Vertex {
	return v.rays
}
