package voronoi

import "math"

// Vertex - точка на плоскости (вершина Вороного) или вектор луча
type Vertex struct {
	X float64
	Y float64
}

// IsFinite - у вырожденного треугольника центр уходит в Inf или NaN
func (v Vertex) IsFinite() bool {
	return !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0) && !math.IsNaN(v.X) && !math.IsNaN(v.Y)
}

// Прямоугольник, которым потом обрезают ячейки (обрезка делается снаружи)
type BoundingBox struct {
	Xl, Xr, Yt, Yb float64
}

func NewBoundingBox(xl, xr, yt, yb float64) BoundingBox {
	return BoundingBox{xl, xr, yt, yb}
}

// DefaultBoundingBox - [0, 0, 960, 500]
var DefaultBoundingBox = NewBoundingBox(0, 960, 0, 500)

func (b BoundingBox) Width() float64 {
	return b.Xr - b.Xl
}

func (b BoundingBox) Height() float64 {
	return b.Yb - b.Yt
}
