package delaunay

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	ops []string
}

func (r *recorder) MoveTo(x, y float64) { r.ops = append(r.ops, fmt.Sprintf("M%g,%g", x, y)) }
func (r *recorder) LineTo(x, y float64) { r.ops = append(r.ops, fmt.Sprintf("L%g,%g", x, y)) }
func (r *recorder) ClosePath()          { r.ops = append(r.ops, "Z") }

func TestRenderSquare(t *testing.T) {
	d, err := FromTriangles(squarePoints, squareTriangles)
	require.NoError(t, err)

	r := &recorder{}
	d.Render(r)
	assert.Equal(t, []string{
		// the diagonal, once
		"M0,0", "L1,1",
		// hull
		"M1,1", "L1,0",
		"M1,0", "L0,0",
		"M0,0", "L0,1",
		"M0,1", "L1,1",
	}, r.ops)
}

func TestRenderTriangle(t *testing.T) {
	d, err := FromTriangles(squarePoints, squareTriangles)
	require.NoError(t, err)

	r := &recorder{}
	d.RenderTriangle(1, r)
	assert.Equal(t, []string{"M0,0", "L0,1", "L1,1", "Z"}, r.ops)
}

func TestEdgesFan(t *testing.T) {
	d, err := FromTriangles(fanPoints, fanTriangles)
	require.NoError(t, err)

	assert.Len(t, d.Edges(), 4)
	assert.Len(t, d.HullSegments(), 4)
	for _, s := range d.Edges() {
		// every interior edge touches the centre
		assert.True(t, s.X1 == 0.5 && s.Y1 == 0.5 || s.X2 == 0.5 && s.Y2 == 0.5, "%+v", s)
	}
}
