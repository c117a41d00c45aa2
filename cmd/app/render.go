package main

import (
	"os"

	"github.com/0x0FACED/go-dual/internal/config"
	"github.com/0x0FACED/go-dual/pkg/logger"
	"github.com/0x0FACED/go-dual/pkg/voronoi"
	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// drawDiagram рисует станции, триангуляцию, ребра и лучи Вороного
func drawDiagram(diagram *voronoi.Diagram, rcfg config.Render) *gg.Context {
	bbox := diagram.BBox
	width := int(bbox.Width() * rcfg.Scale)
	height := int(bbox.Height() * rcfg.Scale)

	c := gg.NewContext(width, height)
	c.SetRGB(0.12, 0.12, 0.12)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Scale(rcfg.Scale, rcfg.Scale)
	c.Translate(-bbox.Xl, -bbox.Yt)
	c.SetLineWidth(1)

	d := diagram.Delaunay
	d.Render(c)
	c.SetRGBA(0.6, 0.6, 0.6, 0.6)
	c.Stroke()

	diagram.Render(c)
	diagram.RenderRays(c, rcfg.RayLength)
	c.SetRGB(1, 0.65, 0)
	c.Stroke()

	c.SetRGB(0.56, 0.93, 0.56)
	for i := 0; i < d.SiteCount(); i++ {
		x, y := d.Point(i)
		c.DrawCircle(x, y, 2.5/rcfg.Scale)
		c.Fill()
	}

	return c
}

func render(cfg config.Config) error {
	log := logger.New(os.Stderr)
	defer log.Sync()

	_, diagram, err := buildDiagram(cfg.Diagram, log)
	if err != nil {
		return err
	}

	c := drawDiagram(diagram, cfg.Render)
	if err := c.SavePNG(cfg.Render.Output); err != nil {
		return errors.Wrapf(err, "save %s", cfg.Render.Output)
	}
	log.Info("[app] Картинка сохранена", zap.String("path", cfg.Render.Output))

	if cfg.Render.Imgcat {
		imgcat.CatFile(cfg.Render.Output, os.Stdout)
	}
	return nil
}
