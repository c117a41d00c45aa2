package main

import (
	"github.com/0x0FACED/go-dual/internal/config"
	"github.com/0x0FACED/go-dual/internal/sites"
	"github.com/0x0FACED/go-dual/internal/triangulate"
	"github.com/0x0FACED/go-dual/pkg/logger"
	"github.com/0x0FACED/go-dual/pkg/voronoi"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// stationsFor - станции из файла или сгенерированные по параметрам
func stationsFor(cfg config.Diagram) ([]sites.Station, error) {
	if cfg.PointsFile != "" {
		return sites.Load(cfg.PointsFile)
	}
	if cfg.Random {
		return sites.Random(cfg.Sites, cfg.Width, cfg.Height, cfg.Seed), nil
	}
	return sites.Grid(cfg.Sites, cfg.Width, cfg.Height), nil
}

// buildDiagram - станции -> триангуляция -> диаграмма
func buildDiagram(cfg config.Diagram, log *logger.ZapLogger) ([]sites.Station, *voronoi.Diagram, error) {
	stations, err := stationsFor(cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Info("[app] Станции готовы", zap.Int("count", len(stations)), zap.Bool("random", cfg.Random))

	d, err := triangulate.Triangulate(sites.Flatten(stations))
	if err != nil {
		return stations, nil, errors.Wrap(err, "triangulate")
	}
	log.Info("[app] Триангуляция построена", zap.Int("triangles", d.TriangleCount()), zap.Int("hull", len(d.Hull)))

	bbox := voronoi.NewBoundingBox(0, float64(cfg.Width), 0, float64(cfg.Height))
	return stations, voronoi.CreateDiagram(d, bbox, log), nil
}
