package main

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/0x0FACED/go-dual/internal/config"
	"github.com/0x0FACED/go-dual/internal/sites"
	"github.com/0x0FACED/go-dual/pkg/logger"
	"github.com/0x0FACED/go-dual/pkg/voronoi"
	"github.com/0x0FACED/go-dual/static"
	"go.uber.org/zap"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func prepareScatter(scatter *charts.Scatter) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "Диаграмма Вороного (двойственная Делоне)",
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Ширина",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Высота",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// segmentLine - один отрезок как отдельная линия поверх скаттера
func segmentLine(series, color string, x1, y1, x2, y2 float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
	)
	line.AddSeries(series, []opts.LineData{
		{Value: []float64{x1, y1}},
		{Value: []float64{x2, y2}},
	}).SetSeriesOptions(
		charts.WithLineStyleOpts(opts.LineStyle{
			Width: 2,
			Color: color,
		}),
	)
	return line
}

// Преобразуем диаграмму в Echarts: станции, ребра Делоне, ребра и лучи Вороного
func voronoiToEcharts(stations []sites.Station, diagram *voronoi.Diagram, rayLength float64) *charts.Scatter {
	scatter := charts.NewScatter()

	points := make([]opts.ScatterData, 0, len(stations))
	for _, station := range stations {
		points = append(points, opts.ScatterData{
			Value: []float64{station.X, station.Y},
		})
	}

	// Дизайним скаттер
	prepareScatter(scatter)

	scatter.AddSeries("Станции", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	if diagram == nil {
		return scatter
	}

	d := diagram.Delaunay
	for _, s := range append(d.Edges(), d.HullSegments()...) {
		scatter.Overlap(segmentLine("Делоне", "gray", s.X1, s.Y1, s.X2, s.Y2))
	}

	for _, e := range diagram.Edges() {
		if !e.Va.IsFinite() || !e.Vb.IsFinite() {
			continue
		}
		scatter.Overlap(segmentLine("Границы", "orange", e.Va.X, e.Va.Y, e.Vb.X, e.Vb.Y))
	}

	for _, e := range diagram.RayEdges(rayLength) {
		if !e.Va.IsFinite() || !e.Vb.IsFinite() {
			continue
		}
		scatter.Overlap(segmentLine("Лучи", "tomato", e.Va.X, e.Va.Y, e.Vb.X, e.Vb.Y))
	}

	return scatter
}

// diagramConfig - параметры из формы поверх базовых
func diagramConfig(r *http.Request, base config.Diagram) config.Diagram {
	cfg := base
	if r.Method != http.MethodPost {
		return cfg
	}
	if err := r.ParseForm(); err != nil {
		return cfg
	}
	if v, err := strconv.Atoi(r.FormValue("width")); err == nil && v > 0 {
		cfg.Width = v
	}
	if v, err := strconv.Atoi(r.FormValue("height")); err == nil && v > 0 {
		cfg.Height = v
	}
	if v, err := strconv.Atoi(r.FormValue("stations")); err == nil && v >= 0 {
		cfg.Sites = v
	}
	cfg.Random = r.FormValue("random") == "true"
	if cfg.Random {
		if v, err := strconv.ParseInt(r.FormValue("seed"), 10, 64); err == nil {
			cfg.Seed = v
		}
	}
	// файл со станциями только из конфига, не из формы
	return cfg
}

// http обработчик страницы с диаграмой и формой для ввода данных
func diagramHandler(cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dcfg := diagramConfig(r, cfg.Diagram)

		logger := logger.New()
		defer logger.ClearLogs()

		stations, diagram, err := buildDiagram(dcfg, logger)
		if err != nil {
			logger.Error("[app] Диаграмма не построена", zap.Error(err))
		}

		scatter := voronoiToEcharts(stations, diagram, cfg.Render.RayLength)

		fmt.Fprintln(w, static.Part1)

		if err := scatter.Render(w); err != nil {
			logger.Error("[app] Ошибка рендеринга диаграммы", zap.Error(err))
		}

		fmt.Fprintln(w, static.Part2)

		// Вставляем логи в HTML
		for _, log := range logger.Logs {
			fmt.Fprintln(w, log)
		}

		fmt.Fprintln(w, static.Part3)
	}
}

func serve(cfg config.Config) error {
	http.HandleFunc("/", diagramHandler(cfg))
	fmt.Printf("Сервер запущен на http://localhost%s\n", cfg.Server.Addr)
	return http.ListenAndServe(cfg.Server.Addr, nil)
}

