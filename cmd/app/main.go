package main

import (
	"fmt"
	"os"

	"github.com/0x0FACED/go-dual/internal/config"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app        = kingpin.New("go-dual", "Диаграмма Вороного как двойственный граф триангуляции Делоне.")
	configPath = app.Flag("config", "YAML файл настроек.").Short('c').String()
	width      = app.Flag("width", "Ширина области.").Int()
	height     = app.Flag("height", "Высота области.").Int()
	numSites   = app.Flag("sites", "Количество станций.").Short('n').Int()
	random     = app.Flag("random", "Случайные станции вместо сетки.").Bool()
	seed       = app.Flag("seed", "Seed для случайных станций.").Int64()
	pointsFile = app.Flag("points", "YAML файл со станциями.").String()

	serveCmd = app.Command("serve", "HTTP сервер с формой и диаграммой.").Default()
	addr     = serveCmd.Flag("addr", "Адрес сервера.").String()

	renderCmd = app.Command("render", "Нарисовать диаграмму в PNG.")
	output    = renderCmd.Flag("out", "Куда сохранить PNG.").Short('o').String()
	scale     = renderCmd.Flag("scale", "Масштаб картинки.").Float64()
	rayLength = renderCmd.Flag("ray-length", "Длина отрезков лучей.").Float64()
	imgcatOut = renderCmd.Flag("imgcat", "Показать картинку в терминале (iTerm2).").Bool()
)

// applyFlags - флаги перекрывают то, что пришло из файла
func applyFlags(cfg *config.Config) {
	if *width > 0 {
		cfg.Diagram.Width = *width
	}
	if *height > 0 {
		cfg.Diagram.Height = *height
	}
	if *numSites > 0 {
		cfg.Diagram.Sites = *numSites
	}
	if *random {
		cfg.Diagram.Random = true
	}
	if *seed != 0 {
		cfg.Diagram.Seed = *seed
	}
	if *pointsFile != "" {
		cfg.Diagram.PointsFile = *pointsFile
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *output != "" {
		cfg.Render.Output = *output
	}
	if *scale > 0 {
		cfg.Render.Scale = *scale
	}
	if *rayLength > 0 {
		cfg.Render.RayLength = *rayLength
	}
	if *imgcatOut {
		cfg.Render.Imgcat = true
	}
}

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := config.Load(*configPath)
	app.FatalIfError(err, "")
	applyFlags(&cfg)
	app.FatalIfError(cfg.Validate(), "")

	switch command {
	case serveCmd.FullCommand():
		err = serve(cfg)
	case renderCmd.FullCommand():
		err = render(cfg)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Ошибка:", err)
		os.Exit(1)
	}
}
