package sites

import (
	"math"
	"math/rand"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Station - сайт диаграммы
type Station struct {
	X, Y float64
}

// Random генерирует случайные станции. Одинаковый seed дает одинаковый набор.
func Random(n int, width, height int, seed int64) []Station {
	r := rand.New(rand.NewSource(seed))
	stations := make([]Station, n)
	for i := 0; i < n; i++ {
		stations[i] = Station{
			X: float64(r.Intn(width)),
			Y: float64(r.Intn(height)),
		}
	}
	return stations
}

// Grid раскладывает станции по сетке в центрах клеток
func Grid(n int, width, height int) []Station {
	if n <= 0 {
		return nil
	}
	stations := make([]Station, 0, n)

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := float64(width) / float64(cols)
	yStep := float64(height) / float64(rows)

	for i := 0; i < rows && len(stations) < n; i++ {
		for j := 0; j < cols && len(stations) < n; j++ {
			// в нечетных строках сдвигаем на полшага, иначе все четверки
			// соседей лежат на одной окружности
			shift := 0.0
			if i%2 == 1 {
				shift = xStep / 4
			}
			stations = append(stations, Station{
				X: xStep/2 + float64(j)*xStep + shift,
				Y: yStep/2 + float64(i)*yStep,
			})
		}
	}

	return stations
}

// Flatten переводит станции в плоский массив x, y
func Flatten(stations []Station) []float64 {
	points := make([]float64, 0, 2*len(stations))
	for _, s := range stations {
		points = append(points, s.X, s.Y)
	}
	return points
}

type pointsFile struct {
	Points [][2]float64 `yaml:"points"`
}

// Load читает станции из YAML:
//
//	points:
//	  - [0, 0]
//	  - [10, 5]
func Load(path string) ([]Station, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read points file %s", path)
	}
	return Parse(raw)
}

func Parse(raw []byte) ([]Station, error) {
	var f pointsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrap(err, "parse points")
	}
	stations := make([]Station, len(f.Points))
	for i, p := range f.Points {
		stations[i] = Station{X: p[0], Y: p[1]}
	}
	return stations, nil
}
