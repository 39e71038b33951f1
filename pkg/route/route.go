// pkg/route/route.go
package route

import (
	"errors"
	"fmt"
	"math"

	"go-ant-defense/pkg/utils"
)

var (
	ErrTooFewWaypoints    = errors.New("route: at least two waypoints required")
	ErrWaypointOutOfRange = errors.New("route: waypoint outside normalized range")
)

// Viewport — размер игрового поля в пикселях, на который масштабируется маршрут.
type Viewport struct {
	Width, Height float64
}

// Scale переводит нормализованную точку (0..1) в мировые координаты.
func (v Viewport) Scale(p utils.Vec) utils.Vec {
	return utils.Vec{X: p.X * v.Width, Y: p.Y * v.Height}
}

// Contains — лежит ли точка внутри поля, включая края. NaN и бесконечности не лежат нигде.
func (v Viewport) Contains(p utils.Vec) bool {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return false
	}
	return p.X >= 0 && p.X <= v.Width && p.Y >= 0 && p.Y <= v.Height
}

// Route — упорядоченная последовательность путевых точек.
// Точки хранятся нормализованными и масштабируются под viewport при каждом запросе,
// поэтому симуляция не зависит от разрешения.
type Route struct {
	name   string
	points []utils.Vec
}

// New проверяет и копирует точки маршрута.
func New(name string, points []utils.Vec) (*Route, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewWaypoints, len(points))
	}
	cp := make([]utils.Vec, len(points))
	for i, p := range points {
		if !inUnit(p.X) || !inUnit(p.Y) {
			return nil, fmt.Errorf("%w: point %d = (%g, %g)", ErrWaypointOutOfRange, i, p.X, p.Y)
		}
		cp[i] = p
	}
	return &Route{name: name, points: cp}, nil
}

func inUnit(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

func (r *Route) Name() string { return r.name }

// Len — количество путевых точек.
func (r *Route) Len() int { return len(r.points) }

// SegmentCount — количество отрезков между соседними точками.
func (r *Route) SegmentCount() int { return len(r.points) - 1 }

// WaypointAt возвращает i-ю точку в мировых координатах.
func (r *Route) WaypointAt(i int, vp Viewport) (utils.Vec, bool) {
	if i < 0 || i >= len(r.points) {
		return utils.Vec{}, false
	}
	return vp.Scale(r.points[i]), true
}

// Waypoints возвращает все точки маршрута в мировых координатах.
func (r *Route) Waypoints(vp Viewport) []utils.Vec {
	out := make([]utils.Vec, len(r.points))
	for i, p := range r.points {
		out[i] = vp.Scale(p)
	}
	return out
}

// NearestDistance — минимальное расстояние от точки до любого отрезка маршрута.
// Вырожденные отрезки пропускаются.
func (r *Route) NearestDistance(p utils.Vec, vp Viewport) float64 {
	best := math.Inf(1)
	for i := 0; i < len(r.points)-1; i++ {
		a := vp.Scale(r.points[i])
		b := vp.Scale(r.points[i+1])
		if d, ok := utils.DistanceToSegment(p, a, b); ok && d < best {
			best = d
		}
	}
	return best
}
