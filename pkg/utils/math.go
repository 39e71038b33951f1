// pkg/utils/math.go
package utils

import "math"

// Vec — точка или вектор в мировых координатах (пиксели).
type Vec struct {
	X, Y float64
}

// Add возвращает сумму векторов.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub возвращает разность векторов.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale умножает вектор на скаляр.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Bearing возвращает угол направления from -> to в радианах.
func Bearing(from, to Vec) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// StepToward сдвигает точку на dist вдоль направления на цель.
// Точку назначения не ограничивает: вызывающий сам решает, когда цель достигнута.
func StepToward(from, to Vec, dist float64) Vec {
	angle := Bearing(from, to)
	return Vec{
		X: from.X + math.Cos(angle)*dist,
		Y: from.Y + math.Sin(angle)*dist,
	}
}

// ProjectOntoSegment проецирует p на отрезок ab с параметром t, зажатым в [0, 1].
// Для вырожденного отрезка (a == b) возвращает ok == false.
func ProjectOntoSegment(p, a, b Vec) (proj Vec, t float64, ok bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return a, 0, false
	}
	t = ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return Vec{X: a.X + t*dx, Y: a.Y + t*dy}, t, true
}

// DistanceToSegment — расстояние от p до ближайшей точки отрезка ab.
func DistanceToSegment(p, a, b Vec) (float64, bool) {
	proj, _, ok := ProjectOntoSegment(p, a, b)
	if !ok {
		return 0, false
	}
	return Distance(p, proj), true
}
