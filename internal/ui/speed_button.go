// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton — кнопка «перемотки»: цвет показывает текущий множитель скорости.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.RGBA
	CurrentState   int
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

// pulse — короткое увеличение после клика.
func pulse(since time.Time) float64 {
	elapsed := time.Since(since).Seconds()
	return 1.0 + 0.3*math.Exp(-elapsed*8)
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	triangleSize := b.Size * float32(pulse(b.LastClickTime))
	c := b.StateColors[b.CurrentState]

	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	// Левый и правый треугольники
	drawTriangle(screen, b.X-width, b.Y-height/2, b.X, b.Y, b.X-width, b.Y+height/2, c)
	drawTriangle(screen, b.X-width+offset, b.Y-height/2, b.X+offset, b.Y, b.X-width+offset, b.Y+height/2, c)
}

// IsClicked — попадание в круг вокруг кнопки, форма у неё сложная.
func (b *SpeedButton) IsClicked(x, y int) bool {
	return inCircle(x, y, b.X, b.Y, b.Size*1.5)
}

// ToggleState переключает цвет на следующий.
func (b *SpeedButton) ToggleState() {
	b.SetState(b.CurrentState + 1)
	b.LastClickTime = time.Now()
	b.LastToggleTime = b.LastClickTime
}

// SetState выставляет цвет по индексу скорости, по кругу.
func (b *SpeedButton) SetState(index int) {
	if len(b.StateColors) == 0 {
		return
	}
	b.CurrentState = ((index % len(b.StateColors)) + len(b.StateColors)) % len(b.StateColors)
}

func drawTriangle(screen *ebiten.Image, x1, y1, x2, y2, x3, y3 float32, c color.RGBA) {
	var p vector.Path
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	p.LineTo(x3, y3)
	p.Close()
	fillPath(screen, &p, c)
	strokePath(screen, &p, 1, color.RGBA{255, 255, 255, 255})
}

func inCircle(x, y int, cx, cy, r float32) bool {
	dx := float32(x) - cx
	dy := float32(y) - cy
	return dx*dx+dy*dy <= r*r
}
