// internal/ui/indicator.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-ant-defense/internal/component"
	"go-ant-defense/internal/config"
)

// StateIndicator — кружок цвета текущей фазы. Клик по нему в меню или после поражения начинает игру.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

// PhaseColor — цвет индикатора для фазы.
func PhaseColor(p component.Phase) color.RGBA {
	switch p {
	case component.PhasePlaying:
		return config.PlayingPhaseColor
	case component.PhaseGameOver:
		return config.GameOverColor
	default:
		return config.MenuPhaseColor
	}
}

func (i *StateIndicator) Draw(screen *ebiten.Image, phase component.Phase) {
	r := i.Radius * float32(pulse(i.LastClickTime))
	vector.DrawFilledCircle(screen, i.X, i.Y, r, PhaseColor(phase), true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}

func (i *StateIndicator) IsClicked(x, y int) bool {
	return inCircle(x, y, i.X, i.Y, i.Radius)
}

func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
