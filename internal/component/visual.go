// internal/component/visual.go
package component

import (
	"image/color"

	"go-ant-defense/pkg/utils"
)

// Particle — частица взрыва. Чисто визуальная, затухает со временем.
type Particle struct {
	Base
	Pos      utils.Vec
	Velocity utils.Vec
	Life     float64
	MaxLife  float64
	Color    color.RGBA
	Size     float64
}

// FloatingText — всплывающая надпись (награда, потеря жизни).
type FloatingText struct {
	Base
	Pos      utils.Vec
	Velocity utils.Vec
	Life     float64
	MaxLife  float64
	Color    color.RGBA
	Text     string
}

// Opacity — прозрачность для отрисовки, life/maxLife.
func (p *Particle) Opacity() float64 { return opacity(p.Life, p.MaxLife) }

func (t *FloatingText) Opacity() float64 { return opacity(t.Life, t.MaxLife) }

func opacity(life, maxLife float64) float64 {
	if maxLife <= 0 || life <= 0 {
		return 0
	}
	if life >= maxLife {
		return 1
	}
	return life / maxLife
}
