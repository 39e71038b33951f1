// internal/ui/tower_picker.go
package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-ant-defense/internal/config"
	"go-ant-defense/internal/defs"
)

// TowerPicker — ряд кнопок башен внизу экрана. Неподъёмные по цене затемнены.
type TowerPicker struct {
	defs     []defs.TowerDefinition
	buttons  []*Button
	Selected defs.TowerType
	hasSel   bool
}

func NewTowerPicker(lib defs.Library, face font.Face) *TowerPicker {
	all := lib.All()
	p := &TowerPicker{defs: all}
	size := config.PickerButtonSize
	gap := 8
	total := len(all)*size + (len(all)-1)*gap
	x0 := (config.ScreenWidth - total) / 2
	y0 := config.ScreenHeight - size - config.UIMargin
	for i, def := range all {
		x := x0 + i*(size+gap)
		b := NewButton(image.Rect(x, y0, x+size, y0+size), fmt.Sprintf("%d $%d", i+1, def.Cost), face)
		p.buttons = append(p.buttons, b)
	}
	return p
}

// Select выбирает тип, повторный выбор того же снимает выделение.
func (p *TowerPicker) Select(t defs.TowerType) {
	if p.hasSel && p.Selected == t {
		p.hasSel = false
		return
	}
	p.Selected = t
	p.hasSel = t.Valid()
}

func (p *TowerPicker) Clear() { p.hasSel = false }

// Current — выбранный тип, если он есть.
func (p *TowerPicker) Current() (defs.TowerType, bool) {
	return p.Selected, p.hasSel
}

// HitTest — тип башни под точкой.
func (p *TowerPicker) HitTest(x, y int) (defs.TowerType, bool) {
	for i, b := range p.buttons {
		if b.Contains(x, y) {
			return p.defs[i].Type, true
		}
	}
	return 0, false
}

func (p *TowerPicker) Draw(screen *ebiten.Image, currency, hoverX, hoverY int) {
	for i, b := range p.buttons {
		def := p.defs[i]
		switch {
		case p.hasSel && p.Selected == def.Type:
			b.BgColor = config.UISelectedColor
		case def.Cost > currency:
			b.BgColor = config.UIDisabledColor
		default:
			b.BgColor = config.UIPanelColor
		}
		b.Draw(screen, b.Contains(hoverX, hoverY))

		cx := float32(b.Rect.Min.X + b.Rect.Dx()/2)
		cy := float32(b.Rect.Min.Y + 14)
		vector.DrawFilledCircle(screen, cx, cy, 8, def.Visuals.Color, true)
	}
}
