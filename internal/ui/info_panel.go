// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-ant-defense/internal/config"
	"go-ant-defense/internal/defs"
)

const (
	panelWidth     = 220
	panelHeight    = 150
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 20
)

// InfoPanel выезжает справа и показывает характеристики выбранной башни.
type InfoPanel struct {
	IsVisible bool
	Target    defs.TowerDefinition
	face      font.Face
	titleFace font.Face
	currentX  float64
	targetX   float64
}

func NewInfoPanel(face, titleFace font.Face) *InfoPanel {
	return &InfoPanel{
		face:      face,
		titleFace: titleFace,
		currentX:  config.ScreenWidth,
		targetX:   config.ScreenWidth,
	}
}

func (p *InfoPanel) SetTarget(def defs.TowerDefinition) {
	p.Target = def
	p.IsVisible = true
	p.targetX = config.ScreenWidth - panelWidth
}

func (p *InfoPanel) Hide() {
	p.targetX = config.ScreenWidth
}

// Update двигает панель к цели на animationSpeed пикселей за кадр.
func (p *InfoPanel) Update() {
	if p.currentX == p.targetX {
		return
	}
	diff := p.targetX - p.currentX
	switch {
	case diff > -animationSpeed && diff < animationSpeed:
		p.currentX = p.targetX
	case diff > 0:
		p.currentX += animationSpeed
	default:
		p.currentX -= animationSpeed
	}
	if p.currentX >= config.ScreenWidth {
		p.IsVisible = false
	}
}

// Contains — клик пришёлся на видимую панель.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && image.Pt(x, y).In(p.rect())
}

func (p *InfoPanel) rect() image.Rectangle {
	top := config.UIMargin + 60
	return image.Rect(int(p.currentX)+panelMargin, top, int(p.currentX)+panelWidth-panelMargin, top+panelHeight)
}

// TowerLines — строки описания башни.
func TowerLines(def defs.TowerDefinition) []string {
	lines := []string{
		fmt.Sprintf("Cost: $%d", def.Cost),
		fmt.Sprintf("Damage: %g", def.Damage),
		fmt.Sprintf("Fire Rate: %.1f/s", config.FPS/def.Cooldown),
		fmt.Sprintf("Range: %g", def.Range),
	}
	if def.Projectile.AreaOfEffect > 0 {
		lines = append(lines, fmt.Sprintf("Splash: %g", def.Projectile.AreaOfEffect))
	}
	if def.Projectile.Effect != defs.EffectNone {
		lines = append(lines, fmt.Sprintf("Effect: %s", def.Projectile.Effect))
	}
	return lines
}

func (p *InfoPanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible || p.face == nil {
		return
	}
	r := p.rect()
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.UIPanelColor, true)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, config.UIBorderColor, true)

	x, y := r.Min.X+15, r.Min.Y+15+lineHeight/2
	text.Draw(screen, p.Target.Name, p.titleFace, x, y, p.Target.Visuals.Color)
	for _, line := range TowerLines(p.Target) {
		y += lineHeight
		text.Draw(screen, line, p.face, x, y, config.TextLightColor)
	}
}
