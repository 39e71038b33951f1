// pkg/render/field_renderer.go
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-ant-defense/internal/app"
	"go-ant-defense/internal/component"
	"go-ant-defense/internal/config"
	"go-ant-defense/internal/defs"
	"go-ant-defense/pkg/route"
	"go-ant-defense/pkg/utils"
)

const (
	EnemyRadius     = 6.0
	HealthBarWidth  = 20.0
	HealthBarHeight = 3.0
	CakeRadius      = 22.0
	BarrelLength    = 18.0
)

// Ghost — башня под курсором до постройки.
type Ghost struct {
	Pos   utils.Vec
	Type  defs.TowerType
	Valid bool
}

// FieldRenderer рисует поле по снимку симуляции.
// Маршрут рендерится в отдельную картинку и перерисовывается только при смене.
type FieldRenderer struct {
	lib    defs.Library
	colors FieldColors
	face   font.Face

	fillImg   *ebiten.Image
	vs        []ebiten.Vertex
	is        []uint16
	pathImage *ebiten.Image
	pathKey   string
}

func NewFieldRenderer(lib defs.Library, face font.Face, colors FieldColors) *FieldRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &FieldRenderer{
		lib:     lib,
		colors:  colors,
		face:    face,
		fillImg: fillImg,
		vs:      make([]ebiten.Vertex, 0, 64),
		is:      make([]uint16, 0, 96),
	}
}

// PathKey — подпись маршрута для кеша картинки.
func PathKey(path []utils.Vec, vp route.Viewport) string {
	return fmt.Sprint(vp, path)
}

// Draw рисует всё поле: фон, маршрут, торт, башни, врагов, снаряды, частицы и тексты.
func (r *FieldRenderer) Draw(screen *ebiten.Image, s app.Snapshot, ghost *Ghost) {
	screen.Fill(r.colors.Background)

	if key := PathKey(s.Path, s.Viewport); key != r.pathKey || r.pathImage == nil {
		r.renderPathImage(s.Path, s.Viewport)
		r.pathKey = key
	}
	screen.DrawImage(r.pathImage, nil)

	for i := range s.Towers {
		r.drawTower(screen, &s.Towers[i])
	}
	for i := range s.Enemies {
		r.drawEnemy(screen, &s.Enemies[i])
	}
	for _, p := range s.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius), p.Color, true)
	}
	for i := range s.Particles {
		p := &s.Particles[i]
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Size), Fade(p.Color, p.Opacity()), true)
	}
	for i := range s.Texts {
		t := &s.Texts[i]
		bounds := text.BoundString(r.face, t.Text)
		text.Draw(screen, t.Text, r.face, int(t.Pos.X)-bounds.Dx()/2, int(t.Pos.Y), Fade(t.Color, t.Opacity()))
	}

	if ghost != nil {
		r.drawGhost(screen, ghost)
	}
}

// renderPathImage рисует дорогу и торт на её конце.
func (r *FieldRenderer) renderPathImage(path []utils.Vec, vp route.Viewport) {
	w, h := int(math.Max(1, vp.Width)), int(math.Max(1, vp.Height))
	if r.pathImage == nil || r.pathImage.Bounds().Dx() != w || r.pathImage.Bounds().Dy() != h {
		r.pathImage = ebiten.NewImage(w, h)
	}
	r.pathImage.Clear()
	if len(path) < 2 {
		return
	}

	p := vector.Path{}
	p.MoveTo(float32(path[0].X), float32(path[0].Y))
	for _, pt := range path[1:] {
		p.LineTo(float32(pt.X), float32(pt.Y))
	}
	r.vs, r.is = p.AppendVerticesAndIndicesForStroke(r.vs[:0], r.is[:0], &vector.StrokeOptions{
		Width:    r.colors.PathWidth,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	r.drawVertices(r.pathImage, r.colors.Path)

	cake := path[len(path)-1]
	cx, cy := float32(cake.X), float32(cake.Y)
	vector.DrawFilledCircle(r.pathImage, cx, cy, CakeRadius, r.colors.Cake, true)
	vector.DrawFilledCircle(r.pathImage, cx, cy, CakeRadius*0.55, color.RGBA{255, 255, 255, 255}, true)
	vector.DrawFilledCircle(r.pathImage, cx, cy-CakeRadius*0.2, 4, config.BreachTextColor, true)
}

func (r *FieldRenderer) drawVertices(target *ebiten.Image, c color.RGBA) {
	for i := range r.vs {
		r.vs[i].SrcX = 0
		r.vs[i].SrcY = 0
		r.vs[i].ColorR = float32(c.R) / 255
		r.vs[i].ColorG = float32(c.G) / 255
		r.vs[i].ColorB = float32(c.B) / 255
		r.vs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(r.vs, r.is, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *FieldRenderer) towerColor(t defs.TowerType) color.RGBA {
	if def, ok := r.lib.Lookup(t); ok {
		return def.Visuals.Color
	}
	return config.TextLightColor
}

func (r *FieldRenderer) drawTower(screen *ebiten.Image, t *component.Tower) {
	x, y := float32(t.Pos.X), float32(t.Pos.Y)
	c := r.towerColor(t.Type)
	vector.DrawFilledCircle(screen, x, y, config.TowerBaseRadius, r.colors.TowerBase, true)
	vector.StrokeCircle(screen, x, y, config.TowerBaseRadius, 2, c, true)

	end := BarrelEnd(t.Pos, t.Angle)
	vector.StrokeLine(screen, x, y, float32(end.X), float32(end.Y), 6, DarkenColor(c), true)
	vector.DrawFilledCircle(screen, x, y, 7, c, true)
}

// BarrelEnd — конец ствола башни, повёрнутой на angle.
func BarrelEnd(pos utils.Vec, angle float64) utils.Vec {
	return utils.Vec{X: pos.X + math.Cos(angle)*BarrelLength, Y: pos.Y + math.Sin(angle)*BarrelLength}
}

func (r *FieldRenderer) drawEnemy(screen *ebiten.Image, e *component.Enemy) {
	body := r.colors.Enemy
	if e.Slowed() {
		body = r.colors.SlowedEnemy
	}
	radius := float32(EnemyRadius * e.Scale)
	x, y := float32(e.Pos.X), float32(e.Pos.Y)
	// Муравей: брюшко и голова.
	vector.DrawFilledCircle(screen, x-radius*0.6, y, radius, body, true)
	vector.DrawFilledCircle(screen, x+radius*0.8, y, radius*0.6, body, true)

	bx, by, bw, bh, filled := HealthBar(e)
	vector.DrawFilledRect(screen, bx, by, bw, bh, r.colors.HealthBack, false)
	vector.DrawFilledRect(screen, bx, by, filled, bh, r.colors.HealthFront, false)
}

// HealthBar — прямоугольник полоски здоровья над врагом и ширина заполненной части.
func HealthBar(e *component.Enemy) (x, y, w, h, filled float32) {
	scale := e.Scale
	if scale <= 0 {
		scale = 1
	}
	w = float32(HealthBarWidth * scale)
	h = HealthBarHeight
	x = float32(e.Pos.X) - w/2
	y = float32(e.Pos.Y-EnemyRadius*scale) - 6
	filled = w * float32(HealthFraction(e.HP, e.MaxHP))
	return x, y, w, h, filled
}

func (r *FieldRenderer) drawGhost(screen *ebiten.Image, g *Ghost) {
	def, ok := r.lib.Lookup(g.Type)
	if !ok {
		return
	}
	c := def.Visuals.Color
	if !g.Valid {
		c = r.colors.InvalidGhost
	}
	x, y := float32(g.Pos.X), float32(g.Pos.Y)
	vector.DrawFilledCircle(screen, x, y, float32(def.Range), Fade(c, 0.15), true)
	vector.StrokeCircle(screen, x, y, float32(def.Range), 1, Fade(c, 0.6), true)
	vector.DrawFilledCircle(screen, x, y, config.TowerBaseRadius, Fade(c, 0.5), true)
}
