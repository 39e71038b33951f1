// internal/termview/view.go
package termview

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"go-ant-defense/internal/app"
	"go-ant-defense/internal/component"
	"go-ant-defense/internal/config"
	"go-ant-defense/internal/defs"
	"go-ant-defense/pkg/route"
	"go-ant-defense/pkg/utils"
)

// HUDRows — строки под полем: счётчики и сообщение.
const HUDRows = 2

const (
	PathRune       = '·'
	CakeRune       = '@'
	EnemyRune      = 'a'
	BossRune       = 'A'
	ProjectileRune = '*'
	ParticleRune   = '.'
)

var towerRunes = map[defs.TowerType]rune{
	defs.TowerBasic:  'T',
	defs.TowerRapid:  'R',
	defs.TowerIce:    'I',
	defs.TowerSniper: 'S',
	defs.TowerBlast:  'B',
	defs.TowerFire:   'F',
}

// TowerRune — символ башни на поле.
func TowerRune(t defs.TowerType) rune {
	if r, ok := towerRunes[t]; ok {
		return r
	}
	return '?'
}

// HUD — то, чего нет в снимке ядра: счётчики живут у хоста.
type HUD struct {
	Currency int
	Lives    int
	Wave     int
	Message  string
}

// View рисует снимок симуляции ASCII-символами.
type View struct {
	screen tcell.Screen
}

func New(screen tcell.Screen) *View {
	return &View{screen: screen}
}

// Field — размер поля в ячейках.
func (v *View) Field() (cols, rows int) {
	w, h := v.screen.Size()
	rows = h - HUDRows
	if rows < 1 {
		rows = 1
	}
	if w < 1 {
		w = 1
	}
	return w, rows
}

// Cell переводит мировую точку в ячейку поля.
func (v *View) Cell(p utils.Vec, vp route.Viewport) (x, y int, ok bool) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return 0, 0, false
	}
	cols, rows := v.Field()
	x = int(p.X / vp.Width * float64(cols))
	y = int(p.Y / vp.Height * float64(rows))
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return x, y, false
	}
	return x, y, true
}

// Render очищает экран, рисует снимок и HUD и показывает кадр.
func (v *View) Render(s app.Snapshot, hud HUD) {
	v.screen.Clear()

	v.drawPath(s.Path, s.Viewport)
	for _, p := range s.Particles {
		if p.Opacity() > 0.3 {
			v.put(p.Pos, s.Viewport, ParticleRune, style(p.Color))
		}
	}
	for _, t := range s.Towers {
		v.put(t.Pos, s.Viewport, TowerRune(t.Type), style(config.TextLightColor).Bold(true))
	}
	for _, e := range s.Enemies {
		v.put(e.Pos, s.Viewport, enemyRune(e), style(enemyColor(e)))
	}
	for _, p := range s.Projectiles {
		v.put(p.Pos, s.Viewport, ProjectileRune, style(p.Color))
	}
	for _, t := range s.Texts {
		if x, y, ok := v.Cell(t.Pos, s.Viewport); ok {
			v.text(x, y, t.Text, style(t.Color))
		}
	}

	v.drawHUD(s, hud)
	v.screen.Show()
}

func (v *View) drawPath(path []utils.Vec, vp route.Viewport) {
	if len(path) == 0 {
		return
	}
	cols, rows := v.Field()
	// Шаг в полклетки, чтобы линия шла без дыр.
	step := math.Min(vp.Width/float64(cols), vp.Height/float64(rows)) / 2
	pathStyle := style(config.PathColor)
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		length := utils.Distance(a, b)
		for d := 0.0; d <= length; d += step {
			v.put(utils.StepToward(a, b, d), vp, PathRune, pathStyle)
		}
	}
	v.put(path[len(path)-1], vp, CakeRune, style(config.CakeColor).Bold(true))
}

func (v *View) drawHUD(s app.Snapshot, hud HUD) {
	w, h := v.screen.Size()
	line := fmt.Sprintf("$%d  ♥%d  Wave %d/%d  x%g  %s", hud.Currency, hud.Lives, hud.Wave, config.MaxWaves, s.Speed, s.Phase)
	if s.Wave.EnemiesToSpawn > 0 {
		line += fmt.Sprintf("  +%d", s.Wave.EnemiesToSpawn)
	}
	hudStyle := style(config.TextLightColor)
	v.text(0, h-HUDRows, clip(line, w), hudStyle)
	v.text(0, h-1, clip(hud.Message, w), style(config.RewardTextColor))
}

func (v *View) put(p utils.Vec, vp route.Viewport, r rune, st tcell.Style) {
	if x, y, ok := v.Cell(p, vp); ok {
		v.screen.SetContent(x, y, r, nil, st)
	}
}

func (v *View) text(x, y int, s string, st tcell.Style) {
	w, _ := v.screen.Size()
	for _, r := range s {
		if x >= w {
			return
		}
		if x >= 0 {
			v.screen.SetContent(x, y, r, nil, st)
		}
		x++
	}
}

func enemyRune(e component.Enemy) rune {
	if e.IsBoss {
		return BossRune
	}
	return EnemyRune
}

// enemyColor: замедленные голубые, раненые краснеют.
func enemyColor(e component.Enemy) color.RGBA {
	if e.Slowed() {
		return config.SlowedEnemyColor
	}
	if e.MaxHP > 0 && e.HP/e.MaxHP < 0.5 {
		return config.HealthBarBack
	}
	return config.HealthBarFront
}

func style(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Background(tcell.ColorReset)
}

func clip(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width])
	}
	return s
}

// World — центр ячейки в мировых координатах, обратное к Cell.
func (v *View) World(x, y int, vp route.Viewport) utils.Vec {
	cols, rows := v.Field()
	return utils.Vec{
		X: (float64(x) + 0.5) * vp.Width / float64(cols),
		Y: (float64(y) + 0.5) * vp.Height / float64(rows),
	}
}
