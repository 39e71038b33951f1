// pkg/render/color.go
package render

import (
	"image/color"

	"go-ant-defense/internal/config"
	"go-ant-defense/internal/utils"
)

// FieldColors holds the colors needed to draw the playing field.
type FieldColors struct {
	Background   color.RGBA
	Path         color.RGBA
	Cake         color.RGBA
	TowerBase    color.RGBA
	Enemy        color.RGBA
	SlowedEnemy  color.RGBA
	HealthBack   color.RGBA
	HealthFront  color.RGBA
	InvalidGhost color.RGBA
	PathWidth    float32
}

func DefaultFieldColors() FieldColors {
	return FieldColors{
		Background:   config.BackgroundColor,
		Path:         config.PathColor,
		Cake:         config.CakeColor,
		TowerBase:    config.TowerBaseColor,
		Enemy:        config.EnemyColor,
		SlowedEnemy:  config.SlowedEnemyColor,
		HealthBack:   config.HealthBarBack,
		HealthFront:  config.HealthBarFront,
		InvalidGhost: config.InvalidGhost,
		PathWidth:    40,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Fade гасит цвет до opacity из [0, 1]. color.RGBA премультиплицирован, поэтому масштабируются все каналы.
func Fade(c color.RGBA, opacity float64) color.RGBA {
	if opacity <= 0 {
		return color.RGBA{}
	}
	if opacity >= 1 {
		return c
	}
	k := opacity
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}

// HealthFraction — доля здоровья для полоски, всегда в [0, 1].
func HealthFraction(hp, maxHP float64) float64 {
	if maxHP <= 0 {
		return 0
	}
	return utils.Clamp(hp/maxHP, 0, 1)
}
