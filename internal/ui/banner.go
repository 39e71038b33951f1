// internal/ui/banner.go
package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-ant-defense/internal/config"
	"go-ant-defense/internal/utils"
	"go-ant-defense/pkg/render"
)

// Banner — крупная надпись по центру сверху: вступление волны, конец игры.
type Banner struct {
	Text string
	life float64
	face font.Face
}

func NewBanner(face font.Face) *Banner {
	return &Banner{face: face}
}

// Show показывает текст заново на config.BannerLife кадров.
func (b *Banner) Show(s string) {
	b.Text = s
	b.life = config.BannerLife
}

// Update уменьшает остаток показа на dt кадров.
func (b *Banner) Update(dt float64) {
	if b.life > 0 {
		b.life -= dt
	}
}

// Opacity — последняя треть показа гаснет.
func (b *Banner) Opacity() float64 {
	if b.life <= 0 {
		return 0
	}
	return utils.Clamp(b.life/(config.BannerLife/3), 0, 1)
}

func (b *Banner) Draw(screen *ebiten.Image) {
	if b.Opacity() == 0 {
		return
	}
	r := image.Rect(0, config.UIMargin+70, config.ScreenWidth, config.UIMargin+110)
	DrawCentered(screen, b.Text, b.face, r, render.Fade(config.RewardTextColor, b.Opacity()))
}
