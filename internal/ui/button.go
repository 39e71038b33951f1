// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-ant-defense/internal/config"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.Color
	BgColor    color.RGBA
	HoverColor color.RGBA
	Face       font.Face
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, face font.Face) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  config.TextLightColor,
		BgColor:    config.UIPanelColor,
		HoverColor: config.UIBorderColor,
		Face:       face,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку. hovered — курсор над кнопкой.
func (b *Button) Draw(screen *ebiten.Image, hovered bool) {
	bg := b.BgColor
	if hovered {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, config.UIBorderColor, true)

	DrawCentered(screen, b.Text, b.Face, b.Rect, b.TextColor)
}

// DrawCentered рисует строку по центру прямоугольника.
func DrawCentered(screen *ebiten.Image, s string, face font.Face, r image.Rectangle, clr color.Color) {
	if face == nil || s == "" {
		return
	}
	bounds := text.BoundString(face, s)
	x := r.Min.X + (r.Dx()-bounds.Dx())/2
	y := r.Min.Y + (r.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, s, face, x, y, clr)
}
