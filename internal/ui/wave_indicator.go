// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-ant-defense/internal/config"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	OutlineColor     color.Color
	OutlineThickness int
	face             font.Face
}

func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.UIBorderColor,
		OutlineColor:     color.White,
		OutlineThickness: 2,
		face:             face,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// WaveColor: каждая десятая волна красная, босс — розовый.
func (i *WaveIndicator) WaveColor(wave int) color.RGBA {
	switch {
	case wave == config.BossWave:
		return config.BossTextColor
	case wave%10 == 0:
		return config.BreachTextColor
	default:
		return i.Color
	}
}

func (i *WaveIndicator) Draw(screen *ebiten.Image, wave int) {
	if wave <= 0 || i.face == nil {
		return
	}
	label := toRoman(wave)
	x := i.X - text.BoundString(i.face, label).Dx()/2

	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, i.face, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, i.face, x, i.Y, i.WaveColor(wave))
}
