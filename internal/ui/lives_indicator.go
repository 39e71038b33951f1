// internal/ui/lives_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	LivesCols          = 5
	LivesCircleRadius  = 8.0
	LivesCircleSpacing = 4.0
)

var (
	livesFull  = color.RGBA{59, 130, 246, 255}
	livesLow   = color.RGBA{239, 68, 68, 255}
	livesEmpty = color.RGBA{0, 0, 0, 255}
)

// LivesIndicator отображает оставшиеся жизни сеткой кружков.
type LivesIndicator struct {
	X, Y float32
	face font.Face
}

func NewLivesIndicator(x, y float32, face font.Face) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y, face: face}
}

// CellColor — цвет j-го кружка. Больше половины — синие, меньше — все красные.
func CellColor(j, lives, maxLives int) color.RGBA {
	if j >= lives {
		return livesEmpty
	}
	if lives <= maxLives/2 {
		return livesLow
	}
	if j < lives-maxLives/2 {
		return livesFull
	}
	return livesLow
}

func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	step := float32(LivesCircleRadius*2 + LivesCircleSpacing)
	for j := 0; j < maxLives; j++ {
		x := i.X + float32(j%LivesCols)*step + LivesCircleRadius
		y := i.Y + float32(j/LivesCols)*step + LivesCircleRadius
		vector.DrawFilledCircle(screen, x, y, LivesCircleRadius, CellColor(j, lives, maxLives), true)
		vector.StrokeCircle(screen, x, y, LivesCircleRadius, 1, color.White, true)
	}

	if i.face != nil {
		label := strconv.Itoa(lives) + "/" + strconv.Itoa(maxLives)
		width := text.BoundString(i.face, label).Dx()
		text.Draw(screen, label, i.face, int(i.X+(LivesCols*step-float32(width))/2), int(i.Y)-8, color.White)
	}
}
