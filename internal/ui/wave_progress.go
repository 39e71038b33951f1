// internal/ui/wave_progress.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-ant-defense/internal/component"
)

const (
	progressBarWidth  = 118
	progressBarHeight = 12
	borderWidth       = 1
)

var progressFill = color.RGBA{70, 100, 120, 220}

// WaveProgress — полоска появления врагов текущей волны.
type WaveProgress struct {
	X, Y float32
}

func NewWaveProgress(x, y float32) *WaveProgress {
	return &WaveProgress{X: x, Y: y}
}

// SpawnRatio — доля уже появившихся врагов волны.
func SpawnRatio(w component.Wave) float64 {
	total := w.Spawned + w.EnemiesToSpawn
	if total <= 0 {
		return 0
	}
	return float64(w.Spawned) / float64(total)
}

func (p *WaveProgress) Draw(screen *ebiten.Image, w component.Wave) {
	vector.StrokeRect(screen, p.X, p.Y, progressBarWidth, progressBarHeight, borderWidth, color.White, true)
	fillWidth := float32(float64(progressBarWidth-borderWidth*2) * SpawnRatio(w))
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, p.X+borderWidth, p.Y+borderWidth, fillWidth, progressBarHeight-borderWidth*2, progressFill, true)
	}
}
