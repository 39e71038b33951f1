// internal/state/labels.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"go-ant-defense/internal/app"
)

func currencyLabel(currency int) string {
	return fmt.Sprintf("$%d", currency)
}

// debugLine — строка F3: FPS и размеры реестров.
func debugLine(s app.Snapshot) string {
	return fmt.Sprintf("TPS %.0f  wave %d %s  enemies %d  towers %d  shots %d  particles %d",
		ebiten.ActualTPS(), s.Wave.Number, s.Wave.State, len(s.Enemies), len(s.Towers), len(s.Projectiles), len(s.Particles))
}
