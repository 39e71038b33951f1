// component/tower.go
package component

import (
	"go-ant-defense/internal/defs"
	"go-ant-defense/pkg/utils"
)

// Tower — установленная башня. После постройки меняются только Cooldown и Angle.
type Tower struct {
	Base
	Pos      utils.Vec
	Type     defs.TowerType
	Cooldown float64 // Кадров до следующего выстрела
	Angle    float64 // Угол наводки в радианах
}
