// internal/component/projectile.go
package component

import (
	"image/color"

	"go-ant-defense/internal/defs"
	"go-ant-defense/internal/types"
	"go-ant-defense/pkg/utils"
)

// Projectile представляет летящий самонаводящийся снаряд.
// TargetID — слабая ссылка: враг может исчезнуть раньше, чем снаряд долетит.
type Projectile struct {
	Base
	Pos          utils.Vec
	TargetID     types.EntityID
	Source       defs.TowerType
	Damage       float64
	Speed        float64
	Radius       float64
	AreaOfEffect float64
	Effect       defs.StatusEffect
	Color        color.RGBA
}
