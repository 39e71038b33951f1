// internal/system/status_effect.go
package system

import (
	"go-ant-defense/internal/component"
	"go-ant-defense/internal/config"
	"go-ant-defense/internal/defs"
)

// StatusEffectSystem управляет эффектами, которые снаряды накладывают на врагов.
type StatusEffectSystem struct{}

func NewStatusEffectSystem() *StatusEffectSystem {
	return &StatusEffectSystem{}
}

// Apply накладывает эффект попадания. Горение только визуальное.
func (s *StatusEffectSystem) Apply(e *component.Enemy, effect defs.StatusEffect) {
	switch effect {
	case defs.EffectSlow:
		e.ApplySlow(config.SlowDuration)
	case defs.EffectBurn, defs.EffectNone:
	}
}

// Advance возвращает скорость врага на этом шаге и уменьшает таймер замедления.
// Пока таймер > 0, скорость ровно половина базовой; на шаге, где таймер уже <= 0, базовая.
func (s *StatusEffectSystem) Advance(e *component.Enemy, deltaTime float64) float64 {
	speed := e.BaseSpeed
	if e.Slowed() {
		speed = e.BaseSpeed * config.SlowFactor
		e.SlowTimer -= deltaTime
	}
	e.Speed = speed
	return speed
}
