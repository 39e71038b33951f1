// internal/defs/towers.go
package defs

import (
	"image/color"
)

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	Type       TowerType     `json:"type"`
	Name       string        `json:"name"`
	Cost       int           `json:"cost"`
	Range      float64       `json:"range"`
	Damage     float64       `json:"damage"`
	Cooldown   float64       `json:"cooldown"` // Кадров между выстрелами
	Projectile ProjectileDef `json:"projectile"`
	Visuals    Visuals       `json:"visuals"`
}

// ProjectileDef описывает снаряд, которым стреляет башня.
type ProjectileDef struct {
	Speed        float64      `json:"speed"`
	Radius       float64      `json:"radius"`
	AreaOfEffect float64      `json:"area_of_effect"` // 0 — одиночная цель
	Effect       StatusEffect `json:"effect"`
}

// Visuals contains parameters for rendering a tower.
type Visuals struct {
	Color color.RGBA `json:"color"`
}

// Library — неизменяемая таблица определений, индексируемая TowerType.
// Передаётся по значению, поэтому вызывающий не может изменить чужую копию.
type Library struct {
	defs [towerTypeCount]TowerDefinition
}

// Lookup возвращает определение башни.
func (l Library) Lookup(t TowerType) (TowerDefinition, bool) {
	if !t.Valid() {
		return TowerDefinition{}, false
	}
	return l.defs[t], true
}

// All возвращает определения в порядке TowerTypes().
func (l Library) All() []TowerDefinition {
	out := make([]TowerDefinition, len(l.defs))
	copy(out, l.defs[:])
	return out
}
