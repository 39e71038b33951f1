// internal/system/combat.go
package system

import (
	"math"

	"go-ant-defense/internal/component"
	"go-ant-defense/internal/defs"
	"go-ant-defense/internal/entity"
	"go-ant-defense/internal/event"
	"go-ant-defense/pkg/utils"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs   *entity.ECS
	lib   defs.Library
	queue *event.Queue
}

func NewCombatSystem(ecs *entity.ECS, lib defs.Library, queue *event.Queue) *CombatSystem {
	return &CombatSystem{ecs: ecs, lib: lib, queue: queue}
}

// Update: башня с перезарядкой <= 0 стреляет в ближайшего врага в радиусе,
// иначе перезарядка уменьшается на deltaTime и башня пропускает шаг.
func (s *CombatSystem) Update(deltaTime float64) {
	for _, tower := range s.ecs.Towers.Items() {
		if !tower.Active {
			continue
		}
		def, ok := s.lib.Lookup(tower.Type)
		if !ok {
			continue
		}

		if tower.Cooldown > 0 {
			tower.Cooldown -= deltaTime
			continue
		}

		target := s.findNearestEnemyInRange(tower.Pos, def.Range)
		if target == nil {
			continue
		}

		tower.Angle = utils.Bearing(tower.Pos, target.Pos)
		s.fire(tower, def, target)
		tower.Cooldown = def.Cooldown
	}
}

// findNearestEnemyInRange — граница радиуса включительно; при равных расстояниях
// побеждает первый в порядке реестра.
func (s *CombatSystem) findNearestEnemyInRange(pos utils.Vec, rangeRadius float64) *component.Enemy {
	var nearest *component.Enemy
	minDist := math.Inf(1)
	for _, e := range s.ecs.Enemies.Items() {
		if !e.Active {
			continue
		}
		d := utils.Distance(pos, e.Pos)
		if d <= rangeRadius && d < minDist {
			minDist = d
			nearest = e
		}
	}
	return nearest
}

func (s *CombatSystem) fire(tower *component.Tower, def defs.TowerDefinition, target *component.Enemy) {
	id := s.ecs.NewEntity()
	s.ecs.Projectiles.Add(&component.Projectile{
		Base:         component.Base{ID: id, Active: true},
		Pos:          tower.Pos,
		TargetID:     target.ID,
		Source:       tower.Type,
		Damage:       def.Damage,
		Speed:        def.Projectile.Speed,
		Radius:       def.Projectile.Radius,
		AreaOfEffect: def.Projectile.AreaOfEffect,
		Effect:       def.Projectile.Effect,
		Color:        def.Visuals.Color,
	})
	s.queue.Push(event.Event{Type: event.ShotFired, Pos: tower.Pos, Tower: tower.Type, Entity: tower.ID})
}
