// internal/system/projectile.go
package system

import (
	"go-ant-defense/internal/component"
	"go-ant-defense/internal/config"
	"go-ant-defense/internal/entity"
	"go-ant-defense/pkg/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs     *entity.ECS
	damage  *DamageResolver
	effects *VisualEffectSystem
}

func NewProjectileSystem(ecs *entity.ECS, damage *DamageResolver, effects *VisualEffectSystem) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, damage: damage, effects: effects}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, proj := range s.ecs.Projectiles.Items() {
		if !proj.Active {
			continue
		}

		// Цель пропала или уже неактивна: снаряд теряет захват без попадания.
		target, ok := s.ecs.Enemies.Get(proj.TargetID)
		if !ok || !target.Active {
			proj.Deactivate()
			continue
		}

		step := proj.Speed * deltaTime
		if utils.Distance(proj.Pos, target.Pos) < step {
			proj.Deactivate()
			s.hitTarget(proj, target)
			continue
		}
		proj.Pos = utils.StepToward(proj.Pos, target.Pos, step)
	}
}

// hitTarget: урон по области задевает каждого активного врага строго ближе радиуса
// к точке попадания, включая саму цель, один раз за попадание.
func (s *ProjectileSystem) hitTarget(proj *component.Projectile, target *component.Enemy) {
	impact := target.Pos
	if proj.AreaOfEffect > 0 {
		for _, e := range s.ecs.Enemies.Items() {
			if e.Active && utils.Distance(e.Pos, impact) < proj.AreaOfEffect {
				s.damage.ApplyDamage(e, proj)
			}
		}
		s.effects.CreateExplosion(impact, proj.Color, config.ImpactParticlesAoe)
		return
	}

	s.damage.ApplyDamage(target, proj)
	s.effects.CreateExplosion(impact, proj.Color, config.ImpactParticles)
}
