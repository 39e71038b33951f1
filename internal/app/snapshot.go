// internal/app/snapshot.go
package app

import (
	"go-ant-defense/internal/component"
	"go-ant-defense/pkg/route"
	putils "go-ant-defense/pkg/utils"
)

// Snapshot — копия состояния для отрисовки. Изменения копии не влияют на игру.
type Snapshot struct {
	Phase       component.Phase
	Wave        component.Wave
	Speed       float64
	Viewport    route.Viewport
	Path        []putils.Vec // В мировых координатах
	Enemies     []component.Enemy
	Towers      []component.Tower
	Projectiles []component.Projectile
	Particles   []component.Particle
	Texts       []component.FloatingText
}

// Snapshot собирает только активные сущности.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:    g.ECS.GameState,
		Wave:     *g.ECS.Wave,
		Speed:    g.speed,
		Viewport: g.viewport,
		Path:     g.route.Waypoints(g.viewport),
	}
	for _, e := range g.ECS.Enemies.Items() {
		if e.Active {
			s.Enemies = append(s.Enemies, *e)
		}
	}
	for _, t := range g.ECS.Towers.Items() {
		if t.Active {
			s.Towers = append(s.Towers, *t)
		}
	}
	for _, p := range g.ECS.Projectiles.Items() {
		if p.Active {
			s.Projectiles = append(s.Projectiles, *p)
		}
	}
	for _, p := range g.ECS.Particles.Items() {
		if p.Active {
			s.Particles = append(s.Particles, *p)
		}
	}
	for _, t := range g.ECS.Texts.Items() {
		if t.Active {
			s.Texts = append(s.Texts, *t)
		}
	}
	return s
}
