// internal/system/visual_effect.go
package system

import (
	"image/color"

	"go-ant-defense/internal/component"
	"go-ant-defense/internal/config"
	"go-ant-defense/internal/entity"
	"go-ant-defense/internal/utils"
	putils "go-ant-defense/pkg/utils"
)

// VisualEffectSystem управляет частицами и всплывающими надписями.
// Эффекты не влияют на симуляцию.
type VisualEffectSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, rng *utils.PRNGService) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs, rng: rng}
}

// Update двигает эффекты, уменьшает время жизни и удаляет истёкшие.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for _, p := range s.ecs.Particles.Items() {
		if !p.Active {
			continue
		}
		p.Pos = p.Pos.Add(p.Velocity.Scale(deltaTime))
		p.Life -= deltaTime
		if p.Life <= 0 {
			p.Deactivate()
		}
	}
	s.ecs.Particles.Compact()

	for _, t := range s.ecs.Texts.Items() {
		if !t.Active {
			continue
		}
		t.Pos = t.Pos.Add(t.Velocity.Scale(deltaTime))
		t.Life -= deltaTime
		if t.Life <= 0 {
			t.Deactivate()
		}
	}
	s.ecs.Texts.Compact()
}

// CreateExplosion разбрасывает count частиц из точки.
func (s *VisualEffectSystem) CreateExplosion(pos putils.Vec, c color.RGBA, count int) {
	for i := 0; i < count; i++ {
		s.ecs.Particles.Add(&component.Particle{
			Base: component.Base{ID: s.ecs.NewEntity(), Active: true},
			Pos:  pos,
			Velocity: putils.Vec{
				X: s.rng.Centered() * config.ParticleSpread,
				Y: s.rng.Centered() * config.ParticleSpread,
			},
			Life:    utils.Lerp(config.ParticleBaseLife, config.ParticleBaseLife+config.ParticleLifeSpread, s.rng.Float64()),
			MaxLife: config.ParticleMaxLife,
			Color:   c,
			Size:    utils.Lerp(config.ParticleBaseSize, config.ParticleBaseSize+config.ParticleSizeSpread, s.rng.Float64()),
		})
	}
}

// SpawnText создаёт всплывающую надпись, уходящую вверх со скоростью rise.
func (s *VisualEffectSystem) SpawnText(pos putils.Vec, text string, c color.RGBA, life, rise float64) {
	s.ecs.Texts.Add(&component.FloatingText{
		Base:     component.Base{ID: s.ecs.NewEntity(), Active: true},
		Pos:      pos,
		Velocity: putils.Vec{Y: rise},
		Life:     life,
		MaxLife:  life,
		Color:    c,
		Text:     text,
	})
}
