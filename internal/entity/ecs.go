// internal/entity/ecs.go
package entity

import (
	"go-ant-defense/internal/component"
	"go-ant-defense/internal/config"
	"go-ant-defense/internal/types"
)

// ECS владеет всеми реестрами симуляции. Единственный владелец — оркестратор кадра,
// сущности не передаются наружу дальше одного шага.
type ECS struct {
	NextID      types.EntityID
	Enemies     *Pool[*component.Enemy]
	Towers      *Pool[*component.Tower]
	Projectiles *Pool[*component.Projectile]
	// Реестр эффектов: частицы и всплывающие надписи живут по одним правилам.
	Particles *Pool[*component.Particle]
	Texts     *Pool[*component.FloatingText]
	Wave      *component.Wave
	GameState component.Phase
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Enemies:     NewPool[*component.Enemy](64),
		Towers:      NewPool[*component.Tower](32),
		Projectiles: NewPool[*component.Projectile](64),
		Particles:   NewPool[*component.Particle](256),
		Texts:       NewPool[*component.FloatingText](32),
		Wave:        newWave(),
		GameState:   component.PhaseMenu,
	}
}

func newWave() *component.Wave {
	return &component.Wave{
		State:      component.WaveIdle,
		SpawnTimer: config.InitialSpawnDelay,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Clear синхронно очищает все реестры и счётчики волн.
// NextID не сбрасывается, чтобы старые слабые ссылки не указывали на новые сущности.
func (ecs *ECS) Clear() {
	ecs.Enemies.Clear()
	ecs.Towers.Clear()
	ecs.Projectiles.Clear()
	ecs.Particles.Clear()
	ecs.Texts.Clear()
	ecs.Wave = newWave()
}
