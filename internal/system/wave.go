// internal/system/wave.go
package system

import (
	"errors"
	"fmt"

	"go-ant-defense/internal/component"
	"go-ant-defense/internal/config"
	"go-ant-defense/internal/defs"
	"go-ant-defense/internal/entity"
	"go-ant-defense/internal/event"
	"go-ant-defense/internal/utils"
	"go-ant-defense/pkg/route"
	putils "go-ant-defense/pkg/utils"
)

var (
	ErrWaveOutOfOrder = errors.New("wave out of order")
	ErrNoMoreWaves    = errors.New("no more waves")
)

// WaveSystem — директор волн: очередь появления, параметры врагов, завершение волны.
type WaveSystem struct {
	ecs   *entity.ECS
	queue *event.Queue
	rng   *utils.PRNGService
}

func NewWaveSystem(ecs *entity.ECS, queue *event.Queue, rng *utils.PRNGService) *WaveSystem {
	return &WaveSystem{ecs: ecs, queue: queue, rng: rng}
}

// StartWave ставит в очередь врагов волны index. Принимается только следующая по номеру волна.
// Если предыдущая волна ещё появляется, очереди складываются.
func (s *WaveSystem) StartWave(index int) error {
	wave := s.ecs.Wave
	if index != wave.Number+1 {
		return fmt.Errorf("%w: got %d, expected %d", ErrWaveOutOfOrder, index, wave.Number+1)
	}
	if index > config.MaxWaves {
		return fmt.Errorf("%w: wave %d", ErrNoMoreWaves, index)
	}

	def := defs.WaveFor(index)
	wave.Number = index
	wave.EnemiesToSpawn += def.Count
	wave.SpawnInterval = def.SpawnInterval
	wave.Spawned = 0
	wave.State = component.WaveSpawning
	s.queue.Push(event.Event{Type: event.WaveStarted, Amount: index})
	return nil
}

// Update отсчитывает таймер и выпускает не больше одного врага за шаг.
func (s *WaveSystem) Update(deltaTime float64, rt *route.Route, vp route.Viewport) {
	wave := s.ecs.Wave
	if wave.EnemiesToSpawn <= 0 {
		return
	}
	wave.SpawnTimer -= deltaTime
	if wave.SpawnTimer > 0 {
		return
	}

	spawn, _ := rt.WaypointAt(0, vp)
	boss := wave.Number == config.BossWave && wave.EnemiesToSpawn == 1
	var stats defs.EnemyStats
	if boss {
		stats = defs.BossEnemy()
		wave.SpawnTimer = config.BossSpawnInterval
	} else {
		stats = defs.NormalEnemy(wave.Number, s.rng.Float64())
		wave.SpawnTimer = wave.SpawnInterval
	}
	s.spawnEnemy(spawn, stats)

	wave.EnemiesToSpawn--
	wave.Spawned++
	if wave.EnemiesToSpawn == 0 {
		wave.State = component.WaveDraining
	}
}

func (s *WaveSystem) spawnEnemy(pos putils.Vec, stats defs.EnemyStats) {
	s.ecs.Enemies.Add(&component.Enemy{
		Base:        component.Base{ID: s.ecs.NewEntity(), Active: true},
		Pos:         pos,
		HP:          stats.Health,
		MaxHP:       stats.Health,
		BaseSpeed:   stats.Speed,
		Speed:       stats.Speed,
		Scale:       stats.Scale,
		Tier:        stats.Tier,
		IsBoss:      stats.IsBoss,
		LivesDamage: stats.LivesDamage,
	})
}

// CheckCompletion вызывается после удаления неактивных врагов.
// Волна завершена, когда очередь пуста и на поле никого нет; событие уходит один раз.
func (s *WaveSystem) CheckCompletion() {
	wave := s.ecs.Wave
	if wave.State == component.WaveIdle || wave.EnemiesToSpawn > 0 {
		return
	}
	if s.ecs.Enemies.ActiveCount() > 0 {
		return
	}
	wave.State = component.WaveIdle
	s.queue.Push(event.Event{Type: event.WaveCompleted, Amount: wave.Number})
}
