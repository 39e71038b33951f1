package system

import (
	"testing"

	"go-ant-defense/internal/component"
	"go-ant-defense/internal/defs"
	"go-ant-defense/internal/entity"
	"go-ant-defense/internal/event"
	"go-ant-defense/internal/utils"
	"go-ant-defense/pkg/route"
	putils "go-ant-defense/pkg/utils"
)

// Горизонтальная линия через поле 1000x100: от (0,50) до (1000,50).
var testViewport = route.Viewport{Width: 1000, Height: 100}

type testWorld struct {
	ecs        *entity.ECS
	queue      *event.Queue
	rng        *utils.PRNGService
	status     *StatusEffectSystem
	effects    *VisualEffectSystem
	state      *StateSystem
	waves      *WaveSystem
	movement   *MovementSystem
	combat     *CombatSystem
	projectile *ProjectileSystem
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	w := &testWorld{
		ecs:   entity.NewECS(),
		queue: &event.Queue{},
		rng:   utils.NewPRNGService(42),
	}
	w.ecs.GameState = component.PhasePlaying
	w.status = NewStatusEffectSystem()
	w.effects = NewVisualEffectSystem(w.ecs, w.rng)
	w.state = NewStateSystem(w.ecs, w.queue)
	w.waves = NewWaveSystem(w.ecs, w.queue, w.rng)
	w.movement = NewMovementSystem(w.ecs, w.queue, w.status, w.state, w.effects)
	w.combat = NewCombatSystem(w.ecs, defs.DefaultLibrary(), w.queue)
	damage := NewDamageResolver(w.queue, w.effects, w.status, w.rng)
	w.projectile = NewProjectileSystem(w.ecs, damage, w.effects)
	return w
}

func mustRoute(t *testing.T, points ...putils.Vec) *route.Route {
	t.Helper()
	r, err := route.New("test", points)
	if err != nil {
		t.Fatalf("route.New: %v", err)
	}
	return r
}

func straightRoute(t *testing.T) *route.Route {
	return mustRoute(t, putils.Vec{X: 0, Y: 0.5}, putils.Vec{X: 1, Y: 0.5})
}

func (w *testWorld) addEnemy(pos putils.Vec, hp, speed float64) *component.Enemy {
	e := &component.Enemy{
		Base:        component.Base{ID: w.ecs.NewEntity(), Active: true},
		Pos:         pos,
		HP:          hp,
		MaxHP:       hp,
		BaseSpeed:   speed,
		Speed:       speed,
		Scale:       1,
		LivesDamage: 1,
	}
	w.ecs.Enemies.Add(e)
	return e
}

func (w *testWorld) addTower(tt defs.TowerType, pos putils.Vec) *component.Tower {
	tower := &component.Tower{
		Base: component.Base{ID: w.ecs.NewEntity(), Active: true},
		Pos:  pos,
		Type: tt,
	}
	w.ecs.Towers.Add(tower)
	return tower
}

func countEvents(events []event.Event, tt event.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == tt {
			n++
		}
	}
	return n
}

func sumAmounts(events []event.Event, tt event.EventType) int {
	sum := 0
	for _, e := range events {
		if e.Type == tt {
			sum += e.Amount
		}
	}
	return sum
}
