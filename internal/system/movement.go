// internal/system/movement.go
package system

import (
	"go-ant-defense/internal/component"
	"go-ant-defense/internal/config"
	"go-ant-defense/internal/entity"
	"go-ant-defense/internal/event"
	"go-ant-defense/pkg/route"
	"go-ant-defense/pkg/utils"
)

// MovementSystem ведёт врагов по маршруту к цели.
type MovementSystem struct {
	ecs     *entity.ECS
	queue   *event.Queue
	status  *StatusEffectSystem
	state   *StateSystem
	effects *VisualEffectSystem
}

func NewMovementSystem(ecs *entity.ECS, queue *event.Queue, status *StatusEffectSystem, state *StateSystem, effects *VisualEffectSystem) *MovementSystem {
	return &MovementSystem{ecs: ecs, queue: queue, status: status, state: state, effects: effects}
}

// Update двигает каждого активного врага к точке PathIndex+1.
// За шаг индекс растёт не больше чем на единицу, остаток пути не переносится.
func (s *MovementSystem) Update(deltaTime float64, rt *route.Route, vp route.Viewport, c *Counters) {
	for _, e := range s.ecs.Enemies.Items() {
		if !e.Active {
			continue
		}
		speed := s.status.Advance(e, deltaTime)

		target, ok := rt.WaypointAt(e.PathIndex+1, vp)
		if !ok {
			// Маршрут сменили на более короткий: враг уже у цели.
			s.reachGoal(e, c)
			continue
		}

		step := speed * deltaTime
		if utils.Distance(e.Pos, target) < step {
			e.PathIndex++
			if e.PathIndex >= rt.Len()-1 {
				s.reachGoal(e, c)
			}
			continue
		}
		e.Pos = utils.StepToward(e.Pos, target, step)
	}
}

func (s *MovementSystem) reachGoal(e *component.Enemy, c *Counters) {
	e.Deactivate()
	s.queue.Push(event.Event{Type: event.GoalBreached, Pos: e.Pos, Amount: e.LivesDamage, Entity: e.ID})

	text := "-1 ♥"
	if e.IsBoss {
		text = "DEFEAT"
	}
	s.effects.SpawnText(e.Pos, text, config.BreachTextColor, config.BreachTextLife, config.FloatingTextRise)
	s.state.LoseLives(c, e.LivesDamage)
}
