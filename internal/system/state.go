// internal/system/state.go
package system

import (
	"go-ant-defense/internal/component"
	"go-ant-defense/internal/entity"
	"go-ant-defense/internal/event"
)

// Counters — рабочая копия жизней на время одного шага.
// Хост применит изменения позже, по событиям, а внутри шага нужно знать,
// когда жизни впервые опустились до нуля. Деньги внутри шага не нужны никому.
type Counters struct {
	Lives int
}

// StateSystem следит за фазой игры и переходом в GameOver.
type StateSystem struct {
	ecs   *entity.ECS
	queue *event.Queue
}

func NewStateSystem(ecs *entity.ECS, queue *event.Queue) *StateSystem {
	return &StateSystem{ecs: ecs, queue: queue}
}

// Playing — идёт ли симуляция.
func (s *StateSystem) Playing() bool {
	return s.ecs.GameState == component.PhasePlaying
}

// LoseLives списывает жизни за прорыв к цели.
// После GameOver ничего не списывает, LivesZero отправляется ровно один раз.
func (s *StateSystem) LoseLives(c *Counters, amount int) {
	if !s.Playing() || amount <= 0 {
		return
	}
	c.Lives -= amount
	s.queue.Push(event.Event{Type: event.LivesChanged, Amount: -amount})
	if c.Lives <= 0 {
		s.ecs.GameState = component.PhaseGameOver
		s.queue.Push(event.Event{Type: event.LivesZero})
	}
}
