// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64) // deltaTime в кадрах
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState выходит из текущего состояния и входит в новое
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Suspend переключает на s, не вызывая Exit у текущего: к нему вернутся через Resume.
func (sm *StateMachine) Suspend(s State) {
	sm.current = s
	if s != nil {
		s.Enter()
	}
}

// Resume выходит из текущего состояния и возвращает prev без повторного Enter.
func (sm *StateMachine) Resume(prev State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = prev
}

// Current — текущее состояние, nil до первого SetState
func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
