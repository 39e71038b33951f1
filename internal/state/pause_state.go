// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-ant-defense/internal/config"
	"go-ant-defense/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию: Tick просто не вызывается.
type PauseState struct {
	sm            *StateMachine
	ctx           *Context
	previousState *GameState
}

func NewPauseState(sm *StateMachine, ctx *Context, prev *GameState) *PauseState {
	return &PauseState{sm: sm, ctx: ctx, previousState: prev}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.previousState.pauseButton.IsClicked(x, y)
	}
	if unpause {
		s.Resume()
	}
}

// Resume возвращает игру без повторного Enter у GameState.
func (s *PauseState) Resume() {
	s.previousState.pauseButton.TogglePause()
	s.sm.Resume(s.previousState)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	dim(screen)
	ui.DrawCentered(screen, "PAUSED", s.ctx.TitleFace, screenRect(config.ScreenHeight/2-20, config.ScreenHeight/2+20), config.TextLightColor)
}

func (s *PauseState) Exit() {}
