// internal/state/gameover_state.go
package state

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-ant-defense/internal/config"
	"go-ant-defense/internal/flavor"
	"go-ant-defense/internal/ui"
)

// GameOverState — итог партии поверх замершего поля.
type GameOverState struct {
	sm      *StateMachine
	ctx     *Context
	victory bool
	wave    int
	score   int
	message string
	retry   *ui.Button
	menu    *ui.Button
}

func NewGameOverState(sm *StateMachine, ctx *Context) *GameOverState {
	cx := config.ScreenWidth / 2
	cy := config.ScreenHeight / 2
	s := &GameOverState{
		sm:      sm,
		ctx:     ctx,
		victory: ctx.Session.Victory(),
		wave:    ctx.Session.Wave(),
		score:   ctx.Session.Currency(),
		retry:   ui.NewButton(image.Rect(cx-210, cy+60, cx-10, cy+100), "Retry (Enter)", ctx.Face),
		menu:    ui.NewButton(image.Rect(cx+10, cy+60, cx+210, cy+100), "Menu (Esc)", ctx.Face),
	}
	s.message = flavor.Placeholder(flavor.GameOver(s.wave, s.score))
	if s.victory {
		s.message = "The cake survived every wave!"
	}
	return s
}

func (s *GameOverState) Enter() {
	s.ctx.Logger.Info("game finished", "victory", s.victory, "wave", s.wave, "score", s.score)
}

func (s *GameOverState) Title() string {
	if s.victory {
		return "VICTORY"
	}
	return "GAME OVER"
}

func (s *GameOverState) Update(deltaTime float64) {
	if text, ok := s.ctx.PollMessage(); ok {
		s.message = text
	}

	retry := inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	menu := inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		retry = retry || s.retry.Contains(x, y)
		menu = menu || s.menu.Contains(x, y)
	}
	switch {
	case retry:
		s.sm.SetState(NewGameState(s.sm, s.ctx))
	case menu:
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.ctx.Renderer.Draw(screen, s.ctx.Game.Snapshot(), nil)
	dim(screen)

	cy := config.ScreenHeight / 2
	titleColor := config.GameOverColor
	if s.victory {
		titleColor = config.PlayingPhaseColor
	}
	ui.DrawCentered(screen, s.Title(), s.ctx.TitleFace, screenRect(cy-120, cy-80), titleColor)
	ui.DrawCentered(screen, s.message, s.ctx.Face, screenRect(cy-60, cy-30), config.TextLightColor)
	ui.DrawCentered(screen, fmt.Sprintf("Wave %d  $%d", s.wave, s.score), s.ctx.Face, screenRect(cy-20, cy+10), config.RewardTextColor)

	x, y := ebiten.CursorPosition()
	s.retry.Draw(screen, s.retry.Contains(x, y))
	s.menu.Draw(screen, s.menu.Contains(x, y))
}

func (s *GameOverState) Exit() {}
