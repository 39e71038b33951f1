// internal/state/game_state.go
package state

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-ant-defense/internal/app"
	"go-ant-defense/internal/config"
	"go-ant-defense/internal/defs"
	"go-ant-defense/internal/ui"
	"go-ant-defense/pkg/render"
	"go-ant-defense/pkg/utils"
)

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
}

// GameState — состояние игры
type GameState struct {
	sm  *StateMachine
	ctx *Context

	picker        *ui.TowerPicker
	speedButton   *ui.SpeedButton
	pauseButton   *ui.PauseButton
	indicator     *ui.StateIndicator
	lives         *ui.LivesIndicator
	waveIndicator *ui.WaveIndicator
	waveProgress  *ui.WaveProgress
	infoPanel     *ui.InfoPanel
	banner        *ui.Banner

	debug bool
}

func NewGameState(sm *StateMachine, ctx *Context) *GameState {
	m := float32(config.UIMargin)
	return &GameState{
		sm:            sm,
		ctx:           ctx,
		picker:        ui.NewTowerPicker(ctx.Library, ctx.Face),
		speedButton:   ui.NewSpeedButton(config.ScreenWidth-m-70, m+14, 12, config.SpeedButtonColors),
		pauseButton:   ui.NewPauseButton(config.ScreenWidth-m-20, m+14, 10, config.PauseColor, config.PlayColor),
		indicator:     ui.NewStateIndicator(config.ScreenWidth-m-120, m+14, 10),
		lives:         ui.NewLivesIndicator(m, m+24, ctx.Face),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2, config.UIMargin+30, ctx.TitleFace),
		waveProgress:  ui.NewWaveProgress(config.ScreenWidth/2-59, m+40),
		infoPanel:     ui.NewInfoPanel(ctx.Face, ctx.TitleFace),
		banner:        ui.NewBanner(ctx.TitleFace),
	}
}

// Enter начинает новую партию.
func (g *GameState) Enter() {
	g.ctx.Session.Start()
	g.speedButton.SetState(g.ctx.Session.SpeedIndex())
}

func (g *GameState) Update(deltaTime float64) {
	g.infoPanel.Update()
	g.banner.Update(deltaTime)
	if text, ok := g.ctx.PollMessage(); ok {
		g.banner.Show(text)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pause()
		return
	}
	g.handleKeys()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.isClickOnUI(x, y) {
			if g.handleUIClick(x, y) {
				return
			}
		} else {
			g.handleFieldClick(x, y)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.picker.Clear()
		g.infoPanel.Hide()
	}

	g.ctx.Session.Tick(deltaTime)

	if g.ctx.Session.GameOver() || g.ctx.Session.Victory() {
		g.sm.SetState(NewGameOverState(g.sm, g.ctx))
	}
}

func (g *GameState) handleKeys() {
	for i, key := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.selectTower(defs.TowerType(i))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.cycleSpeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.ctx.Audio != nil {
		g.ctx.Audio.ToggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
}

func (g *GameState) selectTower(t defs.TowerType) {
	g.picker.Select(t)
	if cur, ok := g.picker.Current(); ok {
		if def, ok := g.ctx.Library.Lookup(cur); ok {
			g.infoPanel.SetTarget(def)
		}
		return
	}
	g.infoPanel.Hide()
}

func (g *GameState) cycleSpeed() {
	g.ctx.Session.CycleSpeed()
	g.speedButton.ToggleState()
}

func (g *GameState) pause() {
	g.pauseButton.TogglePause()
	g.sm.Suspend(NewPauseState(g.sm, g.ctx, g))
}

// isClickOnUI проверяет, был ли клик по какому-либо элементу UI
func (g *GameState) isClickOnUI(x, y int) bool {
	if g.speedButton.IsClicked(x, y) || g.pauseButton.IsClicked(x, y) {
		return true
	}
	if _, ok := g.picker.HitTest(x, y); ok {
		return true
	}
	return g.infoPanel.Contains(x, y)
}

// handleUIClick обрабатывает клики по UI. true — состояние сменилось.
func (g *GameState) handleUIClick(x, y int) bool {
	cooldown := time.Duration(config.ClickCooldown) * time.Millisecond
	switch {
	case g.speedButton.IsClicked(x, y):
		if time.Since(g.speedButton.LastToggleTime) >= cooldown {
			g.cycleSpeed()
		}
	case g.pauseButton.IsClicked(x, y):
		if time.Since(g.pauseButton.LastToggleTime) >= cooldown {
			g.pause()
			return true
		}
	default:
		if t, ok := g.picker.HitTest(x, y); ok {
			g.selectTower(t)
		}
	}
	return false
}

func (g *GameState) handleFieldClick(x, y int) {
	t, ok := g.picker.Current()
	if !ok {
		return
	}
	// Остальные отказы видны по красному призраку, их пишет лог сессии.
	if err := g.ctx.Session.Place(t, utils.Vec{X: float64(x), Y: float64(y)}); errors.Is(err, app.ErrInsufficientFunds) {
		g.banner.Show("Not enough money")
	}
}

// ghost — призрак выбранной башни под курсором.
func (g *GameState) ghost() *render.Ghost {
	t, ok := g.picker.Current()
	if !ok {
		return nil
	}
	x, y := ebiten.CursorPosition()
	if g.isClickOnUI(x, y) {
		return nil
	}
	pos := utils.Vec{X: float64(x), Y: float64(y)}
	return &render.Ghost{Pos: pos, Type: t, Valid: g.ctx.Game.PlacementPreview(t, pos) == nil}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.ctx.Game.Snapshot()
	g.ctx.Renderer.Draw(screen, snap, g.ghost())

	sess := g.ctx.Session
	g.lives.Draw(screen, sess.Lives(), config.InitialLives)
	g.waveIndicator.Draw(screen, sess.Wave())
	g.waveProgress.Draw(screen, snap.Wave)
	g.indicator.Draw(screen, snap.Phase)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
	g.infoPanel.Draw(screen)
	g.banner.Draw(screen)

	x, y := ebiten.CursorPosition()
	g.picker.Draw(screen, sess.Currency(), x, y)
	ui.DrawCentered(screen, currencyLabel(sess.Currency()), g.ctx.TitleFace,
		screenRect(config.ScreenHeight-config.PickerButtonSize-config.UIMargin-40, config.ScreenHeight-config.PickerButtonSize-config.UIMargin-8),
		config.RewardTextColor)

	if g.debug {
		ebitenutil.DebugPrint(screen, debugLine(snap))
	}
}

func (g *GameState) Exit() {
	g.picker.Clear()
	g.infoPanel.Hide()
}
