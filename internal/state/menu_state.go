// internal/state/menu_state.go
package state

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-ant-defense/internal/config"
	"go-ant-defense/internal/defs"
	"go-ant-defense/internal/ui"
)

// MenuState — заставка с выбором маршрута. Маршрут виден на поле за меню.
type MenuState struct {
	sm         *StateMachine
	ctx        *Context
	start      *ui.Button
	routeBtn   *ui.Button
	routeIndex int
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	cx := config.ScreenWidth / 2
	cy := config.ScreenHeight / 2
	m := &MenuState{
		sm:       sm,
		ctx:      ctx,
		start:    ui.NewButton(image.Rect(cx-100, cy-30, cx+100, cy+20), "Start", ctx.TitleFace),
		routeBtn: ui.NewButton(image.Rect(cx-100, cy+40, cx+100, cy+80), "", ctx.Face),
	}
	for i, name := range defs.RouteNames() {
		if name == ctx.Game.Route().Name() {
			m.routeIndex = i
		}
	}
	return m
}

func (m *MenuState) Enter() {
	m.ctx.Session.Reset()
	m.updateRouteLabel()
}

// NextRoute переключает встроенный маршрут по кругу.
func (m *MenuState) NextRoute() {
	names := defs.RouteNames()
	m.routeIndex = (m.routeIndex + 1) % len(names)
	if err := m.ctx.Game.SetRoute(names[m.routeIndex]); err != nil {
		m.ctx.Logger.Error("failed to switch route", "route", names[m.routeIndex], "err", err)
	}
	m.updateRouteLabel()
}

func (m *MenuState) updateRouteLabel() {
	m.routeBtn.Text = fmt.Sprintf("Route: %s (R)", m.ctx.Game.Route().Name())
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		m.NextRoute()
	}
	start := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		switch {
		case m.start.Contains(x, y):
			start = true
		case m.routeBtn.Contains(x, y):
			m.NextRoute()
		}
	}
	if start {
		m.sm.SetState(NewGameState(m.sm, m.ctx))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.ctx.Renderer.Draw(screen, m.ctx.Game.Snapshot(), nil)
	dim(screen)

	ui.DrawCentered(screen, "ANT DEFENSE", m.ctx.TitleFace, screenRect(config.ScreenHeight/2-140, config.ScreenHeight/2-80), config.CakeColor)
	x, y := ebiten.CursorPosition()
	m.start.Draw(screen, m.start.Contains(x, y))
	m.routeBtn.Draw(screen, m.routeBtn.Contains(x, y))
}

func (m *MenuState) Exit() {}
