// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"math"

	"go-ant-defense/internal/component"
	"go-ant-defense/internal/config"
	"go-ant-defense/internal/defs"
	"go-ant-defense/internal/entity"
	"go-ant-defense/internal/event"
	"go-ant-defense/internal/interfaces"
	"go-ant-defense/internal/system"
	"go-ant-defense/internal/utils"
	"go-ant-defense/pkg/route"
	putils "go-ant-defense/pkg/utils"
)

var (
	ErrNotPlaying   = errors.New("game is not in playing phase")
	ErrInvalidSpeed = errors.New("invalid simulation speed")
	ErrUnknownRoute = errors.New("unknown route")
)

// Game holds the simulation state and runs one step per Tick.
// Game не потокобезопасен: все вызовы идут из одного цикла хоста.
type Game struct {
	ECS     *entity.ECS
	Library defs.Library
	Rng     *utils.PRNGService

	WaveSystem         *system.WaveSystem
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	StatusEffectSystem *system.StatusEffectSystem
	VisualEffectSystem *system.VisualEffectSystem
	StateSystem        *system.StateSystem

	ledger   interfaces.Ledger
	queue    *event.Queue
	route    *route.Route
	viewport route.Viewport
	speed    float64
}

// NewGame initializes a new game instance on the default route.
func NewGame(ledger interfaces.Ledger, lib defs.Library, rng *utils.PRNGService) *Game {
	if ledger == nil {
		panic("ledger cannot be nil")
	}
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}

	ecs := entity.NewECS()
	queue := &event.Queue{}
	g := &Game{
		ECS:      ecs,
		Library:  lib,
		Rng:      rng,
		ledger:   ledger,
		queue:    queue,
		viewport: route.Viewport{Width: config.ScreenWidth, Height: config.ScreenHeight},
		speed:    1,
	}
	g.StatusEffectSystem = system.NewStatusEffectSystem()
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, rng)
	g.StateSystem = system.NewStateSystem(ecs, queue)
	g.WaveSystem = system.NewWaveSystem(ecs, queue, rng)
	g.MovementSystem = system.NewMovementSystem(ecs, queue, g.StatusEffectSystem, g.StateSystem, g.VisualEffectSystem)
	g.CombatSystem = system.NewCombatSystem(ecs, lib, queue)
	damage := system.NewDamageResolver(queue, g.VisualEffectSystem, g.StatusEffectSystem, rng)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, damage, g.VisualEffectSystem)

	if err := g.SetRoute(config.DefaultRouteKey); err != nil {
		panic(err)
	}
	return g
}

// Tick advances the simulation by one step of elapsed frames.
// Вне фазы Playing ничего не делает.
func (g *Game) Tick(elapsed float64) []event.Event {
	if g.ECS.GameState != component.PhasePlaying || !(elapsed > 0) {
		return nil
	}
	dt := math.Min(elapsed, config.MaxElapsed) * g.speed

	counters := &system.Counters{Lives: g.ledger.Lives()}

	g.WaveSystem.Update(dt, g.route, g.viewport)
	g.MovementSystem.Update(dt, g.route, g.viewport, counters)
	g.CombatSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.cleanupDestroyedEntities()
	g.VisualEffectSystem.Update(dt)
	if g.StateSystem.Playing() {
		g.WaveSystem.CheckCompletion()
	}

	return g.queue.Drain()
}

func (g *Game) cleanupDestroyedEntities() {
	g.ECS.Enemies.Compact()
	g.ECS.Projectiles.Compact()
}

// Start переводит игру из меню в фазу Playing.
func (g *Game) Start() {
	if g.ECS.GameState == component.PhaseMenu {
		g.ECS.GameState = component.PhasePlaying
	}
}

// Reset синхронно очищает все реестры и счётчики волн и возвращает игру в меню.
func (g *Game) Reset() {
	g.ECS.Clear()
	g.ECS.GameState = component.PhaseMenu
	g.queue.Drain()
}

// Phase — текущая фаза игры.
func (g *Game) Phase() component.Phase {
	return g.ECS.GameState
}

// AdvanceWave запускает волну index. Принимается только следующая по порядку волна.
func (g *Game) AdvanceWave(index int) ([]event.Event, error) {
	if g.ECS.GameState != component.PhasePlaying {
		return nil, ErrNotPlaying
	}
	if err := g.WaveSystem.StartWave(index); err != nil {
		return nil, fmt.Errorf("advance wave: %w", err)
	}
	return g.queue.Drain(), nil
}

// SetActivePath заменяет маршрут нормализованными точками.
// Враги на поле продолжают движение по новому маршруту со своего индекса.
func (g *Game) SetActivePath(points []putils.Vec) error {
	r, err := route.New("custom", points)
	if err != nil {
		return fmt.Errorf("set active path: %w", err)
	}
	g.route = r
	return nil
}

// SetRoute выбирает один из встроенных маршрутов по имени.
func (g *Game) SetRoute(name string) error {
	points, ok := defs.Routes[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRoute, name)
	}
	r, err := route.New(name, points)
	if err != nil {
		return fmt.Errorf("route %s: %w", name, err)
	}
	g.route = r
	return nil
}

// Route — активный маршрут.
func (g *Game) Route() *route.Route {
	return g.route
}

// SetSimulationSpeed масштабирует все таймеры и движение.
func (g *Game) SetSimulationSpeed(multiplier float64) error {
	if !(multiplier > 0) || math.IsInf(multiplier, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidSpeed, multiplier)
	}
	g.speed = multiplier
	return nil
}

// Speed — текущий множитель скорости.
func (g *Game) Speed() float64 {
	return g.speed
}

// SetViewport задаёт размер поля в пикселях. Неположительные размеры игнорируются.
func (g *Game) SetViewport(width, height float64) {
	if !(width > 0) || !(height > 0) {
		return
	}
	g.viewport = route.Viewport{Width: width, Height: height}
}

// Viewport — текущий размер поля.
func (g *Game) Viewport() route.Viewport {
	return g.viewport
}
