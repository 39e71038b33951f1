// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"

	"go-ant-defense/internal/component"
	"go-ant-defense/internal/config"
	"go-ant-defense/internal/defs"
	"go-ant-defense/internal/event"
	"go-ant-defense/internal/types"
	"go-ant-defense/pkg/utils"
)

var (
	ErrUnknownTowerType  = errors.New("unknown tower type")
	ErrInvalidPosition   = errors.New("position outside the field")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrTooCloseToPath    = errors.New("too close to path")
	ErrOverlapsTower     = errors.New("overlaps existing tower")
)

// RequestPlacement строит башню, если позиция допустима.
// Проверки выполняются до любых изменений; при отказе возвращается BuildRejected.
func (g *Game) RequestPlacement(t defs.TowerType, pos utils.Vec) ([]event.Event, error) {
	def, err := g.canPlaceTower(t, pos)
	if err != nil {
		g.queue.Push(event.Event{Type: event.BuildRejected, Pos: pos, Tower: t, Data: err})
		return g.queue.Drain(), err
	}

	g.queue.Push(event.Event{Type: event.CurrencyChanged, Pos: pos, Amount: -def.Cost})
	id := g.createTowerEntity(t, pos)
	g.VisualEffectSystem.CreateExplosion(pos, config.BuildFlashColor, config.BuildParticles)
	g.queue.Push(event.Event{Type: event.TowerBuilt, Pos: pos, Tower: t, Entity: id, Amount: def.Cost})
	return g.queue.Drain(), nil
}

// PlacementPreview сообщает, можно ли поставить башню, ничего не меняя.
func (g *Game) PlacementPreview(t defs.TowerType, pos utils.Vec) error {
	_, err := g.canPlaceTower(t, pos)
	return err
}

// canPlaceTower: тип, фаза, точка внутри поля, деньги, расстояние до маршрута, расстояние до башен.
// Граница ровно в PathClearance допустима.
func (g *Game) canPlaceTower(t defs.TowerType, pos utils.Vec) (defs.TowerDefinition, error) {
	def, ok := g.Library.Lookup(t)
	if !ok {
		return defs.TowerDefinition{}, fmt.Errorf("%w: %d", ErrUnknownTowerType, int(t))
	}
	if g.ECS.GameState != component.PhasePlaying {
		return def, ErrNotPlaying
	}
	if !g.viewport.Contains(pos) {
		return def, fmt.Errorf("%w: (%g, %g)", ErrInvalidPosition, pos.X, pos.Y)
	}
	if funds := g.ledger.Currency(); def.Cost > funds {
		return def, fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientFunds, def.Name, def.Cost, funds)
	}
	if d := g.route.NearestDistance(pos, g.viewport); d < config.PathClearance {
		return def, fmt.Errorf("%w: %.1f", ErrTooCloseToPath, d)
	}
	if _, ok := g.TowerAt(pos); ok {
		return def, ErrOverlapsTower
	}
	return def, nil
}

// TowerAt возвращает башню, чей центр ближе TowerClearance к точке.
func (g *Game) TowerAt(pos utils.Vec) (component.Tower, bool) {
	for _, tower := range g.ECS.Towers.Items() {
		if tower.Active && utils.Distance(tower.Pos, pos) < config.TowerClearance {
			return *tower, true
		}
	}
	return component.Tower{}, false
}

func (g *Game) createTowerEntity(t defs.TowerType, pos utils.Vec) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Towers.Add(&component.Tower{
		Base: component.Base{ID: id, Active: true},
		Pos:  pos,
		Type: t,
	})
	return id
}
