// internal/session/build.go
package session

import (
	"fmt"

	"go-ant-defense/internal/app"
	"go-ant-defense/internal/defs"
	"go-ant-defense/internal/interfaces"
	"go-ant-defense/internal/utils"
	"go-ant-defense/pkg/route"
)

// Build собирает сессию вместе с ядром по настройкам хоста.
// Ядро возвращается отдельно: хосту нужен его Snapshot для отрисовки.
func Build(cfg Config, lib defs.Library, vp route.Viewport, opts ...Option) (*Session, *app.Game, error) {
	var (
		game     *app.Game
		buildErr error
	)
	s := New(func(l interfaces.Ledger) interfaces.Simulation {
		game = app.NewGame(l, lib, utils.NewPRNGService(cfg.Seed))
		game.SetViewport(vp.Width, vp.Height)
		buildErr = game.SetRoute(cfg.Route)
		return game
	}, opts...)
	if buildErr != nil {
		return nil, nil, fmt.Errorf("build session: %w", buildErr)
	}
	if err := s.SetSpeed(cfg.Speed); err != nil {
		return nil, nil, fmt.Errorf("build session: %w", err)
	}
	s.logger.Info("session built", "seed", game.Rng.Seed(), "route", cfg.Route, "speed", cfg.Speed)
	return s, game, nil
}
