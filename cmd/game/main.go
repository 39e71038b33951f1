// cmd/game/main.go
package main

import (
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-ant-defense/internal/audio"
	"go-ant-defense/internal/config"
	"go-ant-defense/internal/defs"
	"go-ant-defense/internal/flavor"
	"go-ant-defense/internal/session"
	"go-ant-defense/internal/state"
	"go-ant-defense/pkg/render"
	"go-ant-defense/pkg/route"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

// Update переводит прошедшее время в кадры по 1/60 с. Ядро само ограничит слишком большой шаг.
func (a *AppGame) Update() error {
	now := time.Now()
	elapsed := now.Sub(a.lastUpdateTime).Seconds() * config.FPS
	a.lastUpdateTime = now
	a.stateMachine.Update(elapsed)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if addr := os.Getenv("ANTS_PPROF"); addr != "" {
		go func() {
			logger.Info("pprof listening", "addr", addr)
			log.Println(http.ListenAndServe(addr, nil))
		}()
	}

	lib := defs.DefaultLibrary()
	if path := os.Getenv("ANTS_TOWERS"); path != "" {
		custom, err := defs.LoadTowerDefinitions(path)
		if err != nil {
			log.Fatal(err)
		}
		lib = custom
	}

	announcer := flavor.NewAnnouncer(flavor.Static{}, flavor.DefaultTimeout, 4)
	defer announcer.Close()

	sess, game, err := session.Build(session.LoadConfig(), lib,
		route.Viewport{Width: config.ScreenWidth, Height: config.ScreenHeight},
		session.WithLogger(logger), session.WithAnnouncer(announcer))
	if err != nil {
		log.Fatal(err)
	}

	player := audio.NewPlayer(audio.LoadConfig())
	if err := player.Initialize(); err != nil {
		logger.Warn("audio disabled", "err", err)
	} else {
		defer player.Close()
	}
	player.Subscribe(sess.Dispatcher())

	face := render.FaceOrDefault(14)
	ctx := &state.Context{
		Session:   sess,
		Game:      game,
		Library:   lib,
		Renderer:  render.NewFieldRenderer(lib, face, render.DefaultFieldColors()),
		Face:      face,
		TitleFace: render.FaceOrDefault(24),
		Audio:     player,
		Announcer: announcer,
		Logger:    logger,
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, ctx))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Ant Defense")
	ebiten.SetTPS(config.FPS)
	if err := ebiten.RunGame(app); err != nil {
		logger.Error("game stopped", "err", err)
	}
}
