// cmd/antterm/main.go
package main

import (
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-ant-defense/internal/audio"
	"go-ant-defense/internal/config"
	"go-ant-defense/internal/defs"
	"go-ant-defense/internal/event"
	"go-ant-defense/internal/flavor"
	"go-ant-defense/internal/session"
	"go-ant-defense/internal/termview"
	"go-ant-defense/pkg/route"
)

// Терминальный хост: поле в ASCII, клавиши 1-6 выбирают башню, клик ставит.
// Пробел — скорость, m — звук, r — заново, q — выход.

func newLogger() *slog.Logger {
	var w io.Writer = io.Discard
	if path := os.Getenv("ANTS_LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		w = f
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func main() {
	logger := newLogger()
	cfg := session.LoadConfig()

	announcer := flavor.NewAnnouncer(flavor.Static{}, flavor.DefaultTimeout, 4)
	defer announcer.Close()

	sess, game, err := session.Build(cfg, defs.DefaultLibrary(),
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	view := termview.New(screen)
	selected := defs.TowerBasic
	message := ""
	sess.Dispatcher().Subscribe(event.BuildRejected, event.ListenerFunc(func(e event.Event) {
		if err, ok := e.Data.(error); ok {
			message = err.Error()
		}
	}))

	sess.Start()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / config.FPS)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
					return
				case ev.Rune() >= '1' && ev.Rune() <= '6':
					selected = defs.TowerType(ev.Rune() - '1')
					message = "selected " + selected.String()
				case ev.Rune() == ' ':
					sess.CycleSpeed()
				case ev.Rune() == 'm':
					player.ToggleMute()
				case ev.Rune() == 'r':
					sess.Start()
					message = ""
				}
			case *tcell.EventMouse:
				if ev.Buttons()&tcell.Button1 != 0 {
					x, y := ev.Position()
					if err := sess.Place(selected, view.World(x, y, game.Viewport())); err == nil {
						message = "built " + selected.String()
					}
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case msg := <-announcer.Messages():
			message = msg.Text

		case now := <-ticker.C:
			// Ядро считает время в кадрах по 1/60 с.
			elapsed := now.Sub(last).Seconds() * config.FPS
			last = now
			if !sess.GameOver() && !sess.Victory() {
				sess.Tick(elapsed)
			}
			view.Render(game.Snapshot(), termview.HUD{
				Currency: sess.Currency(),
				Lives:    sess.Lives(),
				Wave:     sess.Wave(),
				Message:  message,
			})
		}
	}
}
