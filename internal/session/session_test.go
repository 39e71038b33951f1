package session_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"go-ant-defense/internal/app"
	"go-ant-defense/internal/config"
	"go-ant-defense/internal/defs"
	"go-ant-defense/internal/event"
	"go-ant-defense/internal/interfaces"
	"go-ant-defense/internal/interfaces/mocks"
	"go-ant-defense/internal/session"
	"go-ant-defense/internal/utils"
	"go-ant-defense/pkg/route"
	putils "go-ant-defense/pkg/utils"
	"go.uber.org/mock/gomock"
)

func newMockSession(t *testing.T) (*session.Session, *mocks.MockSimulation, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	sim := mocks.NewMockSimulation(ctrl)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := session.New(func(interfaces.Ledger) interfaces.Simulation { return sim }, session.WithLogger(logger))
	return s, sim, &buf
}

func TestStartResetsCountersAndStartsWaveOne(t *testing.T) {
	s, sim, buf := newMockSession(t)

	gomock.InOrder(
		sim.EXPECT().Reset(),
		sim.EXPECT().Start(),
		sim.EXPECT().AdvanceWave(1).Return([]event.Event{{Type: event.WaveStarted, Amount: 1}}, nil),
	)
	s.Start()

	if s.Currency() != config.InitialMoney || s.Lives() != config.InitialLives || s.Wave() != 1 {
		t.Errorf("Unexpected counters: $%d, %d lives, wave %d", s.Currency(), s.Lives(), s.Wave())
	}
	if s.ID() == "" || !strings.Contains(buf.String(), "session_id="+s.ID()) {
		t.Errorf("Expected logs tagged with the session id, got %q", buf.String())
	}
}

func TestWaveCompletionBonusAndAutoAdvance(t *testing.T) {
	s, sim, _ := newMockSession(t)
	sim.EXPECT().Reset()
	sim.EXPECT().Start()
	sim.EXPECT().AdvanceWave(1).Return(nil, nil)
	s.Start()

	sim.EXPECT().Tick(1.0).Return([]event.Event{
		{Type: event.CurrencyChanged, Amount: 12},
		{Type: event.WaveCompleted, Amount: 1},
	})
	sim.EXPECT().AdvanceWave(2).Return([]event.Event{{Type: event.WaveStarted, Amount: 2}}, nil)

	var seen []event.Event
	s.Dispatcher().SubscribeAll(event.ListenerFunc(func(e event.Event) {
		seen = append(seen, e)
	}), event.CurrencyChanged, event.WaveCompleted, event.WaveStarted)

	s.Tick(1)

	if want := config.InitialMoney + 12 + config.WaveClearBonus; s.Currency() != want {
		t.Errorf("Expected currency %d, got %d", want, s.Currency())
	}
	if s.Wave() != 2 {
		t.Errorf("Expected wave 2, got %d", s.Wave())
	}
	want := []struct {
		typ    event.EventType
		amount int
	}{
		{event.CurrencyChanged, 12},
		{event.WaveCompleted, 1},
		{event.CurrencyChanged, config.WaveClearBonus},
		{event.WaveStarted, 2},
	}
	if len(seen) != len(want) {
		t.Fatalf("Expected %d events, got %+v", len(want), seen)
	}
	for i, w := range want {
		if seen[i].Type != w.typ || seen[i].Amount != w.amount {
			t.Errorf("Event %d: expected %s(%d), got %s(%d)", i, w.typ, w.amount, seen[i].Type, seen[i].Amount)
		}
	}
}

func TestLivesZeroStopsAdvancing(t *testing.T) {
	s, sim, buf := newMockSession(t)
	sim.EXPECT().Reset()
	sim.EXPECT().Start()
	sim.EXPECT().AdvanceWave(1).Return(nil, nil)
	s.Start()

	sim.EXPECT().Tick(1.0).Return([]event.Event{
		{Type: event.LivesChanged, Amount: -100},
		{Type: event.LivesZero},
	})
	s.Tick(1)

	if !s.GameOver() || s.Lives() != config.InitialLives-100 {
		t.Errorf("Expected game over with %d lives, got %v / %d", config.InitialLives-100, s.GameOver(), s.Lives())
	}
	if !strings.Contains(buf.String(), "game over") {
		t.Error("Expected game over to be logged")
	}
}

func TestPlaceRejectedIsLogged(t *testing.T) {
	s, sim, buf := newMockSession(t)
	reason := app.ErrTooCloseToPath
	sim.EXPECT().RequestPlacement(defs.TowerIce, putils.Vec{X: 1, Y: 2}).
		Return([]event.Event{{Type: event.BuildRejected, Data: reason}}, reason)

	if err := s.Place(defs.TowerIce, putils.Vec{X: 1, Y: 2}); !errors.Is(err, app.ErrTooCloseToPath) {
		t.Errorf("Expected ErrTooCloseToPath, got %v", err)
	}
	if !strings.Contains(buf.String(), "placement rejected") {
		t.Error("Expected rejection to be logged")
	}
}

func TestCycleSpeed(t *testing.T) {
	s, sim, _ := newMockSession(t)
	sim.EXPECT().SetSimulationSpeed(2.0).Return(nil)
	sim.EXPECT().SetSimulationSpeed(4.0).Return(nil)
	sim.EXPECT().SetSimulationSpeed(1.0).Return(nil)

	for _, want := range []float64{2, 4, 1} {
		if got := s.CycleSpeed(); got != want {
			t.Errorf("Expected x%g, got x%g", want, got)
		}
	}
}

// С настоящим ядром: события волны доходят до счётчиков сессии.
func TestSessionDrivesRealGame(t *testing.T) {
	var g *app.Game
	s := session.New(func(l interfaces.Ledger) interfaces.Simulation {
		g = app.NewGame(l, defs.DefaultLibrary(), utils.NewPRNGService(3))
		return g
	}, session.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))

	s.Start()
	if err := s.Place(defs.TowerSniper, putils.Vec{X: 600, Y: 500}); !errors.Is(err, app.ErrInsufficientFunds) {
		t.Errorf("Expected 120 to be too little for a sniper, got %v", err)
	}
	if err := s.Place(defs.TowerBasic, putils.Vec{X: 300, Y: 150}); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if s.Currency() != config.InitialMoney-50 {
		t.Errorf("Expected currency %d, got %d", config.InitialMoney-50, s.Currency())
	}

	for i := 0; i < 100; i++ {
		s.Tick(1)
	}
	if g.ECS.Enemies.Len() == 0 {
		t.Error("Expected wave 1 enemies on the field")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("ANTS_SEED", "1234")
	t.Setenv("ANTS_ROUTE", "route3")
	t.Setenv("ANTS_SPEED", "2")

	cfg := session.LoadConfig()
	if cfg.Seed != 1234 || cfg.Route != "route3" || cfg.Speed != 2 {
		t.Errorf("Unexpected config: %+v", cfg)
	}

	t.Setenv("ANTS_SEED", "abc")
	t.Setenv("ANTS_ROUTE", "route99")
	t.Setenv("ANTS_SPEED", "-1")
	cfg = session.LoadConfig()
	if cfg != session.DefaultConfig() {
		t.Errorf("Expected invalid values to fall back to defaults, got %+v", cfg)
	}
}

func TestBuildAppliesConfig(t *testing.T) {
	cfg := session.Config{Seed: 42, Route: "route2", Speed: 4}
	s, g, err := session.Build(cfg, defs.DefaultLibrary(), route.Viewport{Width: 800, Height: 600},
		session.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.Route().Name() != "route2" || g.Speed() != 4 || g.Rng.Seed() != 42 {
		t.Errorf("Unexpected game: route=%s speed=%g seed=%d", g.Route().Name(), g.Speed(), g.Rng.Seed())
	}
	if vp := g.Viewport(); vp.Width != 800 || vp.Height != 600 {
		t.Errorf("Unexpected viewport %+v", vp)
	}
	if s.SpeedIndex() != 2 {
		t.Errorf("Expected speed index 2 for x4, got %d", s.SpeedIndex())
	}

	if _, _, err := session.Build(session.Config{Route: "nowhere", Speed: 1}, defs.DefaultLibrary(), route.Viewport{Width: 1, Height: 1}); !errors.Is(err, app.ErrUnknownRoute) {
		t.Errorf("Expected unknown route error, got %v", err)
	}
	if _, _, err := session.Build(session.Config{Route: "route1"}, defs.DefaultLibrary(), route.Viewport{Width: 1, Height: 1}); !errors.Is(err, app.ErrInvalidSpeed) {
		t.Errorf("Expected invalid speed error, got %v", err)
	}
}
