package app

import (
	"errors"
	"math"
	"testing"

	"go-ant-defense/internal/component"
	"go-ant-defense/internal/config"
	"go-ant-defense/internal/defs"
	"go-ant-defense/internal/event"
	"go-ant-defense/internal/interfaces/mocks"
	"go-ant-defense/internal/utils"
	putils "go-ant-defense/pkg/utils"
	"go.uber.org/mock/gomock"
)

func mustPlace(t *testing.T, g *Game, tt defs.TowerType, pos putils.Vec) []event.Event {
	t.Helper()
	events, err := g.RequestPlacement(tt, pos)
	if err != nil {
		t.Fatalf("RequestPlacement(%s, %+v): %v", tt, pos, err)
	}
	return events
}

func TestPlacementValidationOrder(t *testing.T) {
	tests := []struct {
		name     string
		start    bool
		currency int
		tower    defs.TowerType
		pos      putils.Vec
		wantErr  error
	}{
		{"Unknown type before phase", false, 1000, defs.TowerType(42), putils.Vec{X: 500, Y: 10}, ErrUnknownTowerType},
		{"Not playing", false, 1000, defs.TowerBasic, putils.Vec{X: 500, Y: 10}, ErrNotPlaying},
		{"NaN point", true, 1000, defs.TowerBasic, putils.Vec{X: math.NaN(), Y: math.NaN()}, ErrInvalidPosition},
		{"Infinite point", true, 1000, defs.TowerBasic, putils.Vec{X: math.Inf(1), Y: 40}, ErrInvalidPosition},
		{"Outside the field", true, 1000, defs.TowerBasic, putils.Vec{X: -5000, Y: 9000}, ErrInvalidPosition},
		{"Position before funds", true, 0, defs.TowerBasic, putils.Vec{X: 500, Y: 201}, ErrInvalidPosition},
		{"Funds before path", true, 49, defs.TowerBasic, putils.Vec{X: 500, Y: 100}, ErrInsufficientFunds},
		{"On the path", true, 1000, defs.TowerBasic, putils.Vec{X: 500, Y: 100}, ErrTooCloseToPath},
		{"Overlapping tower", true, 1000, defs.TowerBasic, putils.Vec{X: 210, Y: 160}, ErrOverlapsTower},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, ledger := newTestGame(t, tt.currency, 10)
			if tt.start {
				g.Start()
				g.ECS.Towers.Add(&component.Tower{
					Base: component.Base{ID: g.ECS.NewEntity(), Active: true},
					Pos:  putils.Vec{X: 200, Y: 160},
				})
			}
			towersBefore := g.ECS.Towers.Len()

			events, err := g.RequestPlacement(tt.tower, tt.pos)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected %v, got %v", tt.wantErr, err)
			}
			if len(events) != 1 || events[0].Type != event.BuildRejected {
				t.Fatalf("Expected a single BuildRejected, got %+v", events)
			}
			if reason, ok := events[0].Data.(error); !ok || !errors.Is(reason, tt.wantErr) {
				t.Errorf("Expected rejection reason %v, got %v", tt.wantErr, events[0].Data)
			}
			if g.ECS.Towers.Len() != towersBefore || ledger.currency != tt.currency {
				t.Error("Expected rejected placement to leave state untouched")
			}
		})
	}
}

func TestPlacementClearanceBoundary(t *testing.T) {
	g, ledger := newTestGame(t, 1000, 10)
	g.Start()

	// Маршрут идёт по y=100: ровно 30 допустимо, ближе — нет.
	if _, err := g.RequestPlacement(defs.TowerBasic, putils.Vec{X: 500, Y: 100 + config.PathClearance - 0.01}); !errors.Is(err, ErrTooCloseToPath) {
		t.Errorf("Expected ErrTooCloseToPath just inside the clearance, got %v", err)
	}
	ledger.apply(mustPlace(t, g, defs.TowerBasic, putils.Vec{X: 500, Y: 100 + config.PathClearance}))

	// То же для соседней башни.
	if _, err := g.RequestPlacement(defs.TowerBasic, putils.Vec{X: 529.99, Y: 130}); !errors.Is(err, ErrOverlapsTower) {
		t.Errorf("Expected ErrOverlapsTower just inside the clearance, got %v", err)
	}
	ledger.apply(mustPlace(t, g, defs.TowerBasic, putils.Vec{X: 530, Y: 130}))

	if g.ECS.Towers.Len() != 2 {
		t.Errorf("Expected 2 towers, got %d", g.ECS.Towers.Len())
	}
}

func TestPlacementAcceptEvents(t *testing.T) {
	g, ledger := newTestGame(t, config.InitialMoney, 10)
	g.Start()
	pos := putils.Vec{X: 300, Y: 40}

	events := mustPlace(t, g, defs.TowerBasic, pos)
	if len(events) != 2 || events[0].Type != event.CurrencyChanged || events[1].Type != event.TowerBuilt {
		t.Fatalf("Expected CurrencyChanged then TowerBuilt, got %+v", events)
	}
	if events[0].Amount != -50 {
		t.Errorf("Expected debit of 50, got %d", events[0].Amount)
	}
	ledger.apply(events)

	tower, ok := g.TowerAt(putils.Vec{X: 310, Y: 45})
	if !ok {
		t.Fatal("Expected TowerAt to find the new tower")
	}
	if tower.Cooldown != 0 || tower.Angle != 0 || tower.Type != defs.TowerBasic || tower.Pos != pos {
		t.Errorf("Unexpected new tower: %+v", tower)
	}
	if g.ECS.Particles.Len() != config.BuildParticles {
		t.Errorf("Expected %d build particles, got %d", config.BuildParticles, g.ECS.Particles.Len())
	}
	for _, p := range g.ECS.Particles.Items() {
		if p.Color != config.BuildFlashColor {
			t.Errorf("Expected white build particles, got %+v", p.Color)
		}
	}
}

func TestCurrencyNeverNegative(t *testing.T) {
	g, ledger := newTestGame(t, config.InitialMoney, 10)
	g.Start()

	spots := []putils.Vec{{X: 100, Y: 30}, {X: 200, Y: 30}, {X: 300, Y: 30}, {X: 400, Y: 30}}
	built := 0
	for _, pos := range spots {
		events, err := g.RequestPlacement(defs.TowerBasic, pos)
		ledger.apply(events)
		if err == nil {
			built++
		} else if !errors.Is(err, ErrInsufficientFunds) {
			t.Fatalf("Unexpected error: %v", err)
		}
		if ledger.currency < 0 {
			t.Fatalf("Currency went negative: %d", ledger.currency)
		}
	}
	if built != 2 || ledger.currency != 20 {
		t.Errorf("Expected 2 towers and 20 left, got %d and %d", built, ledger.currency)
	}
}

func TestPlacementPreviewDoesNotMutate(t *testing.T) {
	g, _ := newTestGame(t, 1000, 10)
	g.Start()

	if err := g.PlacementPreview(defs.TowerIce, putils.Vec{X: 500, Y: 40}); err != nil {
		t.Errorf("Expected valid preview, got %v", err)
	}
	if err := g.PlacementPreview(defs.TowerIce, putils.Vec{X: 500, Y: 100}); !errors.Is(err, ErrTooCloseToPath) {
		t.Errorf("Expected ErrTooCloseToPath, got %v", err)
	}
	if g.ECS.Towers.Len() != 0 || g.ECS.Particles.Len() != 0 || g.ECS.NextID != 1 {
		t.Error("Expected preview to leave the world untouched")
	}
}

func TestPlacementReadsLedgerCurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockLedger(ctrl)
	ledger.EXPECT().Currency().Return(49).Times(1)
	ledger.EXPECT().Lives().Times(0)

	g := NewGame(ledger, defs.DefaultLibrary(), utils.NewPRNGService(1))
	g.Start()

	if _, err := g.RequestPlacement(defs.TowerBasic, putils.Vec{X: 10, Y: 10}); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("Expected ErrInsufficientFunds, got %v", err)
	}
}

func TestTickSnapshotsLedgerOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockLedger(ctrl)
	ledger.EXPECT().Currency().Return(0).Times(2)
	ledger.EXPECT().Lives().Return(10).Times(2)

	g := NewGame(ledger, defs.DefaultLibrary(), utils.NewPRNGService(1))
	g.Start()
	g.Tick(1)
	g.Tick(1)
}

func TestRepeatedInvalidPlacementBuildsNothing(t *testing.T) {
	g, ledger := newTestGame(t, 1000, 10)
	g.Start()

	for i := 0; i < 3; i++ {
		events, err := g.RequestPlacement(defs.TowerBasic, putils.Vec{X: math.NaN(), Y: math.NaN()})
		ledger.apply(events)
		if !errors.Is(err, ErrInvalidPosition) {
			t.Fatalf("Attempt %d: expected ErrInvalidPosition, got %v", i, err)
		}
	}
	if g.ECS.Towers.Len() != 0 || ledger.currency != 1000 {
		t.Errorf("Expected no towers and untouched currency, got %d towers and %d", g.ECS.Towers.Len(), ledger.currency)
	}

	// Края поля допустимы.
	ledger.apply(mustPlace(t, g, defs.TowerBasic, putils.Vec{X: 1000, Y: 200}))
	if err := g.PlacementPreview(defs.TowerBasic, putils.Vec{X: 1000.5, Y: 200}); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("Expected preview to reject a point past the edge, got %v", err)
	}
}
