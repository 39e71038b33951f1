package ui

import (
	"image"
	"strings"
	"testing"

	"go-ant-defense/internal/component"
	"go-ant-defense/internal/config"
	"go-ant-defense/internal/defs"
)

func TestToRoman(t *testing.T) {
	tests := map[int]string{0: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 99: "XCIX", 100: "C"}
	for n, want := range tests {
		if got := toRoman(n); got != want {
			t.Errorf("toRoman(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestWaveColor(t *testing.T) {
	w := NewWaveIndicator(0, 0, nil)
	if w.WaveColor(3) != config.UIBorderColor {
		t.Error("Expected regular color on wave 3")
	}
	if w.WaveColor(20) != config.BreachTextColor {
		t.Error("Expected red on every tenth wave")
	}
	if w.WaveColor(config.BossWave) != config.BossTextColor {
		t.Error("Expected boss color on the boss wave")
	}
}

func TestLivesCellColor(t *testing.T) {
	// 10 жизней из 10: половина синих, половина красных.
	for j := 0; j < 10; j++ {
		want := livesLow
		if j < 5 {
			want = livesFull
		}
		if got := CellColor(j, 10, 10); got != want {
			t.Errorf("cell %d at full lives: got %v", j, got)
		}
	}
	if CellColor(0, 4, 10) != livesLow {
		t.Error("Expected all remaining cells red at low lives")
	}
	if CellColor(4, 4, 10) != livesEmpty {
		t.Error("Expected lost cells to be empty")
	}
}

func TestSpawnRatio(t *testing.T) {
	if SpawnRatio(component.Wave{}) != 0 {
		t.Error("Expected empty wave ratio 0")
	}
	if r := SpawnRatio(component.Wave{Spawned: 3, EnemiesToSpawn: 9}); r != 0.25 {
		t.Errorf("Expected 0.25, got %v", r)
	}
}

func TestTowerLines(t *testing.T) {
	lib := defs.DefaultLibrary()
	basic, _ := lib.Lookup(defs.TowerBasic)
	lines := TowerLines(basic)
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines for a plain tower, got %v", lines)
	}
	if lines[0] != "Cost: $50" || lines[2] != "Fire Rate: 2.0/s" {
		t.Errorf("Unexpected lines %v", lines)
	}

	fire, _ := lib.Lookup(defs.TowerFire)
	joined := strings.Join(TowerLines(fire), "|")
	if !strings.Contains(joined, "Splash: 90") || !strings.Contains(joined, "Effect: BURN") {
		t.Errorf("Expected splash and effect lines, got %v", joined)
	}
}

func TestInfoPanelSlides(t *testing.T) {
	p := NewInfoPanel(nil, nil)
	def, _ := defs.DefaultLibrary().Lookup(defs.TowerIce)
	p.SetTarget(def)
	for i := 0; i < 100; i++ {
		p.Update()
	}
	if p.currentX != config.ScreenWidth-panelWidth || !p.IsVisible {
		t.Fatalf("Expected panel open at %d, got %v", config.ScreenWidth-panelWidth, p.currentX)
	}
	r := p.rect()
	if !p.Contains(r.Min.X+1, r.Min.Y+1) {
		t.Error("Expected open panel to catch clicks")
	}

	p.Hide()
	for i := 0; i < 100; i++ {
		p.Update()
	}
	if p.IsVisible || p.Contains(r.Min.X+1, r.Min.Y+1) {
		t.Error("Expected hidden panel to be invisible")
	}
}

func TestBannerFades(t *testing.T) {
	b := NewBanner(nil)
	if b.Opacity() != 0 {
		t.Error("Expected empty banner to be invisible")
	}
	b.Show("Wave 1 incoming!")
	if b.Opacity() != 1 {
		t.Error("Expected fresh banner fully visible")
	}
	b.Update(config.BannerLife - config.BannerLife/6)
	if o := b.Opacity(); o <= 0 || o >= 1 {
		t.Errorf("Expected fading banner, got %v", o)
	}
	b.Update(config.BannerLife)
	if b.Opacity() != 0 {
		t.Error("Expected expired banner to be invisible")
	}
}

func TestTowerPicker(t *testing.T) {
	p := NewTowerPicker(defs.DefaultLibrary(), nil)
	if len(p.buttons) != len(defs.TowerTypes()) {
		t.Fatalf("Expected one button per tower type, got %d", len(p.buttons))
	}

	third := p.buttons[2].Rect
	tt, ok := p.HitTest(third.Min.X+1, third.Min.Y+1)
	if !ok || tt != defs.TowerIce {
		t.Errorf("Expected ICE under third button, got %v %v", tt, ok)
	}
	if _, ok := p.HitTest(0, 0); ok {
		t.Error("Expected miss outside the picker")
	}

	p.Select(defs.TowerSniper)
	if cur, ok := p.Current(); !ok || cur != defs.TowerSniper {
		t.Errorf("Expected sniper selected, got %v %v", cur, ok)
	}
	p.Select(defs.TowerSniper)
	if _, ok := p.Current(); ok {
		t.Error("Expected second select to clear")
	}
	p.Select(defs.TowerType(42))
	if _, ok := p.Current(); ok {
		t.Error("Expected invalid type not to be selected")
	}
}

func TestSpeedButtonState(t *testing.T) {
	b := NewSpeedButton(100, 100, 10, config.SpeedButtonColors)
	b.ToggleState()
	b.ToggleState()
	if b.CurrentState != 2 {
		t.Errorf("Expected state 2, got %d", b.CurrentState)
	}
	b.ToggleState()
	if b.CurrentState != 0 {
		t.Errorf("Expected wrap to 0, got %d", b.CurrentState)
	}
	b.SetState(-1)
	if b.CurrentState != 2 {
		t.Errorf("Expected -1 to wrap to 2, got %d", b.CurrentState)
	}
	if !b.IsClicked(110, 100) || b.IsClicked(130, 100) {
		t.Error("Unexpected hit area")
	}
}

func TestPhaseColorAndButton(t *testing.T) {
	if PhaseColor(component.PhaseGameOver) != config.GameOverColor || PhaseColor(component.PhaseMenu) != config.MenuPhaseColor {
		t.Error("Unexpected phase colors")
	}
	b := NewButton(image.Rect(10, 10, 50, 30), "Start", nil)
	if !b.Contains(10, 10) || b.Contains(50, 30) {
		t.Error("Expected half-open rectangle hit test")
	}
}
