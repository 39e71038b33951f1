package render

import (
	"image/color"
	"math"
	"testing"

	"go-ant-defense/internal/component"
	"go-ant-defense/pkg/route"
	"go-ant-defense/pkg/utils"
)

func TestFade(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	if got := Fade(c, 1); got != c {
		t.Errorf("Expected full opacity to keep color, got %v", got)
	}
	if got := Fade(c, 0); got != (color.RGBA{}) {
		t.Errorf("Expected zero opacity to be transparent, got %v", got)
	}
	half := Fade(c, 0.5)
	if half.A != 127 || half.R != 100 || half.G != 50 || half.B != 25 {
		t.Errorf("Unexpected half fade %v", half)
	}
}

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 255})
	if got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("Unexpected darkened color %v", got)
	}
}

func TestHealthFraction(t *testing.T) {
	tests := []struct {
		hp, maxHP, want float64
	}{
		{30, 30, 1},
		{15, 30, 0.5},
		{-5, 30, 0},
		{40, 30, 1},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := HealthFraction(tt.hp, tt.maxHP); got != tt.want {
			t.Errorf("HealthFraction(%v, %v) = %v, want %v", tt.hp, tt.maxHP, got, tt.want)
		}
	}
}

func TestHealthBarScalesWithEnemy(t *testing.T) {
	e := &component.Enemy{Pos: utils.Vec{X: 100, Y: 50}, HP: 10, MaxHP: 40, Scale: 2}
	x, y, w, h, filled := HealthBar(e)
	if w != 40 || h != HealthBarHeight {
		t.Errorf("Expected 40x%v bar, got %vx%v", HealthBarHeight, w, h)
	}
	if x != 80 || y != 32 {
		t.Errorf("Expected bar at (80,32), got (%v,%v)", x, y)
	}
	if filled != 10 {
		t.Errorf("Expected quarter fill 10, got %v", filled)
	}

	// Scale 0 у незаполненного компонента не должен схлопывать полоску.
	_, _, w, _, _ = HealthBar(&component.Enemy{HP: 1, MaxHP: 1})
	if w != HealthBarWidth {
		t.Errorf("Expected default width %v, got %v", HealthBarWidth, w)
	}
}

func TestBarrelEnd(t *testing.T) {
	end := BarrelEnd(utils.Vec{X: 10, Y: 10}, math.Pi/2)
	if math.Abs(end.X-10) > 1e-9 || math.Abs(end.Y-(10+BarrelLength)) > 1e-9 {
		t.Errorf("Unexpected barrel end %+v", end)
	}
}

func TestPathKeyChangesWithRouteAndViewport(t *testing.T) {
	path := []utils.Vec{{X: 0, Y: 10}, {X: 50, Y: 10}}
	vp := route.Viewport{Width: 100, Height: 20}
	base := PathKey(path, vp)
	if PathKey([]utils.Vec{{X: 0, Y: 10}, {X: 50, Y: 10}}, vp) != base {
		t.Error("Expected equal paths to share a key")
	}
	if PathKey([]utils.Vec{{X: 0, Y: 10}, {X: 60, Y: 10}}, vp) == base {
		t.Error("Expected moved waypoint to change the key")
	}
	if PathKey(path, route.Viewport{Width: 200, Height: 20}) == base {
		t.Error("Expected resized viewport to change the key")
	}
}

func TestLoadFace(t *testing.T) {
	face, err := LoadFace(14)
	if err != nil {
		t.Fatalf("LoadFace: %v", err)
	}
	if face.Metrics().Height <= 0 {
		t.Error("Expected positive line height")
	}
	if FaceOrDefault(14) == nil {
		t.Error("Expected a face")
	}
}
