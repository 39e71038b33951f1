package system

import (
	"errors"
	"testing"

	"go-ant-defense/internal/component"
	"go-ant-defense/internal/config"
	"go-ant-defense/internal/event"
)

func TestStartWaveOrdering(t *testing.T) {
	w := newTestWorld(t)

	if err := w.waves.StartWave(2); !errors.Is(err, ErrWaveOutOfOrder) {
		t.Fatalf("Expected ErrWaveOutOfOrder, got %v", err)
	}
	if w.ecs.Wave.State != component.WaveIdle || w.ecs.Wave.EnemiesToSpawn != 0 {
		t.Fatalf("Expected rejected wave to leave state unchanged, got %+v", *w.ecs.Wave)
	}

	if err := w.waves.StartWave(1); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if w.ecs.Wave.EnemiesToSpawn != 11 {
		t.Errorf("Expected 11 pending spawns, got %d", w.ecs.Wave.EnemiesToSpawn)
	}
	if w.ecs.Wave.State != component.WaveSpawning {
		t.Errorf("Expected spawning state, got %s", w.ecs.Wave.State)
	}
	if err := w.waves.StartWave(1); !errors.Is(err, ErrWaveOutOfOrder) {
		t.Errorf("Expected repeated wave to be rejected, got %v", err)
	}

	// Следующая волна складывается с ещё не выпущенной очередью.
	if err := w.waves.StartWave(2); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if w.ecs.Wave.EnemiesToSpawn != 25 {
		t.Errorf("Expected 25 pending spawns after stacking, got %d", w.ecs.Wave.EnemiesToSpawn)
	}
	if n := countEvents(w.queue.Drain(), event.WaveStarted); n != 2 {
		t.Errorf("Expected 2 WaveStarted events, got %d", n)
	}
}

func TestStartWavePastLast(t *testing.T) {
	w := newTestWorld(t)
	w.ecs.Wave.Number = config.MaxWaves
	if err := w.waves.StartWave(config.MaxWaves + 1); !errors.Is(err, ErrNoMoreWaves) {
		t.Errorf("Expected ErrNoMoreWaves, got %v", err)
	}
}

func TestWaveSpawnTiming(t *testing.T) {
	w := newTestWorld(t)
	rt := straightRoute(t)
	if err := w.waves.StartWave(1); err != nil {
		t.Fatal(err)
	}

	w.waves.Update(1, rt, testViewport)
	if w.ecs.Enemies.Len() != 1 {
		t.Fatalf("Expected first spawn on the first step, got %d enemies", w.ecs.Enemies.Len())
	}
	first := w.ecs.Enemies.At(0)
	if first.HP != 30 || first.MaxHP != 30 {
		t.Errorf("Expected 30 HP on wave 1, got %f", first.HP)
	}
	if first.Pos.X != 0 || first.Pos.Y != 50 {
		t.Errorf("Expected spawn at first waypoint (0,50), got %+v", first.Pos)
	}
	if first.BaseSpeed < 1.62-1e-9 || first.BaseSpeed >= 2.16 {
		t.Errorf("Expected wave-1 speed in [1.62, 2.16), got %f", first.BaseSpeed)
	}

	// Интервал волны 1 — 48.5 кадра.
	for i := 0; i < 48; i++ {
		w.waves.Update(1, rt, testViewport)
	}
	if w.ecs.Enemies.Len() != 1 {
		t.Errorf("Expected no spawn before the interval elapsed, got %d enemies", w.ecs.Enemies.Len())
	}
	w.waves.Update(1, rt, testViewport)
	if w.ecs.Enemies.Len() != 2 {
		t.Errorf("Expected second spawn after 48.5 frames, got %d enemies", w.ecs.Enemies.Len())
	}
}

func TestStackedWaveUsesLatestInterval(t *testing.T) {
	w := newTestWorld(t)
	rt := straightRoute(t)
	if err := w.waves.StartWave(1); err != nil {
		t.Fatal(err)
	}
	w.waves.Update(1, rt, testViewport)
	if w.ecs.Wave.SpawnTimer != 48.5 {
		t.Fatalf("Expected wave-1 interval 48.5, got %f", w.ecs.Wave.SpawnTimer)
	}

	if err := w.waves.StartWave(2); err != nil {
		t.Fatal(err)
	}
	if w.ecs.Wave.SpawnInterval != 47 {
		t.Errorf("Expected stored interval 47 for wave 2, got %f", w.ecs.Wave.SpawnInterval)
	}
	w.ecs.Wave.SpawnTimer = 0
	w.waves.Update(1, rt, testViewport)
	if w.ecs.Wave.SpawnTimer != 47 {
		t.Errorf("Expected next spawn after 47 frames, got %f", w.ecs.Wave.SpawnTimer)
	}
}

func TestBossWave(t *testing.T) {
	w := newTestWorld(t)
	rt := straightRoute(t)
	w.ecs.Wave.Number = config.BossWave - 1

	if err := w.waves.StartWave(config.BossWave); err != nil {
		t.Fatal(err)
	}
	if w.ecs.Wave.EnemiesToSpawn != 1 {
		t.Fatalf("Expected a single boss spawn, got %d", w.ecs.Wave.EnemiesToSpawn)
	}
	w.waves.Update(1, rt, testViewport)

	boss := w.ecs.Enemies.At(0)
	if !boss.IsBoss || boss.HP != config.BossHealth || boss.BaseSpeed != config.BossSpeed {
		t.Errorf("Unexpected boss stats: %+v", *boss)
	}
	if boss.Scale != config.BossScale || boss.Tier != config.BossTier || boss.LivesDamage != config.BossLivesDamage {
		t.Errorf("Unexpected boss visuals or damage: %+v", *boss)
	}
	if w.ecs.Wave.State != component.WaveDraining {
		t.Errorf("Expected draining state once the queue is empty, got %s", w.ecs.Wave.State)
	}
	if w.ecs.Wave.SpawnTimer != config.BossSpawnInterval {
		t.Errorf("Expected boss pause %f, got %f", config.BossSpawnInterval, w.ecs.Wave.SpawnTimer)
	}
}

func TestWaveCompletesExactlyOnce(t *testing.T) {
	w := newTestWorld(t)
	rt := straightRoute(t)
	if err := w.waves.StartWave(1); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 11; i++ {
		w.waves.Update(100, rt, testViewport)
	}
	if w.ecs.Wave.EnemiesToSpawn != 0 || w.ecs.Enemies.Len() != 11 {
		t.Fatalf("Expected all 11 spawned, pending %d, enemies %d", w.ecs.Wave.EnemiesToSpawn, w.ecs.Enemies.Len())
	}
	w.queue.Drain()

	w.waves.CheckCompletion()
	if w.queue.Len() != 0 {
		t.Fatal("Expected no completion while enemies remain")
	}

	for _, e := range w.ecs.Enemies.Items() {
		e.Deactivate()
	}
	w.ecs.Enemies.Compact()

	w.waves.CheckCompletion()
	w.waves.CheckCompletion()
	events := w.queue.Drain()
	if n := countEvents(events, event.WaveCompleted); n != 1 {
		t.Fatalf("Expected exactly one WaveCompleted, got %d", n)
	}
	if events[0].Amount != 1 {
		t.Errorf("Expected completed wave number 1, got %d", events[0].Amount)
	}
	if w.ecs.Wave.State != component.WaveIdle {
		t.Errorf("Expected idle after completion, got %s", w.ecs.Wave.State)
	}
}

func TestCompletionIgnoresInactiveEnemies(t *testing.T) {
	w := newTestWorld(t)
	rt := straightRoute(t)
	w.ecs.Wave.Number = config.BossWave - 1
	if err := w.waves.StartWave(config.BossWave); err != nil {
		t.Fatal(err)
	}
	w.waves.Update(1, rt, testViewport)
	w.queue.Drain()

	// Убитый, но ещё не вычищенный враг не держит волну.
	w.ecs.Enemies.At(0).Deactivate()
	w.waves.CheckCompletion()
	if n := countEvents(w.queue.Drain(), event.WaveCompleted); n != 1 {
		t.Errorf("Expected WaveCompleted with only inactive enemies left, got %d", n)
	}
}

func TestCheckCompletionIdleNoop(t *testing.T) {
	w := newTestWorld(t)
	w.waves.CheckCompletion()
	if w.queue.Len() != 0 {
		t.Error("Expected no completion before any wave started")
	}
}
