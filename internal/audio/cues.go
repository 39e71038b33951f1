// internal/audio/cues.go
package audio

import (
	"time"

	"github.com/gopxl/beep"

	"go-ant-defense/internal/defs"
	"go-ant-defense/internal/event"
)

// shotTones — тон выстрела для каждого типа башни.
var shotTones = map[defs.TowerType]struct {
	freq float64
	dur  time.Duration
	wave WaveType
}{
	defs.TowerBasic:  {520, 40 * time.Millisecond, WaveSquare},
	defs.TowerRapid:  {780, 25 * time.Millisecond, WaveSquare},
	defs.TowerIce:    {1200, 80 * time.Millisecond, WaveSine},
	defs.TowerSniper: {300, 90 * time.Millisecond, WaveSaw},
	defs.TowerBlast:  {0, 120 * time.Millisecond, WaveNoise},
	defs.TowerFire:   {0, 150 * time.Millisecond, WaveNoise},
}

// CueFor возвращает звук для события или nil, если событие беззвучное.
func CueFor(e event.Event, cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	var s beep.Streamer

	switch e.Type {
	case event.TowerBuilt:
		s = beep.Seq(
			tone(660, 60*time.Millisecond, WaveSine, rate),
			tone(880, 90*time.Millisecond, WaveSine, rate),
		)
	case event.BuildRejected:
		s = tone(110, 150*time.Millisecond, WaveSaw, rate)
	case event.ShotFired:
		st, ok := shotTones[e.Tower]
		if !ok {
			return nil
		}
		s = newVolume(tone(st.freq, st.dur, st.wave, rate), 0.4)
	case event.EnemyKilled:
		s = newVolume(tone(1000, 30*time.Millisecond, WaveSine, rate), 0.5)
	case event.BossKilled:
		s = beep.Seq(
			tone(523.25, 120*time.Millisecond, WaveSquare, rate),
			tone(659.25, 120*time.Millisecond, WaveSquare, rate),
			tone(783.99, 300*time.Millisecond, WaveSquare, rate),
		)
	case event.GoalBreached:
		s = tone(80, 200*time.Millisecond, WaveSine, rate)
	case event.LivesZero:
		s = beep.Seq(
			tone(392, 200*time.Millisecond, WaveSaw, rate),
			tone(311.13, 200*time.Millisecond, WaveSaw, rate),
			tone(261.63, 400*time.Millisecond, WaveSaw, rate),
		)
	case event.WaveCompleted:
		s = beep.Mix(
			newVolume(tone(880, 250*time.Millisecond, WaveSine, rate), 0.7),
			newVolume(tone(1760, 250*time.Millisecond, WaveSine, rate), 0.3),
		)
	default:
		return nil
	}

	return newVolume(s, cfg.MasterVolume)
}
