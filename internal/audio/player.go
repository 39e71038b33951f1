// internal/audio/player.go
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-ant-defense/internal/event"
)

// shotThrottle — не чаще одного звука выстрела за этот интервал.
const shotThrottle = 30 * time.Millisecond

// Player озвучивает события симуляции. Подписывается на event.Dispatcher.
// Не блокирует: звук только добавляется в микшер.
type Player struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastShot    time.Time
	now         func() time.Time
}

func NewPlayer(cfg *Config) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		muted: !cfg.Enabled,
		now:   time.Now,
	}
}

// Initialize открывает устройство вывода и запускает микшер.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close останавливает звук.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// ToggleMute включает и выключает звук, возвращает новое состояние.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// Subscribe подписывает плеер на все озвучиваемые события.
func (p *Player) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(p,
		event.TowerBuilt, event.BuildRejected, event.ShotFired, event.EnemyKilled,
		event.BossKilled, event.GoalBreached, event.LivesZero, event.WaveCompleted)
}

func (p *Player) OnEvent(e event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted {
		return
	}
	if e.Type == event.ShotFired {
		now := p.now()
		if now.Sub(p.lastShot) < shotThrottle {
			return
		}
		p.lastShot = now
	}

	s := CueFor(e, p.cfg)
	if s == nil {
		return
	}
	if p.initialized {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
		return
	}
	p.mixer.Add(s)
}

// Pending — количество звуков в микшере.
func (p *Player) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return p.mixer.Len()
}
