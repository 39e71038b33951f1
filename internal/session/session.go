// internal/session/session.go
package session

import (
	"log/slog"

	"github.com/google/uuid"

	"go-ant-defense/internal/config"
	"go-ant-defense/internal/defs"
	"go-ant-defense/internal/event"
	"go-ant-defense/internal/flavor"
	"go-ant-defense/internal/interfaces"
	"go-ant-defense/pkg/utils"
)

// Session владеет счётчиками игрока: деньги, жизни, номер волны.
// Ядро симуляции читает их через interfaces.Ledger и меняет только событиями.
type Session struct {
	id         string
	logger     *slog.Logger
	sim        interfaces.Simulation
	dispatcher *event.Dispatcher
	announcer  *flavor.Announcer

	currency int
	lives    int
	wave     int
	gameOver bool
	victory  bool

	speedIndex int
}

// Option настраивает сессию.
type Option func(*Session)

// WithLogger задаёт логгер; по умолчанию slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithAnnouncer подключает тексты к началу волны и концу игры.
func WithAnnouncer(a *flavor.Announcer) Option {
	return func(s *Session) { s.announcer = a }
}

// New создаёт сессию. newSim получает саму сессию как Ledger.
func New(newSim func(interfaces.Ledger) interfaces.Simulation, opts ...Option) *Session {
	s := &Session{
		id:         uuid.NewString(),
		logger:     slog.Default(),
		dispatcher: event.NewDispatcher(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session_id", s.id)
	s.sim = newSim(s)
	return s
}

func (s *Session) ID() string                    { return s.id }
func (s *Session) Currency() int                 { return s.currency }
func (s *Session) Lives() int                    { return s.lives }
func (s *Session) Wave() int                     { return s.wave }
func (s *Session) GameOver() bool                { return s.gameOver }
func (s *Session) Victory() bool                 { return s.victory }
func (s *Session) Dispatcher() *event.Dispatcher { return s.dispatcher }

// Start начинает новую игру с первой волны.
func (s *Session) Start() {
	s.sim.Reset()
	s.currency = config.InitialMoney
	s.lives = config.InitialLives
	s.wave = 0
	s.gameOver = false
	s.victory = false
	s.sim.Start()
	s.logger.Info("game started", "currency", s.currency, "lives", s.lives)
	s.advance()
}

// Reset возвращает игру в меню.
func (s *Session) Reset() {
	s.sim.Reset()
	s.wave = 0
	s.gameOver = false
	s.victory = false
	s.logger.Info("returned to menu")
}

// Tick продвигает симуляцию и применяет её события.
func (s *Session) Tick(elapsed float64) []event.Event {
	events := s.sim.Tick(elapsed)
	s.apply(events)
	return events
}

// Place просит ядро построить башню.
func (s *Session) Place(t defs.TowerType, pos utils.Vec) error {
	events, err := s.sim.RequestPlacement(t, pos)
	s.apply(events)
	if err != nil {
		s.logger.Debug("placement rejected", "tower", t, "x", pos.X, "y", pos.Y, "err", err)
	}
	return err
}

// SetSpeed задаёт множитель скорости.
func (s *Session) SetSpeed(multiplier float64) error {
	if err := s.sim.SetSimulationSpeed(multiplier); err != nil {
		return err
	}
	for i, m := range config.SpeedMultipliers {
		if m == multiplier {
			s.speedIndex = i
		}
	}
	return nil
}

// CycleSpeed переключает x1 → x2 → x4 → x1.
func (s *Session) CycleSpeed() float64 {
	s.speedIndex = (s.speedIndex + 1) % len(config.SpeedMultipliers)
	m := config.SpeedMultipliers[s.speedIndex]
	if err := s.sim.SetSimulationSpeed(m); err != nil {
		s.logger.Error("failed to set speed", "speed", m, "err", err)
	}
	return m
}

// SpeedIndex — индекс текущей скорости в config.SpeedMultipliers.
func (s *Session) SpeedIndex() int { return s.speedIndex }

func (s *Session) apply(events []event.Event) {
	for _, e := range events {
		switch e.Type {
		case event.CurrencyChanged:
			s.currency += e.Amount
		case event.LivesChanged:
			s.lives += e.Amount
		case event.LivesZero:
			s.gameOver = true
			s.logger.Info("game over", "wave", s.wave, "currency", s.currency)
			s.announce(flavor.GameOver(s.wave, s.currency))
		case event.WaveStarted:
			s.logger.Info("wave started", "wave", e.Amount)
			s.announce(flavor.WaveIntro(e.Amount))
		}
		s.dispatcher.Dispatch(e)

		if e.Type == event.WaveCompleted {
			// Премия за волну идёт тем же путём, что и награды ядра, чтобы её видели подписчики.
			s.apply([]event.Event{{Type: event.CurrencyChanged, Amount: config.WaveClearBonus}})
			s.logger.Info("wave complete", "wave", e.Amount, "currency", s.currency, "lives", s.lives)
			s.advance()
		}
	}
}

// advance запускает следующую волну, пока они не кончились.
func (s *Session) advance() {
	if s.gameOver {
		return
	}
	if s.wave >= config.MaxWaves {
		s.victory = true
		s.logger.Info("all waves cleared", "currency", s.currency)
		return
	}
	next := s.wave + 1
	events, err := s.sim.AdvanceWave(next)
	if err != nil {
		// Игра не запущена или номер разошёлся с ядром: номер не меняем.
		s.logger.Warn("failed to advance wave", "wave", next, "err", err)
		return
	}
	s.wave = next
	s.apply(events)
}

func (s *Session) announce(req flavor.Request) {
	if s.announcer != nil {
		s.announcer.Announce(req)
	}
}
