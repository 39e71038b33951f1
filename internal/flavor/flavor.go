// internal/flavor/flavor.go
package flavor

import (
	"context"
	"fmt"
)

//go:generate go tool mockgen -destination=./mocks/provider_mock.go -package=mocks . Provider

// Kind — повод для сообщения.
type Kind int

const (
	KindWaveIntro Kind = iota
	KindGameOver
)

func (k Kind) String() string {
	switch k {
	case KindWaveIntro:
		return "wave_intro"
	case KindGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Request — параметры сообщения.
type Request struct {
	Kind       Kind
	Wave       int
	Score      int
	Difficulty string
}

// Key — ключ для склейки одинаковых запросов.
func (r Request) Key() string {
	return fmt.Sprintf("%s/%d", r.Kind, r.Wave)
}

// Difficulty — подпись сложности для волны.
func Difficulty(wave int) string {
	if wave > 5 {
		return "Hard"
	}
	return "Easy"
}

// WaveIntro собирает запрос вступления к волне.
func WaveIntro(wave int) Request {
	return Request{Kind: KindWaveIntro, Wave: wave, Difficulty: Difficulty(wave)}
}

// GameOver собирает запрос итогового сообщения.
func GameOver(wave, score int) Request {
	return Request{Kind: KindGameOver, Wave: wave, Score: score}
}

// Provider — внешний сервис текстов. Может быть медленным или недоступным.
type Provider interface {
	Flavor(ctx context.Context, req Request) (string, error)
}

// Static — запасной провайдер с фиксированными строками.
type Static struct{}

func (Static) Flavor(_ context.Context, req Request) (string, error) {
	return fallbackText(req), nil
}

func fallbackText(req Request) string {
	switch req.Kind {
	case KindGameOver:
		return fmt.Sprintf("Game Over! You reached Wave %d.", req.Wave)
	default:
		return fmt.Sprintf("Wave %d incoming! Defend the cake!", req.Wave)
	}
}

// Placeholder — строка, которую показывают, пока ответ не пришёл.
func Placeholder(req Request) string {
	if req.Kind == KindGameOver {
		return fmt.Sprintf("Game Over! You reached Wave %d.", req.Wave)
	}
	return fmt.Sprintf("Wave %d Starting...", req.Wave)
}
