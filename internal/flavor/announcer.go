// internal/flavor/announcer.go
package flavor

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const DefaultTimeout = 3 * time.Second

// Message — готовый текст для показа.
type Message struct {
	Request  Request
	Text     string
	Fallback bool // Провайдер не ответил или ответил ошибкой
}

// Announcer запрашивает тексты в фоне и никогда не блокирует вызывающего.
// Одинаковые запросы, пришедшие одновременно, идут к провайдеру один раз.
type Announcer struct {
	provider Provider
	timeout  time.Duration
	group    singleflight.Group
	out      chan Message

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
}

// NewAnnouncer создаёт анонсер. buffer — сколько сообщений держать до чтения, лишние отбрасываются.
func NewAnnouncer(provider Provider, timeout time.Duration, buffer int) *Announcer {
	if provider == nil {
		provider = Static{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Announcer{
		provider: provider,
		timeout:  timeout,
		out:      make(chan Message, buffer),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Messages — канал готовых сообщений. Закрывается в Close.
func (a *Announcer) Messages() <-chan Message {
	return a.out
}

// Announce запускает запрос и сразу возвращается.
func (a *Announcer) Announce(req Request) {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.wg.Add(1)
	a.mu.Unlock()

	go func() {
		defer a.wg.Done()
		msg := a.fetch(req)
		select {
		case a.out <- msg:
		case <-a.ctx.Done():
		default:
			// Никто не читает: старые тексты никому не нужны.
		}
	}()
}

func (a *Announcer) fetch(req Request) Message {
	v, err, _ := a.group.Do(req.Key(), func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(a.ctx, a.timeout)
		defer cancel()
		return a.provider.Flavor(ctx, req)
	})
	text, _ := v.(string)
	text = strings.TrimSpace(text)
	if err != nil || text == "" {
		return Message{Request: req, Text: fallbackText(req), Fallback: true}
	}
	return Message{Request: req, Text: text}
}

// Close отменяет запросы в полёте, дожидается горутин и закрывает канал.
func (a *Announcer) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	a.mu.Unlock()

	a.cancel()
	a.wg.Wait()
	close(a.out)
}
