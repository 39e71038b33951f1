// internal/event/event.go
package event

import (
	"go-ant-defense/internal/defs"
	"go-ant-defense/internal/types"
	"go-ant-defense/pkg/utils"
)

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type   EventType
	Pos    utils.Vec // Где произошло, для событий сессии — нулевая точка
	Amount int       // Изменение счётчика, награда или номер волны
	Tower  defs.TowerType
	Entity types.EntityID
	Data   interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher — диспетчер событий
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll подписывает слушателя на несколько типов сразу.
func (d *Dispatcher) SubscribeAll(listener Listener, eventTypes ...EventType) {
	for _, t := range eventTypes {
		d.Subscribe(t, listener)
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}

// Queue накапливает события одного шага симуляции.
// Симуляция не вызывает хост напрямую: она возвращает очередь, а хост применяет её сам.
type Queue struct {
	events []Event
}

// Push добавляет событие в очередь.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain возвращает накопленные события и очищает очередь.
func (q *Queue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Len — количество событий в очереди.
func (q *Queue) Len() int { return len(q.events) }
