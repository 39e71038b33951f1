// internal/entity/pool.go
package entity

import "go-ant-defense/internal/types"

// Member — сущность, которую можно хранить в Pool.
type Member interface {
	EntityID() types.EntityID
	IsActive() bool
}

// Pool — плотный реестр сущностей одного вида.
// Порядок обхода совпадает с порядком добавления и сохраняется при уплотнении,
// поэтому выбор «первого подходящего» стабилен между кадрами.
type Pool[T Member] struct {
	items []T
	index map[types.EntityID]int
}

// NewPool создаёт пустой реестр с заданной ёмкостью.
func NewPool[T Member](capacity int) *Pool[T] {
	return &Pool[T]{
		items: make([]T, 0, capacity),
		index: make(map[types.EntityID]int, capacity),
	}
}

// Add добавляет сущность в конец реестра.
func (p *Pool[T]) Add(item T) {
	p.index[item.EntityID()] = len(p.items)
	p.items = append(p.items, item)
}

// Get ищет сущность по идентификатору. Неактивные сущности до уплотнения тоже находятся.
func (p *Pool[T]) Get(id types.EntityID) (T, bool) {
	i, ok := p.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return p.items[i], true
}

// Len — количество сущностей, включая ещё не удалённые неактивные.
func (p *Pool[T]) Len() int { return len(p.items) }

// At возвращает i-ю сущность в порядке обхода.
func (p *Pool[T]) At(i int) T { return p.items[i] }

// Items возвращает внутренний срез. Его нельзя сохранять между кадрами.
func (p *Pool[T]) Items() []T { return p.items }

// ActiveCount считает активные сущности.
func (p *Pool[T]) ActiveCount() int {
	n := 0
	for _, it := range p.items {
		if it.IsActive() {
			n++
		}
	}
	return n
}

// Compact удаляет неактивные сущности, переиспользуя память среза.
// Возвращает количество удалённых.
func (p *Pool[T]) Compact() int {
	kept := p.items[:0]
	for _, it := range p.items {
		if it.IsActive() {
			kept = append(kept, it)
		} else {
			delete(p.index, it.EntityID())
		}
	}
	removed := len(p.items) - len(kept)
	var zero T
	for i := len(kept); i < len(p.items); i++ {
		p.items[i] = zero
	}
	p.items = kept
	for i, it := range p.items {
		p.index[it.EntityID()] = i
	}
	return removed
}

// Clear удаляет все сущности.
func (p *Pool[T]) Clear() {
	var zero T
	for i := range p.items {
		p.items[i] = zero
	}
	p.items = p.items[:0]
	clear(p.index)
}
