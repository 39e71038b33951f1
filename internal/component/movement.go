// component/movement.go
package component

import "go-ant-defense/internal/types"

// Base — общие поля всех сущностей симуляции: стабильный идентификатор и флаг активности.
// Неактивные сущности остаются в реестре до ближайшего уплотнения.
type Base struct {
	ID     types.EntityID
	Active bool
}

func (b *Base) EntityID() types.EntityID { return b.ID }

func (b *Base) IsActive() bool { return b.Active }

// Deactivate помечает сущность к удалению.
func (b *Base) Deactivate() { b.Active = false }
