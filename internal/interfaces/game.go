// internal/interfaces/game.go
package interfaces

import (
	"go-ant-defense/internal/defs"
	"go-ant-defense/internal/event"
	"go-ant-defense/pkg/utils"
)

//go:generate go tool mockgen -destination=./mocks/simulation_mock.go -package=mocks . Simulation

// Simulation — то, что хост сессии требует от ядра.
// Это помогает избежать циклических зависимостей между session и app.
type Simulation interface {
	Start()
	Reset()
	AdvanceWave(index int) ([]event.Event, error)
	RequestPlacement(t defs.TowerType, pos utils.Vec) ([]event.Event, error)
	SetSimulationSpeed(multiplier float64) error
	Tick(elapsed float64) []event.Event
}
