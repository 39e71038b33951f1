package component

import "go-ant-defense/pkg/utils"

// Enemy представляет вражескую сущность (муравья).
type Enemy struct {
	Base
	Pos         utils.Vec
	HP          float64
	MaxHP       float64
	BaseSpeed   float64 // Скорость без эффектов
	Speed       float64 // Эффективная скорость на последнем шаге
	PathIndex   int     // Индекс последней пройденной точки маршрута, только растёт
	SlowTimer   float64 // Кадров замедления осталось
	Scale       float64
	Tier        int
	IsBoss      bool
	LivesDamage int // Сколько жизней отнимает при достижении цели
}
