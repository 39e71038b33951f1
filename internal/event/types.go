// internal/event/types.go
package event

const (
	WaveCompleted   EventType = "WaveCompleted"   // Волна закончилась: очередь пуста и врагов нет
	LivesChanged    EventType = "LivesChanged"    // Amount — изменение жизней (отрицательное)
	LivesZero       EventType = "LivesZero"       // Жизни кончились, игра окончена
	CurrencyChanged EventType = "CurrencyChanged" // Amount — изменение денег

	TowerBuilt    EventType = "TowerBuilt"    // Башня построена
	BuildRejected EventType = "BuildRejected" // Data — причина отказа (error)
	ShotFired     EventType = "ShotFired"     // Tower — тип выстрелившей башни
	EnemyKilled   EventType = "EnemyKilled"   // Враг уничтожен, Amount — награда
	BossKilled    EventType = "BossKilled"    // Босс уничтожен, Amount — награда
	GoalBreached  EventType = "GoalBreached"  // Враг дошёл до торта
	WaveStarted   EventType = "WaveStarted"   // Amount — номер волны
)
