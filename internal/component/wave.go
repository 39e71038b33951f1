package component

// WaveState — состояние директора волн.
type WaveState int

const (
	WaveIdle     WaveState = iota // Ждём следующую волну
	WaveSpawning                  // Есть враги в очереди на появление
	WaveDraining                  // Очередь пуста, враги ещё на поле
)

func (s WaveState) String() string {
	switch s {
	case WaveIdle:
		return "idle"
	case WaveSpawning:
		return "spawning"
	case WaveDraining:
		return "draining"
	default:
		return "unknown"
	}
}

// Wave — счётчики директора волн.
type Wave struct {
	State          WaveState
	Number         int     // Последняя запущенная волна
	EnemiesToSpawn int     // Сколько врагов ещё появится
	SpawnTimer     float64 // Кадров до следующего появления
	SpawnInterval  float64 // Пауза после обычного врага, берётся из последней запущенной волны
	Spawned        int     // Появилось с начала текущей волны
}
