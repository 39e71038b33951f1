package defs

import (
	"math"

	"go-ant-defense/internal/config"
)

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	Number        int
	Count         int     // Количество врагов в волне
	SpawnInterval float64 // Кадров между обычными врагами; после босса пауза своя
	IsBossWave    bool
}

// WaveFor вычисляет определение волны по её номеру.
func WaveFor(wave int) WaveDefinition {
	if wave == config.BossWave {
		return WaveDefinition{
			Number:        wave,
			Count:         1,
			SpawnInterval: SpawnInterval(wave),
			IsBossWave:    true,
		}
	}
	return WaveDefinition{
		Number:        wave,
		Count:         config.BaseEnemyCount + config.EnemyCountPerWave*wave,
		SpawnInterval: SpawnInterval(wave),
	}
}

// SpawnInterval — пауза между обычными врагами, сокращается к поздним волнам.
func SpawnInterval(wave int) float64 {
	return math.Max(config.MinSpawnInterval, config.BaseSpawnInterval-float64(wave)*config.SpawnIntervalPerWave)
}
