// internal/defs/enemies.go
package defs

import (
	"math"

	"go-ant-defense/internal/config"
)

// EnemyStats — стартовые характеристики врага на момент появления.
type EnemyStats struct {
	Health      float64
	Speed       float64
	Scale       float64
	Tier        int
	IsBoss      bool
	LivesDamage int
}

// TierForWave возвращает грубый уровень сложности волны.
func TierForWave(wave int) int {
	return wave / config.TierWaveSpan
}

// HealthMultiplier растёт линейно с номером волны.
func HealthMultiplier(wave int) float64 {
	return 1 + float64(wave)*config.EnemyHealthPerWave
}

// SpeedMultiplier растёт с номером волны, но не выше потолка, чтобы игрок успевал реагировать.
func SpeedMultiplier(wave int) float64 {
	return math.Min(config.EnemyMaxSpeedMultiple, 1+float64(wave)*config.EnemySpeedPerWave)
}

// NormalEnemy вычисляет характеристики обычного врага.
// jitter — случайное число из [0, 1), задающее разброс скорости.
func NormalEnemy(wave int, jitter float64) EnemyStats {
	tier := TierForWave(wave)
	return EnemyStats{
		Health:      config.EnemyBaseHealth * HealthMultiplier(wave),
		Speed:       (config.EnemyBaseSpeed + jitter*config.EnemySpeedJitter) * SpeedMultiplier(wave),
		Scale:       1 + float64(tier)*config.EnemyScalePerTier,
		Tier:        tier,
		LivesDamage: config.EnemyLivesDamage,
	}
}

// BossEnemy — единственный враг босс-волны.
func BossEnemy() EnemyStats {
	return EnemyStats{
		Health:      config.BossHealth,
		Speed:       config.BossSpeed,
		Scale:       config.BossScale,
		Tier:        config.BossTier,
		IsBoss:      true,
		LivesDamage: config.BossLivesDamage,
	}
}
