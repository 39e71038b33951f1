// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 800
	FPS          = 60
	MaxElapsed   = 4.0 // Кадров за один Tick, больше не накапливаем

	InitialMoney    = 120
	InitialLives    = 10
	MaxWaves        = 100
	WaveClearBonus  = 50
	DefaultRouteKey = "route1"
)

// Волны. Все таймеры считаются в кадрах (1 кадр = 1/60 с при скорости x1).
const (
	BaseEnemyCount        = 8
	EnemyCountPerWave     = 3
	BossWave              = 100
	InitialSpawnDelay     = 0
	BaseSpawnInterval     = 50.0
	SpawnIntervalPerWave  = 1.5
	MinSpawnInterval      = 8.0
	BossSpawnInterval     = 200.0
	TierWaveSpan          = 10
	EnemyBaseHealth       = 20.0
	EnemyHealthPerWave    = 0.5
	EnemyBaseSpeed        = 1.5
	EnemySpeedJitter      = 0.5
	EnemySpeedPerWave     = 0.08
	EnemyMaxSpeedMultiple = 3.5
	EnemyScalePerTier     = 0.12

	BossHealth      = 80000.0
	BossSpeed       = 0.4
	BossScale       = 4.0
	BossTier        = 20
	BossLivesDamage = 100
	BossReward      = 10000

	EnemyLivesDamage = 1
	KillRewardBase   = 10
	KillRewardSpread = 5
)

// Бой и размещение.
const (
	ProjectileSpeed    = 12.0
	ProjectileRadius   = 4.0
	HeavyShellRadius   = 8.0
	SlowDuration       = 120.0
	SlowFactor         = 0.5
	PathClearance      = 30.0
	TowerClearance     = 30.0
	TowerBaseRadius    = 20.0
	ImpactParticlesAoe = 12
	ImpactParticles    = 4
	KillParticles      = 5
	BossKillParticles  = 50
	BuildParticles     = 10
	ParticleSpread     = 5.0
	ParticleBaseLife   = 20.0
	ParticleLifeSpread = 20.0
	ParticleMaxLife    = 40.0
	ParticleBaseSize   = 2.0
	ParticleSizeSpread = 3.0
	RewardTextLife     = 40.0
	RewardTextRise     = -0.5
	BreachTextLife     = 60.0
	BossDefeatTextLife = 120.0
	FloatingTextRise   = -1.0
)

// Интерфейс.
const (
	ClickCooldown    = 150 // мс между переключениями кнопок
	UIMargin         = 16
	PickerButtonSize = 64
	BannerLife       = 180.0 // Кадров показа текста волны
)

var (
	BackgroundColor  = color.RGBA{15, 23, 42, 255}
	PathColor        = color.RGBA{51, 65, 85, 255}
	TowerBaseColor   = color.RGBA{30, 41, 59, 255}
	EnemyColor       = color.RGBA{62, 39, 35, 255}
	CakeColor        = color.RGBA{244, 143, 177, 255}
	HealthBarBack    = color.RGBA{239, 68, 68, 255}
	HealthBarFront   = color.RGBA{16, 185, 129, 255}
	ExplosionColor   = color.RGBA{139, 92, 246, 255}
	BuildFlashColor  = color.RGBA{255, 255, 255, 255}
	RewardTextColor  = color.RGBA{251, 191, 36, 255}
	BreachTextColor  = color.RGBA{239, 68, 68, 255}
	BossTextColor    = color.RGBA{244, 114, 182, 255}
	InvalidGhost     = color.RGBA{239, 68, 68, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	SlowedEnemyColor = color.RGBA{34, 211, 238, 255}

	UIPanelColor      = color.RGBA{25, 35, 45, 230}
	UIBorderColor     = color.RGBA{70, 130, 180, 255}
	UIDisabledColor   = color.RGBA{71, 85, 105, 255}
	UISelectedColor   = color.RGBA{16, 185, 129, 255}
	PauseColor        = color.RGBA{251, 191, 36, 255}
	PlayColor         = color.RGBA{16, 185, 129, 255}
	MenuPhaseColor    = color.RGBA{100, 116, 139, 255}
	PlayingPhaseColor = color.RGBA{16, 185, 129, 255}
	GameOverColor     = color.RGBA{239, 68, 68, 255}

	SpeedMultipliers  = []float64{1, 2, 4}
	SpeedButtonColors = []color.RGBA{
		{70, 130, 180, 220},  // x1
		{220, 60, 60, 220},   // x2
		{194, 178, 128, 255}, // x4
	}
)
