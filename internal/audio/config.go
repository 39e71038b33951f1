// internal/audio/config.go
package audio

import (
	"os"
	"strconv"

	"go-ant-defense/internal/utils"
)

// Config — настройки звука.
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
	}
}

// LoadConfig читает настройки звука из переменных окружения.
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("ANTS_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Громкость 0-100 переводится в 0.0-1.0
	if volume := os.Getenv("ANTS_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = utils.Clamp(float64(val)/100.0, 0, 1)
		}
	}

	if sampleRate := os.Getenv("ANTS_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
