// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

//go:embed towers.json
var defaultTowersJSON []byte

var (
	ErrDuplicateTower = errors.New("duplicate tower definition")
	ErrMissingTower   = errors.New("missing tower definition")
	ErrInvalidTower   = errors.New("invalid tower definition")
)

// DefaultLibrary возвращает встроенные определения башен.
// Встроенный towers.json проверяется тестами, поэтому ошибка здесь — ошибка сборки.
func DefaultLibrary() Library {
	lib, err := ParseTowerDefinitions(defaultTowersJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded towers.json: %v", err))
	}
	return lib
}

// LoadTowerDefinitions reads a tower configuration file, e.g. for balance tuning.
func LoadTowerDefinitions(path string) (Library, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return Library{}, fmt.Errorf("failed to read tower definitions file: %w", err)
	}
	return ParseTowerDefinitions(file)
}

// ParseTowerDefinitions разбирает JSON и проверяет, что каждый тип описан ровно один раз.
func ParseTowerDefinitions(data []byte) (Library, error) {
	var towerDefs []TowerDefinition
	if err := json.Unmarshal(data, &towerDefs); err != nil {
		return Library{}, fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	var lib Library
	var seen [towerTypeCount]bool
	for _, def := range towerDefs {
		if seen[def.Type] {
			return Library{}, fmt.Errorf("%w: %s", ErrDuplicateTower, def.Type)
		}
		if err := validate(def); err != nil {
			return Library{}, err
		}
		seen[def.Type] = true
		lib.defs[def.Type] = def
	}
	for t, ok := range seen {
		if !ok {
			return Library{}, fmt.Errorf("%w: %s", ErrMissingTower, TowerType(t))
		}
	}
	return lib, nil
}

func validate(def TowerDefinition) error {
	switch {
	case def.Cost <= 0:
		return fmt.Errorf("%w: %s cost %d", ErrInvalidTower, def.Type, def.Cost)
	case def.Range <= 0:
		return fmt.Errorf("%w: %s range %g", ErrInvalidTower, def.Type, def.Range)
	case def.Cooldown <= 0:
		return fmt.Errorf("%w: %s cooldown %g", ErrInvalidTower, def.Type, def.Cooldown)
	case def.Projectile.Speed <= 0:
		return fmt.Errorf("%w: %s projectile speed %g", ErrInvalidTower, def.Type, def.Projectile.Speed)
	case def.Projectile.AreaOfEffect < 0:
		return fmt.Errorf("%w: %s negative area of effect", ErrInvalidTower, def.Type)
	}
	return nil
}
