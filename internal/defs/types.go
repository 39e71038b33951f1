// internal/defs/types.go
package defs

import "fmt"

// TowerType — закрытое перечисление типов башен.
type TowerType int

const (
	TowerBasic TowerType = iota
	TowerRapid
	TowerIce
	TowerSniper
	TowerBlast
	TowerFire

	towerTypeCount
)

var towerTypeNames = [towerTypeCount]string{
	TowerBasic:  "BASIC",
	TowerRapid:  "RAPID",
	TowerIce:    "ICE",
	TowerSniper: "SNIPER",
	TowerBlast:  "BLAST",
	TowerFire:   "FIRE",
}

// TowerTypes возвращает все типы башен в порядке объявления.
func TowerTypes() []TowerType {
	out := make([]TowerType, 0, towerTypeCount)
	for t := TowerBasic; t < towerTypeCount; t++ {
		out = append(out, t)
	}
	return out
}

// Valid reports whether t is one of the declared tower types.
func (t TowerType) Valid() bool {
	return t >= 0 && t < towerTypeCount
}

func (t TowerType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("TowerType(%d)", int(t))
	}
	return towerTypeNames[t]
}

// ParseTowerType converts the JSON name back to a TowerType.
func ParseTowerType(s string) (TowerType, error) {
	for i, name := range towerTypeNames {
		if name == s {
			return TowerType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tower type %q", s)
}

func (t TowerType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid tower type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *TowerType) UnmarshalText(b []byte) error {
	parsed, err := ParseTowerType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// StatusEffect — эффект, накладываемый снарядом при попадании.
type StatusEffect int

const (
	EffectNone StatusEffect = iota
	EffectSlow
	// EffectBurn is cosmetic only.
	EffectBurn
)

var statusEffectNames = []string{"NONE", "SLOW", "BURN"}

func (e StatusEffect) String() string {
	if e < 0 || int(e) >= len(statusEffectNames) {
		return fmt.Sprintf("StatusEffect(%d)", int(e))
	}
	return statusEffectNames[e]
}

func (e StatusEffect) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *StatusEffect) UnmarshalText(b []byte) error {
	for i, name := range statusEffectNames {
		if name == string(b) {
			*e = StatusEffect(i)
			return nil
		}
	}
	return fmt.Errorf("unknown status effect %q", string(b))
}
