// internal/defs/routes.go
package defs

import (
	"sort"

	"go-ant-defense/pkg/utils"
)

// Routes — встроенные маршруты в долях ширины/высоты экрана.
var Routes = map[string][]utils.Vec{
	"route1": {
		{X: 0.0, Y: 0.1},
		{X: 0.2, Y: 0.1},
		{X: 0.2, Y: 0.7},
		{X: 0.5, Y: 0.7},
		{X: 0.5, Y: 0.3},
		{X: 0.8, Y: 0.3},
		{X: 0.8, Y: 0.8},
		{X: 0.95, Y: 0.8},
	},
	"route2": {
		{X: 0.0, Y: 0.5},
		{X: 0.15, Y: 0.5},
		{X: 0.25, Y: 0.2},
		{X: 0.4, Y: 0.8},
		{X: 0.55, Y: 0.2},
		{X: 0.7, Y: 0.8},
		{X: 0.85, Y: 0.5},
		{X: 0.95, Y: 0.5},
	},
	"route3": {
		{X: 0.0, Y: 0.2},
		{X: 0.9, Y: 0.2},
		{X: 0.9, Y: 0.4},
		{X: 0.1, Y: 0.4},
		{X: 0.1, Y: 0.6},
		{X: 0.9, Y: 0.6},
		{X: 0.9, Y: 0.8},
		{X: 0.95, Y: 0.8},
	},
}

// RouteNames возвращает ключи Routes в стабильном порядке.
func RouteNames() []string {
	names := make([]string, 0, len(Routes))
	for name := range Routes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
