// internal/interfaces/game_context.go
package interfaces

//go:generate go tool mockgen -destination=./mocks/ledger_mock.go -package=mocks . Ledger

// Ledger — счётчики сессии, которыми владеет хост.
// Симуляция только читает их, а изменения запрашивает событиями.
type Ledger interface {
	Currency() int
	Lives() int
}
