// internal/component/status_effect.go
package component

// Slowed reports whether the enemy is currently under a slow effect.
func (e *Enemy) Slowed() bool {
	return e.SlowTimer > 0
}

// ApplySlow resets the slow timer; it does not stack.
func (e *Enemy) ApplySlow(duration float64) {
	e.SlowTimer = duration
}
