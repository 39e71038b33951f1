// internal/system/utils.go
package system

import (
	"fmt"

	"go-ant-defense/internal/component"
	"go-ant-defense/internal/config"
	"go-ant-defense/internal/event"
	"go-ant-defense/internal/utils"
)

// DamageResolver наносит урон врагам и обрабатывает их смерть.
type DamageResolver struct {
	queue   *event.Queue
	effects *VisualEffectSystem
	status  *StatusEffectSystem
	rng     *utils.PRNGService
}

func NewDamageResolver(queue *event.Queue, effects *VisualEffectSystem, status *StatusEffectSystem, rng *utils.PRNGService) *DamageResolver {
	return &DamageResolver{queue: queue, effects: effects, status: status, rng: rng}
}

// ApplyDamage наносит урон снаряда врагу. Неактивные враги урон не получают.
func (r *DamageResolver) ApplyDamage(e *component.Enemy, p *component.Projectile) {
	if !e.Active {
		return
	}
	e.HP -= p.Damage
	r.status.Apply(e, p.Effect)
	if e.HP <= 0 {
		r.Kill(e)
	}
}

// Reward — награда за убийство врага.
func (r *DamageResolver) Reward(e *component.Enemy) int {
	if e.IsBoss {
		return config.BossReward
	}
	return config.KillRewardBase + r.rng.Intn(config.KillRewardSpread)
}

// Kill деактивирует врага, начисляет награду и запускает эффекты.
func (r *DamageResolver) Kill(e *component.Enemy) {
	if !e.Active {
		return
	}
	e.Deactivate()

	reward := r.Reward(e)
	r.queue.Push(event.Event{Type: event.CurrencyChanged, Pos: e.Pos, Amount: reward})

	kind := event.EnemyKilled
	particles := config.KillParticles
	if e.IsBoss {
		kind = event.BossKilled
		particles = config.BossKillParticles
	}
	r.queue.Push(event.Event{Type: kind, Pos: e.Pos, Amount: reward, Entity: e.ID})

	r.effects.SpawnText(e.Pos, fmt.Sprintf("+$%d", reward), config.RewardTextColor, config.RewardTextLife, config.RewardTextRise)
	r.effects.CreateExplosion(e.Pos, config.ExplosionColor, particles)
	if e.IsBoss {
		r.effects.SpawnText(e.Pos, "BOSS DEFEATED!", config.BossTextColor, config.BossDefeatTextLife, config.FloatingTextRise)
	}
}
