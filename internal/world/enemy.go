package world

import (
	"time"

	"github.com/towerpool/server/internal/combat"
	"github.com/towerpool/server/internal/config"
	"github.com/towerpool/server/internal/core/event"
	"github.com/towerpool/server/internal/core/pool"
	"github.com/towerpool/server/internal/data"
)

// EnemyTracker is told when an enemy leaves play on its own.
type EnemyTracker interface {
	RemoveEnemy(e *Enemy)
}

// Enemy walks straight at the tower, damages it on contact and dies when its
// health runs out. Either way it leaves play exactly once per spawn.
type Enemy struct {
	pool.Base

	scene   *Scene
	tower   *Tower
	tracker EnemyTracker
	damage  combat.Model
	cfg     config.EnemyConfig

	data          *data.EnemyData
	movementSpeed float64
	maxHealth     int
	health        int
	dead          bool
}

func newEnemy(scene *Scene, tower *Tower, tracker EnemyTracker, damage combat.Model, cfg config.EnemyConfig) *Enemy {
	if damage == nil {
		damage = combat.Formula{}
	}
	return &Enemy{
		scene:     scene,
		tower:     tower,
		tracker:   tracker,
		damage:    damage,
		cfg:       cfg,
		maxHealth: max(1, cfg.DefaultMaxHealth),
		dead:      true,
	}
}

// OnSpawned revives the enemy with full health.
func (e *Enemy) OnSpawned() {
	e.dead = false
	e.Activate()
	e.resetHealth()
}

// OnDespawned deactivates the enemy. A despawned enemy counts as dead so
// stale references cannot damage or kill it again.
func (e *Enemy) OnDespawned() {
	e.dead = true
	e.Deactivate()
}

// Configure applies archetype data. Called right after spawn; it resets
// health to the new maximum.
func (e *Enemy) Configure(d *data.EnemyData) {
	e.data = d
	if d != nil {
		e.movementSpeed = float64(d.Speed) * e.cfg.SpeedFactor
	}
	e.resetHealth()
}

func (e *Enemy) resetHealth() {
	if e.data != nil {
		e.maxHealth = max(1, e.data.Health)
	}
	e.health = e.maxHealth
}

func (e *Enemy) Update(dt time.Duration) {
	if e.dead || e.tower == nil {
		return
	}
	e.moveTowardsTower(dt)
	e.checkReachedTower()
}

func (e *Enemy) moveTowardsTower(dt time.Duration) {
	dir := e.tower.Position().Sub(e.Position()).Normalize()
	e.SetPosition(e.Position().Add(dir.Scale(e.movementSpeed * dt.Seconds())))
	if !dir.IsZero() {
		e.SetHeading(dir.Heading())
	}
}

func (e *Enemy) checkReachedTower() {
	if e.Position().Dist(e.tower.Position()) >= e.cfg.ReachDistance {
		return
	}
	if e.data != nil {
		event.Emit(e.scene.bus(), event.EnemyReachedTower{
			EntityID: e.ID(),
			Type:     e.data.Type,
			Damage:   e.data.DamageDealt,
		})
		e.tower.TakeDamage(e.data.DamageDealt)
	}
	e.die()
}

// TakeDamage applies a hit of baseDamage reduced by this enemy's shield.
// Hits on a dead enemy are ignored.
func (e *Enemy) TakeDamage(baseDamage int) {
	if e.dead {
		return
	}
	shield := combat.MinShield
	if e.data != nil {
		shield = e.data.Shield
	}
	e.health -= max(1, e.damage.ShieldDamage(baseDamage, shield))
	if e.health <= 0 {
		e.health = 0
		event.Emit(e.scene.bus(), event.EnemyKilled{EntityID: e.ID(), Type: e.Type()})
		e.die()
	}
}

// die leaves play: the tracker drops the enemy before the pool takes it
// back. Only the first call has any effect.
func (e *Enemy) die() {
	if e.dead {
		return
	}
	e.dead = true
	if e.tracker != nil {
		e.tracker.RemoveEnemy(e)
	}
	if h := e.ReturnHandler(); h != nil {
		h(e)
	}
}

func (e *Enemy) Health() int            { return e.health }
func (e *Enemy) MaxHealth() int         { return e.maxHealth }
func (e *Enemy) Dead() bool             { return e.dead }
func (e *Enemy) MovementSpeed() float64 { return e.movementSpeed }
func (e *Enemy) Data() *data.EnemyData  { return e.data }

// Type returns the configured enemy type, or "" when unconfigured.
func (e *Enemy) Type() string {
	if e.data == nil {
		return ""
	}
	return e.data.Type
}
