package world

import (
	"time"

	"github.com/towerpool/server/internal/config"
	"github.com/towerpool/server/internal/core/pool"
	"github.com/towerpool/server/internal/geom"
)

// EnemyQuery finds the first live enemy within radius of a point, in scan
// order.
type EnemyQuery interface {
	FirstEnemyWithin(pos geom.Vec2, radius float64) *Enemy
}

// Bullet flies in a straight line until it touches an enemy or its lifetime
// runs out, whichever comes first.
type Bullet struct {
	pool.Base

	scene   *Scene
	enemies EnemyQuery
	cfg     config.BulletConfig

	direction geom.Vec2
	deadline  time.Duration
	tower     *Tower
	spent     bool
}

func newBullet(scene *Scene, enemies EnemyQuery, cfg config.BulletConfig) *Bullet {
	return &Bullet{scene: scene, enemies: enemies, cfg: cfg, spent: true}
}

// OnSpawned resets per-flight state and starts the lifetime clock.
func (b *Bullet) OnSpawned() {
	b.spent = false
	b.tower = nil
	b.direction = geom.Vec2{}
	b.deadline = b.scene.Now() + b.cfg.Lifetime
	b.Activate()
}

func (b *Bullet) OnDespawned() {
	b.spent = true
	b.Deactivate()
}

// Launch sets the flight direction and the tower whose damage this bullet
// carries.
func (b *Bullet) Launch(direction geom.Vec2, tower *Tower) {
	b.direction = direction.Normalize()
	b.tower = tower
}

func (b *Bullet) Update(dt time.Duration) {
	if b.spent {
		return
	}
	expired := b.scene.Now() >= b.deadline

	b.SetPosition(b.Position().Add(b.direction.Scale(b.cfg.Speed * dt.Seconds())))

	hit := false
	if b.enemies != nil {
		if e := b.enemies.FirstEnemyWithin(b.Position(), b.cfg.HitRadius); e != nil {
			hit = true
			if b.tower != nil {
				e.TakeDamage(b.tower.BaseDamage())
			}
		}
	}

	if expired || hit {
		b.despawn()
	}
}

// despawn is the only way a bullet leaves play.
func (b *Bullet) despawn() {
	if b.spent {
		return
	}
	b.spent = true
	if h := b.ReturnHandler(); h != nil {
		h(b)
	}
}

func (b *Bullet) Direction() geom.Vec2    { return b.direction }
func (b *Bullet) Deadline() time.Duration { return b.deadline }
func (b *Bullet) Spent() bool             { return b.spent }
