// Package game is the composition root: it builds the scene, pools, tower,
// spawner, HUD and tick systems from configuration and wires them together.
package game

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/towerpool/server/internal/combat"
	"github.com/towerpool/server/internal/config"
	"github.com/towerpool/server/internal/core/pool"
	coresys "github.com/towerpool/server/internal/core/system"
	"github.com/towerpool/server/internal/data"
	"github.com/towerpool/server/internal/hud"
	"github.com/towerpool/server/internal/system"
	"github.com/towerpool/server/internal/world"
)

type Game struct {
	Scene    *world.Scene
	Registry *pool.Registry
	Tower    *world.Tower
	Spawner  *world.Spawner
	HUD      *hud.HUD
	Stats    *system.StatsSystem

	coord       *Coordinator
	runner      *coresys.Runner
	unsubscribe func()
	log         *zap.Logger
}

// New assembles a game. damage may be nil for the built-in formula and rng
// may be nil for a wall-clock seed.
func New(cfg *config.Config, enemies *data.EnemyTable, damage combat.Model, rng *rand.Rand, log *zap.Logger) (*Game, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if damage == nil {
		damage = combat.Formula{}
	}

	h, err := hud.New(cfg.HUD, cfg.Clear, log)
	if err != nil {
		return nil, err
	}

	scene := world.NewScene()
	registry := pool.NewRegistry(scene, log.Named("pool"))
	tower := world.NewTower(scene, registry, cfg.Tower, cfg.Bullet, log.Named("tower"))
	spawner := world.NewSpawner(scene, registry, tower, enemies, damage,
		cfg.Spawner, cfg.Enemy, rng, log.Named("spawner"))
	tower.SetTargets(spawner)

	coord := NewCoordinator(spawner, h.GameOver, log)
	tower.SetGameOverHandler(coord)
	h.Bind(spawner, coord)

	stats := system.NewStatsSystem(scene.Bus, registry, cfg.Autopilot.StatsInterval, log.Named("stats"))

	runner := coresys.NewRunner()
	runner.Register(system.NewTimerSystem(scene))
	runner.Register(system.NewEventDispatchSystem(scene.Bus))
	runner.Register(system.NewActorSystem(scene.Entities))
	runner.Register(system.NewTowerSystem(tower))
	runner.Register(stats)

	g := &Game{
		Scene:    scene,
		Registry: registry,
		Tower:    tower,
		Spawner:  spawner,
		HUD:      h,
		Stats:    stats,
		coord:    coord,
		runner:   runner,
		log:      log,
	}
	g.unsubscribe = tower.Subscribe(h.Health.Update)
	return g, nil
}

// Start begins the enemy stream.
func (g *Game) Start() { g.coord.Start() }

// Tick advances the simulation by dt.
func (g *Game) Tick(dt time.Duration) { g.runner.Tick(dt) }

// Ticks returns the number of completed ticks.
func (g *Game) Ticks() uint64 { return g.runner.Ticks() }

func (g *Game) Over() bool { return g.coord.IsGameOver() }

// AutoClear presses the clear button when at least threshold enemies are in
// play and no clear window is open. threshold <= 0 disables it.
func (g *Game) AutoClear(threshold int) bool {
	if threshold <= 0 || g.Spawner.AllEnemiesRemoved() {
		return false
	}
	if g.Spawner.ActiveEnemyCount() < threshold {
		return false
	}
	return g.HUD.Clear.Press()
}

// Close detaches the HUD from the tower.
func (g *Game) Close() {
	if g.unsubscribe != nil {
		g.unsubscribe()
		g.unsubscribe = nil
	}
}
