package game

import (
	"go.uber.org/zap"
)

// SpawnControl starts and stops the enemy stream.
type SpawnControl interface {
	StartSpawning()
	StopSpawning()
}

// Panel is shown when the game ends.
type Panel interface {
	Show()
}

// Coordinator owns the game-over state. The tower reports to it and the
// HUD asks it whether actions are still allowed.
type Coordinator struct {
	spawner SpawnControl
	panel   Panel
	over    bool
	log     *zap.Logger
}

func NewCoordinator(spawner SpawnControl, panel Panel, log *zap.Logger) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Coordinator{spawner: spawner, panel: panel, log: log}
}

// Start begins spawning.
func (c *Coordinator) Start() {
	if c.spawner != nil {
		c.spawner.StartSpawning()
	}
}

// GameOver stops spawning and shows the game-over panel. Only the first call
// has any effect.
func (c *Coordinator) GameOver() {
	if c.over {
		return
	}
	c.over = true
	if c.spawner != nil {
		c.spawner.StopSpawning()
	}
	if c.panel != nil {
		c.panel.Show()
	}
	c.log.Info("game over")
}

func (c *Coordinator) IsGameOver() bool { return c.over }
