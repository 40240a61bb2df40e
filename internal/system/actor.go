package system

import (
	"time"

	"github.com/towerpool/server/internal/core/ecs"
	coresys "github.com/towerpool/server/internal/core/system"
)

// ActorSystem ticks every live pooled instance (enemies and bullets) in scene
// order. Phase 2 (Update), registered before TowerSystem.
type ActorSystem struct {
	entities *ecs.World
}

func NewActorSystem(entities *ecs.World) *ActorSystem {
	return &ActorSystem{entities: entities}
}

func (s *ActorSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *ActorSystem) Update(dt time.Duration) {
	s.entities.Tick(dt)
}
