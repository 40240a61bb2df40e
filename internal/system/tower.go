package system

import (
	"time"

	coresys "github.com/towerpool/server/internal/core/system"
	"github.com/towerpool/server/internal/world"
)

// TowerSystem aims and fires the tower. Phase 2 (Update), after ActorSystem
// so the tower sees this tick's enemy positions.
type TowerSystem struct {
	tower *world.Tower
}

func NewTowerSystem(t *world.Tower) *TowerSystem {
	return &TowerSystem{tower: t}
}

func (s *TowerSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *TowerSystem) Update(dt time.Duration) {
	s.tower.Update(dt)
}
