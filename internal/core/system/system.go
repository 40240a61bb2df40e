package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseTimers     Phase = iota // 0: advance the clock, run due scheduled tasks
	PhasePreUpdate               // 1: deliver last tick's events
	PhaseUpdate                  // 2: entity behavior (actors, then tower)
	PhasePostUpdate              // 3: stats, summaries
)

// System is the interface every tick system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
