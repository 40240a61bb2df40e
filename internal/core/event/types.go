package event

import "github.com/towerpool/server/internal/core/ecs"

// EnemySpawned is emitted when the spawner issues an enemy from its pool.
type EnemySpawned struct {
	EntityID ecs.EntityID
	Type     string
}

// EnemyKilled is emitted when an enemy's health drops to zero.
type EnemyKilled struct {
	EntityID ecs.EntityID
	Type     string
}

// EnemyReachedTower is emitted when an enemy touches the tower.
type EnemyReachedTower struct {
	EntityID ecs.EntityID
	Type     string
	Damage   int
}

type ShotFired struct {
	EntityID ecs.EntityID
	Heading  float64
}

type TowerDamaged struct {
	Current int
	Max     int
	Amount  int
}

type TowerDestroyed struct{}

// EnemiesCleared is emitted by a mass clear with the number of enemies removed.
type EnemiesCleared struct {
	Count int
}
