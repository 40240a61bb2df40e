package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnemyData is the authored record for one enemy type. It is plain data:
// the simulation reads it at spawn time and never mutates it.
type EnemyData struct {
	Type        string     `yaml:"type"`
	Prefab      string     `yaml:"prefab"` // archetype the instance is pooled under
	Color       [3]float64 `yaml:"color"`  // RGB 0-1, visual identity only
	Speed       int        `yaml:"speed"`  // 1-10
	Attack      int        `yaml:"attack"` // 1-10, carried for tooling; not used in combat
	Shield      int        `yaml:"shield"` // 1-10
	Health      int        `yaml:"health"` // 1-50
	DamageDealt int        `yaml:"damage_dealt"`
}

type enemyListFile struct {
	Enemies []EnemyData `yaml:"enemies"`
}

// EnemyTable holds enemy records in file order.
type EnemyTable struct {
	list   []*EnemyData
	byType map[string]*EnemyData
}

// NewEnemyTable builds a table from in-memory records after validating them.
func NewEnemyTable(records []EnemyData) (*EnemyTable, error) {
	t := &EnemyTable{
		list:   make([]*EnemyData, 0, len(records)),
		byType: make(map[string]*EnemyData, len(records)),
	}
	for i := range records {
		e := records[i]
		if err := e.validate(); err != nil {
			return nil, fmt.Errorf("enemy %d (%s): %w", i, e.Type, err)
		}
		if _, dup := t.byType[e.Type]; dup {
			return nil, fmt.Errorf("enemy %d: duplicate type %q", i, e.Type)
		}
		t.list = append(t.list, &e)
		t.byType[e.Type] = &e
	}
	return t, nil
}

// LoadEnemyTable loads enemy records from a YAML file.
func LoadEnemyTable(path string) (*EnemyTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read enemy_list: %w", err)
	}
	var f enemyListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse enemy_list: %w", err)
	}
	t, err := NewEnemyTable(f.Enemies)
	if err != nil {
		return nil, fmt.Errorf("enemy_list: %w", err)
	}
	return t, nil
}

func (e *EnemyData) validate() error {
	if e.Type == "" {
		return fmt.Errorf("missing type")
	}
	checks := []struct {
		name   string
		v      int
		lo, hi int
	}{
		{"speed", e.Speed, 1, 10},
		{"attack", e.Attack, 1, 10},
		{"shield", e.Shield, 1, 10},
		{"health", e.Health, 1, 50},
		{"damage_dealt", e.DamageDealt, 1, 10},
	}
	for _, c := range checks {
		if c.v < c.lo || c.v > c.hi {
			return fmt.Errorf("%s %d outside %d-%d", c.name, c.v, c.lo, c.hi)
		}
	}
	return nil
}

// Get returns the record for an enemy type, or nil if not found.
func (t *EnemyTable) Get(typ string) *EnemyData {
	return t.byType[typ]
}

// All returns the records in file order. The slice is shared; do not modify.
func (t *EnemyTable) All() []*EnemyData {
	return t.list
}

// Prefabs returns the distinct prefab names in first-seen order. Records
// without a prefab are skipped.
func (t *EnemyTable) Prefabs() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range t.list {
		if e.Prefab == "" || seen[e.Prefab] {
			continue
		}
		seen[e.Prefab] = true
		out = append(out, e.Prefab)
	}
	return out
}

// Count returns the number of loaded records.
func (t *EnemyTable) Count() int {
	return len(t.list)
}
