package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Game      GameConfig      `toml:"game"`
	Tower     TowerConfig     `toml:"tower"`
	Bullet    BulletConfig    `toml:"bullet"`
	Enemy     EnemyConfig     `toml:"enemy"`
	Spawner   SpawnerConfig   `toml:"spawner"`
	Clear     ClearConfig     `toml:"clear"`
	HUD       HUDConfig       `toml:"hud"`
	Data      DataConfig      `toml:"data"`
	Autopilot AutopilotConfig `toml:"autopilot"`
	Logging   LoggingConfig   `toml:"logging"`
}

type GameConfig struct {
	Name     string        `toml:"name"`
	TickRate time.Duration `toml:"tick_rate"`
	Seed     int64         `toml:"seed"`      // 0 = seed from wall clock
	MaxTicks uint64        `toml:"max_ticks"` // 0 = run until game over or signal
}

type TowerConfig struct {
	MaxHealth     int           `toml:"max_health"`
	BaseDamage    int           `toml:"base_damage"`
	FireRate      time.Duration `toml:"fire_rate"`      // minimum time between shots
	RotationSpeed float64       `toml:"rotation_speed"` // interpolation rate per second
	AimTolerance  float64       `toml:"aim_tolerance"`  // degrees
	MuzzleOffset  float64       `toml:"muzzle_offset"`  // bullet spawn distance along facing
	Heading       float64       `toml:"heading"`        // initial facing, degrees
}

type BulletConfig struct {
	Speed     float64       `toml:"speed"`
	Lifetime  time.Duration `toml:"lifetime"`
	HitRadius float64       `toml:"hit_radius"`
	Preload   int           `toml:"preload"`
}

type EnemyConfig struct {
	SpeedFactor      float64 `toml:"speed_factor"`   // world units/s per speed stat point
	ReachDistance    float64 `toml:"reach_distance"` // contact distance to the tower
	DefaultMaxHealth int     `toml:"default_max_health"`
	Preload          int     `toml:"preload"`
}

type SpawnerConfig struct {
	SpawnRate   time.Duration `toml:"spawn_rate"`
	SpawnRadius float64       `toml:"spawn_radius"`
}

type ClearConfig struct {
	Uses     int           `toml:"uses"`
	Duration time.Duration `toml:"duration"`
}

type HUDConfig struct {
	DisplayMax int    `toml:"display_max"` // health shown as N/DisplayMax
	Language   string `toml:"language"`    // BCP 47 tag
}

type DataConfig struct {
	EnemyList  string `toml:"enemy_list"`
	ScriptsDir string `toml:"scripts_dir"` // empty = built-in damage formula
}

type AutopilotConfig struct {
	ClearThreshold int           `toml:"clear_threshold"` // 0 = never press clear
	StatsInterval  time.Duration `toml:"stats_interval"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Game.TickRate <= 0 {
		return fmt.Errorf("game.tick_rate must be positive, got %s", c.Game.TickRate)
	}
	if c.Tower.MaxHealth <= 0 {
		return fmt.Errorf("tower.max_health must be positive, got %d", c.Tower.MaxHealth)
	}
	if c.Spawner.SpawnRate <= 0 {
		return fmt.Errorf("spawner.spawn_rate must be positive, got %s", c.Spawner.SpawnRate)
	}
	if c.Clear.Uses < 0 {
		return fmt.Errorf("clear.uses must not be negative, got %d", c.Clear.Uses)
	}
	return nil
}

// Defaults returns the stock configuration.
func Defaults() *Config {
	return &Config{
		Game: GameConfig{
			Name:     "towerd",
			TickRate: 16 * time.Millisecond,
		},
		Tower: TowerConfig{
			MaxHealth:     100,
			BaseDamage:    10,
			FireRate:      500 * time.Millisecond,
			RotationSpeed: 10,
			AimTolerance:  5,
			MuzzleOffset:  0.6,
			Heading:       90,
		},
		Bullet: BulletConfig{
			Speed:     10,
			Lifetime:  5 * time.Second,
			HitRadius: 0.2,
			Preload:   16,
		},
		Enemy: EnemyConfig{
			SpeedFactor:      0.5,
			ReachDistance:    0.5,
			DefaultMaxHealth: 10,
			Preload:          8,
		},
		Spawner: SpawnerConfig{
			SpawnRate:   2 * time.Second,
			SpawnRadius: 15,
		},
		Clear: ClearConfig{
			Uses:     3,
			Duration: 5 * time.Second,
		},
		HUD: HUDConfig{
			DisplayMax: 50,
			Language:   "en",
		},
		Data: DataConfig{
			EnemyList:  "data/yaml/enemy_list.yaml",
			ScriptsDir: "scripts",
		},
		Autopilot: AutopilotConfig{
			ClearThreshold: 12,
			StatsInterval:  10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
