package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/towerpool/server/internal/combat"
	"github.com/towerpool/server/internal/config"
	"github.com/towerpool/server/internal/data"
	"github.com/towerpool/server/internal/game"
	"github.com/towerpool/server/internal/scripting"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(name string, seed int64) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m             towerd  v0.1.0                \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m     headless tower-defense simulation     \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mgame:\033[0m %s \033[90m(seed: %d)\033[0m\n\n", name, seed)
}

// displayWidth counts CJK runes as two columns.
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		if r > 0x7F {
			w += 2
		} else {
			w++
		}
	}
	return w
}

func printSection(title string) {
	lineLen := 46 - displayWidth(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - displayWidth(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Main loop ─────────────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/game.toml"
	if p := os.Getenv("TOWERD_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	printBanner(cfg.Game.Name, seed)

	// 3. Data tables
	printSection("data")
	enemies, err := data.LoadEnemyTable(cfg.Data.EnemyList)
	if err != nil {
		return fmt.Errorf("load enemies: %w", err)
	}
	printStat("enemy types", enemies.Count())
	printStat("enemy prefabs", len(enemies.Prefabs()))

	// 4. Scripting
	var damage combat.Model = combat.Formula{}
	if cfg.Data.ScriptsDir != "" {
		engine, err := scripting.NewEngine(cfg.Data.ScriptsDir, log)
		if err != nil {
			return fmt.Errorf("scripting: %w", err)
		}
		defer engine.Close()
		damage = engine
		if engine.Has("calc_shield_damage") {
			printOK("lua damage formula loaded")
		} else {
			printOK("lua engine up, built-in damage formula")
		}
	} else {
		printOK("built-in damage formula")
	}
	fmt.Println()

	// 5. Assemble the game
	g, err := game.New(cfg, enemies, damage, rand.New(rand.NewSource(seed)), log)
	if err != nil {
		return fmt.Errorf("build game: %w", err)
	}
	defer g.Close()

	// 6. Game loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Game.TickRate)
	defer ticker.Stop()

	printSection("running")
	printReady(fmt.Sprintf("game loop started (tick: %s)", cfg.Game.TickRate))
	if cfg.Game.MaxTicks > 0 {
		printReady(fmt.Sprintf("stopping after %d ticks", cfg.Game.MaxTicks))
	}
	fmt.Println()

	g.Start()
	for {
		select {
		case <-ticker.C:
			g.Tick(cfg.Game.TickRate)
			if g.AutoClear(cfg.Autopilot.ClearThreshold) {
				log.Info("autopilot cleared the field", zap.String("button", g.HUD.Clear.Label()))
			}
			if g.Over() {
				log.Info("stopping: game over", zap.Uint64("ticks", g.Ticks()))
				printSummary(g)
				return nil
			}
			if cfg.Game.MaxTicks > 0 && g.Ticks() >= cfg.Game.MaxTicks {
				log.Info("stopping: tick limit reached", zap.Uint64("ticks", g.Ticks()))
				printSummary(g)
				return nil
			}
		case sig := <-shutdownCh:
			log.Info("shutdown signal received", zap.String("signal", sig.String()))
			printSummary(g)
			return nil
		}
	}
}

func printSummary(g *game.Game) {
	g.Stats.Log()
	t := g.Stats.Totals()
	fmt.Println()
	printSection("summary")
	printStat("ticks", int(g.Ticks()))
	printStat("enemies spawned", int(g.Spawner.Spawned()))
	printStat("enemies killed", t.Killed)
	printStat("enemies cleared", t.Cleared)
	printStat("enemies reached tower", t.ReachedTower)
	printStat("shots fired", int(g.Tower.ShotsFired()))
	printStat("clear uses left", g.HUD.Clear.Uses())
	fmt.Printf("  %s\n", g.HUD.Health.Text())
	if g.HUD.GameOver.Visible() {
		fmt.Printf("  \033[31;1m%s\033[0m\n", g.HUD.GameOver.Text())
	}
	fmt.Println()
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
