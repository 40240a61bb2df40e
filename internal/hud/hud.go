// Package hud holds the player-facing widgets as plain state: health bar,
// the kill-them-all button and the game-over panel. Nothing here draws.
package hud

import (
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/message"

	"github.com/towerpool/server/internal/config"
)

// HealthBar mirrors tower health as a fill fraction and a "Life: N/M" label
// scaled to DisplayMax.
type HealthBar struct {
	p          *message.Printer
	displayMax int
	fill       float64
	text       string
}

// Update is the tower health observer.
func (h *HealthBar) Update(current, max int) {
	if max <= 0 {
		return
	}
	h.fill = float64(current) / float64(max)
	shown := int(math.Ceil(h.fill * float64(h.displayMax)))
	h.text = h.p.Sprintf(keyLife, shown, h.displayMax)
}

func (h *HealthBar) Fill() float64 { return h.fill }
func (h *HealthBar) Text() string  { return h.text }

// Clearer performs a mass clear. The spawner implements it.
type Clearer interface {
	RemoveAllEnemies(d time.Duration)
}

// GameState reports whether the game has ended.
type GameState interface {
	IsGameOver() bool
}

// ClearButton is the limited-use "kill them all" action.
type ClearButton struct {
	p        *message.Printer
	clearer  Clearer
	game     GameState
	duration time.Duration
	uses     int
	label    string
	log      *zap.Logger
}

// Press clears every enemy if a use is left and the game is still running.
// It reports whether the clear happened.
func (b *ClearButton) Press() bool {
	if b.uses <= 0 || (b.game != nil && b.game.IsGameOver()) {
		return false
	}
	if b.clearer != nil {
		b.clearer.RemoveAllEnemies(b.duration)
	}
	b.uses--
	b.relabel()
	b.log.Info("kill them all pressed", zap.Int("uses_left", b.uses))
	return true
}

func (b *ClearButton) relabel() {
	if b.uses <= 0 {
		b.label = b.p.Sprintf(keyNoUses)
		return
	}
	b.label = b.p.Sprintf(keyClearUses, b.uses)
}

func (b *ClearButton) Uses() int          { return b.uses }
func (b *ClearButton) Label() string      { return b.label }
func (b *ClearButton) Interactable() bool { return b.uses > 0 }

// GameOverPanel is hidden until the game ends.
type GameOverPanel struct {
	p       *message.Printer
	visible bool
	text    string
}

func (g *GameOverPanel) Show() {
	g.visible = true
	g.text = g.p.Sprintf(keyGameOver)
}

func (g *GameOverPanel) Visible() bool { return g.visible }
func (g *GameOverPanel) Text() string  { return g.text }

// HUD groups the widgets.
type HUD struct {
	Health   *HealthBar
	Clear    *ClearButton
	GameOver *GameOverPanel
}

// New builds the widgets. clearer and game may be wired later with Bind.
func New(cfg config.HUDConfig, clear config.ClearConfig, log *zap.Logger) (*HUD, error) {
	if log == nil {
		log = zap.NewNop()
	}
	p, err := newPrinter(cfg.Language)
	if err != nil {
		return nil, err
	}
	displayMax := cfg.DisplayMax
	if displayMax <= 0 {
		displayMax = 50
	}
	h := &HUD{
		Health:   &HealthBar{p: p, displayMax: displayMax},
		Clear:    &ClearButton{p: p, duration: clear.Duration, uses: clear.Uses, log: log},
		GameOver: &GameOverPanel{p: p},
	}
	h.Clear.relabel()
	return h, nil
}

// Bind wires the button to its collaborators.
func (h *HUD) Bind(clearer Clearer, game GameState) {
	h.Clear.clearer = clearer
	h.Clear.game = game
}
