package hud

import (
	"testing"
	"time"

	"github.com/towerpool/server/internal/config"
)

type fakeClearer struct {
	calls    int
	duration time.Duration
}

func (f *fakeClearer) RemoveAllEnemies(d time.Duration) {
	f.calls++
	f.duration = d
}

type fakeGame struct{ over bool }

func (g *fakeGame) IsGameOver() bool { return g.over }

func newHUD(t *testing.T, lang string) *HUD {
	t.Helper()
	cfg := config.Defaults()
	cfg.HUD.Language = lang
	h, err := New(cfg.HUD, cfg.Clear, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return h
}

func TestHealthBarText(t *testing.T) {
	tests := []struct {
		cur, max int
		fill     float64
		text     string
	}{
		{100, 100, 1, "Life: 50/50"},
		{99, 100, 0.99, "Life: 50/50"},
		{51, 100, 0.51, "Life: 26/50"},
		{1, 100, 0.01, "Life: 1/50"},
		{0, 100, 0, "Life: 0/50"},
	}
	h := newHUD(t, "en")
	for _, tt := range tests {
		h.Health.Update(tt.cur, tt.max)
		if h.Health.Text() != tt.text {
			t.Errorf("%d/%d: expected %q, got %q", tt.cur, tt.max, tt.text, h.Health.Text())
		}
		if h.Health.Fill() != tt.fill {
			t.Errorf("%d/%d: expected fill %v, got %v", tt.cur, tt.max, tt.fill, h.Health.Fill())
		}
	}
}

func TestClearButtonUses(t *testing.T) {
	h := newHUD(t, "en")
	c := &fakeClearer{}
	h.Bind(c, &fakeGame{})

	if h.Clear.Label() != "Kill Them All (3 uses left)" {
		t.Errorf("unexpected initial label %q", h.Clear.Label())
	}
	wantLabels := []string{
		"Kill Them All (2 uses left)",
		"Kill Them All (1 uses left)",
		"No Uses Left",
	}
	for i, want := range wantLabels {
		if !h.Clear.Press() {
			t.Fatalf("press %d: expected clear to run", i+1)
		}
		if h.Clear.Label() != want {
			t.Errorf("press %d: expected label %q, got %q", i+1, want, h.Clear.Label())
		}
	}
	if h.Clear.Press() {
		t.Error("expected a fourth press to be refused")
	}
	if c.calls != 3 || c.duration != 5*time.Second {
		t.Errorf("expected 3 clears of 5s, got %d of %v", c.calls, c.duration)
	}
	if h.Clear.Interactable() {
		t.Error("expected button disabled with no uses left")
	}
}

func TestClearButtonRefusedAfterGameOver(t *testing.T) {
	h := newHUD(t, "en")
	c := &fakeClearer{}
	h.Bind(c, &fakeGame{over: true})

	if h.Clear.Press() {
		t.Error("expected press refused after game over")
	}
	if c.calls != 0 || h.Clear.Uses() != 3 {
		t.Errorf("expected no clear and 3 uses kept, got %d clears, %d uses", c.calls, h.Clear.Uses())
	}
}

func TestGameOverPanel(t *testing.T) {
	h := newHUD(t, "en")
	if h.GameOver.Visible() {
		t.Fatal("expected panel hidden at start")
	}
	h.GameOver.Show()
	if !h.GameOver.Visible() || h.GameOver.Text() != "Game Over" {
		t.Errorf("expected visible \"Game Over\", got %v %q", h.GameOver.Visible(), h.GameOver.Text())
	}
}

func TestLocalizedText(t *testing.T) {
	h := newHUD(t, "zh-TW")
	h.GameOver.Show()
	if h.GameOver.Text() != "遊戲結束" {
		t.Errorf("expected Traditional Chinese text, got %q", h.GameOver.Text())
	}
	h.Health.Update(50, 100)
	if h.Health.Text() != "生命：25/50" {
		t.Errorf("unexpected health text %q", h.Health.Text())
	}
}

func TestUnsupportedLanguageFallsBackToEnglish(t *testing.T) {
	h := newHUD(t, "fr")
	h.GameOver.Show()
	if h.GameOver.Text() != "Game Over" {
		t.Errorf("expected English fallback, got %q", h.GameOver.Text())
	}
}

func TestInvalidLanguage(t *testing.T) {
	cfg := config.Defaults()
	cfg.HUD.Language = "not a tag!"
	if _, err := New(cfg.HUD, cfg.Clear, nil); err == nil {
		t.Error("expected an error for a malformed language tag")
	}
}
