package combat

import "testing"

func TestShieldDamage(t *testing.T) {
	tests := []struct {
		name   string
		base   int
		shield int
		want   int
	}{
		{"no shield takes full damage", 10, 1, 10},
		{"max shield floors at one", 10, 10, 1},
		{"max shield with huge hit", 1000, 10, 1},
		{"mid shield rounds", 10, 2, 9},
		{"exact multiplier", 9, 5, 5},
		{"zero base still hurts", 0, 1, 1},
		{"shield below range clamps to 1", 10, 0, 10},
		{"shield above range clamps to 10", 10, 42, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShieldDamage(tt.base, tt.shield); got != tt.want {
				t.Errorf("ShieldDamage(%d, %d): expected %d, got %d", tt.base, tt.shield, tt.want, got)
			}
		})
	}
}

func TestFormulaImplementsModel(t *testing.T) {
	var m Model = Formula{}
	if got := m.ShieldDamage(10, 1); got != 10 {
		t.Errorf("expected 10, got %d", got)
	}
}
