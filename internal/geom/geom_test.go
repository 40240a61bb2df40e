package geom

import (
	"math"
	"testing"
)

const eps = 1e-12

func TestNormalize(t *testing.T) {
	if got := V(3, 4).Normalize(); !got.Equal(V(0.6, 0.8), eps) {
		t.Errorf("expected (0.6, 0.8), got %v", got)
	}
	if got := (Vec2{}).Normalize(); !got.IsZero() {
		t.Errorf("expected zero vector, got %v", got)
	}
}

func TestHeadingRoundTrip(t *testing.T) {
	for _, h := range []float64{0, math.Pi / 2, -math.Pi / 3, 3} {
		if got := FromHeading(h).Heading(); math.Abs(AngleDiff(got, h)) > eps {
			t.Errorf("heading %v: got %v back", h, got)
		}
	}
}

func TestAngleDiffShortestArc(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{0, math.Pi / 2, math.Pi / 2},
		{math.Pi / 2, 0, -math.Pi / 2},
		{Deg2Rad(170), Deg2Rad(-170), Deg2Rad(20)},
		{Deg2Rad(-170), Deg2Rad(170), Deg2Rad(-20)},
		{0, 4 * math.Pi, 0},
	}
	for _, tt := range tests {
		if got := AngleDiff(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("AngleDiff(%v, %v): expected %v, got %v", tt.a, tt.b, tt.want, got)
		}
	}
}

func TestLerpAngle(t *testing.T) {
	from, to := Deg2Rad(170), Deg2Rad(-170)
	if got := LerpAngle(from, to, 0.5); math.Abs(AngleDiff(got, math.Pi)) > 1e-9 {
		t.Errorf("expected the midpoint across ±180, got %v", Rad2Deg(got))
	}
	if got := LerpAngle(from, to, 5); math.Abs(AngleDiff(got, to)) > 1e-9 {
		t.Errorf("expected t clamped to 1, got %v", Rad2Deg(got))
	}
	if got := LerpAngle(from, to, -1); got != NormalizeAngle(from) {
		t.Errorf("expected t clamped to 0, got %v", Rad2Deg(got))
	}
}

func TestDist(t *testing.T) {
	if got := V(1, 1).Dist(V(4, 5)); got != 5 {
		t.Errorf("expected 5, got %v", got)
	}
}
