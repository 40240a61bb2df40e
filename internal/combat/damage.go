// Package combat holds the damage rules shared by the Go simulation and the
// Lua scripting override.
package combat

import "math"

const (
	MinShield = 1
	MaxShield = 10
)

// ShieldMultiplier maps shield 1..10 onto a damage multiplier 1.0..0.0.
// Out-of-range shields are clamped.
func ShieldMultiplier(shield int) float64 {
	if shield < MinShield {
		shield = MinShield
	}
	if shield > MaxShield {
		shield = MaxShield
	}
	return 1 - float64(shield-MinShield)/float64(MaxShield-MinShield)
}

// ShieldDamage is the damage an enemy with the given shield takes from a hit
// of base damage. Every hit deals at least 1.
func ShieldDamage(base, shield int) int {
	actual := int(math.Round(float64(base) * ShieldMultiplier(shield)))
	if actual < 1 {
		actual = 1
	}
	return actual
}

// Model computes received damage. The simulation depends on this interface so
// the formula can be swapped for a scripted one.
type Model interface {
	ShieldDamage(base, shield int) int
}

// Formula is the built-in Model.
type Formula struct{}

func (Formula) ShieldDamage(base, shield int) int { return ShieldDamage(base, shield) }
