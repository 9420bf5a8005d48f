package selection

import "math/rand/v2"

// AngleSource yields floats in [0, 1). *rand.Rand satisfies it.
type AngleSource interface {
	Float64() float64
}

type globalAngles struct{}

func (globalAngles) Float64() float64 { return rand.Float64() }

// DefaultAngles is the non-deterministic source used when callers pass nil.
var DefaultAngles AngleSource = globalAngles{}

const (
	minSpins     = 5
	extraSpins   = 5
	degreesPerRv = 360
)

// SpinRotation advances the wheel by 5 to 10 full turns plus a final angle.
// The angle is cosmetic: it does not decide which restaurant wins.
func SpinRotation(previous float64, src AngleSource) float64 {
	if src == nil {
		src = DefaultAngles
	}
	spins := minSpins + src.Float64()*extraSpins
	final := src.Float64() * degreesPerRv
	return previous + spins*degreesPerRv + final
}
