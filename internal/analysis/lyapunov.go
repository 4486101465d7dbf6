package analysis

import (
	"math"

	"github.com/san-kum/lorenzq/internal/dynamo"
)

// LyapunovExponent estimates the largest Lyapunov exponent with Benettin's
// method. A positive value indicates chaos.
//
// Algorithm:
// 1. Run two trajectories separated by d0
// 2. After each step, accumulate ln(|δx|/d0)
// 3. Rescale the companion back to distance d0 along δx
// 4. λ ≈ sum / t
//
// Returns NaN when either trajectory leaves the finite range.
func LyapunovExponent(
	dyn dynamo.System,
	integ dynamo.Integrator,
	x0 dynamo.State,
	dt, duration float64,
	d0 float64,
) float64 {
	if len(x0) == 0 || dt <= 0 || duration <= 0 || d0 <= 0 {
		return 0
	}

	x := x0.Clone()
	xp := x0.Clone()
	xp[0] += d0

	t := 0.0
	sumLog := 0.0
	for t < duration {
		x = integ.Step(dyn, x, t, dt)
		xp = integ.Step(dyn, xp, t, dt)
		t += dt

		if !x.IsValid() || !xp.IsValid() {
			return math.NaN()
		}

		sep := xp.Sub(x).Norm()
		if sep == 0 {
			// Merged to machine precision; restart the companion.
			xp = x.Clone()
			xp[0] += d0
			continue
		}
		sumLog += math.Log(sep / d0)

		scale := d0 / sep
		for i := range xp {
			xp[i] = x[i] + (xp[i]-x[i])*scale
		}
	}

	return sumLog / t
}
