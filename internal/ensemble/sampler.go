package ensemble

import (
	"math/rand"

	"github.com/san-kum/lorenzq/internal/dynamo"
)

// InitialBound is the half-width of the cube initial conditions are drawn from.
const InitialBound = 20.0

// SampleInitialConditions draws n states uniformly from [-20, 20]^3. The
// same seed always yields the same states in the same order.
func SampleInitialConditions(n int, seed int64) []dynamo.State {
	rng := rand.New(rand.NewSource(seed))
	states := make([]dynamo.State, n)
	for i := range states {
		x := make(dynamo.State, 3)
		for j := range x {
			x[j] = -InitialBound + 2*InitialBound*rng.Float64()
		}
		states[i] = x
	}
	return states
}
