package physics

import "github.com/san-kum/lorenzq/internal/dynamo"

// LorenzQubit is the Lorenz system with the nonlinear terms scaled by a
// coupling g. With g = 1 it reduces to the classic Lorenz equations.
type LorenzQubit struct{ sigma, beta, rho, g float64 }

func NewLorenzQubit(sigma, beta, rho, g float64) *LorenzQubit {
	return &LorenzQubit{sigma: sigma, beta: beta, rho: rho, g: g}
}

// NewLorenz returns the classic butterfly parameters with unit coupling.
func NewLorenz() *LorenzQubit { return NewLorenzQubit(10.0, 8.0/3.0, 28.0, 1.0) }

func (l *LorenzQubit) StateDim() int { return 3 }

// Derive calculates dx/dt = sigma(y-x), dy/dt = rho x - y - g x z, dz/dt = g x y - beta z.
func (l *LorenzQubit) Derive(s dynamo.State, _ float64) dynamo.State {
	x, y, z := s[0], s[1], s[2]
	return dynamo.State{
		l.sigma * (y - x),
		l.rho*x - y - l.g*x*z,
		l.g*x*y - l.beta*z,
	}
}

func (l *LorenzQubit) GetParams() map[string]float64 {
	return map[string]float64{"sigma": l.sigma, "beta": l.beta, "rho": l.rho, "g": l.g}
}
