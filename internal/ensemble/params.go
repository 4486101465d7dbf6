package ensemble

import (
	"math"

	"github.com/san-kum/lorenzq/internal/dynamo"
	"github.com/san-kum/lorenzq/internal/physics"
)

const (
	DefaultSigma        = 10.0
	DefaultBeta         = 8.0 / 3.0
	DefaultRho          = 28.0
	DefaultG            = 0.7
	DefaultTrajectories = 1
)

// ParameterSet fixes the coefficients and trajectory count of one run.
type ParameterSet struct {
	Sigma        float64 `yaml:"sigma" json:"sigma"`
	Beta         float64 `yaml:"beta" json:"beta"`
	Rho          float64 `yaml:"rho" json:"rho"`
	G            float64 `yaml:"g" json:"g"`
	Trajectories int     `yaml:"trajectories" json:"trajectories"`
}

func DefaultParameterSet() ParameterSet {
	return ParameterSet{
		Sigma:        DefaultSigma,
		Beta:         DefaultBeta,
		Rho:          DefaultRho,
		G:            DefaultG,
		Trajectories: DefaultTrajectories,
	}
}

// Validate rejects non-finite coefficients and a non-positive trajectory
// count. Values outside the usual Lorenz range are accepted.
func (p ParameterSet) Validate() error {
	coeffs := []struct {
		name  string
		value float64
	}{
		{"sigma", p.Sigma},
		{"beta", p.Beta},
		{"rho", p.Rho},
		{"g", p.G},
	}
	for _, c := range coeffs {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return &dynamo.ParameterError{Name: c.name, Value: c.value}
		}
	}
	if p.Trajectories < 1 {
		return &dynamo.ParameterError{Name: "trajectories", Value: p.Trajectories}
	}
	return nil
}

func (p ParameterSet) System() *physics.LorenzQubit {
	return physics.NewLorenzQubit(p.Sigma, p.Beta, p.Rho, p.G)
}
