package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/lorenzq/internal/dynamo"
	"github.com/san-kum/lorenzq/internal/ensemble"
)

type Stats struct {
	Index     int
	Valid     int
	Diverged  bool
	Switches  int
	Residence float64
	MaxNorm   float64
	// Frequency of x(t) in cycles per unit time.
	Frequency float64
}

// Summarize computes statistics over the valid prefix of each trajectory.
func Summarize(ens *ensemble.Ensemble) []Stats {
	dt := 0.0
	if len(ens.Grid) > 1 {
		dt = ens.Grid[1] - ens.Grid[0]
	}

	stats := make([]Stats, len(ens.Trajectories))
	for i, tr := range ens.Trajectories {
		path := tr.Path()
		xs := make([]float64, len(path))
		maxNorm := 0.0
		for j, s := range path {
			xs[j] = s[0]
			maxNorm = max(maxNorm, s.Norm())
		}
		stats[i] = Stats{
			Index:     tr.Index,
			Valid:     tr.Valid,
			Diverged:  tr.Diverged(),
			Switches:  LobeSwitches(path),
			Residence: LobeResidence(path),
			MaxNorm:   maxNorm,
			Frequency: DominantFrequency(xs, dt),
		}
	}
	return stats
}

// Parameters formats the coefficients of a Configurable system as sorted
// name=value pairs, or returns "" for other systems.
func Parameters(dyn dynamo.System) string {
	c, ok := dyn.(dynamo.Configurable)
	if !ok {
		return ""
	}
	params := c.GetParams()
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%.4g", name, params[name])
	}
	return strings.Join(parts, " ")
}
