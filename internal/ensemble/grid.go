package ensemble

// TimeGrid is a strictly increasing list of sample timestamps shared by
// every trajectory of an ensemble.
type TimeGrid []float64

// Linspace returns n evenly spaced timestamps over [start, stop], both
// endpoints included.
func Linspace(start, stop float64, n int) TimeGrid {
	if n <= 0 {
		return TimeGrid{}
	}
	if n == 1 {
		return TimeGrid{start}
	}
	g := make(TimeGrid, n)
	step := (stop - start) / float64(n-1)
	for i := range g {
		g[i] = start + float64(i)*step
	}
	g[n-1] = stop
	return g
}

func (g TimeGrid) Len() int { return len(g) }

func (g TimeGrid) Horizon() float64 {
	if len(g) == 0 {
		return 0
	}
	return g[len(g)-1] - g[0]
}
