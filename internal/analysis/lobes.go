package analysis

import "github.com/san-kum/lorenzq/internal/dynamo"

// LobeSwitches counts sign changes of x along path. Samples with x == 0
// belong to neither lobe and are skipped.
func LobeSwitches(path []dynamo.State) int {
	switches := 0
	side := 0
	for _, s := range path {
		if len(s) == 0 {
			continue
		}
		var cur int
		switch {
		case s[0] > 0:
			cur = 1
		case s[0] < 0:
			cur = -1
		default:
			continue
		}
		if side != 0 && cur != side {
			switches++
		}
		side = cur
	}
	return switches
}

// LobeResidence returns the fraction of samples with x > 0.
func LobeResidence(path []dynamo.State) float64 {
	if len(path) == 0 {
		return 0
	}
	pos := 0
	for _, s := range path {
		if len(s) > 0 && s[0] > 0 {
			pos++
		}
	}
	return float64(pos) / float64(len(path))
}
