package ensemble

import "testing"

func TestSampleInitialConditions_Deterministic(t *testing.T) {
	a := SampleInitialConditions(25, 1)
	b := SampleInitialConditions(25, 1)

	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				t.Fatalf("state %d differs between runs: %v vs %v", i, a[i], b[i])
			}
		}
	}
}

func TestSampleInitialConditions_Bounds(t *testing.T) {
	states := SampleInitialConditions(500, 7)

	if len(states) != 500 {
		t.Fatalf("expected 500 states, got %d", len(states))
	}
	for i, s := range states {
		if len(s) != 3 {
			t.Fatalf("state %d has dimension %d", i, len(s))
		}
		for _, v := range s {
			if v < -InitialBound || v >= InitialBound {
				t.Fatalf("state %d out of bounds: %v", i, s)
			}
		}
	}
}

func TestSampleInitialConditions_SeedMatters(t *testing.T) {
	a := SampleInitialConditions(1, 1)
	b := SampleInitialConditions(1, 2)
	if a[0][0] == b[0][0] && a[0][1] == b[0][1] && a[0][2] == b[0][2] {
		t.Error("different seeds produced identical states")
	}
}

func TestSampleInitialConditions_PrefixStable(t *testing.T) {
	few := SampleInitialConditions(2, 1)
	many := SampleInitialConditions(10, 1)
	for i := range few {
		for j := range few[i] {
			if few[i][j] != many[i][j] {
				t.Fatalf("growing N changed state %d", i)
			}
		}
	}
}
