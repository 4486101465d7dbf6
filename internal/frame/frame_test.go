package frame

import (
	"context"
	"io"
	"log/slog"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lorenzq/internal/dynamo"
	"github.com/san-kum/lorenzq/internal/ensemble"
)

// ramp builds an ensemble whose sample k of trajectory j is (j, k, 0).
func ramp(n, samples int) *ensemble.Ensemble {
	ens := &ensemble.Ensemble{
		Grid:         ensemble.Linspace(0, 1, samples),
		Trajectories: make([]ensemble.Trajectory, n),
	}
	for j := range ens.Trajectories {
		states := make([]dynamo.State, samples)
		for k := range states {
			states[k] = dynamo.State{float64(j), float64(k), 0}
		}
		ens.Trajectories[j] = ensemble.Trajectory{Index: j, States: states, Valid: samples}
	}
	return ens
}

var _ = Describe("Sampler", func() {
	var s *Sampler

	BeforeEach(func() {
		s = New(ramp(2, 10), DefaultOptions())
	})

	It("reveals nothing at frame 0", func() {
		f := s.Frame(0)
		Expect(f.PrefixLen).To(Equal(0))
		Expect(f.Paths).To(HaveLen(2))
		for k := range f.Paths {
			Expect(f.Paths[k]).To(BeEmpty())
			Expect(f.Current[k]).To(BeNil())
		}
	})

	It("reveals two samples per frame and wraps", func() {
		Expect(s.PrefixLen(1)).To(Equal(2))
		Expect(s.PrefixLen(4)).To(Equal(8))
		Expect(s.PrefixLen(5)).To(Equal(0))
		Expect(s.PrefixLen(6)).To(Equal(2))
		Expect(s.Len()).To(Equal(5))
	})

	It("keeps the reveal increment at 2 or 2-T", func() {
		const samples = 10
		for i := 0; i < 100; i++ {
			d := s.PrefixLen(i+1) - s.PrefixLen(i)
			Expect(d).To(BeElementOf(2, 2-samples))
		}
	})

	It("points at the most recently revealed sample", func() {
		f := s.Frame(3)
		Expect(f.PrefixLen).To(Equal(6))
		for k := range f.Paths {
			Expect(f.Paths[k]).To(HaveLen(6))
			Expect(f.Current[k]).To(Equal(dynamo.State{float64(k), 5, 0}))
			Expect(f.Paths[k][0]).To(Equal(dynamo.State{float64(k), 0, 0}))
		}
	})

	It("rotates the camera with the frame index", func() {
		Expect(s.Frame(0).Azimuth).To(Equal(0.0))
		Expect(s.Frame(10).Azimuth).To(BeNumerically("~", 3.0, 1e-12))
		Expect(s.Frame(10).Elevation).To(Equal(30.0))
		Expect(s.Frame(11).Azimuth).To(BeNumerically(">", s.Frame(10).Azimuth))
	})

	It("is idempotent and order independent", func() {
		later := s.Frame(7)
		_ = s.Frame(2)
		Expect(s.Frame(7)).To(Equal(later))
	})

	It("does not let callers grow into hidden samples", func() {
		f := s.Frame(2)
		Expect(cap(f.Paths[0])).To(Equal(len(f.Paths[0])))
	})

	It("treats negative indices as cycling backwards", func() {
		Expect(s.PrefixLen(-1)).To(Equal(8))
	})

	It("truncates divergent trajectories at the last valid sample", func() {
		ens := ramp(2, 10)
		ens.Trajectories[1].Valid = 3
		ens.Trajectories[1].Err = dynamo.ErrDivergence
		d := New(ens, DefaultOptions())

		f := d.Frame(4)
		Expect(f.Paths[0]).To(HaveLen(8))
		Expect(f.Paths[1]).To(HaveLen(3))
		Expect(f.Current[1]).To(Equal(dynamo.State{1, 2, 0}))
	})

	It("falls back to the default reveal step", func() {
		d := New(ramp(1, 10), Options{})
		Expect(d.PrefixLen(1)).To(Equal(2))
	})
})

var _ = Describe("end to end", func() {
	It("samples frame 499 of the reference run", func() {
		opts := ensemble.DefaultOptions()
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		params := ensemble.ParameterSet{Sigma: 10, Beta: 8.0 / 3.0, Rho: 28, G: 0.7, Trajectories: 3}

		ens, err := ensemble.Integrate(context.Background(), params, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(ens.Trajectories).To(HaveLen(3))

		s := New(ens, DefaultOptions())
		Expect(s.Len()).To(Equal(500))

		f := s.Frame(499)
		Expect(f.PrefixLen).To(Equal(998))
		for k, tr := range ens.Trajectories {
			Expect(tr.States).To(HaveLen(1000))
			Expect(f.Paths[k]).To(HaveLen(998))
			Expect(f.Current[k]).To(Equal(tr.States[997]))
		}
	})
})

var _ = DescribeTable("PrefixLen",
	func(i, step, samples, want int) {
		Expect(PrefixLen(i, step, samples)).To(Equal(want))
	},
	Entry("start", 0, 2, 1000, 0),
	Entry("reference frame", 499, 2, 1000, 998),
	Entry("wrap", 500, 2, 1000, 0),
	Entry("odd T", 3, 2, 5, 1),
	Entry("empty grid", 3, 2, 0, 0),
	Entry("largest index", math.MaxInt, 2, 1000, 614),
	Entry("smallest index", math.MinInt, 2, 1000, 384),
	Entry("huge index on odd T", math.MaxInt-1, 2, 7, 5),
)
