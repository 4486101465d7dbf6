package ensemble

import (
	"context"
	"io"
	"log/slog"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lorenzq/internal/dynamo"
)

// blowup follows dx/dt = x^2 in the first coordinate and escapes to
// infinity at t = 1/x for positive starts.
type blowup struct{}

func (b *blowup) StateDim() int { return 3 }

func (b *blowup) Derive(x dynamo.State, _ float64) dynamo.State {
	return dynamo.State{x[0] * x[0], 0, 0}
}

func quietOptions() Options {
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return opts
}

var _ = Describe("Integrate", func() {
	var (
		ctx    context.Context
		params ParameterSet
		opts   Options
	)

	BeforeEach(func() {
		ctx = context.Background()
		params = ParameterSet{Sigma: 10, Beta: 8.0 / 3.0, Rho: 28, G: 0.7, Trajectories: 3}
		opts = quietOptions()
	})

	Context("with the reference parameters", func() {
		var ens *Ensemble

		BeforeEach(func() {
			var err error
			ens, err = Integrate(ctx, params, opts)
			Expect(err).NotTo(HaveOccurred())
		})

		It("produces N trajectories of T samples on one grid", func() {
			Expect(ens.Len()).To(Equal(3))
			Expect(ens.Samples()).To(Equal(1000))
			Expect(ens.Grid[0]).To(Equal(0.0))
			Expect(ens.Grid[999]).To(Equal(10.0))
			for _, tr := range ens.Trajectories {
				Expect(tr.States).To(HaveLen(1000))
				Expect(tr.Valid).To(Equal(1000))
				Expect(tr.Err).NotTo(HaveOccurred())
			}
			Expect(ens.Err()).NotTo(HaveOccurred())
			Expect(ens.Diverged()).To(BeEmpty())
		})

		It("starts each trajectory at its sampled initial condition", func() {
			x0s := SampleInitialConditions(3, opts.Seed)
			for i, tr := range ens.Trajectories {
				Expect(tr.Index).To(Equal(i))
				Expect(tr.States[0]).To(Equal(x0s[i]))
				Expect(tr.Initial).To(Equal(x0s[i]))
			}
		})

		It("stays on a bounded attractor", func() {
			for _, tr := range ens.Trajectories {
				for _, s := range tr.Path() {
					Expect(s.IsValid()).To(BeTrue())
					Expect(s.Norm()).To(BeNumerically("<", 200))
				}
			}
		})

		It("is reproducible bit for bit", func() {
			again, err := Integrate(ctx, params, opts)
			Expect(err).NotTo(HaveOccurred())
			for i := range ens.Trajectories {
				Expect(again.Trajectories[i].States).To(Equal(ens.Trajectories[i].States))
			}
		})

		It("does not depend on the number of workers", func() {
			opts.Workers = 4
			parallel, err := Integrate(ctx, params, opts)
			Expect(err).NotTo(HaveOccurred())
			for i := range ens.Trajectories {
				Expect(parallel.Trajectories[i].States).To(Equal(ens.Trajectories[i].States))
			}
		})

		It("is stable when the tolerance is tightened", func() {
			opts.Solver.Tolerance = dynamo.Tolerance{Rel: 1e-9, Abs: 1e-12}
			fine, err := Integrate(ctx, params, opts)
			Expect(err).NotTo(HaveOccurred())

			// Compare over t <= 2, before chaotic separation dominates.
			for i := range ens.Trajectories {
				for k := 0; ens.Grid[k] <= 2; k++ {
					diff := fine.Trajectories[i].States[k].Sub(ens.Trajectories[i].States[k]).Norm()
					Expect(diff).To(BeNumerically("<", 0.05), "trajectory %d sample %d", i, k)
				}
			}
		})
	})

	DescribeTable("rejects invalid parameters before doing any work",
		func(mutate func(*ParameterSet), name string) {
			mutate(&params)
			ens, err := Integrate(ctx, params, opts)
			Expect(ens).To(BeNil())
			Expect(err).To(MatchError(dynamo.ErrInvalidParameter))

			var pe *dynamo.ParameterError
			Expect(err).To(BeAssignableToTypeOf(pe))
			Expect(err.(*dynamo.ParameterError).Name).To(Equal(name))
		},
		Entry("zero trajectories", func(p *ParameterSet) { p.Trajectories = 0 }, "trajectories"),
		Entry("NaN sigma", func(p *ParameterSet) { p.Sigma = math.NaN() }, "sigma"),
		Entry("infinite rho", func(p *ParameterSet) { p.Rho = math.Inf(1) }, "rho"),
	)

	It("rejects invalid options", func() {
		opts.Samples = 0
		_, err := Integrate(ctx, params, opts)
		Expect(err).To(MatchError(dynamo.ErrInvalidParameter))
	})

	It("stops before starting work when the context is cancelled", func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		ens, err := Integrate(cancelled, params, opts)
		Expect(ens).To(BeNil())
		Expect(err).To(MatchError(context.Canceled))
	})

	It("integrates with the fixed-step RK4 solver as well", func() {
		opts.Integrator = "rk4"
		opts.Samples = 101
		opts.Horizon = 1
		ens, err := Integrate(ctx, params, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(ens.Integrator).To(Equal("rk4"))
		Expect(ens.Trajectories).To(HaveLen(3))
		Expect(ens.Err()).NotTo(HaveOccurred())
	})
})

var _ = Describe("divergence containment", func() {
	var (
		grid         TimeGrid
		trajectories []Trajectory
	)

	BeforeEach(func() {
		grid = Linspace(0, 2, 21)
		x0s := []dynamo.State{{-1, 0, 0}, {1, 0, 0}, {-0.5, 0, 0}}

		var err error
		opts := quietOptions()
		opts.Workers = 2
		trajectories, err = integrate(context.Background(), &blowup{}, x0s, grid, opts)
		Expect(err).NotTo(HaveOccurred())
	})

	It("keeps every other trajectory complete", func() {
		Expect(trajectories[0].Valid).To(Equal(len(grid)))
		Expect(trajectories[0].Err).NotTo(HaveOccurred())
		Expect(trajectories[2].Valid).To(Equal(len(grid)))
		Expect(trajectories[2].Err).NotTo(HaveOccurred())
	})

	It("truncates the divergent trajectory at its last valid sample", func() {
		tr := trajectories[1]
		Expect(tr.Diverged()).To(BeTrue())
		Expect(tr.Valid).To(Equal(10))
		Expect(tr.States).To(HaveLen(len(grid)))
		Expect(tr.Path()).To(HaveLen(10))
		for _, s := range tr.States[tr.Valid:] {
			Expect(s).To(Equal(tr.States[tr.Valid-1]))
		}
	})

	It("names the trajectory in the error", func() {
		err := trajectories[1].Err
		Expect(err).To(MatchError(dynamo.ErrDivergence))

		var de *dynamo.DivergenceError
		Expect(err).To(BeAssignableToTypeOf(de))
		Expect(err.(*dynamo.DivergenceError).Trajectory).To(Equal(1))
		Expect(err.Error()).To(HavePrefix("trajectory 1:"))
	})

	It("joins divergence errors at the ensemble level", func() {
		ens := &Ensemble{Grid: grid, Trajectories: trajectories}
		Expect(ens.Diverged()).To(Equal([]int{1}))
		Expect(ens.Err()).To(MatchError(dynamo.ErrDivergence))
	})
})
