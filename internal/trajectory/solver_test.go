package trajectory_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/integrators"
	"github.com/san-kum/trajsim/internal/trajectory"
)

func argmax(xs []float64) int {
	best := 0
	for i, v := range xs {
		if v > xs[best] {
			best = i
		}
	}
	return best
}

var _ = Describe("Solve", func() {
	Context("with the default launch", func() {
		var s *trajectory.Series

		BeforeEach(func() {
			var err error
			s, err = trajectory.Solve(trajectory.Params{
				TMax: 2.5, NumSamples: 250,
				X0: 0, Y0: 0, V0: 10, AngleDeg: 60,
				Gravity: 9.81, Drag: 0, Mass: 1,
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("returns aligned arrays of the requested length", func() {
			Expect(s.Len()).To(Equal(250))
			for _, col := range [][]float64{s.X, s.Y, s.R, s.VX, s.VY, s.V, s.AX, s.AY, s.A} {
				Expect(col).To(HaveLen(250))
			}
		})

		It("starts from the initial conditions", func() {
			Expect(s.X[0]).To(Equal(0.0))
			Expect(s.Y[0]).To(Equal(0.0))
			Expect(s.VX[0]).To(BeNumerically("~", 5.0, 1e-9))
			Expect(s.VY[0]).To(BeNumerically("~", 8.660254, 1e-6))
			Expect(s.V[0]).To(BeNumerically("~", 10.0, 1e-9))
		})

		It("samples a closed, strictly increasing time grid", func() {
			Expect(s.T[0]).To(Equal(0.0))
			Expect(s.T[len(s.T)-1]).To(BeNumerically("~", 2.5, 1e-12))
			for i := 1; i < len(s.T); i++ {
				Expect(s.T[i]).To(BeNumerically(">", s.T[i-1]))
			}
		})

		It("rises to an interior apex and comes back down through launch height", func() {
			peak := argmax(s.Y)
			Expect(peak).To(BeNumerically(">", 0))
			Expect(peak).To(BeNumerically("<", s.Len()-1))
			Expect(s.Y[peak]).To(BeNumerically(">", 0))
			Expect(s.Y[s.Len()-1]).To(BeNumerically("<", 0))
		})

		It("keeps the moduli consistent with their components", func() {
			for i := 0; i < s.Len(); i++ {
				Expect(s.V[i]).To(BeNumerically("~", math.Hypot(s.VX[i], s.VY[i]), 1e-12))
				Expect(s.A[i]).To(BeNumerically("~", math.Hypot(s.AX[i], s.AY[i]), 1e-12))
				Expect(s.R[i]).To(BeNumerically("~", math.Hypot(s.X[i], s.Y[i]), 1e-12))
			}
		})
	})

	DescribeTable("rejecting degenerate parameters",
		func(mutate func(*trajectory.Params)) {
			p := trajectory.DefaultParams()
			mutate(&p)

			s, err := trajectory.Solve(p)
			Expect(err).To(MatchError(dynamo.ErrInvalidParameter))
			Expect(s).To(BeNil())
		},
		Entry("a single sample", func(p *trajectory.Params) { p.NumSamples = 1 }),
		Entry("no samples", func(p *trajectory.Params) { p.NumSamples = 0 }),
		Entry("zero mass", func(p *trajectory.Params) { p.Mass = 0 }),
		Entry("negative mass", func(p *trajectory.Params) { p.Mass = -1 }),
		Entry("NaN mass", func(p *trajectory.Params) { p.Mass = math.NaN() }),
		Entry("zero tmax", func(p *trajectory.Params) { p.TMax = 0 }),
		Entry("negative tmax", func(p *trajectory.Params) { p.TMax = -2 }),
	)

	It("names the offending parameter", func() {
		p := trajectory.DefaultParams()
		p.Mass = 0

		_, err := trajectory.Solve(p)
		var pe *dynamo.ParameterError
		Expect(err).To(BeAssignableToTypeOf(pe))
		Expect(err.(*dynamo.ParameterError).Name).To(Equal("m"))
	})

	Context("dropped from rest without drag", func() {
		fallError := func(n int) (maxErr, dt float64) {
			p := trajectory.Params{TMax: 2, NumSamples: n, Y0: 5, Gravity: 9.81, Mass: 1}
			s, err := trajectory.Solve(p)
			Expect(err).NotTo(HaveOccurred())

			for i := range s.T {
				exact := p.Y0 - 0.5*p.Gravity*s.T[i]*s.T[i]
				maxErr = math.Max(maxErr, math.Abs(s.Y[i]-exact))
				Expect(s.X[i]).To(Equal(0.0))
				Expect(s.AY[i]).To(BeNumerically("~", -p.Gravity, 1e-12))
			}
			return maxErr, p.Dt()
		}

		It("tracks the closed form within the first-order truncation error", func() {
			maxErr, dt := fallError(100)
			Expect(maxErr).To(BeNumerically("<=", 0.5*9.81*dt*2+1e-9))
		})

		It("converges as the grid is refined", func() {
			coarse, _ := fallError(50)
			fine, _ := fallError(500)
			Expect(fine).To(BeNumerically("<", coarse/5))
		})
	})

	Context("with drag", func() {
		var (
			p trajectory.Params
			s *trajectory.Series
		)

		BeforeEach(func() {
			p = trajectory.DefaultParams()
			p.Drag = 0.3
			p.Mass = 2
			var err error
			s, err = trajectory.Solve(p)
			Expect(err).NotTo(HaveOccurred())
		})

		It("drives each step with the previous velocity and a shared speed term", func() {
			for i := 1; i < s.Len(); i++ {
				v := math.Sqrt(s.VX[i-1]*s.VX[i-1] + s.VY[i-1]*s.VY[i-1])
				Expect(s.AX[i]).To(BeNumerically("~", -p.Drag/p.Mass*v*s.VX[i-1], 1e-12))
				Expect(s.AY[i]).To(BeNumerically("~", -p.Gravity-p.Drag/p.Mass*v*s.VY[i-1], 1e-12))
			}
		})

		It("updates velocity before position", func() {
			dt := s.T[1] - s.T[0]
			for i := 1; i < s.Len(); i++ {
				Expect(s.VX[i]).To(BeNumerically("~", s.VX[i-1]+s.AX[i]*dt, 1e-12))
				Expect(s.VY[i]).To(BeNumerically("~", s.VY[i-1]+s.AY[i]*dt, 1e-12))
				Expect(s.X[i]).To(BeNumerically("~", s.X[i-1]+s.VX[i]*dt, 1e-12))
				Expect(s.Y[i]).To(BeNumerically("~", s.Y[i-1]+s.VY[i]*dt, 1e-12))
			}
		})

		It("records the initial acceleration from the launch velocity", func() {
			v := s.V[0]
			Expect(s.AX[0]).To(BeNumerically("~", -p.Drag/p.Mass*v*s.VX[0], 1e-12))
			Expect(s.AY[0]).To(BeNumerically("~", -p.Gravity-p.Drag/p.Mass*v*s.VY[0], 1e-12))
		})

		It("slows the horizontal motion", func() {
			for i := 1; i < s.Len(); i++ {
				Expect(s.VX[i]).To(BeNumerically("<", s.VX[i-1]))
			}
		})
	})

	Context("symmetric 45° launch without drag", func() {
		apexError := func(n int) float64 {
			p := trajectory.Params{TMax: 1.6, NumSamples: n, V0: 10, AngleDeg: 45, Gravity: 9.81, Mass: 1}
			s, err := trajectory.Solve(p)
			Expect(err).NotTo(HaveOccurred())

			vy0 := 10 * math.Sin(math.Pi/4)
			ideal := vy0 * vy0 / (2 * 9.81)
			return math.Abs(s.Y[argmax(s.Y)] - ideal)
		}

		It("approaches the closed-form peak height", func() {
			coarse, fine := apexError(50), apexError(500)
			Expect(coarse).To(BeNumerically("<", 0.2))
			Expect(fine).To(BeNumerically("<", 0.02))
			Expect(fine).To(BeNumerically("<", coarse))
		})
	})

	It("returns independent results on every call", func() {
		p := trajectory.DefaultParams()
		a, err := trajectory.Solve(p)
		Expect(err).NotTo(HaveOccurred())
		b, err := trajectory.Solve(p)
		Expect(err).NotTo(HaveOccurred())

		Expect(a.Y).To(Equal(b.Y))
		a.Y[10] = 1e6
		Expect(b.Y[10]).NotTo(Equal(1e6))
	})
})

var _ = Describe("SolveWith", func() {
	It("matches Solve when given the semi-implicit integrator", func() {
		p := trajectory.DefaultParams().With(trajectory.ParamDrag, 0.4)
		ref, err := trajectory.Solve(p)
		Expect(err).NotTo(HaveOccurred())
		got, err := trajectory.SolveWith(p, integrators.NewSemiImplicitEuler())
		Expect(err).NotTo(HaveOccurred())

		Expect(got).To(Equal(ref))
	})

	It("integrates drag-free flight exactly with RK4", func() {
		p := trajectory.Params{TMax: 2, NumSamples: 40, X0: 1, Y0: 2, V0: 12, AngleDeg: 30, Gravity: 9.81, Mass: 1}
		s, err := trajectory.SolveWith(p, integrators.NewRK4())
		Expect(err).NotTo(HaveOccurred())

		vx0, vy0 := 12*math.Cos(math.Pi/6), 12*math.Sin(math.Pi/6)
		for i, t := range s.T {
			Expect(s.X[i]).To(BeNumerically("~", 1+vx0*t, 1e-9))
			Expect(s.Y[i]).To(BeNumerically("~", 2+vy0*t-0.5*9.81*t*t, 1e-9))
		}
	})

	It("validates before integrating", func() {
		p := trajectory.DefaultParams()
		p.NumSamples = 1
		_, err := trajectory.SolveWith(p, integrators.NewRK4())
		Expect(err).To(MatchError(dynamo.ErrInvalidParameter))
	})
})
