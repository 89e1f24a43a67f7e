package trajectory_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trajsim/internal/trajectory"
)

var _ = Describe("DeriveEnergy", func() {
	solve := func(p trajectory.Params) (*trajectory.Series, *trajectory.EnergySeries) {
		s, err := trajectory.Solve(p)
		Expect(err).NotTo(HaveOccurred())
		return s, trajectory.DeriveEnergy(s, p.Mass, p.Gravity)
	}

	It("computes kinetic, potential and total energy per sample", func() {
		p := trajectory.DefaultParams()
		p.Mass = 3
		p.Y0 = 2
		s, e := solve(p)

		Expect(e.Len()).To(Equal(s.Len()))
		Expect(e.T).To(Equal(s.T))
		for i := 0; i < s.Len(); i++ {
			Expect(e.KE[i]).To(BeNumerically("~", 0.5*p.Mass*s.V[i]*s.V[i], 1e-9))
			Expect(e.PE[i]).To(BeNumerically("~", p.Mass*p.Gravity*s.Y[i], 1e-12))
			Expect(e.TE[i]).To(BeNumerically("~", e.KE[i]+e.PE[i], 1e-12))
		}
		Expect(e.KE[0]).To(BeNumerically("~", 0.5*3*100, 1e-9))
		Expect(e.PE[0]).To(BeNumerically("~", 3*9.81*2, 1e-12))
	})

	It("returns an empty series for empty input", func() {
		Expect(trajectory.DeriveEnergy(nil, 1, 9.81).Len()).To(Equal(0))
		Expect(trajectory.DeriveEnergy(&trajectory.Series{}, 1, 9.81).Len()).To(Equal(0))
	})

	Context("without drag", func() {
		It("conserves total energy up to the discretization error", func() {
			p := trajectory.Params{TMax: 2.5, NumSamples: 250, V0: 10, AngleDeg: 60, Gravity: 9.81, Mass: 1}
			_, e := solve(p)

			te0 := e.TE[0]
			for _, te := range e.TE {
				Expect(math.Abs(te-te0) / te0).To(BeNumerically("<", 0.03))
			}
		})

		It("loses exactly g²dt²/2 per unit mass each step", func() {
			p := trajectory.Params{TMax: 3, NumSamples: 120, Y0: 1, V0: 7, AngleDeg: 20, Gravity: 9.81, Mass: 2}
			_, e := solve(p)

			dt := p.Dt()
			perStep := 0.5 * p.Mass * p.Gravity * p.Gravity * dt * dt
			for i, te := range e.TE {
				Expect(te).To(BeNumerically("~", e.TE[0]-float64(i)*perStep, 1e-9))
			}
		})

		It("drifts less on a finer grid", func() {
			drift := func(n int) float64 {
				p := trajectory.DefaultParams()
				p.NumSamples = n
				_, e := solve(p)
				return math.Abs(e.TE[len(e.TE)-1] - e.TE[0])
			}
			Expect(drift(500)).To(BeNumerically("<", drift(50)))
		})
	})

	Context("with drag", func() {
		It("dissipates energy monotonically", func() {
			p := trajectory.DefaultParams()
			p.Drag = 0.5
			_, e := solve(p)

			for i := 1; i < e.Len(); i++ {
				Expect(e.TE[i]).To(BeNumerically("<=", e.TE[i-1]+1e-12))
			}
			Expect(e.TE[e.Len()-1]).To(BeNumerically("<", e.TE[0]))
		})

		It("ends with less energy than the drag-free flight", func() {
			p := trajectory.DefaultParams()
			_, free := solve(p)
			_, dragged := solve(p.With(trajectory.ParamDrag, 1))

			last := free.Len() - 1
			Expect(dragged.TE[last]).To(BeNumerically("<", free.TE[last]))
		})
	})
})
