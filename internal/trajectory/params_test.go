package trajectory_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trajsim/internal/trajectory"
)

var _ = Describe("Params", func() {
	It("has valid defaults", func() {
		p := trajectory.DefaultParams()
		Expect(p.Validate()).To(Succeed())
		Expect(p.TMax).To(Equal(2.5))
		Expect(p.NumSamples).To(Equal(250))
		Expect(p.V0).To(Equal(10.0))
		Expect(p.AngleDeg).To(Equal(60.0))
		Expect(p.Gravity).To(Equal(9.81))
		Expect(p.Drag).To(Equal(0.0))
		Expect(p.Mass).To(Equal(1.0))
	})

	It("reports the grid step", func() {
		p := trajectory.Params{TMax: 1, NumSamples: 11}
		Expect(p.Dt()).To(BeNumerically("~", 0.1, 1e-15))
	})

	It("reads back every field it writes", func() {
		for _, param := range trajectory.AllParams() {
			p := trajectory.DefaultParams().With(param, 7)
			Expect(p.Get(param)).To(Equal(7.0), param.String())
		}
	})

	It("leaves the receiver untouched", func() {
		p := trajectory.DefaultParams()
		q := p.With(trajectory.ParamMass, 4)
		Expect(p.Mass).To(Equal(1.0))
		Expect(q.Mass).To(Equal(4.0))
	})

	It("rounds the sample count", func() {
		p := trajectory.DefaultParams().With(trajectory.ParamNumSamples, 99.6)
		Expect(p.NumSamples).To(Equal(100))
	})

	It("ignores unknown params", func() {
		p := trajectory.DefaultParams()
		Expect(p.With(trajectory.Param(99), 1)).To(Equal(p))
		Expect(math.IsNaN(p.Get(trajectory.Param(-1)))).To(BeTrue())
		Expect(trajectory.Param(99).String()).To(Equal("unknown"))
	})

	It("round-trips names", func() {
		seen := map[string]bool{}
		for _, param := range trajectory.AllParams() {
			name := param.String()
			Expect(seen).NotTo(HaveKey(name))
			seen[name] = true

			parsed, ok := trajectory.ParseParam(name)
			Expect(ok).To(BeTrue())
			Expect(parsed).To(Equal(param))
		}
		_, ok := trajectory.ParseParam("theta")
		Expect(ok).To(BeFalse())
	})
})
