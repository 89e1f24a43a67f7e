package trajectory

import (
	"math"

	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/integrators"
	"github.com/san-kum/trajsim/internal/physics"
)

// Solve integrates p with the semi-implicit Euler scheme: each step takes the
// acceleration from the previous velocity, updates the velocity, then moves
// the position with the new velocity.
func Solve(p Params) (*Series, error) {
	return SolveWith(p, integrators.NewSemiImplicitEuler())
}

// SolveWith integrates p on the same grid with any integrator. AX and AY at
// sample i hold the acceleration evaluated at the start of step i; sample 0
// holds the acceleration at the initial state.
func SolveWith(p Params, integ dynamo.Integrator) (*Series, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := p.NumSamples
	s := newSeries(n)
	copy(s.T, dynamo.Linspace(0, p.TMax, n, true))
	dt := s.T[1] - s.T[0]

	body := physics.NewProjectile(p.Mass, p.Gravity, p.Drag)

	angle := dynamo.DegToRad(p.AngleDeg)
	x := dynamo.State{p.X0, p.Y0, p.V0 * math.Cos(angle), p.V0 * math.Sin(angle)}
	s.record(0, x)
	s.AX[0], s.AY[0] = body.Acceleration(x[2], x[3])
	s.A[0] = math.Sqrt(s.AX[0]*s.AX[0] + s.AY[0]*s.AY[0])

	for i := 1; i < n; i++ {
		ax, ay := body.Acceleration(x[2], x[3])
		s.AX[i], s.AY[i] = ax, ay
		s.A[i] = math.Sqrt(ax*ax + ay*ay)

		x = integ.Step(body, x, s.T[i-1], dt)
		s.record(i, x)
	}

	return s, nil
}

func (s *Series) record(i int, x dynamo.State) {
	s.X[i], s.Y[i] = x[0], x[1]
	s.R[i] = math.Sqrt(x[0]*x[0] + x[1]*x[1])
	s.VX[i], s.VY[i] = x[2], x[3]
	s.V[i] = math.Sqrt(x[2]*x[2] + x[3]*x[3])
}
