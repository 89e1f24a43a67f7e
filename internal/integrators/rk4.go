package integrators

import "github.com/san-kum/trajsim/internal/dynamo"

// RK4 is the classic fourth-order Runge-Kutta scheme. It is exact for the
// drag-free parabola, but the step is still fixed: when (k/m)·v·dt is large
// the drag stage estimates overshoot and the solution diverges without any
// warning, just at a coarser dt than the Euler schemes.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(sys dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	half := dt * 0.5
	k1 := sys.Derive(x, t)
	k2 := sys.Derive(x.Add(k1.Scale(half)), t+half)
	k3 := sys.Derive(x.Add(k2.Scale(half)), t+half)
	k4 := sys.Derive(x.Add(k3.Scale(dt)), t+dt)

	slope := k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4)
	return x.Add(slope.Scale(dt / 6))
}
