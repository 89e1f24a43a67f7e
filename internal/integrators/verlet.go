package integrators

import "github.com/san-kum/trajsim/internal/dynamo"

// Verlet is velocity Verlet. The second force evaluation sees the new
// positions with the old velocities, so velocity-dependent forces such as drag
// are only first-order accurate in the velocity update.
type Verlet struct{}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) Step(sys dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	half := len(x) / 2
	dx := sys.Derive(x, t)

	next := x.Clone()
	for i := 0; i < half; i++ {
		next[i] = x[i] + x[half+i]*dt + 0.5*dx[half+i]*dt*dt
	}

	dxNew := sys.Derive(next, t+dt)
	halfDt := 0.5 * dt
	for i := 0; i < half; i++ {
		next[half+i] = x[half+i] + (dx[half+i]+dxNew[half+i])*halfDt
	}
	return next
}

// Leapfrog is kick-drift-kick: half a velocity step, a full position step with
// the half-step velocity, then the second half kick at the new positions.
type Leapfrog struct{}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Step(sys dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	half := len(x) / 2
	halfDt := dt * 0.5
	dx := sys.Derive(x, t)

	mid := x.Clone()
	for i := 0; i < half; i++ {
		mid[half+i] = x[half+i] + dx[half+i]*halfDt
		mid[i] = x[i] + mid[half+i]*dt
	}

	dxNew := sys.Derive(mid, t+dt)
	next := mid.Clone()
	for i := 0; i < half; i++ {
		next[half+i] = mid[half+i] + dxNew[half+i]*halfDt
	}
	return next
}
