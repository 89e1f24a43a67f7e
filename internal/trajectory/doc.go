// Package trajectory integrates projectile motion with air drag over a fixed
// time grid.
//
// [Solve] is a pure function of its [Params]: every call allocates a fresh
// [Series] and shares nothing with earlier calls. [DeriveEnergy] turns a
// series into kinetic, potential and total energy on the same grid.
//
//	p := trajectory.DefaultParams()
//	s, err := trajectory.Solve(p.With(trajectory.ParamDrag, 0.2))
//	if err != nil {
//	    return err
//	}
//	e := trajectory.DeriveEnergy(s, p.Mass, p.Gravity)
//
// The integrator is fixed-step semi-implicit Euler. Nothing checks numerical
// stability; choose NumSamples and TMax so that (Drag/Mass)·speed·dt stays
// well below 2.
package trajectory
