// Package physics provides dynamical system models for simulation.
//
// [Projectile] implements the [dynamo.System] interface with the state laid
// out as [x, y, vx, vy]. Drag is quadratic in magnitude and opposes the
// velocity, F = -k·|v|·v, so both axes share the same speed term.
//
// The model also implements [dynamo.Hamiltonian] for energy calculation:
//
//	p := physics.NewProjectile(1, 9.81, 0.1)
//	if h, ok := dynamo.System(p).(dynamo.Hamiltonian); ok {
//	    energy := h.Energy(state)
//	}
package physics
