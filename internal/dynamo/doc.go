// Package dynamo provides core simulation primitives for the trajectory solver.
//
// The package defines the small vocabulary shared by the dynamics, the
// integrators and the solver:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: fixed-step numerical integrator interface
//   - [Linspace], [DegToRad]: grid and angle helpers
//
// # Errors
//
// Invalid inputs are reported as [*ParameterError], which unwraps to
// [ErrInvalidParameter]:
//
//	_, err := trajectory.Solve(p)
//	if errors.Is(err, dynamo.ErrInvalidParameter) {
//	    // reject the input
//	}
package dynamo
