package integrators

import (
	"fmt"
	"sort"

	"github.com/san-kum/trajsim/internal/dynamo"
)

// Reference names the scheme the trajectory solver uses.
const Reference = "semi-implicit"

var registry = map[string]func() dynamo.Integrator{
	"euler":         func() dynamo.Integrator { return NewEuler() },
	"semi-implicit": func() dynamo.Integrator { return NewSemiImplicitEuler() },
	"rk4":           func() dynamo.Integrator { return NewRK4() },
	"verlet":        func() dynamo.Integrator { return NewVerlet() },
	"leapfrog":      func() dynamo.Integrator { return NewLeapfrog() },
}

// New returns a fresh integrator. Steps never mutate their input state.
func New(name string) (dynamo.Integrator, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
