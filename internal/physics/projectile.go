package physics

import (
	"math"

	"github.com/san-kum/trajsim/internal/dynamo"
)

type Projectile struct {
	Mass    float64
	Gravity float64
	Drag    float64
}

func NewProjectile(mass, gravity, drag float64) *Projectile {
	return &Projectile{Mass: mass, Gravity: gravity, Drag: drag}
}

func (p *Projectile) StateDim() int { return 4 }

// Acceleration evaluates gravity plus drag at velocity (vx, vy).
func (p *Projectile) Acceleration(vx, vy float64) (ax, ay float64) {
	v := math.Sqrt(vx*vx + vy*vy)
	ax = -p.Drag / p.Mass * v * vx
	ay = -p.Gravity - p.Drag/p.Mass*v*vy
	return ax, ay
}

func (p *Projectile) Derive(x dynamo.State, t float64) dynamo.State {
	vx, vy := x[2], x[3]
	ax, ay := p.Acceleration(vx, vy)
	return dynamo.State{vx, vy, ax, ay}
}

func (p *Projectile) Kinetic(vx, vy float64) float64 {
	return 0.5 * p.Mass * (vx*vx + vy*vy)
}

// Potential is measured from y = 0.
func (p *Projectile) Potential(y float64) float64 {
	return p.Mass * p.Gravity * y
}

func (p *Projectile) Energy(x dynamo.State) float64 {
	return p.Kinetic(x[2], x[3]) + p.Potential(x[1])
}
