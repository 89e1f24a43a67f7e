package trajectory

import "github.com/san-kum/trajsim/internal/physics"

// DeriveEnergy computes KE = ½·m·v², PE = m·g·y and their sum at every sample
// of s. Potential energy is measured from y = 0.
func DeriveEnergy(s *Series, m, g float64) *EnergySeries {
	n := s.Len()
	e := &EnergySeries{
		T:  make([]float64, n),
		KE: make([]float64, n),
		PE: make([]float64, n),
		TE: make([]float64, n),
	}
	if n == 0 {
		return e
	}

	body := physics.NewProjectile(m, g, 0)
	copy(e.T, s.T)
	for i := 0; i < n; i++ {
		e.KE[i] = body.Kinetic(s.VX[i], s.VY[i])
		e.PE[i] = body.Potential(s.Y[i])
		e.TE[i] = e.KE[i] + e.PE[i]
	}
	return e
}
