package trajectory

// Series is the sampled history of one solve. All slices have the same length
// and index alignment with T.
type Series struct {
	T  []float64
	X  []float64
	Y  []float64
	R  []float64
	VX []float64
	VY []float64
	V  []float64
	AX []float64
	AY []float64
	A  []float64
}

func newSeries(n int) *Series {
	return &Series{
		T:  make([]float64, n),
		X:  make([]float64, n),
		Y:  make([]float64, n),
		R:  make([]float64, n),
		VX: make([]float64, n),
		VY: make([]float64, n),
		V:  make([]float64, n),
		AX: make([]float64, n),
		AY: make([]float64, n),
		A:  make([]float64, n),
	}
}

func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.T)
}

// EnergySeries holds per-sample mechanical energy aligned with a Series.
type EnergySeries struct {
	T  []float64
	KE []float64
	PE []float64
	TE []float64
}

func (e *EnergySeries) Len() int {
	if e == nil {
		return 0
	}
	return len(e.T)
}
