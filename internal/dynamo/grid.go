package dynamo

import "math"

// Linspace returns num evenly spaced samples over [start, stop]. With endpoint
// false the interval is half-open and stop is excluded.
func Linspace(start, stop float64, num int, endpoint bool) []float64 {
	if num <= 0 {
		return []float64{}
	}
	div := num
	if endpoint {
		div = num - 1
	}
	if div == 0 {
		return []float64{start}
	}
	step := (stop - start) / float64(div)
	out := make([]float64, num)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

func DegToRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
