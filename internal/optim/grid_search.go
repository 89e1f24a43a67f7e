package optim

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/san-kum/trajsim/internal/integrators"
	"github.com/san-kum/trajsim/internal/trajectory"
)

// Axis is one swept parameter and the values it takes.
type Axis struct {
	Param  trajectory.Param
	Values []float64
}

// Limits on sweep size.
const (
	MaxAxisPoints = 100_000
	MaxGridPoints = 1_000_000
)

// Steps lists from, from+step, ... up to and including to.
func Steps(from, to, step float64) ([]float64, error) {
	if !(step > 0) || to < from {
		return nil, fmt.Errorf("invalid range %g:%g:%g", from, to, step)
	}
	span := math.Floor((to-from)/step + 1e-9)
	if math.IsNaN(span) || span >= MaxAxisPoints {
		return nil, fmt.Errorf("range %g:%g:%g has more than %d points", from, to, step, MaxAxisPoints)
	}
	n := int(span) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = from + float64(i)*step
	}
	return out, nil
}

// ParseAxis reads "name=from:to:step", e.g. "angle=10:80:5".
func ParseAxis(s string) (Axis, error) {
	name, rng, ok := strings.Cut(s, "=")
	if !ok {
		return Axis{}, fmt.Errorf("axis %q: want name=from:to:step", s)
	}
	param, ok := trajectory.ParseParam(name)
	if !ok {
		return Axis{}, fmt.Errorf("axis %q: unknown parameter %s", s, name)
	}
	parts := strings.Split(rng, ":")
	if len(parts) != 3 {
		return Axis{}, fmt.Errorf("axis %q: want name=from:to:step", s)
	}
	var nums [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return Axis{}, fmt.Errorf("axis %q: %w", s, err)
		}
		nums[i] = v
	}
	values, err := Steps(nums[0], nums[1], nums[2])
	if err != nil {
		return Axis{}, fmt.Errorf("axis %q: %w", s, err)
	}
	return Axis{Param: param, Values: values}, nil
}

type Candidate struct {
	Params trajectory.Params
	Score  float64
}

type Result struct {
	// Candidates holds every scored point, best first.
	Candidates []Candidate
	// Skipped counts points that failed validation or had no score.
	Skipped int
}

func (r Result) Best() (Candidate, bool) {
	if len(r.Candidates) == 0 {
		return Candidate{}, false
	}
	return r.Candidates[0], true
}

type GridSearch struct {
	axes       []Axis
	Integrator string
	Workers    int
}

func NewGridSearch(axes ...Axis) *GridSearch {
	return &GridSearch{
		axes:       axes,
		Integrator: integrators.Reference,
		Workers:    runtime.NumCPU(),
	}
}

// Size is the number of grid points, stopping once it passes MaxGridPoints.
func (g *GridSearch) Size() int {
	if len(g.axes) == 0 {
		return 0
	}
	n := 1
	for _, a := range g.axes {
		n *= len(a.Values)
		if n > MaxGridPoints {
			return n
		}
	}
	return n
}

// Search solves base with every combination of axis values and ranks them by
// obj, highest first.
func (g *GridSearch) Search(ctx context.Context, base trajectory.Params, obj Objective) (Result, error) {
	if _, err := integrators.New(g.Integrator); err != nil {
		return Result{}, err
	}
	if g.Size() > MaxGridPoints {
		return Result{}, fmt.Errorf("grid has more than %d points", MaxGridPoints)
	}

	var points []trajectory.Params
	g.expand(0, base, &points)

	scores := make([]float64, len(points))
	ok := make([]bool, len(points))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < max(g.Workers, 1); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				scores[idx], ok[idx] = g.evaluate(points[idx], obj)
			}
		}()
	}

	var err error
feed:
	for i := range points {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	if err != nil {
		return Result{}, err
	}

	var res Result
	for i, p := range points {
		if !ok[i] {
			res.Skipped++
			continue
		}
		res.Candidates = append(res.Candidates, Candidate{Params: p, Score: scores[i]})
	}
	sort.SliceStable(res.Candidates, func(i, j int) bool {
		return res.Candidates[i].Score > res.Candidates[j].Score
	})
	return res, nil
}

func (g *GridSearch) expand(depth int, current trajectory.Params, out *[]trajectory.Params) {
	if depth == len(g.axes) {
		if depth > 0 {
			*out = append(*out, current)
		}
		return
	}
	axis := g.axes[depth]
	for _, v := range axis.Values {
		g.expand(depth+1, current.With(axis.Param, v), out)
	}
}

func (g *GridSearch) evaluate(p trajectory.Params, obj Objective) (float64, bool) {
	integ, err := integrators.New(g.Integrator)
	if err != nil {
		return 0, false
	}
	s, err := trajectory.SolveWith(p, integ)
	if err != nil {
		return 0, false
	}
	return obj.Score(p, s)
}
